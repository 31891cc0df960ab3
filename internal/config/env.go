package config

import (
	stderrors "errors"
	"os"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

// envFiles are loaded in order when present. Variables already set in the
// process environment are never overwritten.
var envFiles = []string{".env", ".env.local"}

func loadEnvFiles() error {
	for _, path := range envFiles {
		if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return errors.WrapError(err, errors.CategoryConfig, "failed to load env file").
				WithContext("path", path).
				Build()
		}
	}
	return nil
}
