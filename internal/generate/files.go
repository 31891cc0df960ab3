package generate

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

const pageExt = ".md"

// fingerprint hashes page content. Pages carry no frontmatter, so only the
// body part is used.
func fingerprint(content string) string {
	return mdfp.CalculateFingerprintFromParts("", content)
}

// existingFingerprint returns the fingerprint of the file at path, or "" when
// it does not exist.
func existingFingerprint(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is inside the output directory
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read existing page: %w", err)
	}
	return fingerprint(string(data)), nil
}

// writeAtomic writes data to a temp file in the same directory and renames it
// over path.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	// #nosec G306 -- generated documentation is world readable
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp page: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename page: %w", err)
	}
	return nil
}

// markdownFiles lists the *.md file names directly inside dir, sorted. A
// missing directory yields no names.
func markdownFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list output directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), pageExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// pageFileName validates a module name and returns its page file name. Names
// that could escape the output directory are rejected.
func pageFileName(module string) (string, error) {
	switch {
	case module == "":
		return "", errors.ValidationError("module name is empty").Build()
	case strings.ContainsAny(module, `/\`), strings.Contains(module, ".."):
		return "", errors.ValidationError("module name is not a valid page name").
			WithContext("module", module).
			Build()
	}
	return module + pageExt, nil
}
