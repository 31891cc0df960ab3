package apimodel

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/apidocs/internal/foundation"
	"git.home.luguber.info/inful/apidocs/internal/foundation/errors"
)

// Document is a decoded model document: the modules to document, in the order
// they should appear in the index.
type Document struct {
	Modules []Module
}

// ModuleNames returns the module names in document order.
func (d *Document) ModuleNames() []string {
	names := make([]string, 0, len(d.Modules))
	for _, m := range d.Modules {
		names = append(names, m.Name)
	}
	return names
}

type rawDocument struct {
	Modules []rawModule `yaml:"modules"`
}

type rawModule struct {
	Name    string      `yaml:"name"`
	Exports []rawExport `yaml:"exports"`
}

type rawExport struct {
	Kind         string           `yaml:"kind"`
	Name         string           `yaml:"name"`
	Since        string           `yaml:"since,omitempty"`
	Signature    string           `yaml:"signature"`
	Description  *string          `yaml:"description,omitempty"`
	Alias        bool             `yaml:"alias,omitempty"`
	Constructors []rawConstructor `yaml:"constructors,omitempty"`
}

type rawConstructor struct {
	Methods []rawMethod `yaml:"methods"`
}

type rawMethod struct {
	Name        string  `yaml:"name"`
	Since       string  `yaml:"since"`
	Signature   string  `yaml:"signature"`
	Description *string `yaml:"description,omitempty"`
}

// LoadFile reads and decodes a model document from path.
func LoadFile(path string) (*Document, error) {
	// #nosec G304 -- path is the operator-supplied model document.
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NotFoundError("model document not found").
				WithCause(err).
				WithContext("path", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "open model document").
			WithContext("path", path).
			Build()
	}
	defer func() {
		_ = f.Close()
	}()

	doc, err := Decode(f)
	if err != nil {
		if classified, ok := errors.AsClassified(err); ok {
			return nil, classified.WithContext("path", path)
		}
		return nil, err
	}
	return doc, nil
}

// Decode parses a YAML (or JSON) model document. Unknown fields, unknown export
// kinds and empty names are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.ValidationError("model document is empty").Build()
		}
		return nil, errors.WrapError(err, errors.CategoryValidation, "decode model document").
			Fatal().
			Build()
	}

	doc := &Document{Modules: make([]Module, 0, len(raw.Modules))}
	seen := make(map[string]struct{}, len(raw.Modules))
	for i, rm := range raw.Modules {
		if rm.Name == "" {
			return nil, errors.ValidationError("module name is required").
				WithContext("module_index", i).
				Build()
		}
		if _, dup := seen[rm.Name]; dup {
			return nil, errors.ValidationError("duplicate module name").
				WithContext("module", rm.Name).
				Build()
		}
		seen[rm.Name] = struct{}{}

		m, err := rm.toModule()
		if err != nil {
			return nil, err
		}
		doc.Modules = append(doc.Modules, m)
	}
	return doc, nil
}

func (rm rawModule) toModule() (Module, error) {
	m := Module{Name: rm.Name, Exports: make([]Export, 0, len(rm.Exports))}
	for i, re := range rm.Exports {
		e, err := re.toExport()
		if err != nil {
			if classified, ok := errors.AsClassified(err); ok {
				return Module{}, classified.
					WithContext("module", rm.Name).
					WithContext("export_index", i)
			}
			return Module{}, err
		}
		m.Exports = append(m.Exports, e)
	}
	return m, nil
}

func (re rawExport) toExport() (Export, error) {
	if re.Name == "" {
		return nil, errors.ValidationError("export name is required").
			WithContext("kind", re.Kind).
			Build()
	}
	if len(re.Constructors) > 0 && Kind(re.Kind) != KindData {
		return nil, errors.ValidationError("only data exports may declare constructors").
			WithContext("export", re.Name).
			WithContext("kind", re.Kind).
			Build()
	}

	description := descriptionOf(re.Description)
	switch Kind(re.Kind) {
	case KindData:
		d := Data{
			Name:         re.Name,
			Since:        re.Since,
			Signature:    re.Signature,
			Description:  description,
			Constructors: make([]Constructor, 0, len(re.Constructors)),
		}
		for _, rc := range re.Constructors {
			c := Constructor{Methods: make([]Method, 0, len(rc.Methods))}
			for _, rmeth := range rc.Methods {
				if rmeth.Name == "" {
					return nil, errors.ValidationError("method name is required").
						WithContext("export", re.Name).
						Build()
				}
				c.Methods = append(c.Methods, Method{
					Name:        rmeth.Name,
					Since:       rmeth.Since,
					Signature:   rmeth.Signature,
					Description: descriptionOf(rmeth.Description),
				})
			}
			d.Constructors = append(d.Constructors, c)
		}
		return d, nil
	case KindFunc:
		return Func{
			Name:        re.Name,
			Since:       re.Since,
			Signature:   re.Signature,
			Description: description,
			IsAlias:     re.Alias,
		}, nil
	case KindTypeclass:
		return Typeclass{Name: re.Name, Signature: re.Signature, Description: description}, nil
	case KindInstance:
		return Instance{Name: re.Name, Since: re.Since, Signature: re.Signature, Description: description}, nil
	default:
		return nil, errors.ValidationError(fmt.Sprintf("unknown export kind %q", re.Kind)).
			WithContext("export", re.Name).
			Build()
	}
}

func descriptionOf(p *string) foundation.Option[string] {
	if p == nil {
		return foundation.None[string]()
	}
	return foundation.NonEmpty(*p)
}
