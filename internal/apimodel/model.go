package apimodel

import "git.home.luguber.info/inful/apidocs/internal/foundation"

// Kind discriminates the Export variants. The values double as the "kind" tag
// in model documents.
type Kind string

const (
	KindData      Kind = "data"
	KindFunc      Kind = "func"
	KindTypeclass Kind = "typeclass"
	KindInstance  Kind = "instance"
)

// Named is implemented by every entity that has a sortable name.
type Named interface {
	ExportName() string
}

// Export is one documented item of a module. The set of implementations is
// closed: Data, Func, Typeclass and Instance.
type Export interface {
	Named
	Kind() Kind
	isExport()
}

// Module is a named unit of the documented library.
type Module struct {
	Name    string
	Exports []Export
}

// Data is an exported data type.
type Data struct {
	Name         string
	Since        string
	Signature    string
	Description  foundation.Option[string]
	Constructors []Constructor
}

// Constructor groups the methods attached to one constructor of a Data type.
type Constructor struct {
	Methods []Method
}

// Method is a function attached to a data type's constructor.
type Method struct {
	Name        string
	Since       string
	Signature   string
	Description foundation.Option[string]
}

// Func is an exported function, possibly an alias of another one.
type Func struct {
	Name        string
	Since       string
	Signature   string
	Description foundation.Option[string]
	IsAlias     bool
}

// Typeclass is an exported type class definition. Type classes carry no version.
type Typeclass struct {
	Name        string
	Signature   string
	Description foundation.Option[string]
}

// Instance is an exported type class instance.
type Instance struct {
	Name        string
	Since       string
	Signature   string
	Description foundation.Option[string]
}

func (d Data) ExportName() string       { return d.Name }
func (m Method) ExportName() string     { return m.Name }
func (f Func) ExportName() string       { return f.Name }
func (tc Typeclass) ExportName() string { return tc.Name }
func (i Instance) ExportName() string   { return i.Name }

func (Data) Kind() Kind      { return KindData }
func (Func) Kind() Kind      { return KindFunc }
func (Typeclass) Kind() Kind { return KindTypeclass }
func (Instance) Kind() Kind  { return KindInstance }

func (Data) isExport()      {}
func (Func) isExport()      {}
func (Typeclass) isExport() {}
func (Instance) isExport()  {}

// Methods returns the methods of the first constructor, or nil when the data
// type has no constructors. Methods of later constructors are not documented.
func (d Data) Methods() []Method {
	if len(d.Constructors) == 0 {
		return nil
	}
	return d.Constructors[0].Methods
}
