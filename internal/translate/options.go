package translate

import "sharpswift/internal/diag"

const DefaultBaselineImport = "DNSwift"

// Options configure a Translator. Zero values select the defaults.
type Options struct {
	Types          *TypeMap
	Namespaces     *NamespaceMap
	BaselineImport string
	Reporter       diag.Reporter
}

func (o Options) withDefaults() Options {
	if o.Types == nil {
		o.Types = DefaultTypeMap()
	}
	if o.Namespaces == nil {
		o.Namespaces = DefaultNamespaceMap()
	}
	if o.BaselineImport == "" {
		o.BaselineImport = DefaultBaselineImport
	}
	if o.Reporter == nil {
		o.Reporter = diag.NopReporter{}
	}
	return o
}
