package translate

import "github.com/cockroachdb/errors"

// ErrNoNamespace is returned when a compilation unit has no namespace
// declaration. The translator does not invent one.
var ErrNoNamespace = errors.New("compilation unit has no namespace declaration")

func noNamespaceError() error {
	return errors.WithHint(errors.WithStack(ErrNoNamespace),
		"wrap the declarations in `namespace Name { ... }` or add a file-scoped `namespace Name;`")
}
