package common

import (
	"path"
	"reflect"
)

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// TypeName returns the short qualified name of a named type, e.g. "odata.User".
// Pointers are followed; unnamed types use their Go syntax.
func TypeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil {
		return ""
	}

	if t.Name() == "" {
		return t.String()
	}

	if alias := PkgAlias(t.PkgPath()); alias != "" {
		return alias + "." + t.Name()
	}

	return t.Name()
}
