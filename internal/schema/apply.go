package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"plain-mapper/internal/diagnostic"
	"plain-mapper/internal/match"
	"plain-mapper/mapper"
	"plain-mapper/plainpath"
	"plain-mapper/primitive"
)

// Apply registers every declaration of f on r. Declarations that cannot be
// resolved are reported and skipped; the rest are still registered.
func Apply(f *File, c *Catalog, r *mapper.Registry) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	for _, td := range f.Types {
		t, ok := c.Type(td.Type)
		if !ok {
			res.AddError("unknown_type",
				fmt.Sprintf("type %q is not in the catalog%s (known: %s)",
					td.Type, match.Hint(td.Type, c.TypeNames()), strings.Join(c.TypeNames(), ", ")),
				td.Type, "")

			continue
		}

		registered := 0

		for i := range td.Fields {
			fd := &td.Fields[i]

			opts, ok := fieldOptions(&res, c, td.Type, fd)
			if !ok {
				continue
			}

			if err := r.Register(t, fd.Field, opts); err != nil {
				msg := err.Error()
				if errors.Is(err, mapper.ErrUnknownField) {
					msg += match.Hint(fd.Field, fieldNames(t))
				}

				res.AddError("register_failed", msg, td.Type, fd.Field)

				continue
			}

			registered++
		}

		res.AddInfo("registered", fmt.Sprintf("%d descriptors", registered), td.Type, "")
	}

	return res
}

// fieldOptions translates a field declaration into mapper options.
func fieldOptions(res *diagnostic.Diagnostics, c *Catalog, typeName string, fd *FieldDecl) (mapper.Options, bool) {
	if fd.Field == "" {
		res.AddError("missing_field", "declaration must name a field", typeName, "")
		return mapper.Options{}, false
	}

	opts := mapper.Options{
		PathOrName:   fd.Path,
		ResolvePath:  fd.ResolvePath,
		DefaultValue: fd.Default,
		ToObjectOnly: fd.ToObjectOnly,
		ToPlainOnly:  fd.ToPlainOnly,
		Rules:        fd.Rules,
	}

	valid := true

	kind, ok := primitive.ParseKind(fd.Kind)
	if !ok {
		res.AddError("invalid_kind",
			fmt.Sprintf("invalid kind %q (expected none, nested, date, boolean, number or string)", fd.Kind),
			typeName, fd.Field)

		valid = false
	}

	opts.Type.Kind = kind

	if kind == primitive.CoercionNested {
		nested, ok := c.Type(fd.Nested)
		if !ok {
			res.AddError("unknown_nested_type", fmt.Sprintf("nested type %q is not in the catalog%s", fd.Nested, match.Hint(fd.Nested, c.TypeNames())), typeName, fd.Field)
			valid = false
		}

		opts.Type.Type = nested
	} else if fd.Nested != "" {
		res.AddWarning("nested_ignored", fmt.Sprintf("nested type %q ignored for kind %s", fd.Nested, kind), typeName, fd.Field)
	}

	if fd.Convert != "" {
		fn, ok := c.Converter(fd.Convert)
		if !ok {
			res.AddError("unknown_converter", fmt.Sprintf("converter %q is not in the catalog%s", fd.Convert, match.Hint(fd.Convert, c.ConverterNames())), typeName, fd.Field)
			valid = false
		}

		opts.Convert = fn
	}

	if fd.ResolvePath == nil || *fd.ResolvePath {
		if _, err := plainpath.ParsePath(fd.Path); err != nil {
			res.AddWarning("suspicious_path", err.Error(), typeName, fd.Field)
		}
	} else if p, err := plainpath.ParsePath(fd.Path); err == nil && !p.IsSimple() {
		res.AddInfo("literal_key", fmt.Sprintf("%q is one literal key, not nested under %q", p.String(), p.Root()), typeName, fd.Field)
	}

	return opts, valid
}

// fieldNames lists the exported fields of t, promoted fields excluded.
func fieldNames(t reflect.Type) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var names []string
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() {
			names = append(names, f.Name)
		}
	}

	return names
}
