// Package mapper converts between plain data (nested map[string]any / []any
// values as produced by decoding JSON) and typed Go structs, driven by
// per-field mapping descriptors kept in a Registry.
//
// # Declaring mappings
//
// Descriptors are registered once per type at program start, either with
// Registry.Register or with the generic builder:
//
//	reg := mapper.NewRegistry()
//	mapper.Define[User](reg).
//		Field("Name", mapper.Options{PathOrName: "profile.name"}).
//		Field("Count", mapper.Options{PathOrName: "odata.count", ResolvePath: mapper.Bool(false), Type: mapper.Number}).
//		Field("Tags", mapper.Options{PathOrName: "tags", Rules: []string{"full"}}).
//		Must()
//
// A field may carry several descriptors, typically one per rule. Each
// registration is filed under every rule it names (or DefaultRule) in the
// plain-to-object store, the object-to-plain store, or both:
//
//   - ToObjectOnly: true  limits the descriptor to ToObject
//   - ToPlainOnly: true   limits the descriptor to ToPlain
//   - neither set         applies in both directions
//
// Setting both is rejected with ErrConflictingDirection.
//
// # Rules
//
// Every conversion selects an ordered list of rules: the rules passed with
// WithRules in caller order, followed by DefaultRule unless
// ExcludeDefaultRule was given together with at least one rule. A field is
// resolved at most once per conversion; the first selected rule holding a
// descriptor for it wins.
//
// # Paths
//
// PathOrName is a dotted path into the plain value ("nested.name") unless
// ResolvePath is false, in which case it is one literal key ("odata.count").
// Missing segments resolve to DefaultValue and never fail.
//
// # Coercion
//
// The declared Type resolves to a primitive.CoercionKind at registration
// time. During ToObject a set value is converted recursively (nested
// registered struct), parsed as a date, or coerced to boolean, number or
// string. Sequences are converted element by element and stay sequences.
// When nothing applies the raw value is assigned as is. A custom ConvertFunc
// replaces all of this for its field in both directions.
//
// # Concurrency
//
// Registration takes an exclusive lock and conversions take shared locks, so
// converting from many goroutines is safe. Cyclic object graphs are not
// detected.
package mapper
