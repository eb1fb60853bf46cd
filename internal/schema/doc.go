// Package schema loads mapping declarations from YAML files and applies them
// to a mapper.Registry.
//
// A schema file is the declarative twin of mapper.Define: every entry names a
// struct field and carries the same options.
//
// # Schema Overview
//
//	version: "1"
//	types:
//	  - type: odata.User              # name registered in the Catalog
//	    fields:
//	      - field: TestProp2          # exported struct field
//	        path: nested.testProp2    # defaults to the field name
//	      - field: TestProp3
//	        path: odata.count
//	        resolve_path: false       # literal key, dots included
//	        to_object_only: true
//	        kind: number              # none|nested|date|boolean|number|string
//	      - field: Values
//	        nested: odata.NestedValues
//	        rules: [full, summary]    # string or list, default rule when absent
//	      - field: Custom
//	        convert: double           # converter registered in the Catalog
//	        default: 0
//
// Types and converters are referenced by name and resolved through a
// Catalog. Apply keeps going after a bad entry and reports every problem as
// a diagnostic, so one typo does not hide the next.
package schema
