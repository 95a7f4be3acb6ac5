// Package schema holds the Schema Validator's input data model (spec §3:
// Schema, SchemaNodeType, SchemaNodeProperty) and the Validate stage itself
// (spec §4.5). The shape mirrors the Semantic Analyzer's: iterate the
// Document once, collect every violation, never stop at the first one.
package schema

import (
	"fmt"
	"sort"

	"github.com/hxlconf/hxl/internal/ast"
	"github.com/hxlconf/hxl/internal/datatype"
	"github.com/hxlconf/hxl/internal/hxlerr"
)

// SchemaNodeProperty describes one property a SchemaNodeType allows or
// requires.
type SchemaNodeProperty struct {
	Name      string
	DataType  datatype.DataType
	Structure datatype.Structure
	Required  bool
}

// SchemaNodeType describes one node type's allowed shape: the set of
// properties it may carry, keyed by name.
type SchemaNodeType struct {
	Name       string
	Properties map[string]SchemaNodeProperty
}

// Schema is the full set of node types a Document is validated against,
// keyed by type name.
type Schema struct {
	Types map[string]SchemaNodeType
}

// Validate runs the Schema Validator stage. A node whose type isn't declared
// in the schema is reported once (UNKNOWN_NODE_TYPE) and skipped entirely for
// its per-property checks, since there is no SchemaNodeType to check against.
func Validate(doc *ast.Document, s *Schema) hxlerr.List {
	var errs hxlerr.List

	for i := range doc.Nodes {
		n := &doc.Nodes[i]

		st, ok := s.Types[n.Type]
		if !ok {
			errs = append(errs, &hxlerr.Error{
				Code:    hxlerr.UnknownNodeType,
				Message: fmt.Sprintf("Node type not declared in schema: %s", n.Type),
			})
			continue
		}

		for j := range n.Properties {
			p := &n.Properties[j]

			sp, ok := st.Properties[p.Name]
			if !ok {
				errs = append(errs, &hxlerr.Error{
					Code:    hxlerr.UnknownProperty,
					Message: fmt.Sprintf("Node %s has an unknown property: %s", n.Name, p.Name),
				})
				continue
			}

			// A single-element array and a scalar both have len(Values) == 1,
			// and are indistinguishable at this point (spec §9's documented
			// ambiguity), so the check only fires in the unambiguous
			// direction: a Single-structured property that plainly holds
			// more than one value.
			if sp.Structure == datatype.Single && len(p.Values) != 1 {
				errs = append(errs, &hxlerr.Error{
					Code:    hxlerr.IllegalDataType,
					Message: fmt.Sprintf("Property not declared as array: %s", p.Name),
				})
			}
		}

		required := make([]string, 0, len(st.Properties))
		for _, sp := range st.Properties {
			if sp.Required {
				required = append(required, sp.Name)
			}
		}
		sort.Strings(required)

		for _, name := range required {
			if !n.HasProperty(name) {
				errs = append(errs, &hxlerr.Error{
					Code:    hxlerr.RequiredPropertyNotFound,
					Message: fmt.Sprintf("Node %s is missing required property: %s", n.Name, name),
				})
			}
		}
	}

	return errs
}
