// Package transform implements the Transformer (spec §4.4): an infallible,
// in-place mutation of the Document that resolves inheritance. Its
// single-forward-pass shape mirrors the Semantic Analyzer's, and depends on
// the same guarantee that guarantee provides: a parent is always already
// present, earlier, in the Document by the time its child is processed.
package transform

import "github.com/hxlconf/hxl/internal/ast"

// Transform resolves every node's inheritance clause, appending each
// inherited property the child does not already declare. It never fails:
// the Semantic Analyzer has already guaranteed every inheritance target
// exists and was declared earlier (spec §4.3, §4.4).
func Transform(doc *ast.Document) {
	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		if n.Inheritance == nil {
			continue
		}

		parent, ok := doc.NodeByName(n.Inheritance.From)
		if !ok {
			// unreachable on a Document that has passed the Semantic
			// Analyzer; left as a no-op rather than a panic so Transform
			// stays infallible by construction.
			continue
		}

		for _, pp := range parent.Properties {
			if n.HasProperty(pp.Name) {
				continue
			}
			n.Properties = append(n.Properties, pp)
		}
	}
}
