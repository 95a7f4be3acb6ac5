// Package semantic implements the Semantic Analyzer (spec §4.3): a single
// forward pass over the Document that accumulates every violation rather
// than stopping at the first one, the way internal/tunascript's grammar
// analysis passes (e.g. FOLLOW-set computation) walk a structure once while
// collecting every finding instead of aborting on the first.
package semantic

import (
	"fmt"

	"github.com/hxlconf/hxl/internal/ast"
	"github.com/hxlconf/hxl/internal/datatype"
	"github.com/hxlconf/hxl/internal/hxlerr"
	"github.com/hxlconf/hxl/internal/util"
)

// Analyze runs the Semantic Analyzer stage. It never fails outright; it
// returns every violation found, in source order, or an empty list.
func Analyze(doc *ast.Document) hxlerr.List {
	var errs hxlerr.List
	seen := util.NewStringSet()

	for i := range doc.Nodes {
		n := &doc.Nodes[i]

		if seen.Has(n.Name) {
			errs = append(errs, &hxlerr.Error{
				Code:    hxlerr.NonUniqueNode,
				Message: fmt.Sprintf("Node name %q is not unique.", n.Name),
			})
		}

		seenProps := util.NewStringSet()
		for j := range n.Properties {
			p := &n.Properties[j]
			if seenProps.Has(p.Name) {
				errs = append(errs, &hxlerr.Error{
					Code:    hxlerr.NonUniqueProperty,
					Message: fmt.Sprintf("Property %q under %q is not unique.", p.Name, n.Name),
				})
				continue
			}
			seenProps.Add(p.Name)

			if p.DataType != datatype.NodeRef {
				continue
			}
			target := p.Values[0]
			if target == n.Name {
				errs = append(errs, &hxlerr.Error{
					Code:    hxlerr.IllegalReference,
					Message: fmt.Sprintf("%s:%s is referencing itself.", n.Name, p.Name),
				})
			} else if !seen.Has(target) {
				errs = append(errs, &hxlerr.Error{
					Code:    hxlerr.NodeReferenceNotFound,
					Message: fmt.Sprintf("Referenced node %q under %s:%s was not found.", target, n.Name, p.Name),
				})
			}
		}

		if n.Inheritance != nil {
			from := n.Inheritance.From
			if from == n.Name || !seen.Has(from) {
				errs = append(errs, &hxlerr.Error{
					Code:    hxlerr.IllegalInheritance,
					Message: fmt.Sprintf("Node %s attempts to inherit %s which does not exist.", n.Name, from),
				})
			}
		}

		seen.Add(n.Name)
	}

	return errs
}
