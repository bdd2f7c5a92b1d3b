package validation

import "github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"

// ValidateWorkflow runs the graph checks once and the node checks for every
// node. Graph errors come first, then node errors in node order; a node error
// is tagged with the id of the node it came from.
func ValidateWorkflow(nodes []domain.Node, edges []domain.Edge) ValidationResult {
	errs := ValidateGraph(nodes, edges).Errors

	for _, n := range nodes {
		for _, e := range ValidateNode(n.Data).Errors {
			if e.NodeID == "" {
				e.NodeID = n.ID
			}
			errs = append(errs, e)
		}
	}

	return newResult(errs)
}

// Validate is ValidateWorkflow over a graph snapshot.
func Validate(g domain.Graph) ValidationResult {
	return ValidateWorkflow(g.Nodes, g.Edges)
}
