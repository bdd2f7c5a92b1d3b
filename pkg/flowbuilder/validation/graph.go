package validation

import (
	"fmt"

	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
)

// ValidateGraph checks the shape of the workflow: one Start, one End, every
// node wired in and out, both branches of each conditional connected, and
// every node reachable from Start. Payload contents are not looked at.
func ValidateGraph(nodes []domain.Node, edges []domain.Edge) ValidationResult {
	var errs []ValidationError

	var starts, ends []domain.Node
	for _, n := range nodes {
		switch n.Type {
		case domain.KindStart:
			starts = append(starts, n)
		case domain.KindEnd:
			ends = append(ends, n)
		}
	}

	if len(starts) != 1 {
		errs = append(errs, ValidationError{
			ID:      "workflow-start",
			Message: fmt.Sprintf("Workflow must have exactly one Start node (found %d)", len(starts)),
		})
	}
	if len(ends) != 1 {
		errs = append(errs, ValidationError{
			ID:      "workflow-end",
			Message: fmt.Sprintf("Workflow must have exactly one End node (found %d)", len(ends)),
		})
	}

	// A lone node is only held to the cardinality rules.
	if len(nodes) <= 1 {
		return newResult(errs)
	}

	hasIncoming := make(map[string]bool, len(edges))
	outgoing := make(map[string][]domain.Edge, len(edges))
	for _, e := range edges {
		hasIncoming[e.Target] = true
		outgoing[e.Source] = append(outgoing[e.Source], e)
	}

	for _, n := range nodes {
		name := domain.DisplayName(n)

		if n.Type != domain.KindStart && !hasIncoming[n.ID] {
			errs = append(errs, ValidationError{
				ID:      "connection-in-" + n.ID,
				Message: fmt.Sprintf("Node %q has no incoming connections", name),
				NodeID:  n.ID,
			})
		}
		if n.Type != domain.KindEnd && len(outgoing[n.ID]) == 0 {
			errs = append(errs, ValidationError{
				ID:      "connection-out-" + n.ID,
				Message: fmt.Sprintf("Node %q has no outgoing connections", name),
				NodeID:  n.ID,
			})
		}

		if n.Type == domain.KindConditional {
			var hasTrue, hasFalse bool
			for _, e := range outgoing[n.ID] {
				switch e.SourceHandle {
				case domain.HandleTrue:
					hasTrue = true
				case domain.HandleFalse:
					hasFalse = true
				}
			}
			if !hasTrue {
				errs = append(errs, ValidationError{
					ID:      "connection-true-" + n.ID,
					Message: fmt.Sprintf("Conditional node %q missing TRUE path connection", name),
					NodeID:  n.ID,
				})
			}
			if !hasFalse {
				errs = append(errs, ValidationError{
					ID:      "connection-false-" + n.ID,
					Message: fmt.Sprintf("Conditional node %q missing FALSE path connection", name),
					NodeID:  n.ID,
				})
			}
		}
	}

	if len(starts) == 1 {
		reachable := reachableFrom(starts[0].ID, outgoing)
		for _, n := range nodes {
			if !reachable[n.ID] {
				errs = append(errs, ValidationError{
					ID:      "unreachable-" + n.ID,
					Message: fmt.Sprintf("Node %q is not connected to the workflow (unreachable from Start)", domain.DisplayName(n)),
					NodeID:  n.ID,
				})
			}
		}
	}

	return newResult(errs)
}

// reachableFrom walks outgoing edges depth-first from start with an explicit
// stack. Each id is visited once, so cycles terminate. Targets that are not
// nodes are marked but lead nowhere.
func reachableFrom(start string, outgoing map[string][]domain.Edge) map[string]bool {
	visited := map[string]bool{}
	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		for _, e := range outgoing[id] {
			if !visited[e.Target] {
				stack = append(stack, e.Target)
			}
		}
	}
	return visited
}
