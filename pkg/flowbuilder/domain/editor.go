package domain

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/google/uuid"

	"github.com/RealZimboGuy/flowbuilder/internal/xjson"
)

var ErrNodeNotFound = errors.New("node not found")

func newNodeID() string { return "node_" + uuid.New().String() }
func newEdgeID() string { return "edge_" + uuid.New().String() }

// DefaultData returns the payload a freshly dropped block of the given kind starts with.
func DefaultData(kind NodeKind) NodeData {
	switch kind {
	case KindStart:
		return StartData{Label: "Start"}
	case KindForm:
		return FormData{Label: "Form", CustomName: "Form", Fields: []Field{}}
	case KindConditional:
		return ConditionalData{
			Label:           "Conditional",
			CustomName:      "Conditional",
			FieldToEvaluate: "",
			Operator:        OpEquals,
			Value:           "",
			Routes: []Route{
				{ID: HandleTrue, Label: "True"},
				{ID: HandleFalse, Label: "False"},
			},
		}
	case KindApi:
		return ApiData{Label: "API Call", URL: "", Method: MethodGet}
	case KindEnd:
		return EndData{Label: "End"}
	default:
		return UnknownData{Label: string(kind), Raw: map[string]any{"label": string(kind)}}
	}
}

func NewNode(kind NodeKind, pos Position) Node {
	return Node{
		ID:       newNodeID(),
		Type:     kind,
		Position: pos,
		Data:     DefaultData(kind),
	}
}

func (g Graph) FindNode(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Connect returns a copy of g with a new edge from source to target. Edges
// leaving a conditional node are labelled after the route bound to handle.
func Connect(g Graph, source, target, handle string) Graph {
	label := ""
	if src, ok := g.FindNode(source); ok && handle != "" {
		if cond, ok := src.Data.(ConditionalData); ok {
			label = cond.RouteLabel(handle)
			if label == "" {
				label = handle
			}
		}
	}
	edges := make([]Edge, len(g.Edges), len(g.Edges)+1)
	copy(edges, g.Edges)
	edges = append(edges, Edge{
		ID:           newEdgeID(),
		Source:       source,
		Target:       target,
		SourceHandle: handle,
		Label:        label,
	})
	return Graph{Nodes: g.Nodes, Edges: edges}
}

// AddNode returns a copy of g with n appended.
func AddNode(g Graph, n Node) Graph {
	nodes := make([]Node, len(g.Nodes), len(g.Nodes)+1)
	copy(nodes, g.Nodes)
	return Graph{Nodes: append(nodes, n), Edges: g.Edges}
}

// RemoveNode returns a copy of g without the node and every edge touching it.
func RemoveNode(g Graph, id string) (Graph, error) {
	if _, ok := g.FindNode(id); !ok {
		return g, fmt.Errorf("remove %s: %w", id, ErrNodeNotFound)
	}
	nodes := make([]Node, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID != id {
			nodes = append(nodes, n)
		}
	}
	edges := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if e.Source != id && e.Target != id {
			edges = append(edges, e)
		}
	}
	return Graph{Nodes: nodes, Edges: edges}, nil
}

// UpdateNodeData shallow-merges patch over the payload of node id, patch
// values winning, and returns a copy of g holding the re-decoded payload.
func UpdateNodeData(g Graph, id string, patch map[string]any) (Graph, error) {
	idx := -1
	for i, n := range g.Nodes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return g, fmt.Errorf("update %s: %w", id, ErrNodeNotFound)
	}
	node := g.Nodes[idx]

	current := map[string]any{}
	if node.Data != nil {
		b, err := xjson.Marshal(node.Data)
		if err != nil {
			return g, fmt.Errorf("encode node %s: %w", id, err)
		}
		if err := xjson.Unmarshal(b, &current); err != nil {
			return g, fmt.Errorf("decode node %s: %w", id, err)
		}
	}
	if err := mergo.Merge(&current, patch, mergo.WithOverride); err != nil {
		return g, fmt.Errorf("merge node %s: %w", id, err)
	}
	merged, err := xjson.Marshal(current)
	if err != nil {
		return g, fmt.Errorf("encode node %s: %w", id, err)
	}
	data, err := DecodeNodeData(node.Type, merged)
	if err != nil {
		return g, err
	}

	nodes := make([]Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	node.Data = data
	nodes[idx] = node
	return Graph{Nodes: nodes, Edges: g.Edges}, nil
}
