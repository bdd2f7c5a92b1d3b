package domain

import (
	"fmt"

	"github.com/RealZimboGuy/flowbuilder/internal/xjson"
)

func ParseGraph(b []byte) (Graph, error) {
	var g Graph
	if err := xjson.Unmarshal(b, &g); err != nil {
		return Graph{}, fmt.Errorf("parse graph: %w", err)
	}
	return g, nil
}

// EncodeGraph renders g the way definitions are stored. Nil slices are
// written as empty arrays.
func EncodeGraph(g Graph) (string, error) {
	if g.Nodes == nil {
		g.Nodes = []Node{}
	}
	if g.Edges == nil {
		g.Edges = []Edge{}
	}
	b, err := xjson.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("encode graph: %w", err)
	}
	return string(b), nil
}
