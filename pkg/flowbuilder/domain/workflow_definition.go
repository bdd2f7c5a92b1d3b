package domain

import "time"

// WorkflowDefinition is a saved, validated graph. Graph holds the JSON
// encoded {nodes, edges} snapshot.
type WorkflowDefinition struct {
	Name        string
	Description string
	Created     time.Time
	Updated     time.Time
	Graph       string
}

const ExportVersion = "1.0.0"

type ExportMetadata struct {
	Name    string    `json:"name"`
	Version string    `json:"version"`
	Created time.Time `json:"created"`
}

// ExportDocument is the portable form of a saved workflow.
type ExportDocument struct {
	Nodes    []Node         `json:"nodes"`
	Edges    []Edge         `json:"edges"`
	Metadata ExportMetadata `json:"metadata"`
}

func Export(g Graph, name string, created time.Time) ExportDocument {
	nodes := g.Nodes
	if nodes == nil {
		nodes = []Node{}
	}
	edges := g.Edges
	if edges == nil {
		edges = []Edge{}
	}
	return ExportDocument{
		Nodes: nodes,
		Edges: edges,
		Metadata: ExportMetadata{
			Name:    name,
			Version: ExportVersion,
			Created: created,
		},
	}
}
