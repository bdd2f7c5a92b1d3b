package domain

import (
	"fmt"

	"github.com/RealZimboGuy/flowbuilder/internal/xjson"
)

type NodeKind string

const (
	KindStart       NodeKind = "start"
	KindForm        NodeKind = "form"
	KindConditional NodeKind = "conditional"
	KindApi         NodeKind = "api"
	KindEnd         NodeKind = "end"
)

// Known reports whether k is one of the five built-in node kinds.
func (k NodeKind) Known() bool {
	switch k {
	case KindStart, KindForm, KindConditional, KindApi, KindEnd:
		return true
	}
	return false
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a single block on the workflow canvas. Data always holds the
// variant matching Type once the node has been decoded or built with NewNode.
type Node struct {
	ID       string   `json:"id"`
	Type     NodeKind `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

type Edge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	Label        string `json:"label,omitempty"`
}

// Graph is the nodes/edges snapshot the editor owns.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// DisplayName is the text used for a node in messages: custom name, then
// label, then the kind itself.
func DisplayName(n Node) string {
	var customName, label string
	switch d := n.Data.(type) {
	case FormData:
		customName, label = d.CustomName, d.Label
	case ConditionalData:
		customName, label = d.CustomName, d.Label
	case ApiData:
		customName, label = d.CustomName, d.Label
	case StartData:
		label = d.Label
	case EndData:
		label = d.Label
	case UnknownData:
		label = d.Label
	}
	if customName != "" {
		return customName
	}
	if label != "" {
		return label
	}
	return string(n.Type)
}

type nodeEnvelope struct {
	ID       string           `json:"id"`
	Type     NodeKind         `json:"type"`
	Position Position         `json:"position"`
	Data     xjson.RawMessage `json:"data"`
}

func (n *Node) UnmarshalJSON(b []byte) error {
	var env nodeEnvelope
	if err := xjson.Unmarshal(b, &env); err != nil {
		return err
	}
	data, err := DecodeNodeData(env.Type, env.Data)
	if err != nil {
		return fmt.Errorf("node %q: %w", env.ID, err)
	}
	n.ID = env.ID
	n.Type = env.Type
	n.Position = env.Position
	n.Data = data
	return nil
}

// DecodeNodeData decodes a raw payload into the variant for kind. An empty
// payload yields the variant's zero value.
func DecodeNodeData(kind NodeKind, raw []byte) (NodeData, error) {
	if len(raw) == 0 || string(raw) == "null" {
		raw = []byte("{}")
	}
	switch kind {
	case KindStart:
		var d StartData
		err := xjson.Unmarshal(raw, &d)
		return d, wrapDecode(kind, err)
	case KindEnd:
		var d EndData
		err := xjson.Unmarshal(raw, &d)
		return d, wrapDecode(kind, err)
	case KindForm:
		var d FormData
		err := xjson.Unmarshal(raw, &d)
		return d, wrapDecode(kind, err)
	case KindConditional:
		var d ConditionalData
		err := xjson.Unmarshal(raw, &d)
		return d, wrapDecode(kind, err)
	case KindApi:
		var d ApiData
		err := xjson.Unmarshal(raw, &d)
		return d, wrapDecode(kind, err)
	default:
		var fields map[string]any
		if err := xjson.Unmarshal(raw, &fields); err != nil {
			return nil, wrapDecode(kind, err)
		}
		label, _ := fields["label"].(string)
		return UnknownData{Label: label, Raw: fields}, nil
	}
}

func wrapDecode(kind NodeKind, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("decode %s payload: %w", kind, err)
}
