package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode_Defaults(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want NodeData
	}{
		{KindStart, StartData{Label: "Start"}},
		{KindEnd, EndData{Label: "End"}},
		{KindForm, FormData{Label: "Form", CustomName: "Form", Fields: []Field{}}},
		{KindApi, ApiData{Label: "API Call", Method: MethodGet}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			n := NewNode(tt.kind, Position{X: 10, Y: 20})
			assert.True(t, strings.HasPrefix(n.ID, "node_"))
			assert.Equal(t, tt.kind, n.Type)
			assert.Equal(t, tt.want, n.Data)
			assert.Equal(t, tt.kind, n.Data.Kind())
		})
	}

	cond := NewNode(KindConditional, Position{}).Data.(ConditionalData)
	assert.Equal(t, OpEquals, cond.Operator)
	assert.Equal(t, "True", cond.RouteLabel(HandleTrue))
	assert.Equal(t, "False", cond.RouteLabel(HandleFalse))

	unknown := NewNode("webhook", Position{})
	assert.Equal(t, UnknownData{Label: "webhook", Raw: map[string]any{"label": "webhook"}}, unknown.Data)
	assert.NotEqual(t, NewNode(KindStart, Position{}).ID, NewNode(KindStart, Position{}).ID)
}

func TestConnect_LabelsConditionalBranches(t *testing.T) {
	s := NewNode(KindStart, Position{})
	c := NewNode(KindConditional, Position{})
	e := NewNode(KindEnd, Position{})
	g := Graph{Nodes: []Node{s, c, e}}

	g2 := Connect(g, s.ID, c.ID, "")
	g2 = Connect(g2, c.ID, e.ID, HandleTrue)
	g2 = Connect(g2, c.ID, e.ID, "maybe")

	assert.Empty(t, g.Edges)
	require.Len(t, g2.Edges, 3)
	assert.Equal(t, "", g2.Edges[0].Label)
	assert.Equal(t, "True", g2.Edges[1].Label)
	assert.Equal(t, HandleTrue, g2.Edges[1].SourceHandle)
	assert.Equal(t, "maybe", g2.Edges[2].Label)
	assert.True(t, strings.HasPrefix(g2.Edges[0].ID, "edge_"))
}

func TestRemoveNode_DropsIncidentEdges(t *testing.T) {
	s := NewNode(KindStart, Position{})
	f := NewNode(KindForm, Position{})
	e := NewNode(KindEnd, Position{})
	g := Connect(Connect(Connect(Graph{Nodes: []Node{s, f, e}}, s.ID, f.ID, ""), f.ID, e.ID, ""), s.ID, e.ID, "")

	out, err := RemoveNode(g, f.ID)
	require.NoError(t, err)

	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Edges, 3)
	assert.Equal(t, []Node{s, e}, out.Nodes)
	require.Len(t, out.Edges, 1)
	assert.Equal(t, s.ID, out.Edges[0].Source)
	assert.Equal(t, e.ID, out.Edges[0].Target)

	_, err = RemoveNode(g, "missing")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestUpdateNodeData_MergesPatch(t *testing.T) {
	f := NewNode(KindForm, Position{})
	a := NewNode(KindApi, Position{})
	g := AddNode(AddNode(Graph{}, f), a)

	out, err := UpdateNodeData(g, a.ID, map[string]any{"url": "https://example.com", "method": "POST"})
	require.NoError(t, err)
	assert.Equal(t, ApiData{Label: "API Call", URL: "https://example.com", Method: MethodPost}, out.Nodes[1].Data)
	assert.Equal(t, ApiData{Label: "API Call", Method: MethodGet}, g.Nodes[1].Data)

	out, err = UpdateNodeData(out, f.ID, map[string]any{
		"customName": "Signup",
		"fields": []any{
			map[string]any{"id": "1", "name": "email", "label": "Email", "type": "string", "required": true},
		},
	})
	require.NoError(t, err)
	form := out.Nodes[0].Data.(FormData)
	assert.Equal(t, "Signup", form.CustomName)
	assert.Equal(t, "Form", form.Label)
	require.Len(t, form.Fields, 1)
	assert.Equal(t, Field{ID: "1", Name: "email", Label: "Email", Type: FieldString, Required: true}, form.Fields[0])

	_, err = UpdateNodeData(g, "missing", map[string]any{"label": "x"})
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestGraphCodec_RoundTrip(t *testing.T) {
	s := NewNode(KindStart, Position{X: 1, Y: 2})
	c := NewNode(KindConditional, Position{X: 3, Y: 4})
	w := Node{ID: "w", Type: "webhook", Data: UnknownData{Label: "Hook", Raw: map[string]any{"label": "Hook", "secret": "s"}}}
	g := Connect(Graph{Nodes: []Node{s, c, w}}, s.ID, c.ID, "")

	encoded, err := EncodeGraph(g)
	require.NoError(t, err)
	decoded, err := ParseGraph([]byte(encoded))
	require.NoError(t, err)

	assert.Equal(t, g.Edges, decoded.Edges)
	require.Len(t, decoded.Nodes, 3)
	assert.Equal(t, s, decoded.Nodes[0])
	assert.Equal(t, c, decoded.Nodes[1])
	hook := decoded.Nodes[2].Data.(UnknownData)
	assert.Equal(t, "Hook", hook.Label)
	assert.Equal(t, "s", hook.Raw["secret"])
	assert.Equal(t, "Hook", DisplayName(decoded.Nodes[2]))

	empty, err := EncodeGraph(Graph{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nodes":[],"edges":[]}`, empty)
}

func TestParseGraph_RejectsBadPayload(t *testing.T) {
	_, err := ParseGraph([]byte(`{"nodes":[{"id":"n","type":"api","data":{"url":5}}],"edges":[]}`))
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	doc := Export(Graph{}, "Onboarding", created)

	assert.Equal(t, ExportMetadata{Name: "Onboarding", Version: "1.0.0", Created: created}, doc.Metadata)
	assert.NotNil(t, doc.Nodes)
	assert.NotNil(t, doc.Edges)
}
