package domain

import "github.com/RealZimboGuy/flowbuilder/internal/xjson"

// NodeData is the kind-specific payload of a node. The set of variants is
// closed: StartData, EndData, FormData, ConditionalData, ApiData and
// UnknownData for kinds this build does not know about.
type NodeData interface {
	Kind() NodeKind
	nodeData()
}

type FieldType string

const (
	FieldString   FieldType = "string"
	FieldNumber   FieldType = "number"
	FieldDropdown FieldType = "dropdown"
	FieldCheckbox FieldType = "checkbox"
)

type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "not_equals"
	OpIsEmpty     Operator = "is_empty"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
	OpContains    Operator = "contains"
)

type HttpMethod string

const (
	MethodGet    HttpMethod = "GET"
	MethodPost   HttpMethod = "POST"
	MethodPut    HttpMethod = "PUT"
	MethodDelete HttpMethod = "DELETE"
)

const (
	HandleTrue  = "true"
	HandleFalse = "false"
)

type StartData struct {
	Label string `json:"label"`
}

type EndData struct {
	Label string `json:"label"`
}

type Field struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"` // dropdown only
}

type FormData struct {
	Label      string  `json:"label"`
	CustomName string  `json:"customName,omitempty"`
	Fields     []Field `json:"fields"`
}

type Route struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Condition string `json:"condition,omitempty"`
}

type ConditionalData struct {
	Label           string   `json:"label"`
	CustomName      string   `json:"customName,omitempty"`
	FieldToEvaluate string   `json:"fieldToEvaluate,omitempty"`
	Operator        Operator `json:"operator,omitempty"`
	Value           string   `json:"value,omitempty"`
	Routes          []Route  `json:"routes"`
}

// RouteLabel returns the label of the route bound to handle, or "" if none.
func (d ConditionalData) RouteLabel(handle string) string {
	for _, r := range d.Routes {
		if r.ID == handle {
			return r.Label
		}
	}
	return ""
}

type ApiData struct {
	Label      string     `json:"label"`
	CustomName string     `json:"customName,omitempty"`
	URL        string     `json:"url,omitempty"`
	Method     HttpMethod `json:"method,omitempty"`
}

// UnknownData carries the payload of a node kind with no registered variant
// so the graph survives a decode/encode round trip.
type UnknownData struct {
	Label string
	Raw   map[string]any
}

func (d UnknownData) MarshalJSON() ([]byte, error) {
	if d.Raw == nil {
		return xjson.Marshal(map[string]any{"label": d.Label})
	}
	return xjson.Marshal(d.Raw)
}

func (StartData) Kind() NodeKind       { return KindStart }
func (EndData) Kind() NodeKind         { return KindEnd }
func (FormData) Kind() NodeKind        { return KindForm }
func (ConditionalData) Kind() NodeKind { return KindConditional }
func (ApiData) Kind() NodeKind         { return KindApi }

// Kind of an unknown payload is not recoverable from the payload alone; the
// owning Node.Type carries it.
func (UnknownData) Kind() NodeKind { return "" }

func (StartData) nodeData()       {}
func (EndData) nodeData()         {}
func (FormData) nodeData()        {}
func (ConditionalData) nodeData() {}
func (ApiData) nodeData()         {}
func (UnknownData) nodeData()     {}
