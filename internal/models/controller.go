package models

import (
	"time"

	"github.com/RealZimboGuy/flowbuilder/internal/drafts"
	"github.com/RealZimboGuy/flowbuilder/internal/xjson"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/validation"
)

type ValidateNodeRequest struct {
	Type string           `json:"type"`
	Data xjson.RawMessage `json:"data"`
}

type SaveWorkflowRequest struct {
	Description string        `json:"description"`
	Nodes       []domain.Node `json:"nodes"`
	Edges       []domain.Edge `json:"edges"`
}

func (r SaveWorkflowRequest) Graph() domain.Graph {
	return domain.Graph{Nodes: r.Nodes, Edges: r.Edges}
}

type WorkflowSummary struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

type WorkflowResponse struct {
	WorkflowSummary
	Nodes []domain.Node `json:"nodes"`
	Edges []domain.Edge `json:"edges"`
}

type AutosaveResponse struct {
	Status drafts.Status               `json:"status"`
	Result validation.ValidationResult `json:"result"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ApiKey   string `json:"apiKey"`
}
