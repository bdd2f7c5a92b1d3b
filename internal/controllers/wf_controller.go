package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/RealZimboGuy/flowbuilder/internal/engine"
	"github.com/RealZimboGuy/flowbuilder/internal/models"
	"github.com/RealZimboGuy/flowbuilder/internal/util"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/validation"
)

// WorkflowsController holds dependencies for saved workflow endpoints.
type WorkflowsController struct {
	AuthController
	WorkflowManager *engine.WorkflowManager
}

func NewWorkflowsController(workflowManager *engine.WorkflowManager, users *engine.UserManager) *WorkflowsController {
	return &WorkflowsController{
		WorkflowManager: workflowManager,
		AuthController:  AuthController{Users: users},
	}
}

func (c *WorkflowsController) handleListWorkflows(w http.ResponseWriter, r *http.Request) {
	defs, err := c.WorkflowManager.ListDefinitions(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list workflows", "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, "Failed to list workflows")
		return
	}
	summaries := make([]models.WorkflowSummary, 0, len(defs))
	for _, d := range defs {
		summaries = append(summaries, summaryOf(&d))
	}
	util.WriteJSONResponse(w, http.StatusOK, summaries)
}

func (c *WorkflowsController) handleGetWorkflow(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	def, g, err := c.WorkflowManager.GetDefinition(r.Context(), name)
	if err != nil {
		writeManagerError(w, r, err, "Failed to load workflow")
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, models.WorkflowResponse{
		WorkflowSummary: summaryOf(def),
		Nodes:           nonNilNodes(g.Nodes),
		Edges:           nonNilEdges(g.Edges),
	})
}

func (c *WorkflowsController) handleSaveWorkflow(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	req, err := util.DecodeJSONBody[models.SaveWorkflowRequest](r)
	if err != nil {
		slog.WarnContext(r.Context(), "Invalid workflow payload", "name", name, "error", err)
		util.WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	result, err := c.WorkflowManager.SaveDefinition(r.Context(), name, req.Description, req.Graph())
	c.writeEditResult(w, r, result, err)
}

func (c *WorkflowsController) handleDeleteWorkflow(w http.ResponseWriter, r *http.Request) {
	if err := c.WorkflowManager.DeleteDefinition(r.Context(), r.PathValue("name")); err != nil {
		writeManagerError(w, r, err, "Failed to delete workflow")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *WorkflowsController) handleExportWorkflow(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	doc, err := c.WorkflowManager.ExportDefinition(r.Context(), name)
	if err != nil {
		writeManagerError(w, r, err, "Failed to export workflow")
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.json"`)
	util.WriteJSONResponse(w, http.StatusOK, doc)
}

func (c *WorkflowsController) handleUpdateNode(w http.ResponseWriter, r *http.Request) {
	patch, err := util.DecodeJSONBody[map[string]any](r)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	result, err := c.WorkflowManager.UpdateNode(r.Context(), r.PathValue("name"), r.PathValue("nodeId"), patch)
	c.writeEditResult(w, r, result, err)
}

func (c *WorkflowsController) handleRemoveNode(w http.ResponseWriter, r *http.Request) {
	result, err := c.WorkflowManager.RemoveNode(r.Context(), r.PathValue("name"), r.PathValue("nodeId"))
	c.writeEditResult(w, r, result, err)
}

// writeEditResult answers a save or edit: 200 with the result when stored,
// 422 with the result when the graph is invalid.
func (c *WorkflowsController) writeEditResult(w http.ResponseWriter, r *http.Request, result validation.ValidationResult, err error) {
	switch {
	case err == nil:
		util.WriteJSONResponse(w, http.StatusOK, result)
	case errors.Is(err, engine.ErrInvalidWorkflow):
		util.WriteJSONResponse(w, http.StatusUnprocessableEntity, result)
	default:
		writeManagerError(w, r, err, "Failed to save workflow")
	}
}

func writeManagerError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, engine.ErrNotFound):
		util.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrInvalidPatch):
		util.WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(r.Context(), message, "error", err)
		util.WriteJSONError(w, http.StatusInternalServerError, message)
	}
}

func summaryOf(d *domain.WorkflowDefinition) models.WorkflowSummary {
	return models.WorkflowSummary{
		Name:        d.Name,
		Description: d.Description,
		Created:     d.Created,
		Updated:     d.Updated,
	}
}

func nonNilNodes(n []domain.Node) []domain.Node {
	if n == nil {
		return []domain.Node{}
	}
	return n
}

func nonNilEdges(e []domain.Edge) []domain.Edge {
	if e == nil {
		return []domain.Edge{}
	}
	return e
}
