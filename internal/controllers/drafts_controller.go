package controllers

import (
	"log/slog"
	"net/http"

	"github.com/RealZimboGuy/flowbuilder/internal/engine"
	"github.com/RealZimboGuy/flowbuilder/internal/models"
	"github.com/RealZimboGuy/flowbuilder/internal/util"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
)

type DraftsController struct {
	AuthController
	WorkflowManager *engine.WorkflowManager
}

func NewDraftsController(workflowManager *engine.WorkflowManager, users *engine.UserManager) *DraftsController {
	return &DraftsController{
		WorkflowManager: workflowManager,
		AuthController:  AuthController{Users: users},
	}
}

func (c *DraftsController) handleAutosave(w http.ResponseWriter, r *http.Request) {
	g, err := util.DecodeJSONBody[domain.Graph](r)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	status, result, err := c.WorkflowManager.Autosave(r.Context(), r.PathValue("name"), g)
	if err != nil {
		slog.ErrorContext(r.Context(), "Autosave failed", "name", r.PathValue("name"), "error", err)
	}
	util.WriteJSONResponse(w, http.StatusOK, models.AutosaveResponse{Status: status, Result: result})
}

func (c *DraftsController) handleRestore(w http.ResponseWriter, r *http.Request) {
	draft, err := c.WorkflowManager.RestoreDraft(r.Context(), r.PathValue("name"))
	if err != nil {
		writeManagerError(w, r, err, "Failed to restore draft")
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, draft)
}

func (c *DraftsController) handleClear(w http.ResponseWriter, r *http.Request) {
	if err := c.WorkflowManager.ClearDraft(r.Context(), r.PathValue("name")); err != nil {
		writeManagerError(w, r, err, "Failed to clear draft")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
