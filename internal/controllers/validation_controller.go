package controllers

import (
	"log/slog"
	"net/http"

	"github.com/RealZimboGuy/flowbuilder/internal/engine"
	"github.com/RealZimboGuy/flowbuilder/internal/models"
	"github.com/RealZimboGuy/flowbuilder/internal/util"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/validation"
)

// ValidationController serves stateless validation and block templates.
type ValidationController struct {
	AuthController
	WorkflowManager *engine.WorkflowManager
}

func NewValidationController(workflowManager *engine.WorkflowManager, users *engine.UserManager) *ValidationController {
	return &ValidationController{
		WorkflowManager: workflowManager,
		AuthController:  AuthController{Users: users},
	}
}

func (c *ValidationController) handleValidateWorkflow(w http.ResponseWriter, r *http.Request) {
	g, err := util.DecodeJSONBody[domain.Graph](r)
	if err != nil {
		slog.WarnContext(r.Context(), "Invalid workflow payload", "error", err)
		util.WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, c.WorkflowManager.Validate(r.Context(), g))
}

func (c *ValidationController) handleValidateNode(w http.ResponseWriter, r *http.Request) {
	req, err := util.DecodeJSONBody[models.ValidateNodeRequest](r)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	result, err := validation.ValidateNodeKind(req.Type, req.Data)
	if err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, result)
}

// handleGetBlock returns a fresh node of the requested kind with its default payload.
func (c *ValidationController) handleGetBlock(w http.ResponseWriter, r *http.Request) {
	kind := domain.NodeKind(r.PathValue("kind"))
	if !kind.Known() {
		util.WriteJSONError(w, http.StatusNotFound, "unknown block type")
		return
	}
	util.WriteJSONResponse(w, http.StatusOK, domain.NewNode(kind, domain.Position{}))
}
