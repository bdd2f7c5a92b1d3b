package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RealZimboGuy/flowbuilder/internal/drafts"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/core"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/validation"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidWorkflow = errors.New("workflow is invalid")
	ErrInvalidPatch    = errors.New("invalid node patch")
)

type WorkflowManager struct {
	DefinitionRepo DefinitionRepo
	drafts         DraftStore
	clock          core.Clock
	logger         *slog.Logger
}

func NewWorkflowManager(definitionRepo DefinitionRepo, draftStore DraftStore, clock core.Clock) *WorkflowManager {
	if clock == nil {
		clock = core.NewRealClock()
	}
	return &WorkflowManager{
		DefinitionRepo: definitionRepo,
		drafts:         draftStore,
		clock:          clock,
		logger:         slog.Default().With("component", "workflow-manager"),
	}
}

// Validate runs the full workflow validation for g.
func (wm *WorkflowManager) Validate(ctx context.Context, g domain.Graph) validation.ValidationResult {
	result := validation.Validate(g)
	wm.logger.DebugContext(ctx, "validated workflow",
		"nodes", len(g.Nodes), "edges", len(g.Edges), "valid", result.IsValid, "errors", len(result.Errors))
	return result
}

// SaveDefinition validates g and stores it under name. An invalid graph is
// not stored; the result is returned together with ErrInvalidWorkflow.
func (wm *WorkflowManager) SaveDefinition(ctx context.Context, name, description string, g domain.Graph) (validation.ValidationResult, error) {
	result := wm.Validate(ctx, g)
	if !result.IsValid {
		return result, ErrInvalidWorkflow
	}

	encoded, err := domain.EncodeGraph(g)
	if err != nil {
		return result, err
	}

	now := wm.clock.Now().UTC()
	def := &domain.WorkflowDefinition{
		Name:        name,
		Description: description,
		Created:     now,
		Updated:     now,
		Graph:       encoded,
	}
	existing, err := wm.DefinitionRepo.FindByName(name)
	if err != nil {
		return result, fmt.Errorf("load definition %s: %w", name, err)
	}
	if existing != nil {
		def.Created = existing.Created
	}

	if err := wm.DefinitionRepo.Save(def); err != nil {
		wm.logger.ErrorContext(ctx, "Failed to save workflow definition", "name", name, "error", err)
		return result, fmt.Errorf("save definition %s: %w", name, err)
	}
	wm.logger.InfoContext(ctx, "Saved workflow definition", "name", name, "nodes", len(g.Nodes), "edges", len(g.Edges))
	return result, nil
}

// GetDefinition returns the stored definition and its decoded graph.
func (wm *WorkflowManager) GetDefinition(ctx context.Context, name string) (*domain.WorkflowDefinition, domain.Graph, error) {
	def, err := wm.DefinitionRepo.FindByName(name)
	if err != nil {
		return nil, domain.Graph{}, fmt.Errorf("load definition %s: %w", name, err)
	}
	if def == nil {
		return nil, domain.Graph{}, fmt.Errorf("definition %s: %w", name, ErrNotFound)
	}
	g, err := domain.ParseGraph([]byte(def.Graph))
	if err != nil {
		wm.logger.ErrorContext(ctx, "Stored workflow graph does not decode", "name", name, "error", err)
		return nil, domain.Graph{}, err
	}
	return def, g, nil
}

// ListDefinitions exposes repository list for web/API layers.
func (wm *WorkflowManager) ListDefinitions(ctx context.Context) ([]domain.WorkflowDefinition, error) {
	return wm.DefinitionRepo.FindAll()
}

func (wm *WorkflowManager) DeleteDefinition(ctx context.Context, name string) error {
	deleted, err := wm.DefinitionRepo.DeleteByName(name)
	if err != nil {
		return fmt.Errorf("delete definition %s: %w", name, err)
	}
	if !deleted {
		return fmt.Errorf("definition %s: %w", name, ErrNotFound)
	}
	wm.logger.InfoContext(ctx, "Deleted workflow definition", "name", name)
	return nil
}

func (wm *WorkflowManager) ExportDefinition(ctx context.Context, name string) (domain.ExportDocument, error) {
	def, g, err := wm.GetDefinition(ctx, name)
	if err != nil {
		return domain.ExportDocument{}, err
	}
	return domain.Export(g, def.Name, def.Created), nil
}

// UpdateNode patches the payload of one node of a saved definition. The
// definition is only rewritten when the edited graph is still valid.
func (wm *WorkflowManager) UpdateNode(ctx context.Context, name, nodeID string, patch map[string]any) (validation.ValidationResult, error) {
	return wm.edit(ctx, name, func(g domain.Graph) (domain.Graph, error) {
		edited, err := domain.UpdateNodeData(g, nodeID, patch)
		if err != nil && !errors.Is(err, domain.ErrNodeNotFound) {
			return g, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
		}
		return edited, err
	})
}

// RemoveNode drops a node and its edges from a saved definition, under the
// same rule as UpdateNode.
func (wm *WorkflowManager) RemoveNode(ctx context.Context, name, nodeID string) (validation.ValidationResult, error) {
	return wm.edit(ctx, name, func(g domain.Graph) (domain.Graph, error) {
		return domain.RemoveNode(g, nodeID)
	})
}

func (wm *WorkflowManager) edit(ctx context.Context, name string, apply func(domain.Graph) (domain.Graph, error)) (validation.ValidationResult, error) {
	def, g, err := wm.GetDefinition(ctx, name)
	if err != nil {
		return validation.ValidationResult{}, err
	}
	edited, err := apply(g)
	if errors.Is(err, domain.ErrNodeNotFound) {
		return validation.ValidationResult{}, fmt.Errorf("%v: %w", err, ErrNotFound)
	}
	if err != nil {
		return validation.ValidationResult{}, err
	}
	return wm.SaveDefinition(ctx, def.Name, def.Description, edited)
}

// Autosave stores g as the draft for name when it validates.
func (wm *WorkflowManager) Autosave(ctx context.Context, name string, g domain.Graph) (drafts.Status, validation.ValidationResult, error) {
	result := wm.Validate(ctx, g)
	status, err := wm.drafts.Save(ctx, name, g, result.IsValid)
	return status, result, err
}

// RestoreDraft returns ErrNotFound when no draft is stored for name.
func (wm *WorkflowManager) RestoreDraft(ctx context.Context, name string) (*drafts.Draft, error) {
	draft, err := wm.drafts.Restore(ctx, name)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, fmt.Errorf("draft %s: %w", name, ErrNotFound)
	}
	return draft, nil
}

func (wm *WorkflowManager) ClearDraft(ctx context.Context, name string) error {
	return wm.drafts.Clear(ctx, name)
}
