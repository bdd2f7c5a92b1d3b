package engine

import (
	"context"

	"github.com/RealZimboGuy/flowbuilder/internal/domain"
	"github.com/RealZimboGuy/flowbuilder/internal/drafts"
	fbdomain "github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
)

// DefinitionRepo defines the interface for workflow definition persistence, matching repository.WorkflowDefinitionRepository.
type DefinitionRepo interface {
	FindAll() ([]fbdomain.WorkflowDefinition, error)
	FindByName(name string) (*fbdomain.WorkflowDefinition, error)
	Save(def *fbdomain.WorkflowDefinition) error
	DeleteByName(name string) (bool, error)
}

// UserRepo defines the interface for user persistence.
type UserRepo interface {
	FindByApiKey(apiKey string) (*domain.User, error)
	FindAll() ([]domain.User, error)
	Save(user *domain.User) (int64, error)
	FindByUsername(username string) (*domain.User, error)
}

// DraftStore defines the interface for autosaved drafts, matching drafts.BadgerStore.
type DraftStore interface {
	Save(ctx context.Context, name string, g fbdomain.Graph, valid bool) (drafts.Status, error)
	Restore(ctx context.Context, name string) (*drafts.Draft, error)
	Clear(ctx context.Context, name string) error
}
