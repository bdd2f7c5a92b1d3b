package controllers

import (
	"testing"

	"github.com/RealZimboGuy/flowbuilder/internal/config"
	"github.com/RealZimboGuy/flowbuilder/internal/domain"
	"github.com/RealZimboGuy/flowbuilder/internal/drafts"
	"github.com/RealZimboGuy/flowbuilder/internal/engine"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/core"
	fbdomain "github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
)

// MockUserRepo implements engine.UserRepo for testing
type MockUserRepo struct {
	FindByApiKeyFunc   func(apiKey string) (*domain.User, error)
	FindAllFunc        func() ([]domain.User, error)
	SaveFunc           func(user *domain.User) (int64, error)
	FindByUsernameFunc func(username string) (*domain.User, error)
}

func (m *MockUserRepo) FindByApiKey(apiKey string) (*domain.User, error) {
	if m.FindByApiKeyFunc != nil {
		return m.FindByApiKeyFunc(apiKey)
	}
	return nil, nil
}
func (m *MockUserRepo) FindAll() ([]domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc()
	}
	return nil, nil
}
func (m *MockUserRepo) Save(user *domain.User) (int64, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(user)
	}
	return 0, nil
}
func (m *MockUserRepo) FindByUsername(username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(username)
	}
	return nil, nil
}

// MockDefinitionRepo keeps definitions in memory, implementing engine.DefinitionRepo.
type MockDefinitionRepo struct {
	Defs    map[string]fbdomain.WorkflowDefinition
	SaveErr error
}

func newMockDefinitionRepo() *MockDefinitionRepo {
	return &MockDefinitionRepo{Defs: map[string]fbdomain.WorkflowDefinition{}}
}

func (m *MockDefinitionRepo) FindAll() ([]fbdomain.WorkflowDefinition, error) {
	defs := make([]fbdomain.WorkflowDefinition, 0, len(m.Defs))
	for _, d := range m.Defs {
		defs = append(defs, d)
	}
	return defs, nil
}
func (m *MockDefinitionRepo) FindByName(name string) (*fbdomain.WorkflowDefinition, error) {
	d, ok := m.Defs[name]
	if !ok {
		return nil, nil
	}
	return &d, nil
}
func (m *MockDefinitionRepo) Save(def *fbdomain.WorkflowDefinition) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Defs[def.Name] = *def
	return nil
}
func (m *MockDefinitionRepo) DeleteByName(name string) (bool, error) {
	_, ok := m.Defs[name]
	delete(m.Defs, name)
	return ok, nil
}

// newTestManager builds a manager over the in-memory repo and a throwaway
// badger draft store. Auth is switched off unless a test turns it back on.
func newTestManager(t *testing.T, repo engine.DefinitionRepo) *engine.WorkflowManager {
	t.Helper()
	t.Setenv(config.AUTH_ENABLED, "false")
	store, err := drafts.OpenInMemory(0, core.NewRealClock(), nil)
	if err != nil {
		t.Fatalf("open draft store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return engine.NewWorkflowManager(repo, store, core.NewRealClock())
}

const validGraphJSON = `{
	"nodes": [
		{"id": "start", "type": "start", "position": {"x": 0, "y": 0}, "data": {"label": "Start"}},
		{"id": "api", "type": "api", "position": {"x": 100, "y": 0}, "data": {"label": "API Call", "url": "https://example.com", "method": "GET"}},
		{"id": "end", "type": "end", "position": {"x": 200, "y": 0}, "data": {"label": "End"}}
	],
	"edges": [
		{"id": "e1", "source": "start", "target": "api"},
		{"id": "e2", "source": "api", "target": "end"}
	]
}`
