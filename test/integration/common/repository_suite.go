package common

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RealZimboGuy/flowbuilder/internal/domain"
	"github.com/RealZimboGuy/flowbuilder/internal/repository"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/core"
	fbdomain "github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
)

var baseTime = time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

// OpenDatabase migrates and opens the database configured in the
// environment, closing it when the test ends.
func OpenDatabase(t *testing.T) *sql.DB {
	t.Helper()
	db, err := repository.OpenDatabase()
	require.NoError(t, err, "open database")
	t.Cleanup(func() { db.Close() })
	return db
}

// RunDefinitionRepositorySuite exercises WorkflowDefinitionRepository
// against a migrated database.
func RunDefinitionRepositorySuite(t *testing.T, db *sql.DB) {
	repo := repository.NewWorkflowDefinitionRepository(db)

	missing, err := repo.FindByName("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	graph, err := fbdomain.EncodeGraph(StarterGraph())
	require.NoError(t, err)

	def := &fbdomain.WorkflowDefinition{
		Name:        "onboarding",
		Description: "new hires",
		Created:     baseTime,
		Updated:     baseTime,
		Graph:       graph,
	}
	require.NoError(t, repo.Save(def))
	require.NoError(t, repo.Save(&fbdomain.WorkflowDefinition{
		Name: "alpha", Created: baseTime, Updated: baseTime, Graph: graph,
	}))

	got, err := repo.FindByName("onboarding")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new hires", got.Description)
	assert.True(t, baseTime.Equal(got.Created), "created %v", got.Created)
	assert.JSONEq(t, graph, got.Graph)

	// upsert keeps created
	later := baseTime.Add(time.Hour)
	require.NoError(t, repo.Save(&fbdomain.WorkflowDefinition{
		Name: "onboarding", Description: "v2", Created: later, Updated: later, Graph: graph,
	}))
	got, err = repo.FindByName("onboarding")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Description)
	assert.True(t, baseTime.Equal(got.Created), "created %v", got.Created)
	assert.True(t, later.Equal(got.Updated), "updated %v", got.Updated)

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "onboarding", all[1].Name)

	deleted, err := repo.DeleteByName("alpha")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = repo.DeleteByName("alpha")
	require.NoError(t, err)
	assert.False(t, deleted)
}

// RunUserRepositorySuite exercises UserRepository against a migrated database.
func RunUserRepositorySuite(t *testing.T, db *sql.DB) {
	repo := repository.NewUserRepository(db, core.FixedClock{At: baseTime})

	id, err := repo.Save(&domain.User{
		Username: "alice",
		Password: "hash",
		ApiKey:   sql.NullString{String: "alice-key", Valid: true},
		Enabled:  true,
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = repo.Save(&domain.User{Username: "bob", Password: "hash", Enabled: false})
	require.NoError(t, err)

	u, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, id, u.ID)
	assert.True(t, u.Enabled)
	assert.True(t, baseTime.Equal(u.Created), "created %v", u.Created)

	u, err = repo.FindByApiKey("alice-key")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Username)

	u, err = repo.FindByApiKey("nope")
	require.NoError(t, err)
	assert.Nil(t, u)

	users, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.False(t, users[1].Enabled)
	assert.False(t, users[1].ApiKey.Valid)
}

// StarterGraph is a minimal valid Start -> End workflow.
func StarterGraph() fbdomain.Graph {
	start := fbdomain.NewNode(fbdomain.KindStart, fbdomain.Position{})
	end := fbdomain.NewNode(fbdomain.KindEnd, fbdomain.Position{X: 200})
	return fbdomain.Connect(fbdomain.Graph{Nodes: []fbdomain.Node{start, end}}, start.ID, end.ID, "")
}
