package common

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RealZimboGuy/flowbuilder/internal/config"
	"github.com/RealZimboGuy/flowbuilder/internal/engine"
	"github.com/RealZimboGuy/flowbuilder/internal/models"
	"github.com/RealZimboGuy/flowbuilder/internal/repository"
	"github.com/RealZimboGuy/flowbuilder/internal/util"
	"github.com/RealZimboGuy/flowbuilder/internal/xjson"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/core"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/validation"
)

var portBase int32 = 9098

func nextPort() int {
	return int(atomic.AddInt32(&portBase, 1))
}

type Server struct {
	BaseURL string
	ApiKey  string
}

// StartServer boots flowbuilder.Start against the configured database and
// returns once it accepts connections. The server keeps running until the
// test binary exits.
func StartServer(t *testing.T) Server {
	t.Helper()
	port := nextPort()
	os.Setenv("HTTP_ADDR", "127.0.0.1:"+strconv.Itoa(port))
	os.Setenv(config.DRAFTS_DIR, t.TempDir())
	os.Setenv(config.AUTH_ENABLED, "true")

	db := OpenDatabase(t)
	users := engine.NewUserManager(repository.NewUserRepository(db, core.NewRealClock()), nil)
	key := "integration-key-" + strconv.Itoa(port)
	_, err := users.CreateUser(context.Background(), "integration-"+strconv.Itoa(port), "pw", key)
	require.NoError(t, err)

	go func() {
		if err := flowbuilder.Start(nil); err != nil {
			fmt.Fprintf(os.Stderr, "server stopped: %v\n", err)
		}
	}()

	base := "http://127.0.0.1:" + strconv.Itoa(port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/api/workflows")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusUnauthorized
	}, 10*time.Second, 100*time.Millisecond, "server did not start")
	return Server{BaseURL: base, ApiKey: key}
}

// RunAPISuite drives the HTTP API end to end: save, read, edit, export,
// autosave and delete.
func RunAPISuite(t *testing.T, srv Server) {
	call := func(method, path string, body any) *http.Response {
		t.Helper()
		var buf bytes.Buffer
		if body != nil {
			b, err := xjson.Marshal(body)
			require.NoError(t, err)
			buf.Write(b)
		}
		req, err := http.NewRequest(method, srv.BaseURL+path, &buf)
		require.NoError(t, err)
		req.Header.Set("X-API-Key", srv.ApiKey)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	g := StarterGraph()
	resp := call("PUT", "/api/workflows/e2e", models.SaveWorkflowRequest{Description: "end to end", Nodes: g.Nodes, Edges: g.Edges})
	result, err := util.DecodeJSONBodyResponse[validation.ValidationResult](resp)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, result.IsValid)

	resp = call("GET", "/api/workflows/e2e", nil)
	wf, err := util.DecodeJSONBodyResponse[models.WorkflowResponse](resp)
	require.NoError(t, err)
	assert.Equal(t, "end to end", wf.Description)
	assert.Len(t, wf.Nodes, 2)

	// removing End breaks the graph, so the stored copy must not change
	endID := g.Nodes[1].ID
	resp = call("DELETE", "/api/workflows/e2e/nodes/"+endID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = call("GET", "/api/workflows/e2e/export", nil)
	doc, err := util.DecodeJSONBodyResponse[map[string]any](resp)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, doc["nodes"], 2)

	resp = call("PUT", "/api/drafts/e2e", g)
	autosave, err := util.DecodeJSONBodyResponse[models.AutosaveResponse](resp)
	require.NoError(t, err)
	assert.Equal(t, "saved", string(autosave.Status))

	resp = call("GET", "/api/drafts/e2e", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call("DELETE", "/api/workflows/e2e", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call("GET", "/api/workflows/e2e", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
