package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/RealZimboGuy/flowbuilder/internal/drafts"
	"github.com/RealZimboGuy/flowbuilder/internal/models"
)

func newDraftsMux(t *testing.T) *http.ServeMux {
	t.Helper()
	c := NewDraftsController(newTestManager(t, newMockDefinitionRepo()), nil)
	mux := http.NewServeMux()
	c.RegisterRoutes(mux)
	return mux
}

func TestDraftsController_AutosaveRestoreClear(t *testing.T) {
	mux := newDraftsMux(t)

	w := serve(mux, "PUT", "/api/drafts/wf", validGraphJSON)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp models.AutosaveResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != drafts.StatusSaved || !resp.Result.IsValid {
		t.Errorf("Expected saved valid draft, got %+v", resp)
	}

	w = serve(mux, "GET", "/api/drafts/wf", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var draft drafts.Draft
	if err := json.NewDecoder(w.Body).Decode(&draft); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(draft.Nodes) != 3 || draft.Version != drafts.Version {
		t.Errorf("Unexpected draft %+v", draft)
	}

	w = serve(mux, "DELETE", "/api/drafts/wf", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", w.Code)
	}
	w = serve(mux, "GET", "/api/drafts/wf", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 after clear, got %d", w.Code)
	}
}

func TestDraftsController_AutosaveInvalidIsIdle(t *testing.T) {
	mux := newDraftsMux(t)

	w := serve(mux, "PUT", "/api/drafts/wf", `{"nodes":[{"id":"s","type":"start","position":{"x":0,"y":0},"data":{"label":"Start"}}],"edges":[]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp models.AutosaveResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != drafts.StatusIdle || resp.Result.IsValid {
		t.Errorf("Expected idle invalid result, got %+v", resp)
	}

	w = serve(mux, "GET", "/api/drafts/wf", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected no draft stored, got %d", w.Code)
	}
}

func TestDraftsController_BadJSON(t *testing.T) {
	mux := newDraftsMux(t)
	w := serve(mux, "PUT", "/api/drafts/wf", "nope")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
