package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/domain"
	"github.com/RealZimboGuy/flowbuilder/pkg/flowbuilder/validation"
)

func newValidationMux(t *testing.T) *http.ServeMux {
	t.Helper()
	c := NewValidationController(newTestManager(t, newMockDefinitionRepo()), nil)
	mux := http.NewServeMux()
	c.RegisterRoutes(mux)
	return mux
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) validation.ValidationResult {
	t.Helper()
	var result validation.ValidationResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return result
}

func TestValidationController_ValidateWorkflow(t *testing.T) {
	mux := newValidationMux(t)

	req := httptest.NewRequest("POST", "/api/validate", strings.NewReader(validGraphJSON))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	result := decodeResult(t, w)
	if !result.IsValid || len(result.Errors) != 0 {
		t.Errorf("Expected valid workflow, got %+v", result)
	}
}

func TestValidationController_ValidateWorkflow_Invalid(t *testing.T) {
	mux := newValidationMux(t)

	body := `{"nodes":[{"id":"a","type":"end","position":{"x":0,"y":0},"data":{"label":"End"}}],"edges":[]}`
	req := httptest.NewRequest("POST", "/api/validate", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	result := decodeResult(t, w)
	if result.IsValid {
		t.Errorf("Expected invalid workflow")
	}
	if len(result.Errors) == 0 || result.Errors[0].ID != "workflow-start" {
		t.Errorf("Expected workflow-start error first, got %+v", result.Errors)
	}
}

func TestValidationController_ValidateWorkflow_BadJSON(t *testing.T) {
	mux := newValidationMux(t)

	req := httptest.NewRequest("POST", "/api/validate", strings.NewReader("{nodes"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestValidationController_ValidateNode(t *testing.T) {
	mux := newValidationMux(t)

	body := `{"type":"form","data":{"customName":"ab","fields":[{"id":"f1","name":"x","label":"","type":"string"}]}}`
	req := httptest.NewRequest("POST", "/api/validate/node", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	result := decodeResult(t, w)
	if result.IsValid {
		t.Fatalf("Expected invalid form")
	}
	want := []string{"customName", "field-name-f1", "field-label-f1"}
	got := result.IDs()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected ids %v, got %v", want, got)
	}
}

func TestValidationController_ValidateNode_BadPayload(t *testing.T) {
	mux := newValidationMux(t)

	body := `{"type":"api","data":{"url":42}}`
	req := httptest.NewRequest("POST", "/api/validate/node", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestValidationController_GetBlock(t *testing.T) {
	mux := newValidationMux(t)

	req := httptest.NewRequest("GET", "/api/blocks/conditional", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var node domain.Node
	if err := json.NewDecoder(w.Body).Decode(&node); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	data, ok := node.Data.(domain.ConditionalData)
	if !ok {
		t.Fatalf("Expected conditional payload, got %T", node.Data)
	}
	if data.Operator != domain.OpEquals || len(data.Routes) != 2 {
		t.Errorf("Expected default conditional payload, got %+v", data)
	}
	if !strings.HasPrefix(node.ID, "node_") {
		t.Errorf("Expected generated node id, got %q", node.ID)
	}

	req = httptest.NewRequest("GET", "/api/blocks/webhook", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown block, got %d", w.Code)
	}
}
