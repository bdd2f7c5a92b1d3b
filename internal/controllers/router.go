package controllers

import "net/http"

// RegisterRoutes wires the HTTP routes for this controller.
func (c *ValidationController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/validate", c.RequireAuth(c.handleValidateWorkflow))
	mux.HandleFunc("POST /api/validate/node", c.RequireAuth(c.handleValidateNode))
	mux.HandleFunc("GET /api/blocks/{kind}", c.RequireAuth(c.handleGetBlock))
}
func (c *WorkflowsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/workflows", c.RequireAuth(c.handleListWorkflows))
	mux.HandleFunc("GET /api/workflows/{name}", c.RequireAuth(c.handleGetWorkflow))
	mux.HandleFunc("PUT /api/workflows/{name}", c.RequireAuth(c.handleSaveWorkflow))
	mux.HandleFunc("DELETE /api/workflows/{name}", c.RequireAuth(c.handleDeleteWorkflow))
	mux.HandleFunc("GET /api/workflows/{name}/export", c.RequireAuth(c.handleExportWorkflow))
	mux.HandleFunc("PATCH /api/workflows/{name}/nodes/{nodeId}", c.RequireAuth(c.handleUpdateNode))
	mux.HandleFunc("DELETE /api/workflows/{name}/nodes/{nodeId}", c.RequireAuth(c.handleRemoveNode))
}
func (c *DraftsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("PUT /api/drafts/{name}", c.RequireAuth(c.handleAutosave))
	mux.HandleFunc("GET /api/drafts/{name}", c.RequireAuth(c.handleRestore))
	mux.HandleFunc("DELETE /api/drafts/{name}", c.RequireAuth(c.handleClear))
}
func (c *UsersController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users", c.RequireAuth(c.handleGetUsers))
	mux.HandleFunc("POST /api/users", c.RequireAuth(c.handleCreateUser))
}
