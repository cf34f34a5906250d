package handler

import (
	"log/slog"
	"net/http"

	"castindex/internal/domain/services"
	rosterSvc "castindex/internal/domain/services/roster"
	"castindex/internal/httputil"
	"castindex/internal/kinds"
)

// OrganizeHandler handles the organize HTTP surface: the folder choice list
// consumed by the configuration dialog and the reconciliation run itself.
type OrganizeHandler struct {
	organizer rosterSvc.OrganizerService
	catalog   rosterSvc.CatalogService
	notifier  services.Notifier
	logger    *slog.Logger
}

// NewOrganizeHandler creates a new organize handler
func NewOrganizeHandler(
	organizer rosterSvc.OrganizerService,
	catalog rosterSvc.CatalogService,
	notifier services.Notifier,
	logger *slog.Logger,
) *OrganizeHandler {
	return &OrganizeHandler{
		organizer: organizer,
		catalog:   catalog,
		notifier:  notifier,
		logger:    logger,
	}
}

// requireAdmin gates both organize endpoints before any scope or
// reconciliation logic runs. A denial is surfaced as a warning notification
// and the request stops here.
func (h *OrganizeHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims := httputil.GetClaims(r)
	if claims == nil || !claims.IsAdmin() {
		h.notifier.Notify(r.Context(), services.SeverityWarning, "only administrators may reorganize the actor directory")
		httputil.RespondError(w, http.StatusForbidden, "administrator role required")
		return false
	}
	return true
}

// FolderOptions returns the folder choice list for a project
// GET /api/projects/{id}/organize/folders?kind=actor
func (h *OrganizeHandler) FolderOptions(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	projectID := r.PathValue("id")
	if projectID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = kinds.DefaultKind
	}

	options, err := h.catalog.FolderOptions(r.Context(), projectID, kind)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, options)
}

// Organize runs one reconciliation for a project
// POST /api/projects/{id}/organize
func (h *OrganizeHandler) Organize(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	projectID := r.PathValue("id")
	if projectID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	var req rosterSvc.OrganizeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ProjectID = projectID
	if req.Kind == "" {
		req.Kind = kinds.DefaultKind
	}

	h.logger.Info("organize requested",
		"project_id", projectID,
		"kind", req.Kind,
		"user_id", httputil.GetUserID(r),
		"group_by_type", req.GroupByType,
		"create_all_letters", req.CreateAllLetters,
	)

	result, err := h.organizer.Organize(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// HealthCheck reports service liveness
// GET /health
func (h *OrganizeHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
