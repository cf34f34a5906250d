package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"castindex/internal/domain/models"
	"castindex/internal/domain/services"
	rosterSvc "castindex/internal/domain/services/roster"
	"castindex/internal/httputil"
	"castindex/internal/kinds"
)

type stubOrganizer struct {
	lastRequest *rosterSvc.OrganizeRequest
	result      *rosterSvc.OrganizeResult
	err         error
}

func (s *stubOrganizer) Organize(ctx context.Context, req *rosterSvc.OrganizeRequest) (*rosterSvc.OrganizeResult, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubCatalog struct {
	options []rosterSvc.FolderOption
	err     error
}

func (s *stubCatalog) FolderOptions(ctx context.Context, projectID, kind string) ([]rosterSvc.FolderOption, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.options, nil
}

type recordingNotifier struct {
	severities []services.Severity
	messages   []string
}

func (n *recordingNotifier) Notify(ctx context.Context, severity services.Severity, message string) {
	n.severities = append(n.severities, severity)
	n.messages = append(n.messages, message)
}

func adminClaims() *models.Claims {
	return &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		Role:             "authenticated",
		AppMetadata:      map[string]interface{}{"roles": []interface{}{"admin"}},
	}
}

func memberClaims() *models.Claims {
	return &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-2"},
		Role:             "authenticated",
		AppMetadata:      map[string]interface{}{"roles": []interface{}{"member"}},
	}
}

func newTestHandler(organizer *stubOrganizer, catalog *stubCatalog, notifier *recordingNotifier) *OrganizeHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewOrganizeHandler(organizer, catalog, notifier, logger)
}

func organizeRequest(body string, claims *models.Claims) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/projects/p1/organize", strings.NewReader(body))
	r.SetPathValue("id", "p1")
	if claims != nil {
		r = httputil.WithClaims(r, claims)
	}
	return r
}

func TestOrganizeRequiresAdmin(t *testing.T) {
	tests := []struct {
		name   string
		claims *models.Claims
	}{
		{name: "no claims"},
		{name: "authenticated but not admin", claims: memberClaims()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			organizer := &stubOrganizer{}
			notifier := &recordingNotifier{}
			h := newTestHandler(organizer, &stubCatalog{}, notifier)

			w := httptest.NewRecorder()
			h.Organize(w, organizeRequest(`{}`, tt.claims))

			if w.Code != http.StatusForbidden {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
			}
			if organizer.lastRequest != nil {
				t.Errorf("organizer was called despite the permission gate")
			}
			// The denial itself is surfaced to the user as a warning.
			if len(notifier.severities) != 1 || notifier.severities[0] != services.SeverityWarning {
				t.Errorf("notifications = %v %v, want one warning", notifier.severities, notifier.messages)
			}

			var problem httputil.ProblemDetail
			if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
				t.Fatalf("response is not a problem document: %v", err)
			}
			if problem.Status != http.StatusForbidden {
				t.Errorf("problem.Status = %d, want 403", problem.Status)
			}
		})
	}
}

func TestOrganizeRun(t *testing.T) {
	organizer := &stubOrganizer{
		result: &rosterSvc.OrganizeResult{Moved: 3, Message: "moved 3 actors into letter folders (flat)"},
	}
	h := newTestHandler(organizer, &stubCatalog{}, &recordingNotifier{})

	w := httptest.NewRecorder()
	h.Organize(w, organizeRequest(`{"group_by_type":true}`, adminClaims()))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	if organizer.lastRequest == nil {
		t.Fatal("organizer was not called")
	}
	if organizer.lastRequest.ProjectID != "p1" {
		t.Errorf("ProjectID = %q, want path value p1", organizer.lastRequest.ProjectID)
	}
	if organizer.lastRequest.Kind != kinds.DefaultKind {
		t.Errorf("Kind = %q, want default %q", organizer.lastRequest.Kind, kinds.DefaultKind)
	}
	if !organizer.lastRequest.GroupByType {
		t.Errorf("GroupByType not decoded from body")
	}

	var result rosterSvc.OrganizeResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Moved != 3 {
		t.Errorf("Moved = %d, want 3", result.Moved)
	}
}

func TestOrganizeRejectsBadBody(t *testing.T) {
	organizer := &stubOrganizer{}
	h := newTestHandler(organizer, &stubCatalog{}, &recordingNotifier{})

	w := httptest.NewRecorder()
	h.Organize(w, organizeRequest(`{not json`, adminClaims()))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if organizer.lastRequest != nil {
		t.Errorf("organizer was called with an undecodable body")
	}
}

func TestFolderOptionsEndpoint(t *testing.T) {
	catalog := &stubCatalog{
		options: []rosterSvc.FolderOption{
			{Label: "All actors (2)", Direct: 2, WithSubfolders: 2},
		},
	}
	h := newTestHandler(&stubOrganizer{}, catalog, &recordingNotifier{})

	r := httptest.NewRequest(http.MethodGet, "/api/projects/p1/organize/folders", nil)
	r.SetPathValue("id", "p1")
	r = httputil.WithClaims(r, adminClaims())

	w := httptest.NewRecorder()
	h.FolderOptions(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var options []rosterSvc.FolderOption
	if err := json.Unmarshal(w.Body.Bytes(), &options); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(options) != 1 || options[0].Label != "All actors (2)" {
		t.Errorf("options = %+v", options)
	}
}

func TestHealthCheck(t *testing.T) {
	h := newTestHandler(&stubOrganizer{}, &stubCatalog{}, &recordingNotifier{})

	w := httptest.NewRecorder()
	h.HealthCheck(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}
