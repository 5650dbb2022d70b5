package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/prospot/prospot-api/internal/platform/auth"
	"github.com/prospot/prospot-api/internal/respond"
	usersvc "github.com/prospot/prospot-api/internal/service/user"
)

func newTestRouter(svc usersvc.Service) chi.Router {
	respond.Install()
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("UsersTest", "test"))
	api.UseMiddleware(auth.NewAuthMiddleware(api, &auth.MockVerifier{Account: auth.TestAccount()}))
	Register(api, svc, "")
	return router
}

func registerUser(t *testing.T, router chi.Router, email string) User {
	t.Helper()
	body := `{"name":"Ana Pérez","email":"` + email + `"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var u User
	if err := json.Unmarshal(resp.Body.Bytes(), &u); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	return u
}

func TestRegisterUserSuccess(t *testing.T) {
	router := newTestRouter(usersvc.NewMockUserService())

	u := registerUser(t, router, "ana@example.com")
	if u.ID == "" {
		t.Error("expected generated id")
	}
	if u.Role != "USER" {
		t.Errorf("expected default role USER, got %s", u.Role)
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	router := newTestRouter(usersvc.NewMockUserService())
	registerUser(t, router, "ana@example.com")

	body := `{"name":"Otra","email":"ana@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRegisterUserRejectsBadRole(t *testing.T) {
	router := newTestRouter(usersvc.NewMockUserService())

	body := `{"name":"Ana","email":"ana@example.com","role":"SUPERUSER"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for out-of-enum role, got %d", resp.Code)
	}
}

func TestContactAndFavoriteFlow(t *testing.T) {
	router := newTestRouter(usersvc.NewMockUserService())
	u := registerUser(t, router, "ana@example.com")

	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/users/"+u.ID+"/contacts/cap-1", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/users/"+u.ID+"/favorites/gc-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var got User
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(got.ContactHistory) != 1 {
		t.Errorf("expected deduplicated contact history, got %v", got.ContactHistory)
	}
	if len(got.Favorites) != 1 || got.Favorites[0] != "gc-1" {
		t.Errorf("expected favorite gc-1, got %v", got.Favorites)
	}
}

func TestReviewLifecycle(t *testing.T) {
	router := newTestRouter(usersvc.NewMockUserService())
	u := registerUser(t, router, "ana@example.com")

	req := httptest.NewRequest(http.MethodPost, "/users/"+u.ID+"/contacts/cap-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("contact: expected 200, got %d", resp.Code)
	}

	body := `{"userId":"` + u.ID + `","professionalId":"cap-1","rating":5,"comment":"Excelente"}`
	req = httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("review: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	// Second review for the same pair conflicts.
	req = httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/users/"+u.ID+"/pending-reviews", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("pending: expected 200, got %d", resp.Code)
	}
	var pending PendingReviewsData
	if err := json.Unmarshal(resp.Body.Bytes(), &pending); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if len(pending.ListingIDs) != 0 {
		t.Errorf("expected no pending reviews, got %v", pending.ListingIDs)
	}
}

func TestReviewRequiresContact(t *testing.T) {
	router := newTestRouter(usersvc.NewMockUserService())
	u := registerUser(t, router, "ana@example.com")

	body := `{"userId":"` + u.ID + `","professionalId":"cap-1","rating":5}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestReviewRatingValidatedAtEdge(t *testing.T) {
	router := newTestRouter(usersvc.NewMockUserService())

	body := `{"userId":"u","professionalId":"cap-1","rating":6}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for rating 6, got %d", resp.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	router := newTestRouter(usersvc.NewMockUserService())
	u := registerUser(t, router, "ana@example.com")

	req := httptest.NewRequest(http.MethodDelete, "/users/"+u.ID, nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.Code, resp.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/users/"+u.ID, nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
