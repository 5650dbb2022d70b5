package ads

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
	adsvc "github.com/prospot/prospot-api/internal/service/ads"
)

func newTestRouter(svc adsvc.Service) chi.Router {
	respond.Install()
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("AdsTest", "test"))
	api.UseMiddleware(auth.NewAuthMiddleware(api, &auth.MockVerifier{Account: auth.TestAccount()}))
	Register(api, svc, "")
	return router
}

func TestListAdsReturnsInventory(t *testing.T) {
	router := newTestRouter(adsvc.NewMockAdService())

	req := httptest.NewRequest(http.MethodGet, "/ads", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data ListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if data.Total == 0 {
		t.Error("expected seeded ads")
	}
}

func TestListAdsPositionFilter(t *testing.T) {
	router := newTestRouter(adsvc.NewMockAdService())

	req := httptest.NewRequest(http.MethodGet, "/ads?position=feed", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var data ListData
	if err := json.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	for _, a := range data.Ads {
		if a.Position != "feed" {
			t.Errorf("ad %s has position %s", a.ID, a.Position)
		}
	}
}

func TestListAdsRejectsUnknownPosition(t *testing.T) {
	router := newTestRouter(adsvc.NewMockAdService())

	req := httptest.NewRequest(http.MethodGet, "/ads?position=popup", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCreateAdRoundTrip(t *testing.T) {
	router := newTestRouter(adsvc.NewMockAdService())

	body := `{"title":"Feria de servicios","advertiserName":"Municipalidad","position":"feed"}`
	req := httptest.NewRequest(http.MethodPost, "/ads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var ad Advertisement
	if err := json.Unmarshal(resp.Body.Bytes(), &ad); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if ad.ID == "" {
		t.Error("expected generated id")
	}

	req = httptest.NewRequest(http.MethodDelete, "/ads/"+ad.ID, nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestUpdateAdNotFound(t *testing.T) {
	router := newTestRouter(adsvc.NewMockAdService())

	body := `{"title":"Nueva"}`
	req := httptest.NewRequest(http.MethodPut, "/ads/no-such-ad", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", resp.Code, resp.Body.String())
	}
}
