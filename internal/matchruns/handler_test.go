package matchruns_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"prom8eus-backend/internal/bootstrap"
	sharedauth "prom8eus-backend/internal/shared/auth"
	"prom8eus-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
		MatchMinScore:   -1,
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func seedCatalog(t *testing.T, router *gin.Engine) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/catalog/seed", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("seed catalog: expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func matchRequestBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	payload := map[string]any{
		"subtasks": []map[string]any{
			{
				"id":                  "st-1",
				"name":                "Capture supplier invoices from email",
				"automationPotential": 85,
				"keywords":            []string{"invoice", "ocr", "accounting"},
				"category":            "Finance & Accounting",
			},
			{
				"id":                  "st-2",
				"name":                "Route inbound support email by urgency",
				"automationPotential": 70,
				"keywords":            []string{"email", "triage"},
				"category":            "Customer Support",
			},
		},
	}
	body := &bytes.Buffer{}
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		t.Fatalf("encode match request: %v", err)
	}
	return body
}

type matchResponse struct {
	MatchID    string  `json:"matchId"`
	CacheHit   bool    `json:"cacheHit"`
	DurationMs float64 `json:"durationMs"`
	Result     struct {
		Stats struct {
			SubtaskCount int `json:"subtaskCount"`
			MatchedCount int `json:"matchedCount"`
		} `json:"stats"`
	} `json:"result"`
}

func TestMatchRunAndFetch(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router
	seedCatalog(t, router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", matchRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var first matchResponse
	if err := json.NewDecoder(resp.Body).Decode(&first); err != nil {
		t.Fatalf("decode match response: %v", err)
	}
	if first.MatchID == "" {
		t.Fatalf("expected matchId, got empty")
	}
	if first.CacheHit {
		t.Fatalf("first run must not be a cache hit")
	}
	if first.Result.Stats.SubtaskCount != 2 {
		t.Fatalf("expected 2 subtasks in stats, got %d", first.Result.Stats.SubtaskCount)
	}
	if first.Result.Stats.MatchedCount == 0 {
		t.Fatalf("expected matches against the seed catalog, got none")
	}

	// An identical request is served from the cache but still recorded.
	req2 := httptest.NewRequest(http.MethodPost, "/api/v1/match", matchRequestBody(t))
	req2.Header.Set("Content-Type", "application/json")
	addGuestHeader(req2)
	resp2 := httptest.NewRecorder()
	router.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Fatalf("expected status 200 on repeat, got %d", resp2.Code)
	}
	var second matchResponse
	if err := json.NewDecoder(resp2.Body).Decode(&second); err != nil {
		t.Fatalf("decode repeat response: %v", err)
	}
	if !second.CacheHit {
		t.Fatalf("expected cache hit on identical request")
	}
	if second.MatchID == first.MatchID {
		t.Fatalf("cache hits must still get their own run id")
	}

	// The owner can fetch the stored run.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/matches/"+first.MatchID, nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200 fetching own run, got %d", respGet.Code)
	}

	// Another identity gets a 404, not someone else's run.
	reqOther := httptest.NewRequest(http.MethodGet, "/api/v1/matches/"+first.MatchID, nil)
	reqOther.Header.Set("X-Guest-Id", "other-guest")
	respOther := httptest.NewRecorder()
	router.ServeHTTP(respOther, reqOther)
	if respOther.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign run, got %d", respOther.Code)
	}
}

func TestMatchRejectsEmptySubtasks(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router

	body := bytes.NewBufferString(`{"subtasks":[]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", body)
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "validation_error" {
		t.Fatalf("expected code validation_error, got %s", errResp.Error.Code)
	}
}

func TestMatchUnknownSolutionIDs(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router
	seedCatalog(t, router)

	body := bytes.NewBufferString(`{
		"subtasks":[{"id":"st-1","name":"Capture supplier invoices","automationPotential":85}],
		"solutionIds":["does-not-exist"]
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", body)
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown pool, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestMatchHistoryRequiresLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := buildTestApp(t)
	router := app.Router

	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for guest history, got %d", resp.Code)
	}

	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "login_required" {
		t.Fatalf("expected code login_required, got %s", errResp.Error.Code)
	}

	token, err := sharedauth.SignJWT(sharedauth.Claims{Sub: "google:hist-user"})
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	reqAuthed := httptest.NewRequest(http.MethodGet, "/api/v1/matches", nil)
	reqAuthed.Header.Set("Authorization", "Bearer "+token)
	respAuthed := httptest.NewRecorder()
	router.ServeHTTP(respAuthed, reqAuthed)
	if respAuthed.Code != http.StatusOK {
		t.Fatalf("expected status 200 for authed history, got %d: %s", respAuthed.Code, respAuthed.Body.String())
	}

	var runs []map[string]any
	if err := json.NewDecoder(respAuthed.Body).Decode(&runs); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty history for fresh user, got %d entries", len(runs))
	}
}

func TestMatchQuotaLimit(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router
	seedCatalog(t, router)

	// The Starter plan allows 10 runs per window; cache hits count too.
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/match", matchRequestBody(t))
		req.Header.Set("Content-Type", "application/json")
		addGuestHeader(req)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("run %d: expected status 200, got %d: %s", i+1, resp.Code, resp.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", matchRequestBody(t))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 after limit, got %d", resp.Code)
	}

	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "limit_reached" {
		t.Fatalf("expected code limit_reached, got %s", errResp.Error.Code)
	}
}
