package taskdocs_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
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

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func uploadFile(t *testing.T, router *gin.Engine, name string, content []byte, identity func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/task-documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	identity(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestTaskDocumentUploadAndText(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router

	resp := uploadFile(t, router, "tasks.txt", []byte("Process invoices\r\nReconcile accounts"), addGuestHeader)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		DocumentID  string  `json:"documentId"`
		FileName    string  `json:"fileName"`
		MimeType    string  `json:"mimeType"`
		SizeBytes   int64   `json:"sizeBytes"`
		ExtractedAt *string `json:"extractedAt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if created.DocumentID == "" {
		t.Fatalf("expected documentId, got empty")
	}
	if created.FileName != "tasks.txt" {
		t.Fatalf("expected fileName tasks.txt, got %s", created.FileName)
	}
	if created.ExtractedAt == nil {
		t.Fatalf("expected extractedAt to be set after upload")
	}

	reqText := httptest.NewRequest(http.MethodGet, "/api/v1/task-documents/"+created.DocumentID+"?text=1", nil)
	addGuestHeader(reqText)
	respText := httptest.NewRecorder()
	router.ServeHTTP(respText, reqText)
	if respText.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respText.Code, respText.Body.String())
	}

	var withText struct {
		DocumentID string `json:"documentId"`
		Text       string `json:"text"`
	}
	if err := json.NewDecoder(respText.Body).Decode(&withText); err != nil {
		t.Fatalf("decode text response: %v", err)
	}
	if withText.Text != "Process invoices\nReconcile accounts" {
		t.Fatalf("unexpected extracted text: %q", withText.Text)
	}
}

func TestTaskDocumentUploadRejectsUnsupported(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router

	png := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 64)...)
	resp := uploadFile(t, router, "diagram.png", png, addGuestHeader)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unsupported file, got %d: %s", resp.Code, resp.Body.String())
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

func TestTaskDocumentListRequiresLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := buildTestApp(t)
	router := app.Router

	req := httptest.NewRequest(http.MethodGet, "/api/v1/task-documents", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for guest list, got %d", resp.Code)
	}

	token, err := sharedauth.SignJWT(sharedauth.Claims{Sub: "google:doc-user"})
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	asUser := func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if resp := uploadFile(t, router, "plan.md", []byte("# Weekly reporting\nCollect KPIs"), asUser); resp.Code != http.StatusCreated {
		t.Fatalf("authed upload: expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/task-documents", nil)
	asUser(reqList)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200 for authed list, got %d", respList.Code)
	}

	var docs []struct {
		FileName string `json:"fileName"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&docs); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(docs) != 1 || docs[0].FileName != "plan.md" {
		t.Fatalf("expected one listed document plan.md, got %+v", docs)
	}
}
