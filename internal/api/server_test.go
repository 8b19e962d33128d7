package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/radhagarine/docgenius/pkg/doctypes"
	"github.com/radhagarine/docgenius/pkg/generator"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := doctypes.MustRegistry()
	svc, err := generator.New(reg)
	if err != nil {
		t.Fatalf("generator.New() error = %v", err)
	}
	return NewServer(svc, reg).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestListDocumentTypes(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodGet, "/api/document-types", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		DocumentTypes []struct {
			TypeID      string `json:"type_id"`
			BaseCredits int    `json:"base_credits"`
		} `json:"document_types"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.DocumentTypes) != 5 {
		t.Errorf("len(document_types) = %d, want 5", len(body.DocumentTypes))
	}
}

func TestTypeParametersUnknownTypeIs404(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodGet, "/api/document-types/memo/parameters", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGenerateDocument(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodPost, "/api/documents", map[string]any{
		"type_id": doctypes.TypeInvoice,
		"parameters": map[string]any{
			"business_name":    "Acme Corp",
			"business_address": "1 Main St",
			"business_phone":   "555-0100",
			"business_email":   "billing@acme.test",
			"client_name":      "Jordan Blake",
			"client_address":   "9 Elm Ave",
			"invoice_number":   "INV-001",
			"invoice_date":     "August 1, 2026",
			"due_date":         "August 31, 2026",
			"payment_terms":    "Net 30",
			"currency":         "USD",
			"line_items":       "Widget | 2 | 10.00",
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var doc struct {
		ID     string `json:"id"`
		TypeID string `json:"type_id"`
		HTML   string `json:"html"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if doc.ID == "" || doc.TypeID != doctypes.TypeInvoice {
		t.Errorf("unexpected document envelope: %+v", doc)
	}
	if !strings.Contains(doc.HTML, "INV-001") {
		t.Error("generated HTML missing invoice number")
	}
}

func TestGenerateDocumentMissingFieldsIs422(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodPost, "/api/documents", map[string]any{
		"type_id":    doctypes.TypeInvoice,
		"parameters": map[string]any{},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body: %s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "missing_required_fields") {
		t.Errorf("body missing error code: %s", rec.Body.String())
	}
}

func TestGenerateDocumentUnknownTypeIs404(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodPost, "/api/documents", map[string]any{
		"type_id":    "memo",
		"parameters": map[string]any{},
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGenerateDocumentSanitizesParameters(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodPost, "/api/documents", map[string]any{
		"type_id": doctypes.TypeInvoice,
		"parameters": map[string]any{
			"business_name":    "Acme <script>alert(1)</script> Corp",
			"business_address": "1 Main St",
			"business_phone":   "555-0100",
			"business_email":   "billing@acme.test",
			"client_name":      "Jordan Blake",
			"client_address":   "9 Elm Ave",
			"invoice_number":   "INV-002",
			"invoice_date":     "August 1, 2026",
			"due_date":         "August 31, 2026",
			"payment_terms":    "Net 30",
			"currency":         "USD",
			"line_items":       "Widget | 1 | 5.00",
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "<script>") {
		t.Error("script tag survived sanitization")
	}
}

func TestOpenAPIEndpoint(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodGet, "/openapi.json", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/api/documents") {
		t.Error("openapi document missing the generation path")
	}
}

func TestExportPDF(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodPost, "/api/exports/pdf", map[string]any{
		"html": "<h1>Title</h1><p>Body text.</p>",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("response is not a PDF stream")
	}
}

func TestExportDOCX(t *testing.T) {
	rec := doJSON(t, newTestRouter(t), http.MethodPost, "/api/exports/docx", map[string]any{
		"html":     "<h1>Title</h1><p>Body text.</p>",
		"filename": "title.docx",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "title.docx") {
		t.Errorf("Content-Disposition = %q, want filename", got)
	}
}
