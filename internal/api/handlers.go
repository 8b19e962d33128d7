package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radhagarine/docgenius/pkg/export"
	"github.com/radhagarine/docgenius/pkg/params"
	"github.com/radhagarine/docgenius/pkg/registry"
)

// userIDHeader carries the opaque user identifier issued by the auth
// collaborator; it keys profile lookups for industry customization.
const userIDHeader = "X-User-ID"

type typeSummary struct {
	TypeID      string `json:"type_id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	BaseCredits int    `json:"base_credits"`
}

func (s *Server) handleListTypes(c *gin.Context) {
	templates := s.service.DocumentTypes()
	out := make([]typeSummary, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, typeSummary{
			TypeID:      tpl.TypeID,
			DisplayName: tpl.DisplayName,
			Description: tpl.Description,
			BaseCredits: tpl.BaseCredits,
		})
	}
	c.JSON(http.StatusOK, gin.H{"document_types": out})
}

func (s *Server) handleTypeParameters(c *gin.Context) {
	sch, err := s.service.DocumentParameters(c.Param("type"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sch)
}

type generateRequest struct {
	TypeID     string         `json:"type_id" binding:"required"`
	Parameters map[string]any `json:"parameters" binding:"required"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid_request", err.Error(), nil))
		return
	}

	userID := c.GetHeader(userIDHeader)
	doc, err := s.service.GenerateDocument(c.Request.Context(), req.TypeID, sanitizeParams(req.Parameters), userID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

type exportRequest struct {
	HTML     string `json:"html" binding:"required"`
	Filename string `json:"filename"`
}

func (s *Server) handleExportPDF(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid_request", err.Error(), nil))
		return
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, req.HTML); err != nil {
		s.renderError(c, err)
		return
	}
	c.Header("Content-Disposition", attachment(req.Filename, "document.pdf"))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Server) handleExportDOCX(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid_request", err.Error(), nil))
		return
	}

	var buf bytes.Buffer
	if err := export.WriteDOCX(&buf, req.HTML); err != nil {
		s.renderError(c, err)
		return
	}
	c.Header("Content-Disposition", attachment(req.Filename, "document.docx"))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", buf.Bytes())
}

func attachment(filename, fallback string) string {
	if filename == "" {
		filename = fallback
	}
	return fmt.Sprintf("attachment; filename=%q", filename)
}

func errorBody(code, message string, details any) gin.H {
	body := gin.H{"code": code, "message": message}
	if details != nil {
		body["details"] = details
	}
	return gin.H{"error": body}
}

// renderError maps domain errors onto HTTP statuses: unknown document types
// are 404, parameter problems are 422, everything else is 500.
func (s *Server) renderError(c *gin.Context, err error) {
	var (
		unsupported *registry.UnsupportedTypeError
		missing     *params.MissingFieldsError
		invalid     *params.InvalidValueError
	)
	switch {
	case errors.As(err, &unsupported):
		c.JSON(http.StatusNotFound, errorBody("unsupported_document_type", err.Error(), gin.H{"type_id": unsupported.TypeID}))
	case errors.As(err, &missing):
		c.JSON(http.StatusUnprocessableEntity, errorBody("missing_required_fields", err.Error(), gin.H{"labels": missing.Labels}))
	case errors.As(err, &invalid):
		c.JSON(http.StatusUnprocessableEntity, errorBody("invalid_field_value", err.Error(), gin.H{"field_id": invalid.FieldID}))
	default:
		s.logger.Error("request failed", "err", err)
		c.JSON(http.StatusInternalServerError, errorBody("internal_error", "internal error", nil))
	}
}
