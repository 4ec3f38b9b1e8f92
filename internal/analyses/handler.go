package analyses

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/extract"
	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/server/respond"
	"resume-insights/resume/model"
)

const defaultMaxBodyBytes = 10 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc          *Service
	HistoryLimit int
	MaxBodyBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, historyLimit int, maxBodyBytes int64) *Handler {
	if historyLimit <= 0 {
		historyLimit = 20
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{Svc: svc, HistoryLimit: historyLimit, MaxBodyBytes: maxBodyBytes}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/score", h.score)
	rg.POST("/analyses", h.createAnalysis)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.POST("/text/analyze", h.analyzeText)
}

func (h *Handler) score(c *gin.Context) {
	doc, ok := h.decodeDocument(c)
	if !ok {
		return
	}
	respond.OK(c, h.Svc.Score(doc))
}

func (h *Handler) createAnalysis(c *gin.Context) {
	doc, ok := h.decodeDocument(c)
	if !ok {
		return
	}

	analysis, cached, err := h.Svc.Analyze(c.Request.Context(), middleware.UserIDFromContext(c), doc)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to store analysis", nil)
		return
	}
	c.Set("analysisId", analysis.ID)
	c.Set("cached", cached)

	respond.JSON(c, http.StatusCreated, gin.H{
		"analysisId": analysis.ID,
		"cached":     cached,
		"createdAt":  analysis.CreatedAt,
		"report":     analysis.Report,
	})
}

func (h *Handler) getAnalysis(c *gin.Context) {
	analysisID := c.Param("id")
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "analysis id is required", nil)
		return
	}

	analysis, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to fetch analysis", nil)
		}
		return
	}
	c.Set("analysisId", analysis.ID)
	respond.OK(c, analysis)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	limit := h.HistoryLimit
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	analyses, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to list analyses", nil)
		return
	}

	items := make([]Summary, 0, len(analyses))
	for _, a := range analyses {
		items = append(items, a.Summarize())
	}
	respond.OK(c, gin.H{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

type textRequest struct {
	Text string `json:"text"`
}

func (h *Handler) analyzeText(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		h.analyzeUpload(c)
	case "application/json":
		var req textRequest
		if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
			if isTooLarge(err) {
				h.tooLarge(c)
				return
			}
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON body", nil)
			return
		}
		report, err := h.Svc.AnalyzeText(c.Request.Context(), req.Text)
		if err != nil {
			h.textError(c, err)
			return
		}
		respond.OK(c, report)
	default:
		respond.Error(c, http.StatusUnsupportedMediaType, ErrorCodeUnsupported, "expected multipart/form-data or application/json", nil)
	}
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			h.tooLarge(c)
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file is required", []FieldError{{Field: "file", Issue: "missing"}})
		return
	}
	if fileHeader.Size > h.MaxBodyBytes {
		h.tooLarge(c)
		return
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "failed to read file", nil)
		return
	}

	report, err := h.Svc.AnalyzeFile(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		h.textError(c, err)
		return
	}
	respond.OK(c, report)
}

func (h *Handler) textError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extract.ErrUnsupported):
		respond.Error(c, http.StatusUnsupportedMediaType, ErrorCodeUnsupported, "file type is not supported", nil)
	case errors.Is(err, ErrEmptyText):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "no text to analyze", []FieldError{{Field: "text", Issue: "empty"}})
	default:
		respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "could not read text from file", nil)
	}
}

func (h *Handler) tooLarge(c *gin.Context) {
	respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, "request body too large", gin.H{"maxBytes": h.MaxBodyBytes})
}

func (h *Handler) decodeDocument(c *gin.Context) (doc model.ResumeDocument, ok bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodyBytes))
	if err != nil {
		if isTooLarge(err) {
			h.tooLarge(c)
			return doc, false
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "failed to read body", nil)
		return doc, false
	}

	doc, err = DecodeDocument(body)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume document is invalid", verr.Fields)
			return doc, false
		}
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to validate resume", nil)
		return doc, false
	}
	return doc, true
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
