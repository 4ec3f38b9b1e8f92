package analyses

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insights/internal/cache"
	"resume-insights/internal/shared/server/middleware"
)

func setupRouter(t *testing.T, maxBody int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := newTestService(NewMemoryRepo(), cache.NewMemory(8))
	r := gin.New()
	r.Use(middleware.Identity())
	NewHandler(svc, 2, maxBody).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func docBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(sampleDocument())
	require.NoError(t, err)
	return body
}

func do(r http.Handler, method, path, user string, body []byte, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if user != "" {
		req.Header.Set("X-User-Id", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestScoreReturnsReport(t *testing.T) {
	r := setupRouter(t, 0)
	w := do(r, http.MethodPost, "/api/v1/score", "", docBody(t), "application/json")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	scores, ok := body["compositeScores"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, scores, "overall")
	assert.Contains(t, body, "sectionReports")
}

func TestScoreRejectsInvalidDocument(t *testing.T) {
	r := setupRouter(t, 0)
	w := do(r, http.MethodPost, "/api/v1/score", "", []byte(`{"skills": "Go"}`), "application/json")

	require.Equal(t, http.StatusBadRequest, w.Code)
	errBody := decode(t, w)["error"].(map[string]any)
	assert.Equal(t, ErrorCodeValidation, errBody["code"])
	details := errBody["details"].([]any)
	require.NotEmpty(t, details)
	assert.Equal(t, "skills", details[0].(map[string]any)["field"])
}

func TestScoreRejectsOversizedBody(t *testing.T) {
	r := setupRouter(t, 64)
	w := do(r, http.MethodPost, "/api/v1/score", "", docBody(t), "application/json")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestCreateGetAndListAnalyses(t *testing.T) {
	r := setupRouter(t, 0)

	w := do(r, http.MethodPost, "/api/v1/analyses", "user-7", docBody(t), "application/json")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, false, created["cached"])
	id, _ := created["analysisId"].(string)
	require.NotEmpty(t, id)

	w = do(r, http.MethodPost, "/api/v1/analyses", "user-7", docBody(t), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, decode(t, w)["cached"])

	w = do(r, http.MethodPost, "/api/v1/analyses", "user-7", docBody(t), "application/json")
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/api/v1/analyses/"+id, "user-7", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decode(t, w)["id"])

	w = do(r, http.MethodGet, "/api/v1/analyses/"+id, "someone-else", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/v1/analyses", "user-7", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w)
	assert.Len(t, list["items"].([]any), 2)
	assert.Equal(t, float64(2), list["limit"])

	w = do(r, http.MethodGet, "/api/v1/analyses?limit=10&offset=1", "user-7", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"].([]any), 2)

	w = do(r, http.MethodGet, "/api/v1/analyses", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"].([]any))
}

func TestAnalyzeTextJSON(t *testing.T) {
	r := setupRouter(t, 0)

	w := do(r, http.MethodPost, "/api/v1/text/analyze", "", []byte(`{"text":"Led a team of 5 engineers."}`), "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(6), decode(t, w)["wordCount"])

	w = do(r, http.MethodPost, "/api/v1/text/analyze", "", []byte(`{"text":"  "}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/text/analyze", "", []byte("hello"), "text/csv")
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func multipartBody(t *testing.T, fileName string, content []byte) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf.Bytes(), mw.FormDataContentType()
}

func TestAnalyzeTextUpload(t *testing.T) {
	r := setupRouter(t, 0)

	body, ct := multipartBody(t, "resume.txt", []byte("Developed Go services for 3 teams."))
	w := do(r, http.MethodPost, "/api/v1/text/analyze", "", body, ct)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(6), decode(t, w)["wordCount"])

	body, ct = multipartBody(t, "photo.png", []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a})
	w = do(r, http.MethodPost, "/api/v1/text/analyze", "", body, ct)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code, w.Body.String())

	body, ct = multipartBody(t, "broken.pdf", []byte("%PDF-1.4 nope"))
	w = do(r, http.MethodPost, "/api/v1/text/analyze", "", body, ct)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var empty bytes.Buffer
	mw := multipart.NewWriter(&empty)
	require.NoError(t, mw.WriteField("note", "x"))
	require.NoError(t, mw.Close())
	w = do(r, http.MethodPost, "/api/v1/text/analyze", "", empty.Bytes(), mw.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "file is required"))
}
