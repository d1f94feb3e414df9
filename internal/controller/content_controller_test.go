package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/service"
	"quizhub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	chapter := filepath.Join(root, "math", "algebra", "linear.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(chapter), 0755))
	require.NoError(t, os.WriteFile(chapter,
		[]byte(`[{"content":"x+1=2"},{"note":"no content"}]`), 0644))

	svc := service.NewQuestionService(repository.NewContentRepository(".json"), root)
	ctrl := NewContentController(svc)

	router := gin.New()
	api := router.Group("/api")
	api.GET("/subjects", ctrl.GetSubjects)
	api.GET("/subjects/:subject/divisions", ctrl.GetDivisions)
	api.GET("/subjects/:subject/:division/chapters", ctrl.GetChapters)
	api.GET("/questions", ctrl.GetQuestions)
	api.GET("/question/:subject/:division/:chapter/:index", ctrl.GetSingleQuestion)
	api.GET("/structure", ctrl.GetStructure)
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, util.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp util.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestGetSubjectsEndpoint(t *testing.T) {
	router := newContentRouter(t)

	rec, resp := doGet(t, router, "/api/subjects")
	assert.Equal(t, http.StatusOK, rec.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, []interface{}{"math"}, data["subjects"])
}

func TestGetDivisionsEndpoint(t *testing.T) {
	router := newContentRouter(t)

	rec, _ := doGet(t, router, "/api/subjects/math/divisions")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := doGet(t, router, "/api/subjects/history/divisions")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, resp.Message, "history")
}

func TestGetChaptersEndpoint(t *testing.T) {
	router := newContentRouter(t)

	rec, resp := doGet(t, router, "/api/subjects/math/algebra/chapters")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, []interface{}{"linear.json"}, data["chapters"])

	rec, _ = doGet(t, router, "/api/subjects/math/topology/chapters")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetQuestionsEndpoint(t *testing.T) {
	router := newContentRouter(t)

	rec, resp := doGet(t, router, "/api/questions?subject=math")
	assert.Equal(t, http.StatusOK, rec.Code)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["total"], "content-less record is dropped")

	questions := data["questions"].([]interface{})
	first := questions[0].(map[string]interface{})
	assert.Equal(t, "math/algebra/linear.json:0", first["id"])
}

func TestGetQuestionsNoMatchesIsSuccess(t *testing.T) {
	router := newContentRouter(t)

	rec, resp := doGet(t, router, "/api/questions?subject=history")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(0), data["total"])
}

func TestGetSingleQuestionEndpoint(t *testing.T) {
	router := newContentRouter(t)

	// Content-less record at a valid index is still returned.
	rec, resp := doGet(t, router, "/api/question/math/algebra/linear.json/1")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := resp.Data.(map[string]interface{})
	question := data["question"].(map[string]interface{})
	assert.Equal(t, "math/algebra/linear.json:1", question["id"])

	rec, _ = doGet(t, router, "/api/question/math/algebra/linear.json/5")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doGet(t, router, "/api/question/math/algebra/missing.json/0")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doGet(t, router, "/api/question/math/algebra/linear.json/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStructureEndpoint(t *testing.T) {
	router := newContentRouter(t)

	rec, resp := doGet(t, router, "/api/structure")
	assert.Equal(t, http.StatusOK, rec.Code)

	data := resp.Data.(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["total_subjects"])
	assert.Equal(t, float64(1), summary["total_questions"])
}
