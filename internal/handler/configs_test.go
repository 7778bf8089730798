package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"algoconfig/internal/repository/jsonfile"
	"algoconfig/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := jsonfile.New(filepath.Join(t.TempDir(), "configs.json"), zap.NewNop())
	svc := &service.ConfigService{Repo: repo, Logger: zap.NewNop()}
	return NewRouter(svc, zap.NewNop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func validBody() map[string]any {
	return map[string]any{
		"name":            "NIFTY Momentum",
		"instrument":      "NIFTY",
		"timeframe":       "5m",
		"entryThreshold":  0.85,
		"exitThreshold":   0.4,
		"maxLossPercent":  2.5,
		"maxTradesPerDay": 10,
		"enabled":         true,
	}
}

func TestCreateThenList(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/configs", validBody())
	require.Equal(t, http.StatusCreated, w.Code)
	created := resp["data"].(map[string]any)
	assert.NotEmpty(t, created["id"])
	assert.Equal(t, "NIFTY Momentum", created["name"])

	w, resp = doJSON(t, r, http.MethodGet, "/configs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp["count"])
	items := resp["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "NIFTY Momentum", items[0].(map[string]any)["name"])
}

func TestListEmptyCollection(t *testing.T) {
	r := newTestRouter(t)
	w, resp := doJSON(t, r, http.MethodGet, "/configs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), resp["count"])
	assert.NotNil(t, resp["data"], "data must be an empty array, not null")
}

func TestGetByID(t *testing.T) {
	r := newTestRouter(t)
	_, resp := doJSON(t, r, http.MethodPost, "/configs", validBody())
	id := resp["data"].(map[string]any)["id"].(string)

	w, resp := doJSON(t, r, http.MethodGet, "/configs/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, resp["data"].(map[string]any)["id"])

	w, resp = doJSON(t, r, http.MethodGet, "/configs/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Config not found.", resp["error"])
}

func TestCreateMissingInstrument(t *testing.T) {
	r := newTestRouter(t)
	body := validBody()
	delete(body, "instrument")

	w, resp := doJSON(t, r, http.MethodPost, "/configs", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := resp["errors"].(map[string]any)
	assert.Contains(t, errs, "instrument")

	_, resp = doJSON(t, r, http.MethodGet, "/configs", nil)
	assert.Equal(t, float64(0), resp["count"], "failed create must not grow the collection")
}

func TestUpdateRejectsOutOfRangeMaxLoss(t *testing.T) {
	r := newTestRouter(t)
	_, resp := doJSON(t, r, http.MethodPost, "/configs", validBody())
	id := resp["data"].(map[string]any)["id"].(string)

	body := validBody()
	body["maxLossPercent"] = 150
	w, resp := doJSON(t, r, http.MethodPut, "/configs/"+id, body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, resp["errors"].(map[string]any), "maxLossPercent")

	_, resp = doJSON(t, r, http.MethodGet, "/configs/"+id, nil)
	assert.Equal(t, 2.5, resp["data"].(map[string]any)["maxLossPercent"])
}

func TestUpdateMissingID(t *testing.T) {
	r := newTestRouter(t)
	w, resp := doJSON(t, r, http.MethodPut, "/configs/ghost", validBody())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Config not found.", resp["error"])
}

func TestUpdateRefreshesUpdatedAtOnly(t *testing.T) {
	r := newTestRouter(t)
	_, resp := doJSON(t, r, http.MethodPost, "/configs", validBody())
	created := resp["data"].(map[string]any)
	id := created["id"].(string)

	body := validBody()
	body["name"] = "NIFTY Momentum v2"
	w, resp := doJSON(t, r, http.MethodPut, "/configs/"+id, body)
	require.Equal(t, http.StatusOK, w.Code)
	updated := resp["data"].(map[string]any)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, created["createdAt"], updated["createdAt"])
	assert.Equal(t, "NIFTY Momentum v2", updated["name"])

	createdAt, err := time.Parse(time.RFC3339Nano, updated["createdAt"].(string))
	require.NoError(t, err)
	updatedAt, err := time.Parse(time.RFC3339Nano, updated["updatedAt"].(string))
	require.NoError(t, err)
	assert.False(t, updatedAt.Before(createdAt))
}

func TestDeleteConfig(t *testing.T) {
	r := newTestRouter(t)
	_, resp := doJSON(t, r, http.MethodPost, "/configs", validBody())
	id := resp["data"].(map[string]any)["id"].(string)

	w, resp := doJSON(t, r, http.MethodDelete, "/configs/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, resp["data"].(map[string]any)["id"])

	w, _ = doJSON(t, r, http.MethodGet, "/configs/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMalformedJSONBody(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/configs", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)
	w, resp := doJSON(t, r, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", resp["error"])
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w, resp := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["timestamp"])
}
