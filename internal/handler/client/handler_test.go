package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/handler"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/model"
	"github.com/vittimendes/fluxo-pro-connect-sub001/internal/repository/memory"
	clientService "github.com/vittimendes/fluxo-pro-connect-sub001/internal/service/client"
	"github.com/vittimendes/fluxo-pro-connect-sub001/pkg/validator"
)

func newTestEngine(t *testing.T, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewClientRepository(memory.NewStore[*model.Client]())
	h := NewHandler(clientService.NewService(repo, validator.New()))

	engine := gin.New()
	api := engine.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set(handler.ContextUserID, userID)
		c.Next()
	})
	h.RegisterRoutes(api)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestCreateAndGetClient(t *testing.T) {
	engine := newTestEngine(t, "user-1")

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/clients", map[string]interface{}{
		"name":  "Maria Silva",
		"phone": "11999990000",
		"email": "maria@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", resp["status"])

	data := resp["data"].(map[string]interface{})
	id := data["id"].(string)
	assert.NotEmpty(t, id)
	assert.Equal(t, "user-1", data["user_id"])

	w, resp = doJSON(t, engine, http.MethodGet, "/api/v1/clients/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, "Maria Silva", data["name"])
}

func TestCreateClientValidationFailure(t *testing.T) {
	engine := newTestEngine(t, "user-1")

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/clients", map[string]interface{}{
		"name":  "M",
		"phone": "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp["status"])

	fields := resp["fields"].(map[string]interface{})
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "phone")
}

func TestGetMissingClientIs404(t *testing.T) {
	engine := newTestEngine(t, "user-1")

	w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/clients/cli_missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", resp["status"])
}

func TestSearchClients(t *testing.T) {
	engine := newTestEngine(t, "user-1")

	for _, name := range []string{"Maria Silva", "João Pereira"} {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/v1/clients", map[string]interface{}{
			"name":  name,
			"phone": "11999990000",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, resp := doJSON(t, engine, http.MethodGet, "/api/v1/clients?q=aria", nil)
	require.Equal(t, http.StatusOK, w.Code)

	results := resp["data"].([]interface{})
	require.Len(t, results, 1)
	assert.Equal(t, "Maria Silva", results[0].(map[string]interface{})["name"])
}

func TestDeleteClientReportsOutcome(t *testing.T) {
	engine := newTestEngine(t, "user-1")

	w, resp := doJSON(t, engine, http.MethodPost, "/api/v1/clients", map[string]interface{}{
		"name":  "Maria Silva",
		"phone": "11999990000",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := resp["data"].(map[string]interface{})["id"].(string)

	w, resp = doJSON(t, engine, http.MethodDelete, "/api/v1/clients/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["data"].(map[string]interface{})["deleted"])

	w, resp = doJSON(t, engine, http.MethodDelete, "/api/v1/clients/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp["data"].(map[string]interface{})["deleted"])
}
