package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcda/internal/httpapi"
)

func TestHealthz(t *testing.T) {
	srv := httpapi.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEvaluate_CanonicalExample(t *testing.T) {
	srv := httpapi.New()

	body := `{
		"criteria": [
			{"name": "f1", "maximize": true, "kind": "absolute", "min": 0, "max": 1},
			{"name": "f2", "maximize": true, "kind": "absolute", "min": 0, "max": 1}
		],
		"alternatives": {
			"Z": {"f1": 1.0, "f2": 0.5},
			"W": {"f1": 0.4, "f2": 0.9}
		},
		"preferences": [
			{"criterion1": "f1", "criterion2": "f2", "equivalent": false}
		]
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewBufferString(body))

	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ParetoFront []string `json:"pareto_front"`
		TOrdering   []string `json:"t_ordering"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"Z", "W"}, resp.ParetoFront)
	assert.Equal(t, []string{"Z"}, resp.TOrdering)
}

func TestEvaluate_InvalidBodyRejected(t *testing.T) {
	srv := httpapi.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewBufferString("not json"))

	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluate_OutOfRangeRejected(t *testing.T) {
	srv := httpapi.New()

	body := `{
		"criteria": [{"name": "x", "maximize": true, "kind": "absolute", "min": 0, "max": 10}],
		"alternatives": {"A": {"x": 20}}
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewBufferString(body))

	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
