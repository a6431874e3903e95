package apierr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sovann/postboard/internal/apierr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", nil)
	apierr.Respond(c, err)
	return w
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestStatusMapping(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, respond(t, apierr.Invalid("bad")).Code)
	require.Equal(t, http.StatusBadRequest, respond(t, apierr.Conflict("dup")).Code)
	require.Equal(t, http.StatusNotFound, respond(t, apierr.NotFound("gone")).Code)
	require.Equal(t, http.StatusBadRequest, respond(t, apierr.Auth("no")).Code)
	require.Equal(t, http.StatusInternalServerError, respond(t, apierr.Internal(errors.New("boom"))).Code)
}

func TestInternalHidesCause(t *testing.T) {
	w := respond(t, apierr.Internal(errors.New("pq: connection refused")))
	require.Equal(t, "internal server error", body(t, w)["error"])
	require.NotContains(t, w.Body.String(), "connection refused")
}

func TestUnclassifiedErrorIsInternal(t *testing.T) {
	w := respond(t, errors.New("driver: bad connection"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "internal server error", body(t, w)["error"])
}

func TestMessagePassesThrough(t *testing.T) {
	w := respond(t, apierr.Invalid("all fields are required"))
	require.Equal(t, "all fields are required", body(t, w)["error"])
}
