package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestTimeout_SetsDeadline(t *testing.T) {
	router := gin.New()
	router.Use(RequestTimeout(time.Second))

	var hasDeadline bool
	var remaining time.Duration
	router.GET("/x", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		hasDeadline = ok
		remaining = time.Until(deadline)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, hasDeadline)
	assert.LessOrEqual(t, remaining, time.Second)
}

func TestCORS_SetsHeadersOnRegularRequests(t *testing.T) {
	router := gin.New()
	router.Use(CORS())
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestParseIDParam(t *testing.T) {
	cases := []struct {
		raw    string
		wantID int
		wantOK bool
	}{
		{"1", 1, true},
		{"-3", -3, true},
		{"0042", 42, true},
		{"abc", 0, false},
		{"1e3", 0, false},
	}
	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)
			ctx.Params = gin.Params{{Key: "id", Value: c.raw}}

			id, ok := parseIDParam(ctx, "id")
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.wantID, id)
			if !c.wantOK {
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
				assert.True(t, ctx.IsAborted())
			}
		})
	}
}
