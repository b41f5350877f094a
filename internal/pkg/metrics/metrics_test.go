package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareRecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/patient/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	for _, id := range []string{"1", "2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/patient/"+id, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/patient/:id", "200")))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(w.Body.String(), `http_requests_total{endpoint="/patient/:id",method="GET",status_code="200"} 2`))
}

func TestDomainCounters(t *testing.T) {
	m := New()

	m.PrescriptionCreated("pending")
	m.PrescriptionCreated("pending")
	m.PrescriptionCreated("approved")
	m.PrescriptionApproved()
	m.LoginAttempt(false)
	m.CalculatorRequest("bmi", true)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.prescriptionsCreated.WithLabelValues("pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prescriptionsCreated.WithLabelValues("approved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prescriptionsApproved))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loginAttempts.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calculatorRequests.WithLabelValues("bmi", "success")))
}
