package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFlashSurvivesRedirect(t *testing.T) {
	// first request adds a message and redirects
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/patient/add", nil)
	Add(c, Success, "Patient added successfully")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	// next request reads it back
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	req.AddCookie(cookies[0])
	c2.Request = req

	msgs := Pop(c2)
	require.Len(t, msgs, 1)
	assert.Equal(t, Message{Category: Success, Text: "Patient added successfully"}, msgs[0])

	cleared := w2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)
	assert.Empty(t, Pop(c2))
}

func TestAddAndPopSameRequest(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/patient/add", nil)

	Add(c, Danger, "Error adding patient: boom")
	Add(c, Info, "second")

	msgs := Pop(c)
	require.Len(t, msgs, 2)
	assert.Equal(t, Danger, msgs[0].Category)
	assert.Equal(t, "second", msgs[1].Text)
}
