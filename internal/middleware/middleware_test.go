package middleware

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/pharmalab/internal/app/auth"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/auth"
	"github.com/yigit/pharmalab/internal/pkg/flash"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuthenticator struct {
	principals map[string]*appauth.Principal
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*appauth.Principal, *auth.Claims, error) {
	if p, ok := s.principals[token]; ok {
		return p, &auth.Claims{UserID: p.UserID}, nil
	}
	if token == "revoked" {
		return nil, nil, apperrors.ErrTokenRevoked
	}
	return nil, nil, apperrors.ErrTokenInvalid
}

func newTestEngine() (*gin.Engine, *AuthMiddleware) {
	m := NewAuthMiddleware(stubAuthenticator{principals: map[string]*appauth.Principal{
		"teacher-token": {UserID: 1, Username: "admin", Role: models.RoleTeacher},
		"student-token": {UserID: 2, Username: "stud", Role: models.RoleStudent},
	}}, "session", zerolog.Nop())

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New(ErrorTemplate).Parse(`{{.Status}} {{.Message}}`)))
	r.NoRoute(NotFound())

	protected := r.Group("/", m.SessionAuth())
	protected.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "hello %s", CurrentPrincipal(c).Username)
	})
	protected.GET("/patient/add", m.TeacherRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "form")
	})
	protected.GET("/boom", func(c *gin.Context) {
		HandlePageError(c, errors.New("db down"))
	})
	return r, m
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAuth(t *testing.T) {
	r, _ := newTestEngine()

	tests := []struct {
		name     string
		token    string
		status   int
		location string
	}{
		{"no cookie", "", http.StatusFound, LoginPath},
		{"garbage cookie", "nope", http.StatusFound, LoginPath},
		{"revoked session", "revoked", http.StatusFound, LoginPath},
		{"valid session", "student-token", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/", tt.token)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}

	assert.Equal(t, "hello stud", get(r, "/", "student-token").Body.String())
}

func TestTeacherRequired(t *testing.T) {
	r, _ := newTestEngine()

	w := get(r, "/patient/add", "teacher-token")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/patient/add", "student-token")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, HomePath, w.Header().Get("Location"))

	var flashCookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "pharmalab_flash" {
			flashCookie = ck
		}
	}
	require.NotNil(t, flashCookie, "a flash message must be queued")

	// The next page pops the queued message.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(flashCookie)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	msgs := flash.Pop(c)
	require.Len(t, msgs, 1)
	assert.Equal(t, flash.Message{Category: flash.Danger, Text: TeacherRequiredMessage}, msgs[0])
}

func TestErrorPages(t *testing.T) {
	r, _ := newTestEngine()

	w := get(r, "/boom", "teacher-token")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")

	w = get(r, "/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "404"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/health", func(c *gin.Context) {
		c.Set(ContextPrincipalKey, &appauth.Principal{UserID: 5})
		c.Status(http.StatusTeapot)
	})
	get(r, "/health", "")

	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/health"`)
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"userID":5`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestBindingErrorText(t *testing.T) {
	type form struct {
		Username string `validate:"required"`
		Role     string `validate:"oneof=teacher student"`
	}
	err := validator.New().Struct(form{Role: "admin"})
	require.Error(t, err)

	assert.Equal(t, "Username is required; Role must be one of: teacher student", BindingErrorText(err))
	assert.Equal(t, "plain", BindingErrorText(errors.New("plain")))
}
