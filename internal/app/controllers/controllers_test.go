package controllers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/pharmalab/internal/app/auth"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/app/services"
	"github.com/yigit/pharmalab/internal/middleware"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// pageTemplates stands in for web/templates: every page prints its title and flashed texts.
func pageTemplates() *template.Template {
	names := []string{
		"login.html", "dashboard.html", "patients.html", "view_patient.html", "add_patient.html",
		"medications.html", "add_medication.html", "prescriptions.html", "create_prescription.html",
		"view_prescription.html", "calculators.html", "add_user.html", middleware.ErrorTemplate,
	}
	var b strings.Builder
	for _, n := range names {
		b.WriteString(`{{define "` + n + `"}}` + n + `|{{.Title}}|{{range .Flashes}}{{.Category}}:{{.Text}};{{end}}{{end}}`)
	}
	return template.Must(template.New("pages").Parse(b.String()))
}

var (
	teacher = &appauth.Principal{UserID: 1, Username: "admin", Role: models.RoleTeacher}
	student = &appauth.Principal{UserID: 2, Username: "stud", Role: models.RoleStudent}
)

// newEngine returns an engine whose requests run as the given principal
func newEngine(as *appauth.Principal) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(pageTemplates())
	r.Use(func(c *gin.Context) {
		if as != nil {
			c.Set(middleware.ContextPrincipalKey, as)
			c.Set(middleware.ContextClaimsKey, &auth.Claims{UserID: as.UserID})
		}
		c.Next()
	})
	return r
}

func do(r http.Handler, method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- fakes ---

type fakeSessions struct {
	loggedOut bool
}

func (f *fakeSessions) Login(_ context.Context, username, password string) (*auth.Session, *models.User, error) {
	if username == "admin" && password == "admin123" {
		return &auth.Session{Token: "tok", ID: "sid", ExpiresAt: time.Now().Add(time.Hour)}, &models.User{ID: 1}, nil
	}
	return nil, nil, apperrors.ErrInvalidCredentials
}

func (f *fakeSessions) Authenticate(context.Context, string) (*appauth.Principal, *auth.Claims, error) {
	return nil, nil, apperrors.ErrTokenInvalid
}

func (f *fakeSessions) Logout(context.Context, *auth.Claims) error {
	f.loggedOut = true
	return nil
}

type fakePatients struct {
	added []*dto.PatientForm
	err   error
}

func (f *fakePatients) List(context.Context) ([]*models.Patient, error) { return nil, nil }

func (f *fakePatients) GetDetail(_ context.Context, id int64) (*services.PatientDetail, error) {
	if id != 1 {
		return nil, apperrors.ErrPatientNotFound
	}
	return &services.PatientDetail{Patient: &models.Patient{ID: 1, FirstName: "Ada", LastName: "Byron"}}, nil
}

func (f *fakePatients) Add(_ context.Context, form *dto.PatientForm) (*models.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.added = append(f.added, form)
	return &models.Patient{ID: 9}, nil
}

type fakeNotes struct{ author *appauth.Principal }

func (f *fakeNotes) Add(_ context.Context, author *appauth.Principal, _ int64, _ *dto.ClinicalNoteForm) (*models.ClinicalNote, error) {
	f.author = author
	return &models.ClinicalNote{}, nil
}

type fakePrescriptions struct {
	createErr error
	approved  []int64
}

func (f *fakePrescriptions) Create(_ context.Context, _ *appauth.Principal, _ *dto.PrescriptionForm) (*models.Prescription, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Prescription{ID: 1}, nil
}

func (f *fakePrescriptions) Approve(_ context.Context, _ *appauth.Principal, id int64) (*models.Prescription, error) {
	if id == 404 {
		return nil, apperrors.ErrPrescriptionNotFound
	}
	f.approved = append(f.approved, id)
	return &models.Prescription{ID: id, Status: models.StatusApproved}, nil
}

func (f *fakePrescriptions) List(context.Context, *appauth.Principal) ([]*models.Prescription, error) {
	return nil, nil
}

func (f *fakePrescriptions) Get(_ context.Context, id int64) (*models.Prescription, error) {
	return &models.Prescription{ID: id}, nil
}

func (f *fakePrescriptions) FormOptions(context.Context) (*services.PrescriptionFormOptions, error) {
	return &services.PrescriptionFormOptions{}, nil
}

func (f *fakePrescriptions) RenderPDF(context.Context, int64) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), nil
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

// flashCookie returns the decoded flash messages a response queued
func flashTexts(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "pharmalab_flash" && ck.MaxAge >= 0 {
			r := newEngine(nil)
			r.GET("/show", func(c *gin.Context) { middleware.Render(c, http.StatusOK, "login.html", nil) })
			req := httptest.NewRequest(http.MethodGet, "/show", nil)
			req.AddCookie(ck)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			return rec.Body.String()
		}
	}
	return ""
}

var errBoom = errors.New("boom")
