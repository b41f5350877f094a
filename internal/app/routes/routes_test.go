package routes

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/pharmalab/internal/app/auth"
	"github.com/yigit/pharmalab/internal/app/controllers"
	"github.com/yigit/pharmalab/internal/app/models"
	"github.com/yigit/pharmalab/internal/app/models/dto"
	"github.com/yigit/pharmalab/internal/middleware"
	"github.com/yigit/pharmalab/internal/pkg/apperrors"
	"github.com/yigit/pharmalab/internal/pkg/auth"
)

func TestTemplateFuncs(t *testing.T) {
	tmpl := template.Must(template.New("t").Funcs(TemplateFuncs()).Parse(
		`{{date .When}} {{datetime .When}} {{deref .Note}}|{{deref .Missing}}| {{statusClass .Status}}`))

	note := "ok"
	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, map[string]interface{}{
		"When":    time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC),
		"Note":    &note,
		"Missing": (*string)(nil),
		"Status":  models.StatusPending,
	}))
	assert.Equal(t, "2026-03-04 2026-03-04 09:30 ok|| warning", buf.String())
}

type rejectAll struct{}

func (rejectAll) Authenticate(_ context.Context, _ string) (*appauth.Principal, *auth.Claims, error) {
	return nil, nil, apperrors.ErrTokenInvalid
}

func TestUnauthenticatedRequestsRedirectToLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New(middleware.ErrorTemplate).Parse(`{{.Status}}`)))

	ctrl := &Controllers{
		Auth:         controllers.NewAuthController(nil, "s", false, zerolog.Nop()),
		Dashboard:    controllers.NewDashboardController(nil, zerolog.Nop()),
		Patient:      controllers.NewPatientController(nil, nil, zerolog.Nop()),
		Medication:   controllers.NewMedicationController(nil, zerolog.Nop()),
		Prescription: controllers.NewPrescriptionController(nil, nil, zerolog.Nop()),
		Calculator:   controllers.NewCalculatorController(nil, zerolog.Nop()),
		User:         controllers.NewUserController(nil, zerolog.Nop()),
		Health:       controllers.NewHealthController(nil),
	}
	SetupRouter(r, ctrl, middleware.NewAuthMiddleware(rejectAll{}, "s", zerolog.Nop()), http.NotFoundHandler())

	for _, path := range []string{"/", "/patients", "/patient/1", "/prescription/approve/1", "/calculators", "/ws/prescriptions"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere/at/all", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPageTemplatesRender(t *testing.T) {
	tmpl, err := template.New("pages").Funcs(TemplateFuncs()).ParseGlob("../../../web/templates/*.html")
	require.NoError(t, err)

	blood := "O+"
	teacherUser := &appauth.Principal{UserID: 1, Username: "admin", Role: models.RoleTeacher}
	patient := &models.Patient{ID: 3, PatientID: "P-3", FirstName: "Ada", LastName: "Byron",
		DOB: time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC), Gender: "female", BloodType: &blood}

	pages := map[string]map[string]interface{}{
		"login.html": {"Title": "Login", "CurrentUser": (*appauth.Principal)(nil)},
		"error.html": {"Title": "Not Found", "Status": 404, "Message": "gone", "CurrentUser": (*appauth.Principal)(nil)},
		"dashboard.html": {"Title": "Dashboard", "CurrentUser": teacherUser, "Stats": dto.DashboardStats{LowStock: 2},
			"GenderChart": template.JS("{}"), "DosageFormChart": template.JS("{}")},
		"patients.html":     {"Title": "Patients", "CurrentUser": teacherUser, "Patients": []*models.Patient{patient}},
		"view_patient.html": {"Title": "Ada", "CurrentUser": teacherUser, "Patient": patient},
		"add_user.html":     {"Title": "Add User", "CurrentUser": teacherUser, "Username": "", "Role": "student"},
		"view_prescription.html": {"Title": "Rx", "CurrentUser": teacherUser, "Prescription": &models.Prescription{
			ID: 4, Status: models.StatusPending, Patient: patient,
			Items: []*models.PrescriptionItem{{Dosage: "5mg", Frequency: "QD", Medication: &models.Medication{Name: "Lasix"}}},
		}},
	}
	for name, data := range pages {
		var buf bytes.Buffer
		require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data), name)
		assert.Contains(t, buf.String(), "PharmaLab", name)
	}
}
