package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/pharmalab/internal/app/controllers"
	"github.com/yigit/pharmalab/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Dashboard    *controllers.DashboardController
	Patient      *controllers.PatientController
	Medication   *controllers.MedicationController
	Prescription *controllers.PrescriptionController
	Calculator   *controllers.CalculatorController
	User         *controllers.UserController
	Health       *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl *Controllers,
	authMiddleware *middleware.AuthMiddleware,
	metricsHandler http.Handler,
) {
	// --- Public routes ---
	router.GET("/login", ctrl.Auth.LoginPage)
	router.POST("/login", ctrl.Auth.Login)
	router.GET("/health", ctrl.Health.Health)
	router.GET("/metrics", gin.WrapH(metricsHandler))

	// --- Logged-in users ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.SessionAuth())
	{
		authenticated.GET("/", ctrl.Dashboard.Index)
		authenticated.GET("/logout", ctrl.Auth.Logout)

		authenticated.GET("/patients", ctrl.Patient.List)
		authenticated.GET("/patient/:id", ctrl.Patient.View)
		authenticated.POST("/patient/:id/add_note", ctrl.Patient.AddNote)

		authenticated.GET("/medications", ctrl.Medication.List)

		authenticated.GET("/prescriptions", ctrl.Prescription.List)
		authenticated.GET("/prescription/create", ctrl.Prescription.CreatePage)
		authenticated.POST("/prescription/create", ctrl.Prescription.Create)
		authenticated.GET("/prescription/:id", ctrl.Prescription.View)
		authenticated.GET("/prescription/:id/pdf", ctrl.Prescription.PDF)

		authenticated.GET("/calculators", ctrl.Calculator.Page)
		authenticated.POST("/calculate/bmi", ctrl.Calculator.BMI)
		authenticated.POST("/calculate/creatinine_clearance", ctrl.Calculator.CreatinineClearance)

		// Teacher-only routes; students are sent back to the dashboard
		teacherOnly := authenticated.Group("")
		teacherOnly.Use(authMiddleware.TeacherRequired())
		{
			teacherOnly.GET("/patient/add", ctrl.Patient.AddPage)
			teacherOnly.POST("/patient/add", ctrl.Patient.Add)
			teacherOnly.GET("/medication/add", ctrl.Medication.AddPage)
			teacherOnly.POST("/medication/add", ctrl.Medication.Add)
			teacherOnly.GET("/prescription/approve/:id", ctrl.Prescription.Approve)
			teacherOnly.GET("/user/add", ctrl.User.AddPage)
			teacherOnly.POST("/user/add", ctrl.User.Add)
			teacherOnly.GET("/ws/prescriptions", ctrl.Prescription.Feed)
		}
	}

	router.NoRoute(middleware.NotFound())
}
