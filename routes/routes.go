package routes

import (
	"time"

	"mediflow/handlers"
	"mediflow/middleware"
	"mediflow/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPatientRoutes registers patient endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.POST("/register", hb.RegisterPatientHandler)
		api.POST("/login", hb.LoginPatientHandler)

		// Protected routes (require a patient token).
		api.Use(middleware.RequireRole(hb.AccountRepo, models.RolePatient))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.MeHandler)
		api.POST("/appointments", hb.RequestAppointmentHandler)
		api.GET("/appointments", hb.MyAppointmentsHandler)
		api.POST("/appointments/:id/cancel", hb.CancelAppointmentHandler)
		api.GET("/prescriptions", hb.MyPrescriptionsHandler)
		api.GET("/prescriptions/:id/attachment", hb.AttachmentURLHandler)
	}
}

// RegisterDoctorRoutes registers doctor endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.POST("/register", hb.RegisterDoctorHandler)
		api.POST("/login", hb.LoginDoctorHandler)

		// Public doctor discovery: directory and per-day slot listing.
		api.GET("", hb.ListDoctorsHandler)
		api.GET("/:id/slots", hb.DaySlotsHandler)

		// Protected routes (require a doctor token).
		protected := api.Group("")
		protected.Use(middleware.RequireRole(hb.AccountRepo, models.RoleDoctor))
		protected.POST("/logout", hb.LogoutHandler)
		protected.GET("/me", hb.MeHandler)
		protected.GET("/me/schedules", hb.MySchedulesHandler)
		protected.GET("/me/appointments", hb.DoctorAppointmentsHandler)
		protected.POST("/appointments/:id/confirm", hb.ConfirmAppointmentHandler)
		protected.POST("/appointments/:id/reject", hb.RejectAppointmentHandler)
		protected.POST("/appointments/:id/complete", hb.CompleteAppointmentHandler)
		protected.POST("/prescriptions", hb.CreatePrescriptionHandler)
		protected.GET("/me/prescriptions", hb.IssuedPrescriptionsHandler)
		protected.GET("/prescriptions/:id/attachment", hb.AttachmentURLHandler)
	}
}

// RegisterAdminRoutes registers schedule administration and oversight endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/register", hb.RegisterAdminHandler)
		api.POST("/login", hb.LoginAdminHandler)

		// Protected routes (require an admin token).
		api.Use(middleware.RequireRole(hb.AccountRepo, models.RoleAdmin))
		api.POST("/logout", hb.LogoutHandler)
		api.POST("/schedules", hb.AssignScheduleHandler)
		api.PUT("/schedules/:id", hb.UpdateScheduleHandler)
		api.DELETE("/schedules/:id", hb.DeleteScheduleHandler)
		api.GET("/doctors/:id/schedules", hb.DoctorSchedulesHandler)
		api.GET("/appointments", hb.AllAppointmentsHandler)
		api.GET("/accounts/:role", hb.ListAccountsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPatientRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
