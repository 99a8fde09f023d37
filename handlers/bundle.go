package handlers

import (
	accountRepo "mediflow/database/repository/account"
	"mediflow/models"
	"mediflow/services/account"
	"mediflow/services/appointment"
	"mediflow/services/prescription"
	"mediflow/services/schedule"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	AccountRepo accountRepo.AccountRepository

	// Account endpoints
	RegisterPatientHandler gin.HandlerFunc
	RegisterDoctorHandler  gin.HandlerFunc
	RegisterAdminHandler   gin.HandlerFunc
	LoginPatientHandler    gin.HandlerFunc
	LoginDoctorHandler     gin.HandlerFunc
	LoginAdminHandler      gin.HandlerFunc
	LogoutHandler          gin.HandlerFunc
	MeHandler              gin.HandlerFunc
	ListDoctorsHandler     gin.HandlerFunc
	ListAccountsHandler    gin.HandlerFunc

	// Schedule endpoints
	AssignScheduleHandler  gin.HandlerFunc
	UpdateScheduleHandler  gin.HandlerFunc
	DeleteScheduleHandler  gin.HandlerFunc
	DoctorSchedulesHandler gin.HandlerFunc
	MySchedulesHandler     gin.HandlerFunc
	DaySlotsHandler        gin.HandlerFunc

	// Appointment endpoints
	RequestAppointmentHandler  gin.HandlerFunc
	MyAppointmentsHandler      gin.HandlerFunc
	DoctorAppointmentsHandler  gin.HandlerFunc
	AllAppointmentsHandler     gin.HandlerFunc
	ConfirmAppointmentHandler  gin.HandlerFunc
	RejectAppointmentHandler   gin.HandlerFunc
	CompleteAppointmentHandler gin.HandlerFunc
	CancelAppointmentHandler   gin.HandlerFunc

	// Prescription endpoints
	CreatePrescriptionHandler  gin.HandlerFunc
	MyPrescriptionsHandler     gin.HandlerFunc
	IssuedPrescriptionsHandler gin.HandlerFunc
	AttachmentURLHandler       gin.HandlerFunc
}

// NewHandlerBundle wires the service layer into route handlers.
func NewHandlerBundle(
	accounts accountRepo.AccountRepository,
	accountSvc account.AccountService,
	scheduleSvc schedule.ScheduleService,
	appointmentSvc appointment.AppointmentService,
	prescriptionSvc prescription.PrescriptionService,
) *HandlerBundle {
	accountH := NewAccountHandler(accountSvc)
	scheduleH := NewScheduleHandler(scheduleSvc)
	appointmentH := NewAppointmentHandler(appointmentSvc)
	prescriptionH := NewPrescriptionHandler(prescriptionSvc)

	return &HandlerBundle{
		AccountRepo: accounts,

		RegisterPatientHandler: accountH.RegisterHandler(models.RolePatient),
		RegisterDoctorHandler:  accountH.RegisterHandler(models.RoleDoctor),
		RegisterAdminHandler:   accountH.RegisterHandler(models.RoleAdmin),
		LoginPatientHandler:    accountH.LoginHandler(models.RolePatient),
		LoginDoctorHandler:     accountH.LoginHandler(models.RoleDoctor),
		LoginAdminHandler:      accountH.LoginHandler(models.RoleAdmin),
		LogoutHandler:          accountH.LogoutHandler,
		MeHandler:              accountH.MeHandler,
		ListDoctorsHandler:     accountH.ListDoctorsHandler,
		ListAccountsHandler:    accountH.ListAccountsHandler,

		AssignScheduleHandler:  scheduleH.AssignScheduleHandler,
		UpdateScheduleHandler:  scheduleH.UpdateScheduleHandler,
		DeleteScheduleHandler:  scheduleH.DeleteScheduleHandler,
		DoctorSchedulesHandler: scheduleH.DoctorSchedulesHandler,
		MySchedulesHandler:     scheduleH.MySchedulesHandler,
		DaySlotsHandler:        scheduleH.DaySlotsHandler,

		RequestAppointmentHandler:  appointmentH.RequestAppointmentHandler,
		MyAppointmentsHandler:      appointmentH.MyAppointmentsHandler,
		DoctorAppointmentsHandler:  appointmentH.DoctorAppointmentsHandler,
		AllAppointmentsHandler:     appointmentH.AllAppointmentsHandler,
		ConfirmAppointmentHandler:  appointmentH.ConfirmAppointmentHandler,
		RejectAppointmentHandler:   appointmentH.RejectAppointmentHandler,
		CompleteAppointmentHandler: appointmentH.CompleteAppointmentHandler,
		CancelAppointmentHandler:   appointmentH.CancelAppointmentHandler,

		CreatePrescriptionHandler:  prescriptionH.CreatePrescriptionHandler,
		MyPrescriptionsHandler:     prescriptionH.MyPrescriptionsHandler,
		IssuedPrescriptionsHandler: prescriptionH.IssuedPrescriptionsHandler,
		AttachmentURLHandler:       prescriptionH.AttachmentURLHandler,
	}
}
