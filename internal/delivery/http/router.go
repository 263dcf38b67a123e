package http

import (
	"net/http"

	"wellness-clinic-service/internal/delivery/http/handler"
	"wellness-clinic-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                 *mux.Router
	authHandler            *handler.AuthHandler
	patientHandler         *handler.PatientHandler
	providerHandler        *handler.ProviderHandler
	wellnessServiceHandler *handler.WellnessServiceHandler
	appointmentHandler     *handler.AppointmentHandler
	enrollmentHandler      *handler.EnrollmentHandler
	paymentHandler         *handler.PaymentHandler
	auditLogHandler        *handler.AuditLogHandler
	authMiddleware         *middleware.AuthMiddleware
	corsMiddleware         *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	providerHandler *handler.ProviderHandler,
	wellnessServiceHandler *handler.WellnessServiceHandler,
	appointmentHandler *handler.AppointmentHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	paymentHandler *handler.PaymentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                 mux.NewRouter(),
		authHandler:            authHandler,
		patientHandler:         patientHandler,
		providerHandler:        providerHandler,
		wellnessServiceHandler: wellnessServiceHandler,
		appointmentHandler:     appointmentHandler,
		enrollmentHandler:      enrollmentHandler,
		paymentHandler:         paymentHandler,
		auditLogHandler:        auditLogHandler,
		authMiddleware:         authMiddleware,
		corsMiddleware:         corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/provider", r.authHandler.RegisterProvider).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Patient directory
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Patient self-service (token must match the record)
	patientProtected := api.PathPrefix("/patients").Subrouter()
	patientProtected.Use(r.authMiddleware.Authenticate)
	patientProtected.Use(middleware.RequirePatient)
	patientProtected.HandleFunc("/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patientProtected.HandleFunc("/{id}/health-records", r.patientHandler.GetHealthRecords).Methods(http.MethodGet)
	patientProtected.HandleFunc("/{id}/health-records", r.patientHandler.UpdateHealthRecords).Methods(http.MethodPut)

	// Provider directory
	api.HandleFunc("/providers", r.providerHandler.GetAllProviders).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}", r.providerHandler.GetProvider).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id}", r.providerHandler.DeleteProvider).Methods(http.MethodDelete)

	providerProtected := api.PathPrefix("/providers").Subrouter()
	providerProtected.Use(r.authMiddleware.Authenticate)
	providerProtected.Use(middleware.RequireProvider)
	providerProtected.HandleFunc("/{id}", r.providerHandler.UpdateProvider).Methods(http.MethodPut)

	// Wellness service catalog
	api.HandleFunc("/services", r.wellnessServiceHandler.CreateService).Methods(http.MethodPost)
	api.HandleFunc("/services", r.wellnessServiceHandler.GetAllServices).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.wellnessServiceHandler.GetService).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", r.wellnessServiceHandler.UpdateService).Methods(http.MethodPut)
	api.HandleFunc("/services/{id}", r.wellnessServiceHandler.DeleteService).Methods(http.MethodDelete)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/status", r.appointmentHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Enrollments
	api.HandleFunc("/enrollments", r.enrollmentHandler.CreateEnrollment).Methods(http.MethodPost)
	api.HandleFunc("/enrollments", r.enrollmentHandler.GetAllEnrollments).Methods(http.MethodGet)
	api.HandleFunc("/enrollments/{id}", r.enrollmentHandler.GetEnrollment).Methods(http.MethodGet)
	api.HandleFunc("/enrollments/{id}", r.enrollmentHandler.UpdateEnrollment).Methods(http.MethodPut)
	api.HandleFunc("/enrollments/{id}", r.enrollmentHandler.DeleteEnrollment).Methods(http.MethodDelete)

	// Payments
	api.HandleFunc("/payments", r.paymentHandler.CreatePayment).Methods(http.MethodPost)
	api.HandleFunc("/payments", r.paymentHandler.GetAllPayments).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", r.paymentHandler.GetPayment).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}", r.paymentHandler.UpdatePayment).Methods(http.MethodPut)
	api.HandleFunc("/payments/{id}", r.paymentHandler.DeletePayment).Methods(http.MethodDelete)

	// Audit trail (protected)
	auditProtected := api.PathPrefix("/audit-logs").Subrouter()
	auditProtected.Use(r.authMiddleware.Authenticate)
	auditProtected.HandleFunc("", r.auditLogHandler.GetRecentLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
