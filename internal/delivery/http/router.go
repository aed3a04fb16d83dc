package http

import (
	"net/http"

	"doctor-provider/internal/delivery/http/handler"
	"doctor-provider/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	cityHandler         *handler.CityHandler
	practiceHandler     *handler.PracticeHandler
	specialityHandler   *handler.SpecialityHandler
	doctorHandler       *handler.DoctorHandler
	workingHoursHandler *handler.WorkingHoursHandler
	slotHandler         *handler.SlotHandler
	auditLogHandler     *handler.AuditLogHandler
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	cityHandler *handler.CityHandler,
	practiceHandler *handler.PracticeHandler,
	specialityHandler *handler.SpecialityHandler,
	doctorHandler *handler.DoctorHandler,
	workingHoursHandler *handler.WorkingHoursHandler,
	slotHandler *handler.SlotHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		cityHandler:         cityHandler,
		practiceHandler:     practiceHandler,
		specialityHandler:   specialityHandler,
		doctorHandler:       doctorHandler,
		workingHoursHandler: workingHoursHandler,
		slotHandler:         slotHandler,
		auditLogHandler:     auditLogHandler,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Cities
	api.HandleFunc("/cities", r.cityHandler.GetAllCities).Methods(http.MethodGet)

	// Practices
	api.HandleFunc("/practices", r.practiceHandler.GetAllPractices).Methods(http.MethodGet)
	api.HandleFunc("/practices", r.practiceHandler.CreatePractice).Methods(http.MethodPost)
	api.HandleFunc("/practices/{id}", r.practiceHandler.UpdatePractice).Methods(http.MethodPut)
	api.HandleFunc("/practices/{id}", r.practiceHandler.DeletePractice).Methods(http.MethodDelete)

	// Specialities
	api.HandleFunc("/specialities", r.specialityHandler.GetAllSpecialities).Methods(http.MethodGet)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Working hours and availability per doctor
	api.HandleFunc("/doctors/{doctorId}/working-hours", r.workingHoursHandler.CreateWorkingHours).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{doctorId}/working-hours", r.workingHoursHandler.GetWorkingHoursByDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/availability", r.workingHoursHandler.GetDoctorAvailability).Methods(http.MethodGet)
	api.HandleFunc("/working-hours/{id}", r.workingHoursHandler.UpdateWorkingHours).Methods(http.MethodPut)
	api.HandleFunc("/working-hours/{id}", r.workingHoursHandler.DeleteWorkingHours).Methods(http.MethodDelete)

	// Slots
	api.HandleFunc("/slots", r.slotHandler.GetAllSlots).Methods(http.MethodGet)
	api.HandleFunc("/slots/{id}", r.slotHandler.GetSlot).Methods(http.MethodGet)
	api.HandleFunc("/slots/{id}/block", r.slotHandler.BlockSlot).Methods(http.MethodPut)
	api.HandleFunc("/slots/{id}/unblock", r.slotHandler.UnblockSlot).Methods(http.MethodPut)
	api.HandleFunc("/slots/{id}/book", r.slotHandler.BookSlot).Methods(http.MethodPut)

	// Audit trail
	api.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
