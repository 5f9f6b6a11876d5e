package http

import (
	"net/http"

	"nutriclinic/internal/delivery/http/handler"
	"nutriclinic/internal/delivery/http/middleware"
	"nutriclinic/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	patientHandler      *handler.PatientHandler
	prescriptionHandler *handler.PrescriptionHandler
	ledgerHandler       *handler.LedgerHandler
	metricsHandler      *handler.MetricsHandler
	mealPlanHandler     *handler.MealPlanHandler
	dashboardHandler    *handler.DashboardHandler
	requestLogger       *middleware.RequestLogger
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	ledgerHandler *handler.LedgerHandler,
	metricsHandler *handler.MetricsHandler,
	mealPlanHandler *handler.MealPlanHandler,
	dashboardHandler *handler.DashboardHandler,
	requestLogger *middleware.RequestLogger,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		patientHandler:      patientHandler,
		prescriptionHandler: prescriptionHandler,
		ledgerHandler:       ledgerHandler,
		metricsHandler:      metricsHandler,
		mealPlanHandler:     mealPlanHandler,
		dashboardHandler:    dashboardHandler,
		requestLogger:       requestLogger,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	r.handle(api, "/health", r.healthCheck, http.MethodGet)
	r.handle(api, "/health/genai", r.mealPlanHandler.Status, http.MethodGet)
	r.handle(api, "/health/genai", r.mealPlanHandler.Test, http.MethodPost)

	// Patients
	r.handle(api, "/patients", r.patientHandler.Create, http.MethodPost)
	r.handle(api, "/patients", r.patientHandler.GetAll, http.MethodGet)
	r.handle(api, "/patients/{id}", r.patientHandler.GetByID, http.MethodGet)
	r.handle(api, "/patients/{id}/prescriptions", r.prescriptionHandler.Create, http.MethodPost)
	r.handle(api, "/patients/{id}/meal-plan", r.mealPlanHandler.Generate, http.MethodPost)

	// Prescriptions
	r.handle(api, "/prescriptions", r.prescriptionHandler.GetAll, http.MethodGet)

	// Ledger
	r.handle(api, "/ledger", r.ledgerHandler.Create, http.MethodPost)
	r.handle(api, "/ledger", r.ledgerHandler.GetAll, http.MethodGet)
	r.handle(api, "/ledger/total", r.ledgerHandler.Total, http.MethodGet)

	// Calculators and summaries
	r.handle(api, "/metrics", r.metricsHandler.Calculate, http.MethodPost)
	r.handle(api, "/dashboard", r.dashboardHandler.Summary, http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	r.router.Use(r.requestLogger.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

// handle registers a route that also answers preflight requests; the CORS
// middleware replies to those before the handler runs.
func (r *Router) handle(sub *mux.Router, path string, h http.HandlerFunc, method string) {
	sub.HandleFunc(path, h).Methods(method, http.MethodOptions)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "ok", map[string]string{"status": "ok"})
}
