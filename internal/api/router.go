package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
)

// NewRouter wires all handlers onto /api/v1. Everything except login and the
// health check sits behind the auth middleware; destructive registry
// operations additionally require the admin or manager role.
func NewRouter(
	authHandler *AuthHandler,
	carHandler *CarHandler,
	customerHandler *CustomerHandler,
	employeeHandler *EmployeeHandler,
	rentalHandler *RentalHandler,
	photoHandler *PhotoHandler,
	reportHandler *ReportHandler,
	authMiddleware *AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	r.HandleFunc("/api/v1/auth/login", authHandler.Login).Methods("POST")

	adminOnly := RequireRole(domain.RoleAdmin)
	managers := RequireRole(domain.RoleAdmin, domain.RoleManager)

	// Cars
	cars := r.PathPrefix("/api/v1/cars").Subrouter()
	cars.Use(authMiddleware.Authenticate)
	cars.HandleFunc("", carHandler.List).Methods("GET")
	cars.HandleFunc("", carHandler.Create).Methods("POST")
	cars.HandleFunc("/available", carHandler.ListAvailable).Methods("GET")
	cars.HandleFunc("/rented", carHandler.ListRented).Methods("GET")
	cars.HandleFunc("/{id:[0-9]+}", carHandler.Get).Methods("GET")
	cars.HandleFunc("/{id:[0-9]+}", carHandler.Update).Methods("PUT")
	cars.Handle("/{id:[0-9]+}", adminOnly(http.HandlerFunc(carHandler.Delete))).Methods("DELETE")
	cars.Handle("/{id:[0-9]+}/availability", managers(http.HandlerFunc(carHandler.SetAvailability))).Methods("PATCH")
	cars.HandleFunc("/{id:[0-9]+}/rentals", rentalHandler.ListByCar).Methods("GET")

	// Customers
	customers := r.PathPrefix("/api/v1/customers").Subrouter()
	customers.Use(authMiddleware.Authenticate)
	customers.HandleFunc("", customerHandler.List).Methods("GET")
	customers.HandleFunc("", customerHandler.Create).Methods("POST")
	customers.HandleFunc("/{id:[0-9]+}", customerHandler.Get).Methods("GET")
	customers.HandleFunc("/{id:[0-9]+}", customerHandler.Update).Methods("PUT")
	customers.Handle("/{id:[0-9]+}", managers(http.HandlerFunc(customerHandler.Delete))).Methods("DELETE")
	customers.HandleFunc("/{id:[0-9]+}/rentals", rentalHandler.ListByCustomer).Methods("GET")

	// Employees
	employees := r.PathPrefix("/api/v1/employees").Subrouter()
	employees.Use(authMiddleware.Authenticate)
	employees.HandleFunc("", employeeHandler.List).Methods("GET")
	employees.Handle("", adminOnly(http.HandlerFunc(employeeHandler.Create))).Methods("POST")
	employees.HandleFunc("/{id:[0-9]+}", employeeHandler.Get).Methods("GET")
	employees.Handle("/{id:[0-9]+}", adminOnly(http.HandlerFunc(employeeHandler.Update))).Methods("PUT")
	employees.Handle("/{id:[0-9]+}", adminOnly(http.HandlerFunc(employeeHandler.Delete))).Methods("DELETE")

	// Rentals
	rentals := r.PathPrefix("/api/v1/rentals").Subrouter()
	rentals.Use(authMiddleware.Authenticate)
	rentals.HandleFunc("", rentalHandler.List).Methods("GET")
	rentals.HandleFunc("", rentalHandler.Rent).Methods("POST")
	rentals.HandleFunc("/{id:[0-9]+}", rentalHandler.Get).Methods("GET")
	rentals.HandleFunc("/{id:[0-9]+}/return", rentalHandler.Return).Methods("POST")
	rentals.HandleFunc("/{id:[0-9]+}/return-preview", rentalHandler.ReturnPreview).Methods("POST")
	rentals.Handle("/{id:[0-9]+}/cancel", managers(http.HandlerFunc(rentalHandler.Cancel))).Methods("POST")
	rentals.Handle("/{id:[0-9]+}/complete", managers(http.HandlerFunc(rentalHandler.Complete))).Methods("POST")
	rentals.HandleFunc("/{id:[0-9]+}/photos", photoHandler.Upload).Methods("POST")
	rentals.HandleFunc("/{id:[0-9]+}/photos", photoHandler.List).Methods("GET")

	// Photo content sits outside the rental prefix so the key is the photo id.
	photos := r.PathPrefix("/api/v1/photos").Subrouter()
	photos.Use(authMiddleware.Authenticate)
	photos.HandleFunc("/{photoID:[0-9]+}/content", photoHandler.Content).Methods("GET")

	// Reports and dashboard
	reports := r.PathPrefix("/api/v1/reports").Subrouter()
	reports.Use(authMiddleware.Authenticate)
	reports.HandleFunc("/monthly", reportHandler.Monthly).Methods("GET")
	reports.HandleFunc("/car-utilization", reportHandler.CarUtilization).Methods("GET")
	reports.HandleFunc("/customer-activity", reportHandler.CustomerActivity).Methods("GET")

	dashboard := r.PathPrefix("/api/v1/dashboard").Subrouter()
	dashboard.Use(authMiddleware.Authenticate)
	dashboard.HandleFunc("/summary", reportHandler.DashboardSummary).Methods("GET")
	dashboard.HandleFunc("/recent-rentals", reportHandler.RecentRentals).Methods("GET")
	dashboard.HandleFunc("/recent-returns", reportHandler.RecentReturns).Methods("GET")

	return r
}
