package api

import (
	"encoding/json"
	"net/http"
	"time"

	"carrental-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type rentRequest struct {
	CarID            int64  `json:"car_id"`
	CustomerID       int64  `json:"customer_id"`
	RentalDate       string `json:"rental_date"`
	ReturnDate       string `json:"return_date"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	Notes            string `json:"notes"`
}

func (h *RentalHandler) Rent(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := EmployeeIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req rentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	rentalDate, err := time.Parse("2006-01-02", req.RentalDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "rental_date must be YYYY-MM-DD"})
		return
	}
	returnDate, err := time.Parse("2006-01-02", req.ReturnDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "return_date must be YYYY-MM-DD"})
		return
	}

	rental, err := h.rentalSvc.RentCar(r.Context(), req.CarID, req.CustomerID, employeeID, rentalDate, returnDate, req.TotalAmountCents, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

type returnRequest struct {
	LateFeeCents   int64  `json:"late_fee_cents"`
	DamageFeeCents int64  `json:"damage_fee_cents"`
	Notes          string `json:"notes"`
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := EmployeeIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	var req returnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.rentalSvc.ReturnCar(r.Context(), id, employeeID, req.LateFeeCents, req.DamageFeeCents, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type returnPreviewRequest struct {
	AsOf           string `json:"as_of"`
	DamageFeeCents int64  `json:"damage_fee_cents"`
}

func (h *RentalHandler) ReturnPreview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	var req returnPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	asOf := time.Now()
	if req.AsOf != "" {
		if asOf, err = time.Parse("2006-01-02", req.AsOf); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "as_of must be YYYY-MM-DD"})
			return
		}
	}

	preview, err := h.rentalSvc.PreviewReturn(r.Context(), id, asOf, req.DamageFeeCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.rentalSvc.CancelRental(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	if err := h.rentalSvc.CompleteRental(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("status") == "active" {
		rentals, err := h.rentalSvc.ListActiveRentals(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rentals)
		return
	}
	rentals, err := h.rentalSvc.ListRentals(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListByCar(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	rentals, err := h.rentalSvc.ListRentalsByCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	rentals, err := h.rentalSvc.ListRentalsByCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}
