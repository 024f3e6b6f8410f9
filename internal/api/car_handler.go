package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type CarHandler struct {
	carSvc service.CarService
}

func NewCarHandler(carSvc service.CarService) *CarHandler {
	return &CarHandler{carSvc: carSvc}
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var car domain.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.carSvc.AddCar(r.Context(), &car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	car, err := h.carSvc.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var car domain.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	car.ID = id
	if err := h.carSvc.UpdateCar(r.Context(), &car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	if err := h.carSvc.DeleteCar(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	if term := r.URL.Query().Get("q"); term != "" {
		cars, err := h.carSvc.SearchCars(r.Context(), term)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cars)
		return
	}
	cars, err := h.carSvc.ListCars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carSvc.ListAvailableCars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) ListRented(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carSvc.ListRentedCars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

type availabilityRequest struct {
	Availability domain.CarAvailability `json:"availability"`
}

func (h *CarHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.carSvc.SetAvailability(r.Context(), id, req.Availability); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
