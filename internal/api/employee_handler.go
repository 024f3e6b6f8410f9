package api

import (
	"encoding/json"
	"net/http"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

type createEmployeeRequest struct {
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Address     string              `json:"address"`
	Position    string              `json:"position"`
	SalaryCents int64               `json:"salary_cents"`
	HireDate    time.Time           `json:"hire_date"`
	Username    string              `json:"username"`
	Password    string              `json:"password"`
	Role        domain.EmployeeRole `json:"role"`
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	employee := &domain.Employee{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Position:    req.Position,
		SalaryCents: req.SalaryCents,
		HireDate:    req.HireDate,
		Username:    req.Username,
		Role:        req.Role,
	}
	if err := h.employeeSvc.AddEmployee(r.Context(), employee, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	employee, err := h.employeeSvc.GetEmployee(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var employee domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	employee.ID = id
	if err := h.employeeSvc.UpdateEmployee(r.Context(), &employee); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	if err := h.employeeSvc.DeleteEmployee(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	if term := r.URL.Query().Get("q"); term != "" {
		employees, err := h.employeeSvc.SearchEmployees(r.Context(), term)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, employees)
		return
	}
	employees, err := h.employeeSvc.ListEmployees(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}
