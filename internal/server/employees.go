package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hitsa/emp-mgmt/internal/lib/logger/sl"
	"github.com/hitsa/emp-mgmt/internal/models"
	"github.com/hitsa/emp-mgmt/internal/repository"
)

// handleListEmployees returns all employee records.
func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.roster.List(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "List employees failed", sl.Err(err))
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.writeJSON(w, http.StatusOK, employees)
}

// handleCreateEmployee creates a new employee record. The id field of the
// payload, if present, is ignored; the persistence layer assigns one.
func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload models.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.roster.Create(r.Context(), payload)
	if err != nil {
		s.log.ErrorContext(r.Context(), "Create employee failed", sl.Err(err))
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	s.writeJSON(w, http.StatusOK, created)
}

// handleGetEmployee returns a single employee by id.
func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	identifier, ok := s.employeeID(w, r)
	if !ok {
		return
	}

	employee, err := s.roster.Get(r.Context(), identifier)
	if err != nil {
		s.renderEmployeeError(w, r, identifier, err)
		return
	}

	s.writeJSON(w, http.StatusOK, employee)
}

// handleUpdateEmployee overwrites the first name, last name and email of an
// existing record. The id is preserved; other submitted fields are ignored.
func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	identifier, ok := s.employeeID(w, r)
	if !ok {
		return
	}

	var payload models.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.roster.Update(r.Context(), identifier, payload)
	if err != nil {
		s.renderEmployeeError(w, r, identifier, err)
		return
	}

	s.writeJSON(w, http.StatusOK, updated)
}

// handleDeleteEmployee removes an employee record and confirms the deletion.
func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	identifier, ok := s.employeeID(w, r)
	if !ok {
		return
	}

	if err := s.roster.Delete(r.Context(), identifier); err != nil {
		s.renderEmployeeError(w, r, identifier, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// employeeID parses the id path parameter. On failure it writes a 400 and
// reports false.
func (s *Server) employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	identifier, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid employee id")
		return 0, false
	}
	return identifier, true
}

// renderEmployeeError maps a lookup failure to the 404 contract, everything
// else to a generic 500.
func (s *Server) renderEmployeeError(w http.ResponseWriter, r *http.Request, identifier int64, err error) {
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("Employee not exist with id :%d", identifier))
		return
	}

	s.log.ErrorContext(r.Context(), "Employee request failed", "id", identifier, sl.Err(err))
	s.writeError(w, http.StatusInternalServerError, "internal server error")
}
