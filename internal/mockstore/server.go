// Package mockstore serves a local stand-in for the hosted employee store:
// the same resource paths and status codes, backed by a repository.
package mockstore

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/ports"
)

// DefaultBasePath is the resource path of the hosted store.
const DefaultBasePath = "/employeedetails/email"

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	repo   ports.EmployeeRepository
	logger *slog.Logger
}

func New(repo ports.EmployeeRepository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{repo: repo, logger: logger}
}

// Router mounts the employee resource at basePath.
func (s *Server) Router(basePath string) *mux.Router {
	basePath = "/" + strings.Trim(basePath, "/")
	r := mux.NewRouter()
	res := r.PathPrefix(basePath).Subrouter()
	res.HandleFunc("", s.list).Methods(http.MethodGet)
	res.HandleFunc("", s.create).Methods(http.MethodPost)
	res.HandleFunc("/{id}", s.get).Methods(http.MethodGet)
	res.HandleFunc("/{id}", s.update).Methods(http.MethodPut)
	res.HandleFunc("/{id}", s.delete).Methods(http.MethodDelete)
	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	employees, err := s.repo.ListEmployees(r.Context())
	if err != nil {
		s.internalError(w, "list", err)
		return
	}
	s.writeJSON(w, http.StatusOK, employees)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	payload, ok := s.decodePayload(w, r)
	if !ok {
		return
	}
	e := &domain.Employee{
		Name:       payload.Name,
		Email:      payload.Email,
		Position:   payload.Position,
		Department: payload.Department,
	}
	if err := s.repo.CreateEmployee(r.Context(), e); err != nil {
		s.internalError(w, "create", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, e)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	e, err := s.repo.GetEmployee(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, ports.ErrRecordNotFound) {
		s.writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		s.internalError(w, "get", err)
		return
	}
	s.writeJSON(w, http.StatusOK, e)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	// Unknown ids are reported before the body is looked at.
	if _, err := s.repo.GetEmployee(r.Context(), id); errors.Is(err, ports.ErrRecordNotFound) {
		s.writeError(w, http.StatusNotFound, "Not found")
		return
	} else if err != nil {
		s.internalError(w, "update", err)
		return
	}
	payload, ok := s.decodePayload(w, r)
	if !ok {
		return
	}
	e := &domain.Employee{
		ID:         id,
		Name:       payload.Name,
		Email:      payload.Email,
		Position:   payload.Position,
		Department: payload.Department,
	}
	err := s.repo.UpdateEmployee(r.Context(), e)
	if errors.Is(err, ports.ErrRecordNotFound) {
		s.writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		s.internalError(w, "update", err)
		return
	}
	s.writeJSON(w, http.StatusOK, e)
}

// delete echoes the removed record.
func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	e, err := s.repo.GetEmployee(r.Context(), id)
	if errors.Is(err, ports.ErrRecordNotFound) {
		s.writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		s.internalError(w, "delete", err)
		return
	}
	err = s.repo.DeleteEmployee(r.Context(), id)
	if errors.Is(err, ports.ErrRecordNotFound) {
		s.writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		s.internalError(w, "delete", err)
		return
	}
	s.writeJSON(w, http.StatusOK, e)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// decodePayload reads an EmployeeFormData body and writes a 400 when it is
// malformed or any field is empty.
func (s *Server) decodePayload(w http.ResponseWriter, r *http.Request) (domain.EmployeeFormData, bool) {
	var p domain.EmployeeFormData
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return p, false
	}
	if err := p.Validate(); err != nil {
		msg := "Invalid employee data"
		if missing := domain.MissingFields(err); len(missing) > 0 {
			msg = strings.Join(missing, ", ") + " required"
		}
		s.writeError(w, http.StatusBadRequest, msg)
		return p, false
	}
	return p, true
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("mock store failure", "op", op, "err", err)
	s.writeError(w, http.StatusInternalServerError, "Internal server error")
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "status", status, "err", err)
	}
}
