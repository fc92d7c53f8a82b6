package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/a-h/templ"

	"github.com/csg33k/employee-manager/internal/adapters/pdf"
	"github.com/csg33k/employee-manager/internal/domain"
	"github.com/csg33k/employee-manager/internal/form"
	"github.com/csg33k/employee-manager/internal/ports"
	"github.com/csg33k/employee-manager/internal/shell"
	"github.com/csg33k/employee-manager/internal/templates"
)

type Handler struct {
	api      ports.EmployeeAPI
	logger   *slog.Logger
	sessions *sessions
	now      func() time.Time
}

func New(api ports.EmployeeAPI, logger *slog.Logger, sessionTTL time.Duration) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{api: api, logger: logger, now: time.Now}
	h.sessions = newSessions(sessionTTL, func(id string) *shell.Shell {
		return shell.New(api, logger.With("session", id))
	})
	return h
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.index)
	mux.HandleFunc("GET /employees", h.listEmployees)
	mux.HandleFunc("GET /employees/new", h.newEmployeeForm)
	mux.HandleFunc("POST /employees", h.createEmployee)
	mux.HandleFunc("GET /employees/{id}/edit", h.editEmployeeForm)
	mux.HandleFunc("PUT /employees/{id}", h.updateEmployee)
	mux.HandleFunc("DELETE /employees/{id}", h.deleteEmployee)
	mux.HandleFunc("GET /employees/roster.pdf", h.rosterPDF)
	mux.HandleFunc("POST /modal/close", h.closeModal)
	mux.HandleFunc("POST /error/dismiss", h.dismissError)
	return mux
}

// index mounts a fresh shell; the page then loads the list itself.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	sh := h.sessions.mount(w, r)
	st := sh.State()
	render(w, r, templates.Page(templates.NewAppView(st, templates.SeededForm(st), false)))
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	sh := h.sessions.lookup(w, r)
	sh.Refresh(r.Context())
	renderApp(w, r, sh)
}

func (h *Handler) newEmployeeForm(w http.ResponseWriter, r *http.Request) {
	sh := h.sessions.lookup(w, r)
	sh.OpenCreate()
	renderApp(w, r, sh)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	sh := h.sessions.lookup(w, r)
	if sh.State().Modal.Mode != shell.ModalCreating {
		renderApp(w, r, sh)
		return
	}
	f := form.FromValues(r.PostForm, func(d domain.EmployeeFormData) {
		sh.SubmitCreate(r.Context(), d)
	}, nil)
	h.submit(w, r, sh, f)
}

func (h *Handler) editEmployeeForm(w http.ResponseWriter, r *http.Request) {
	sh := h.sessions.lookup(w, r)
	if !sh.OpenEdit(r.PathValue("id")) {
		h.logger.Debug("edit not opened", "id", r.PathValue("id"))
	}
	renderApp(w, r, sh)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	sh := h.sessions.lookup(w, r)
	st := sh.State()
	if st.Modal.Mode != shell.ModalEditing || st.Modal.Target.ID != r.PathValue("id") {
		renderApp(w, r, sh)
		return
	}
	f := form.FromValues(r.PostForm, func(d domain.EmployeeFormData) {
		sh.SubmitUpdate(r.Context(), d)
	}, nil)
	h.submit(w, r, sh, f)
}

// submit runs f and re-renders. While the modal stays open it keeps showing
// what the user typed.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request, sh *shell.Shell, f form.Form) {
	err := f.Submit()
	var required *form.RequiredError
	if errors.As(err, &required) {
		h.logger.Debug("form incomplete", "missing", required.Error())
		render(w, r, templates.App(templates.NewAppView(sh.State(), f, true)))
		return
	}
	st := sh.State()
	if st.Modal.Mode == shell.ModalClosed {
		renderApp(w, r, sh)
		return
	}
	render(w, r, templates.App(templates.NewAppView(st, f, false)))
}

// deleteEmployee deletes only when the request carries confirm=yes, which
// the page's delete URL adds and htmx sends after the browser's
// confirmation dialog.
func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	sh := h.sessions.lookup(w, r)
	confirmed := deleteConfirmed(r)
	sh.Delete(r.Context(), r.PathValue("id"), shell.ConfirmFunc(func(string) bool { return confirmed }))
	renderApp(w, r, sh)
}

func (h *Handler) closeModal(w http.ResponseWriter, r *http.Request) {
	sh := h.sessions.lookup(w, r)
	sh.CloseModal()
	renderApp(w, r, sh)
}

func (h *Handler) dismissError(w http.ResponseWriter, r *http.Request) {
	sh := h.sessions.lookup(w, r)
	sh.DismissError()
	renderApp(w, r, sh)
}

func (h *Handler) rosterPDF(w http.ResponseWriter, r *http.Request) {
	employees, err := h.api.List(r.Context())
	if err != nil {
		h.logger.Warn("roster fetch failed", "err", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	now := h.now()
	var buf bytes.Buffer
	if err := pdf.GenerateRoster(employees, now, &buf); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	filename := fmt.Sprintf("employees_%s.pdf", now.Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

// deleteConfirmed looks for confirm=yes in the query, then in a form-encoded
// body. ParseForm ignores DELETE bodies, so the body is read here.
func deleteConfirmed(r *http.Request) bool {
	if r.URL.Query().Get("confirm") == "yes" {
		return true
	}
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct != "application/x-www-form-urlencoded" {
		return false
	}
	b, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		return false
	}
	v, err := url.ParseQuery(string(b))
	return err == nil && v.Get("confirm") == "yes"
}

func renderApp(w http.ResponseWriter, r *http.Request, sh *shell.Shell) {
	st := sh.State()
	render(w, r, templates.App(templates.NewAppView(st, templates.SeededForm(st), false)))
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}
