package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/repository"
	"github.com/contactbook/backend/internal/service"
	"github.com/go-playground/validator/v10"
)

// ContactHandler serves the contact API: list/get reads and
// create/update/delete writes.
type ContactHandler struct {
	contactService service.ContactService
	validate       *validator.Validate
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validate:       validator.New(),
	}
}

// listResponse is the JSON envelope for api=contacts.
type listResponse struct {
	Contacts []*model.Contact `json:"contacts"`
	Count    int              `json:"count"`
}

// API handles read dispatch on GET /?api=...
//
//	api=contacts&search=&sort=  -> {"contacts":[...],"count":N}
//	api=contact&id=             -> the contact object, flat
//
// The flat get-by-id shape is kept for compatibility with existing
// clients; errors are reported in the body with a matching status code.
func (h *ContactHandler) API(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch q.Get("api") {
	case "contacts":
		opts := model.ContactListOptions{
			Search: q.Get("search"),
			Sort:   q.Get("sort"),
		}
		contacts, err := h.contactService.List(r.Context(), opts)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
			return
		}
		// Return [] not null for empty lists
		if contacts == nil {
			contacts = []*model.Contact{}
		}
		writeJSON(w, http.StatusOK, listResponse{Contacts: contacts, Count: len(contacts)})

	case "contact":
		id, err := strconv.ParseInt(q.Get("id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("Invalid contact id"))
			return
		}
		contact, err := h.contactService.GetByID(r.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Contact not found"))
			return
		}
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, contact)

	default:
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid api"))
	}
}

// contactForm is the form-encoded body of a create/update action.
// Name is required server-side; the browser required attribute alone is
// trivially bypassable.
type contactForm struct {
	Name  string `validate:"required"`
	Email string
	Phone string
	Notes string
}

// Action handles write dispatch on POST /. The action field selects
// create, update or delete; each responds {"success":true,"message":...}.
func (h *ContactHandler) Action(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid form data"))
		return
	}

	switch r.PostFormValue("action") {
	case "create":
		form, err := h.contactFormFromRequest(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		contact := &model.Contact{
			Name:  form.Name,
			Email: form.Email,
			Phone: form.Phone,
			Notes: form.Notes,
		}
		if err := h.contactService.Create(r.Context(), contact); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Contact created successfully",
		})

	case "update":
		id, err := strconv.ParseInt(r.PostFormValue("id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("Invalid contact id"))
			return
		}
		form, err := h.contactFormFromRequest(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}
		contact := &model.Contact{
			ID:    id,
			Name:  form.Name,
			Email: form.Email,
			Phone: form.Phone,
			Notes: form.Notes,
		}
		if err := h.contactService.Update(r.Context(), contact); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Contact updated successfully",
		})

	case "delete":
		id, err := strconv.ParseInt(r.PostFormValue("id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("Invalid contact id"))
			return
		}
		if err := h.contactService.Delete(r.Context(), id); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Contact deleted successfully",
		})

	default:
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid action"))
	}
}

// contactFormFromRequest reads and validates the contact fields of a
// create/update action. Name is trimmed before the required check so a
// whitespace-only name is rejected too.
func (h *ContactHandler) contactFormFromRequest(r *http.Request) (*contactForm, error) {
	form := &contactForm{
		Name:  strings.TrimSpace(r.PostFormValue("name")),
		Email: r.PostFormValue("email"),
		Phone: r.PostFormValue("phone"),
		Notes: r.PostFormValue("notes"),
	}
	if err := h.validate.Struct(form); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return nil, errors.New("Name is required")
		}
		return nil, err
	}
	return form, nil
}
