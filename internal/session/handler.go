package session

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/patunganyuk/patungan/pkg/response"
)

// Handler handles HTTP requests for session operations
type Handler struct {
	service *Service
}

// NewHandler creates a new session handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for session endpoints. Feature routers are
// mounted beneath each session so their handlers can read {sessionID}
// from the route context.
func (h *Handler) Routes(billRouter, manualRouter, receiptRouter chi.Router) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Route("/{sessionID}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Delete)
		r.Post("/participants", h.AddParticipant)
		r.Delete("/participants/{participantID}", h.RemoveParticipant)
		r.Put("/bank", h.SetBank)
		r.Mount("/bill", billRouter)
		r.Mount("/manual", manualRouter)
		r.Mount("/receipt", receiptRouter)
	})

	return r
}

// Create handles POST /sessions
// @Summary      Start a new session
// @Description  Create an empty splitting session for one round
// @Tags         sessions
// @Produce      json
// @Success      201 {object} response.APIResponse{data=Session}
// @Router       /sessions [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.Create(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to create session")
		return
	}

	response.JSON(w, http.StatusCreated, sess)
}

// Get handles GET /sessions/{sessionID}
// @Summary      Get session state
// @Description  Get the full bill, roster, and manual state for a session
// @Tags         sessions
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=Session}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get session")
		return
	}

	response.JSON(w, http.StatusOK, sess)
}

// Delete handles DELETE /sessions/{sessionID}
// @Summary      Start over
// @Description  Discard the session and everything in it
// @Tags         sessions
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete session")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Session deleted successfully"})
}

// AddParticipant handles POST /sessions/{sessionID}/participants
// @Summary      Add a participant
// @Description  Add a person to the roster; initials are derived from the name
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body AddParticipantRequest true "Participant name"
// @Success      201 {object} response.APIResponse{data=Participant}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/participants [post]
func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	participant, err := h.service.AddParticipant(r.Context(), chi.URLParam(r, "sessionID"), req.Name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrEmptyName) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add participant")
		return
	}

	response.JSON(w, http.StatusCreated, participant)
}

// RemoveParticipant handles DELETE /sessions/{sessionID}/participants/{participantID}
// @Summary      Remove a participant
// @Description  Remove a person from the roster and from every item assignment
// @Tags         sessions
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        participantID path string true "Participant ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/participants/{participantID} [delete]
func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemoveParticipant(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "participantID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrParticipantNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to remove participant")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Participant removed successfully"})
}

// SetBank handles PUT /sessions/{sessionID}/bank
// @Summary      Set bank details
// @Description  Store transfer instructions appended to share text
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body SetBankRequest true "Bank details"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/bank [put]
func (h *Handler) SetBank(w http.ResponseWriter, r *http.Request) {
	var req SetBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	bank := BankDetails{
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	}

	if err := h.service.SetBank(r.Context(), chi.URLParam(r, "sessionID"), bank); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to save bank details")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Bank details saved"})
}
