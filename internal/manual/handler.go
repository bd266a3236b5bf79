package manual

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/patunganyuk/patungan/internal/session"
	"github.com/patunganyuk/patungan/pkg/response"
)

// Handler handles HTTP requests for manual-collection operations
type Handler struct {
	service *Service
}

// NewHandler creates a new manual handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for manual endpoints, mounted under
// /sessions/{sessionID}/manual
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Put("/total", h.SetTotal)
	r.Get("/reconciliation", h.GetReconciliation)

	r.Post("/participants", h.AddParticipant)
	r.Put("/participants/{participantID}/amount", h.SetAmount)
	r.Delete("/participants/{participantID}", h.RemoveParticipant)

	return r
}

// SetTotal handles PUT /sessions/{sessionID}/manual/total
// @Summary      Set the total bill
// @Description  Store the flat total for the manual round; non-digits in the input are stripped
// @Tags         manual
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body SetTotalRequest true "Raw total"
// @Success      200 {object} response.APIResponse{data=session.ManualState}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/manual/total [put]
func (h *Handler) SetTotal(w http.ResponseWriter, r *http.Request) {
	var req SetTotalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	state, err := h.service.SetTotal(r.Context(), chi.URLParam(r, "sessionID"), req.Total)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to set total")
		return
	}

	response.JSON(w, http.StatusOK, state)
}

// AddParticipant handles POST /sessions/{sessionID}/manual/participants
// @Summary      Add a manual participant
// @Description  Add a person to the manual roster with a zero contribution
// @Tags         manual
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body AddParticipantRequest true "Participant name"
// @Success      201 {object} response.APIResponse{data=session.ManualParticipant}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/manual/participants [post]
func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	var req AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	participant, err := h.service.AddParticipant(r.Context(), chi.URLParam(r, "sessionID"), req.Name)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, session.ErrEmptyName) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add participant")
		return
	}

	response.JSON(w, http.StatusCreated, participant)
}

// RemoveParticipant handles DELETE /sessions/{sessionID}/manual/participants/{participantID}
// @Summary      Remove a manual participant
// @Tags         manual
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        participantID path string true "Participant ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/manual/participants/{participantID} [delete]
func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemoveParticipant(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "participantID"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) || errors.Is(err, ErrParticipantNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to remove participant")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Participant removed successfully"})
}

// SetAmount handles PUT /sessions/{sessionID}/manual/participants/{participantID}/amount
// @Summary      Record a contribution
// @Description  Set how much a participant has thrown in; non-digits in the input are stripped
// @Tags         manual
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        participantID path string true "Participant ID"
// @Param        request body SetAmountRequest true "Raw amount"
// @Success      200 {object} response.APIResponse{data=session.ManualParticipant}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/manual/participants/{participantID}/amount [put]
func (h *Handler) SetAmount(w http.ResponseWriter, r *http.Request) {
	var req SetAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	participant, err := h.service.SetAmount(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "participantID"), req.Amount)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) || errors.Is(err, ErrParticipantNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to set amount")
		return
	}

	response.JSON(w, http.StatusOK, participant)
}

// GetReconciliation handles GET /sessions/{sessionID}/manual/reconciliation
// @Summary      Get the reconciliation summary
// @Description  Recompute collected and remaining amounts from the current state
// @Tags         manual
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=ReconciliationResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/manual/reconciliation [get]
func (h *Handler) GetReconciliation(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Reconciliation(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to reconcile")
		return
	}

	response.JSON(w, http.StatusOK, summary)
}
