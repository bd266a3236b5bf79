package bill

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/patunganyuk/patungan/internal/session"
	"github.com/patunganyuk/patungan/pkg/response"
)

// Handler handles HTTP requests for bill operations
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill endpoints, mounted under
// /sessions/{sessionID}/bill
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Put("/", h.SetBill)
	r.Delete("/tax", h.RemoveTax)
	r.Get("/split", h.GetSplit)

	r.Post("/items", h.AddItem)
	r.Put("/items/{itemID}", h.UpdateItem)
	r.Delete("/items/{itemID}", h.RemoveItem)
	r.Put("/items/{itemID}/assignees", h.SetAssignees)

	return r
}

// writeServiceError maps bill service errors to HTTP status codes
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, ErrItemNotFound), errors.Is(err, ErrNoBill):
		response.NotFound(w, err.Error())
	case errors.Is(err, ErrInvalidItem), errors.Is(err, ErrNoItems), errors.Is(err, ErrUnknownParticipant):
		response.BadRequest(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}

// SetBill handles PUT /sessions/{sessionID}/bill
// @Summary      Set the bill from manual items
// @Description  Replace the session's bill with manually entered items; totals are derived from the item sum
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body SetBillRequest true "Line items"
// @Success      200 {object} response.APIResponse{data=session.Bill}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/bill [put]
func (h *Handler) SetBill(w http.ResponseWriter, r *http.Request) {
	var req SetBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	bill, err := h.service.SetBill(r.Context(), chi.URLParam(r, "sessionID"), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to set bill")
		return
	}

	response.JSON(w, http.StatusOK, bill)
}

// AddItem handles POST /sessions/{sessionID}/bill/items
// @Summary      Add a line item
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body ItemEntry true "Item entry"
// @Success      201 {object} response.APIResponse{data=session.Item}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/bill/items [post]
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var entry ItemEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	item, err := h.service.AddItem(r.Context(), chi.URLParam(r, "sessionID"), entry)
	if err != nil {
		writeServiceError(w, err, "Failed to add item")
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /sessions/{sessionID}/bill/items/{itemID}
// @Summary      Edit a line item
// @Description  Update name, quantity, or price; totals and shares recompute automatically
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        itemID path string true "Item ID"
// @Param        request body ItemEntry true "Item entry"
// @Success      200 {object} response.APIResponse{data=session.Item}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/bill/items/{itemID} [put]
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var entry ItemEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	item, err := h.service.UpdateItem(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "itemID"), entry)
	if err != nil {
		writeServiceError(w, err, "Failed to update item")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// RemoveItem handles DELETE /sessions/{sessionID}/bill/items/{itemID}
// @Summary      Remove a line item
// @Tags         bill
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        itemID path string true "Item ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/bill/items/{itemID} [delete]
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RemoveItem(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "itemID")); err != nil {
		writeServiceError(w, err, "Failed to remove item")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Item removed successfully"})
}

// SetAssignees handles PUT /sessions/{sessionID}/bill/items/{itemID}/assignees
// @Summary      Assign participants to an item
// @Description  Replace the item's assignee set; pass all=true to assign everyone, an empty list to clear
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        itemID path string true "Item ID"
// @Param        request body SetAssigneesRequest true "Assignees"
// @Success      200 {object} response.APIResponse{data=session.Item}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/bill/items/{itemID}/assignees [put]
func (h *Handler) SetAssignees(w http.ResponseWriter, r *http.Request) {
	var req SetAssigneesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	item, err := h.service.SetAssignees(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "itemID"), &req)
	if err != nil {
		writeServiceError(w, err, "Failed to set assignees")
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// RemoveTax handles DELETE /sessions/{sessionID}/bill/tax
// @Summary      Remove tax from the bill
// @Description  Zero the bill's tax and collapse total back to the subtotal
// @Tags         bill
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=session.Bill}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/bill/tax [delete]
func (h *Handler) RemoveTax(w http.ResponseWriter, r *http.Request) {
	bill, err := h.service.RemoveTax(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeServiceError(w, err, "Failed to remove tax")
		return
	}

	response.JSON(w, http.StatusOK, bill)
}

// GetSplit handles GET /sessions/{sessionID}/bill/split
// @Summary      Compute the settlement
// @Description  Derive each participant's subtotal share, proportional tax share, and total owed
// @Tags         bill
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} response.APIResponse{data=SplitResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /sessions/{sessionID}/bill/split [get]
func (h *Handler) GetSplit(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ComputeSplit(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeServiceError(w, err, "Failed to compute split")
		return
	}

	response.JSON(w, http.StatusOK, result)
}
