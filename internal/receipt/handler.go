package receipt

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/patunganyuk/patungan/internal/session"
	"github.com/patunganyuk/patungan/pkg/response"
)

// Handler handles HTTP requests for receipt scanning
type Handler struct {
	service *Service
}

// NewHandler creates a new receipt handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the standalone receipt router, mounted at /receipts
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/validate", h.Validate)
	r.Post("/validate-proof", h.ValidateProof)
	return r
}

// SessionRoutes returns the session-bound router, mounted under
// /sessions/{sessionID}/receipt
func (h *Handler) SessionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Process)
	return r
}

// Validate handles POST /receipts/validate
// @Summary      Validate a receipt photo
// @Description  Ask the vision service whether the image is a genuine receipt before scanning
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        request body ValidatePhotoRequest true "Base64 data URI"
// @Success      200 {object} response.APIResponse{data=ValidationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /receipts/validate [post]
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	verdict, err := h.service.ValidatePhoto(r.Context(), req.Image)
	if err != nil {
		writeVisionError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, &ValidationResponse{IsReceipt: verdict.IsReceipt, Reason: verdict.Reason})
}

// ValidateProof handles POST /receipts/validate-proof
// @Summary      Validate a proof-of-purchase photo
// @Description  Check that the image shows a storefront, shop, or groceries; a receipt does not count
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        request body ValidatePhotoRequest true "Base64 data URI"
// @Success      200 {object} response.APIResponse{data=ProofValidationResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /receipts/validate-proof [post]
func (h *Handler) ValidateProof(w http.ResponseWriter, r *http.Request) {
	var req ValidatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	verdict, err := h.service.ValidateProofPhoto(r.Context(), req.Image)
	if err != nil {
		writeVisionError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, &ProofValidationResponse{IsValid: verdict.IsValid, Reason: verdict.Reason})
}

// Process handles POST /sessions/{sessionID}/receipt
// @Summary      Scan a receipt into the session
// @Description  Validate the photo, extract items via the vision service, and replace the session's bill
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body ProcessReceiptRequest true "Base64 data URI"
// @Success      200 {object} response.APIResponse{data=session.Bill}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /sessions/{sessionID}/receipt [post]
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	var req ProcessReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	bill, err := h.service.ProcessReceipt(r.Context(), chi.URLParam(r, "sessionID"), req.Image)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		writeVisionError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, bill)
}

// writeVisionError maps vision-layer failures to HTTP responses. A
// rejection keeps the model's descriptive reason as the message.
func writeVisionError(w http.ResponseWriter, err error) {
	var rejection *RejectionError
	switch {
	case errors.Is(err, ErrMissingPhoto):
		response.BadRequest(w, "Ga ada struknya, bos. Upload dulu lah.")
	case errors.As(err, &rejection):
		response.Error(w, http.StatusUnprocessableEntity, "PHOTO_REJECTED", rejection.Reason)
	default:
		response.InternalError(w, "Failed to reach the vision service")
	}
}
