package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lawai/consult-backend/internal/entity"
	"github.com/lawai/consult-backend/internal/pkg/logger"
	"github.com/lawai/consult-backend/internal/pkg/response"
)

type Handler struct {
	usecase ContactUsecase
}

func NewHandler(usecase ContactUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Submit handles POST /contact
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SubmitContact")

	var req entity.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.usecase.Submit(ctx, &req); err != nil {
		switch {
		case errors.Is(err, entity.ErrMissingContact), errors.Is(err, entity.ErrInvalidPhone):
			response.Error(ctx, w, http.StatusBadRequest, "validation failed", err)
		default:
			response.Error(ctx, w, http.StatusBadGateway, "contact delivery failed", err)
		}
		return
	}

	response.JSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
