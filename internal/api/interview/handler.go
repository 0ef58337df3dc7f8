package interview

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/entity"
	"github.com/lawai/consult-backend/internal/integration/llm"
	"github.com/lawai/consult-backend/internal/pkg/logger"
	"github.com/lawai/consult-backend/internal/pkg/response"
	"github.com/lawai/consult-backend/internal/pkg/validator"
	pkghttp "github.com/lawai/consult-backend/pkg/http"
)

type Handler struct {
	usecase   InterviewUsecase
	validator *validator.Validator
}

func NewHandler(usecase InterviewUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// StartSession handles POST /consult-session
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartSession")

	session, err := h.usecase.StartSession(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toSessionDTO(session))
}

// GetSession handles GET /consult-session/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "GetSession")

	session, err := h.usecase.GetSession(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// SubmitInput handles POST /consult-session/{id}/input
func (h *Handler) SubmitInput(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "SubmitInput")

	var req entity.SubmitInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validator.ValidateSubmitInput(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	result, err := h.usecase.SubmitInitialInput(ctx, sessionID, req.Text)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSubmitInputResponse(result))
}

// SelectLegalPath handles POST /consult-session/{id}/legal-path
func (h *Handler) SelectLegalPath(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "SelectLegalPath")

	var req entity.SelectLegalPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validator.ValidateSelectLegalPath(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	result, err := h.usecase.SelectLegalPath(ctx, sessionID, req.Key)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSubmitInputResponse(result))
}

// ConfirmScenario handles POST /consult-session/{id}/scenario
func (h *Handler) ConfirmScenario(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "ConfirmScenario")

	var req entity.ConfirmScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validator.ValidateConfirmScenario(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	session, err := h.usecase.ConfirmScenario(ctx, sessionID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// SubmitAnswer handles POST /consult-session/{id}/answer
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "SubmitAnswer")

	var req entity.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validator.ValidateSubmitAnswer(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	session, err := h.usecase.SubmitFollowupAnswer(ctx, sessionID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// StepBack handles POST /consult-session/{id}/back
func (h *Handler) StepBack(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "StepBack")

	session, err := h.usecase.StepBack(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// AcceptDisclaimer handles POST /consult-session/{id}/disclaimer
func (h *Handler) AcceptDisclaimer(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "AcceptDisclaimer")

	var req entity.DisclaimerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validator.ValidateDisclaimer(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	session, err := h.usecase.AcceptDisclaimer(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

// GetOpinion handles GET /consult-session/{id}/opinion
func (h *Handler) GetOpinion(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "GetOpinion")

	session, err := h.usecase.GetOpinion(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toOpinionDTO(session))
}

// Restart handles POST /consult-session/{id}/restart
func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "Restart")

	var req entity.RestartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.validator.ValidateRestart(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "validation failed", err)
		return
	}

	session, err := h.usecase.Restart(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session))
}

func (h *Handler) sessionContext(r *http.Request, action string) (context.Context, string) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", action),
	)
	return ctx, sessionID
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	response.JSON(w, status, data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	response.Error(ctx, w, status, message, err)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var formatErr *llm.FormatError
	var httpErr *pkghttp.HTTPError
	var netErr *pkghttp.NetworkError

	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		h.respondError(ctx, w, http.StatusNotFound, "session not found", err)
	case errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrInvalidFormat),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrEmptyInput),
		errors.Is(err, entity.ErrScenarioRequired),
		errors.Is(err, entity.ErrAnswerRequired),
		errors.Is(err, entity.ErrConfirmRequired),
		errors.Is(err, entity.ErrUnknownLegalPath):
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	case errors.Is(err, entity.ErrInvalidSessionStatus),
		errors.Is(err, entity.ErrPathNotApplicable),
		errors.Is(err, entity.ErrNoOpinion),
		errors.Is(err, entity.ErrGenerationInFlight):
		h.respondError(ctx, w, http.StatusConflict, "invalid session state", err)
	case errors.As(err, &formatErr), errors.As(err, &httpErr), errors.As(err, &netErr):
		h.respondError(ctx, w, http.StatusBadGateway, "ai service error", err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
