package interview

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/classify"
	"github.com/lawai/consult-backend/internal/entity"
	"github.com/lawai/consult-backend/internal/pkg/textnorm"
	"github.com/lawai/consult-backend/internal/repository"
)

// InterviewUsecase drives the consultation state machine. The in-memory store
// is authoritative; the snapshot repository is a best-effort durable shadow
// written after every state-mutating action.
type InterviewUsecase struct {
	store     repository.SessionStore
	snapshots repository.SnapshotRepository
	llm       LLMConnector
	templates TemplateSource
	logger    *zap.Logger

	// inflight guards one opinion generation per session.
	inflight sync.Map
}

func NewUsecase(
	store repository.SessionStore,
	snapshots repository.SnapshotRepository,
	llm LLMConnector,
	templates TemplateSource,
	logger *zap.Logger,
) *InterviewUsecase {
	return &InterviewUsecase{
		store:     store,
		snapshots: snapshots,
		llm:       llm,
		templates: templates,
		logger:    logger,
	}
}

// StartSession creates an empty session awaiting the initial description.
func (uc *InterviewUsecase) StartSession(ctx context.Context) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		ID:          uuid.New().String(),
		Status:      entity.SessionStatusInitial,
		CurrentStep: entity.StepInitial,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	uc.store.Save(session)
	uc.persist(ctx, session)

	ctxzap.Info(ctx, "consultation session created", zap.String("session_id", session.ID))

	return session, nil
}

// GetSession returns the live session, falling back to the durable snapshot
// when the in-memory entry has expired or the process restarted.
func (uc *InterviewUsecase) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	if session, ok := uc.store.Get(sessionID); ok {
		return session, nil
	}

	snapshot, err := uc.snapshots.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if snapshot.Session == nil {
		return nil, entity.ErrSessionNotFound
	}

	ctxzap.Info(ctx, "session recovered from snapshot", zap.String("session_id", sessionID))

	uc.store.Save(snapshot.Session)
	return snapshot.Session, nil
}

// SubmitInitialInput takes the user's problem description. Three outcomes:
// the flow suspends for path disambiguation, the input is classified
// non-legal and the session resets, or the three scenario angles are
// generated and the interview advances.
func (uc *InterviewUsecase) SubmitInitialInput(ctx context.Context, sessionID, text string) (
	*entity.SubmitInputResult, error,
) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != entity.SessionStatusInitial {
		return nil, fmt.Errorf("%w: wrong action on status '%s'", entity.ErrInvalidSessionStatus, session.Status)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, entity.ErrEmptyInput
	}

	if candidate := classify.DetectMultiPath(text, session.ForcedCaseType); candidate != nil {
		session.InitialQuestion = text
		session.Status = entity.SessionStatusPathSelection
		uc.save(ctx, session)

		ctxzap.Info(ctx, "input matched multiple legal paths",
			zap.String("session_id", session.ID),
			zap.String("group", candidate.Group),
		)

		return &entity.SubmitInputResult{PathCandidate: candidate, Session: session}, nil
	}

	session.InitialQuestion = text
	return uc.generateScenarios(ctx, session)
}

// SelectLegalPath resolves a pending disambiguation and resumes generation
// with the chosen track forced.
func (uc *InterviewUsecase) SelectLegalPath(ctx context.Context, sessionID, key string) (
	*entity.SubmitInputResult, error,
) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != entity.SessionStatusPathSelection {
		return nil, fmt.Errorf("%w: wrong action on status '%s'", entity.ErrInvalidSessionStatus, session.Status)
	}

	// The candidate is ephemeral: recompute it from the stored input.
	candidate := classify.DetectMultiPath(session.InitialQuestion, "")
	if candidate == nil {
		return nil, entity.ErrPathNotApplicable
	}

	var chosen *entity.LegalPath
	for i := range candidate.Paths {
		if candidate.Paths[i].Key == key {
			chosen = &candidate.Paths[i]
			break
		}
	}
	if chosen == nil {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownLegalPath, key)
	}

	session.ForcedCaseType = chosen.Key
	session.LegalPath = chosen.Title
	session.LegalPathGroup = candidate.Group

	ctxzap.Info(ctx, "legal path selected",
		zap.String("session_id", session.ID),
		zap.String("path", chosen.Key),
	)

	return uc.generateScenarios(ctx, session)
}

// generateScenarios runs classification and scenario generation for the
// session's stored input and advances or resets accordingly.
func (uc *InterviewUsecase) generateScenarios(ctx context.Context, session *entity.Session) (
	*entity.SubmitInputResult, error,
) {
	result, err := uc.llm.GenerateScenarios(ctx, session.InitialQuestion, session.ForcedCaseType)
	if err != nil {
		return nil, fmt.Errorf("generate scenarios: %w", err)
	}

	if result.NonLegal {
		ctxzap.Info(ctx, "input classified as non-legal, resetting session",
			zap.String("session_id", session.ID))

		session.Reset()
		uc.save(ctx, session)
		return &entity.SubmitInputResult{NonLegal: true, Session: session}, nil
	}

	caseType := result.CaseType
	// A user-picked path always beats the model's classification.
	if session.ForcedCaseType != "" {
		caseType = session.ForcedCaseType
	}

	session.DetectedCaseType = caseType
	session.CaseTypeKey = classify.NormalizeCaseTypeKey(caseType)
	session.Scenario = entity.ScenarioSet{Options: result.Scenarios}
	session.Status = entity.SessionStatusScenario
	session.CurrentStep = entity.StepScenario
	uc.save(ctx, session)

	ctxzap.Info(ctx, "scenario options ready",
		zap.String("session_id", session.ID),
		zap.String("case_type", caseType),
	)

	return &entity.SubmitInputResult{Session: session}, nil
}

// ConfirmScenario fixes the scenario focus and produces the three follow-up
// questions, preferring a curated template over the AI path when one applies.
func (uc *InterviewUsecase) ConfirmScenario(ctx context.Context, sessionID string, req *entity.ConfirmScenarioRequest) (
	*entity.Session, error,
) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != entity.SessionStatusScenario {
		return nil, fmt.Errorf("%w: wrong action on status '%s'", entity.ErrInvalidSessionStatus, session.Status)
	}

	if req.SelectedIndex != nil {
		idx := *req.SelectedIndex
		if idx < 0 || idx >= len(session.Scenario.Options) {
			return nil, fmt.Errorf("%w: selected_index out of range", entity.ErrInvalidParameter)
		}
		session.Scenario.Selected = session.Scenario.Options[idx]
	}
	if custom := strings.TrimSpace(req.CustomText); custom != "" {
		session.Scenario.Custom = textnorm.EnsureMinLen(custom, textnorm.DefaultMinLen)
	}

	chosen := session.Scenario.Chosen()
	if chosen == "" {
		return nil, entity.ErrScenarioRequired
	}

	var followups []entity.FollowupItem
	if name, items := uc.templates.Lookup(session.CaseTypeKey, session.InitialQuestion); len(items) > 0 {
		session.PickedTemplate = name
		followups = items
		ctxzap.Info(ctx, "using curated follow-up template",
			zap.String("session_id", session.ID),
			zap.String("template", name),
		)
	} else {
		followups, err = uc.llm.GenerateFollowups(ctx, chosen, session.DetectedCaseType)
		if err != nil {
			return nil, fmt.Errorf("generate follow-ups: %w", err)
		}
	}

	session.Followups = followups
	session.Answers = make([]entity.AnswerMeta, len(followups))
	for i := range session.Answers {
		session.Answers[i] = entity.AnswerMeta{
			SelectedIndex: -1,
			Layer:         entity.LayerForFollowup(i),
		}
	}

	session.Status = entity.SessionStatusFollowup
	session.CurrentStep = entity.StepFirstFollowup
	uc.save(ctx, session)

	ctxzap.Info(ctx, "follow-up questions ready", zap.String("session_id", session.ID))

	return session, nil
}

// SubmitFollowupAnswer records the answer for the current follow-up and
// advances to the next question, or to the disclaimer after the last one.
func (uc *InterviewUsecase) SubmitFollowupAnswer(ctx context.Context, sessionID string, req *entity.SubmitAnswerRequest) (
	*entity.Session, error,
) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != entity.SessionStatusFollowup {
		return nil, fmt.Errorf("%w: wrong action on status '%s'", entity.ErrInvalidSessionStatus, session.Status)
	}

	idx, err := session.FollowupIndex()
	if err != nil {
		return nil, err
	}

	meta := &session.Answers[idx]
	if req.SelectedIndex != nil {
		i := *req.SelectedIndex
		if i < 0 || i >= len(session.Followups[idx].Options) {
			return nil, fmt.Errorf("%w: selected_index out of range", entity.ErrInvalidParameter)
		}
		meta.SelectedIndex = i
		meta.SelectedText = session.Followups[idx].Options[i]
		meta.CustomText = ""
	} else if custom := strings.TrimSpace(req.CustomText); custom != "" {
		meta.SelectedIndex = -1
		meta.SelectedText = ""
		meta.CustomText = textnorm.EnsureMinLen(custom, textnorm.DefaultMinLen)
	}

	if !meta.Answered() {
		return nil, entity.ErrAnswerRequired
	}

	if session.CurrentStep < entity.StepLastFollowup {
		session.CurrentStep++
	} else {
		session.Status = entity.SessionStatusDisclaimer
	}
	uc.save(ctx, session)

	return session, nil
}

// StepBack moves one step backwards. Backward moves never validate and never
// clear recorded answers.
func (uc *InterviewUsecase) StepBack(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch session.Status {
	case entity.SessionStatusDisclaimer:
		session.Status = entity.SessionStatusFollowup
		session.CurrentStep = entity.StepLastFollowup
	case entity.SessionStatusFollowup:
		if session.CurrentStep > entity.StepFirstFollowup {
			session.CurrentStep--
		} else {
			session.Status = entity.SessionStatusScenario
			session.CurrentStep = entity.StepScenario
		}
	case entity.SessionStatusScenario:
		session.Status = entity.SessionStatusInitial
		session.CurrentStep = entity.StepInitial
	default:
		return nil, fmt.Errorf("%w: wrong action on status '%s'", entity.ErrInvalidSessionStatus, session.Status)
	}

	uc.save(ctx, session)
	return session, nil
}

// AcceptDisclaimer acknowledges the disclaimer and generates the final
// opinion. Only one generation may be in flight per session.
func (uc *InterviewUsecase) AcceptDisclaimer(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != entity.SessionStatusDisclaimer {
		return nil, fmt.Errorf("%w: wrong action on status '%s'", entity.ErrInvalidSessionStatus, session.Status)
	}

	if _, loaded := uc.inflight.LoadOrStore(session.ID, struct{}{}); loaded {
		return nil, entity.ErrGenerationInFlight
	}
	defer uc.inflight.Delete(session.ID)

	answers := make([]entity.OpinionAnswer, 0, len(session.Answers))
	for _, m := range session.Answers {
		answers = append(answers, entity.OpinionAnswer{
			SelectedText: strings.TrimSpace(m.SelectedText),
			CustomText:   strings.TrimSpace(m.CustomText),
		})
	}

	opinion, err := uc.llm.GenerateOpinion(ctx, &entity.OpinionRequest{
		ChosenScenario: session.Scenario.Chosen(),
		Followups:      session.Followups,
		AnswersMeta:    answers,
	})
	if err != nil {
		return nil, fmt.Errorf("generate opinion: %w", err)
	}

	session.Opinion = opinion
	session.Status = entity.SessionStatusFinalOpinion
	session.CurrentStep = entity.StepFinal
	uc.save(ctx, session)

	ctxzap.Info(ctx, "final opinion generated", zap.String("session_id", session.ID))

	return session, nil
}

// GetOpinion returns the stored opinion of a completed session.
func (uc *InterviewUsecase) GetOpinion(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status != entity.SessionStatusFinalOpinion || session.Opinion == "" {
		return nil, entity.ErrNoOpinion
	}

	return session, nil
}

// Restart discards the whole interview and returns the session to the
// initial state. Confirmation is enforced at the validation layer.
func (uc *InterviewUsecase) Restart(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Reset()
	uc.save(ctx, session)

	ctxzap.Info(ctx, "session restarted", zap.String("session_id", sessionID))

	return session, nil
}

// save updates the live store and shadows the state to the snapshot
// repository.
func (uc *InterviewUsecase) save(ctx context.Context, session *entity.Session) {
	session.UpdatedAt = time.Now()
	uc.store.Save(session)
	uc.persist(ctx, session)
}

// persist writes the durable snapshot. Failures are logged and swallowed:
// the live store already holds the authoritative state.
func (uc *InterviewUsecase) persist(ctx context.Context, session *entity.Session) {
	snapshot := entity.NewSnapshot(session, time.Now())
	if err := uc.snapshots.Upsert(ctx, session.ID, snapshot); err != nil {
		ctxzap.Warn(ctx, "snapshot write failed",
			zap.String("session_id", session.ID),
			zap.Error(err),
		)
	}
}
