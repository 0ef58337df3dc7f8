package interview

import (
	"context"

	"github.com/lawai/consult-backend/internal/entity"
)

type InterviewUsecase interface {
	StartSession(ctx context.Context) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	SubmitInitialInput(ctx context.Context, sessionID, text string) (*entity.SubmitInputResult, error)
	SelectLegalPath(ctx context.Context, sessionID, key string) (*entity.SubmitInputResult, error)
	ConfirmScenario(ctx context.Context, sessionID string, req *entity.ConfirmScenarioRequest) (*entity.Session, error)
	SubmitFollowupAnswer(ctx context.Context, sessionID string, req *entity.SubmitAnswerRequest) (*entity.Session, error)
	StepBack(ctx context.Context, sessionID string) (*entity.Session, error)
	AcceptDisclaimer(ctx context.Context, sessionID string) (*entity.Session, error)
	GetOpinion(ctx context.Context, sessionID string) (*entity.Session, error)
	Restart(ctx context.Context, sessionID string) (*entity.Session, error)
}
