package interview

import (
	"context"

	"github.com/lawai/consult-backend/internal/entity"
)

type LLMConnector interface {
	GenerateScenarios(ctx context.Context, input, forcedCaseType string) (*entity.ScenarioResult, error)
	GenerateFollowups(ctx context.Context, chosenScenario, caseType string) ([]entity.FollowupItem, error)
	GenerateOpinion(ctx context.Context, req *entity.OpinionRequest) (string, error)
}

// TemplateSource resolves a curated follow-up template for a case type before
// the AI path is taken. An empty name means no template applies.
type TemplateSource interface {
	Lookup(caseTypeKey, text string) (string, []entity.FollowupItem)
}
