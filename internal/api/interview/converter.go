package interview

import (
	"github.com/lawai/consult-backend/internal/entity"
	"github.com/lawai/consult-backend/internal/pkg/formatter"
	usecase "github.com/lawai/consult-backend/internal/usecase/interview"
)

// submitInputResponse is the wire shape of the three-outcome initial-input
// transition.
type submitInputResponse struct {
	NonLegal      bool                       `json:"non_legal"`
	PathCandidate *entity.MultiPathCandidate `json:"path_candidate,omitempty"`
	Session       *entity.SessionDTO         `json:"session"`
}

func toSubmitInputResponse(result *entity.SubmitInputResult) *submitInputResponse {
	return &submitInputResponse{
		NonLegal:      result.NonLegal,
		PathCandidate: result.PathCandidate,
		Session:       toSessionDTO(result.Session),
	}
}

func toSessionDTO(session *entity.Session) *entity.SessionDTO {
	dto := &entity.SessionDTO{
		ID:               session.ID,
		Status:           session.Status,
		CurrentStep:      session.CurrentStep,
		DetectedCaseType: session.DetectedCaseType,
		ForcedCaseType:   session.ForcedCaseType,
		LegalPathGroup:   session.LegalPathGroup,
		ScenarioOptions:  session.Scenario.Options,
		SelectedScenario: session.Scenario.Selected,
		CustomScenario:   session.Scenario.Custom,
		CaseSummary:      usecase.BuildCaseSummary(session),
		CreatedAt:        session.CreatedAt,
		UpdatedAt:        session.UpdatedAt,
	}

	for i, f := range session.Followups {
		dto.Followups = append(dto.Followups, entity.FollowupDTO{
			Index:    i,
			Layer:    string(entity.LayerForFollowup(i)),
			Question: f.Question,
			Options:  f.Options,
		})
	}

	for _, m := range session.Answers {
		dto.Answers = append(dto.Answers, entity.AnswerDTO{
			SelectedIndex: m.SelectedIndex,
			SelectedText:  m.SelectedText,
			CustomText:    m.CustomText,
			Layer:         string(m.Layer),
		})
	}

	return dto
}

func toOpinionDTO(session *entity.Session) *entity.OpinionDTO {
	return &entity.OpinionDTO{
		SessionID: session.ID,
		Raw:       session.Opinion,
		Sections:  formatter.SectionOpinion(session.Opinion),
	}
}
