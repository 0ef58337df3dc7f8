package entity

import "time"

type SubmitInputRequest struct {
	Text string `json:"text"`
}

type SelectLegalPathRequest struct {
	Key string `json:"key"`
}

type ConfirmScenarioRequest struct {
	// SelectedIndex picks one of the three scenario options; nil leaves the
	// current selection untouched (a custom scenario alone is also valid).
	SelectedIndex *int   `json:"selected_index,omitempty"`
	CustomText    string `json:"custom_text"`
}

type SubmitAnswerRequest struct {
	SelectedIndex *int   `json:"selected_index,omitempty"`
	CustomText    string `json:"custom_text"`
}

type DisclaimerRequest struct {
	Accepted bool `json:"accepted"`
}

type RestartRequest struct {
	Confirm bool `json:"confirm"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type FollowupDTO struct {
	Index    int      `json:"index"`
	Layer    string   `json:"layer"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type AnswerDTO struct {
	SelectedIndex int    `json:"selected_index"`
	SelectedText  string `json:"selected_text"`
	CustomText    string `json:"custom_text"`
	Layer         string `json:"layer"`
}

type SessionDTO struct {
	ID               string              `json:"session_id"`
	Status           SessionStatus       `json:"status"`
	CurrentStep      int                 `json:"current_step"`
	DetectedCaseType string              `json:"detected_case_type,omitempty"`
	ForcedCaseType   string              `json:"forced_case_type,omitempty"`
	LegalPathGroup   string              `json:"legal_path_group,omitempty"`
	ScenarioOptions  []string            `json:"scenario_options,omitempty"`
	SelectedScenario string              `json:"selected_scenario,omitempty"`
	CustomScenario   string              `json:"custom_scenario,omitempty"`
	Followups        []FollowupDTO       `json:"followups,omitempty"`
	Answers          []AnswerDTO         `json:"answers,omitempty"`
	PathCandidate    *MultiPathCandidate `json:"path_candidate,omitempty"`
	CaseSummary      string              `json:"case_summary,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// SubmitInputResult is returned by the initial-input transition: exactly one
// of the three outcomes is set.
type SubmitInputResult struct {
	// NonLegal reports the recognized "not a legal question" terminal outcome.
	NonLegal bool `json:"non_legal"`
	// PathCandidate is non-nil when the flow suspended awaiting path selection.
	PathCandidate *MultiPathCandidate `json:"path_candidate,omitempty"`
	// Session reflects the state after the transition.
	Session *Session `json:"session"`
}

type OpinionSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type OpinionDTO struct {
	SessionID string           `json:"session_id"`
	Raw       string           `json:"raw"`
	Sections  []OpinionSection `json:"sections"`
}
