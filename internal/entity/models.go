package entity

import (
	"fmt"
	"time"
)

type SessionStatus string

// Session status represents the current state of the consultation interview workflow
const (
	SessionStatusInitial       SessionStatus = "INITIAL"        // Waiting for the user's problem description
	SessionStatusPathSelection SessionStatus = "PATH_SELECTION" // Suspended: input matched several legal tracks
	SessionStatusScenario      SessionStatus = "SCENARIO"       // Scenario focus step (three AI-generated angles)
	SessionStatusFollowup      SessionStatus = "FOLLOWUP"       // One of the three follow-up questions
	SessionStatusDisclaimer    SessionStatus = "DISCLAIMER"     // Awaiting disclaimer acknowledgment
	SessionStatusFinalOpinion  SessionStatus = "FINAL_OPINION"  // Opinion generated, session complete
)

// Step numbering mirrors the interview progression: -1 initial input,
// 0 scenario focus, 1..3 follow-up questions, 4 final opinion.
const (
	StepInitial       = -1
	StepScenario      = 0
	StepFirstFollowup = 1
	StepLastFollowup  = 3
	StepFinal         = 4
)

// FollowupCount is fixed by contract: exactly three follow-up questions,
// each with exactly three options.
const (
	FollowupCount = 3
	OptionCount   = 3
)

// AnswerLayer tags each follow-up ordinal with its reasoning layer.
// Purely categorical, used for presentation and the persisted snapshot.
type AnswerLayer string

const (
	LayerFact           AnswerLayer = "fact"
	LayerResponsibility AnswerLayer = "resp"
	LayerConclusion     AnswerLayer = "dmg"
)

// LayerForFollowup returns the fixed layer for a follow-up index (0..2).
func LayerForFollowup(i int) AnswerLayer {
	switch i {
	case 0:
		return LayerFact
	case 1:
		return LayerResponsibility
	default:
		return LayerConclusion
	}
}

// LayerLabel returns the display label for a layer.
func (l AnswerLayer) Label() string {
	switch l {
	case LayerFact:
		return "事實"
	case LayerResponsibility:
		return "責任"
	default:
		return "結論"
	}
}

// ScenarioSet holds the three candidate scenario angles plus the user's choice.
// Selected and Custom may both be stored; at most one drives generation
// (Selected wins), and a non-empty combination is required to advance.
type ScenarioSet struct {
	Options  []string `json:"options"`
	Selected string   `json:"selected_scenario"`
	Custom   string   `json:"custom_scenario"`
}

// Chosen returns the scenario text that drives downstream generation.
func (s *ScenarioSet) Chosen() string {
	if s.Selected != "" {
		return s.Selected
	}
	return s.Custom
}

// FollowupItem is one of the three follow-up questions: a main question plus
// up to two sub-questions newline-joined, and exactly three selectable options.
type FollowupItem struct {
	Question string   `json:"q"`
	Options  []string `json:"options"`
}

// AnswerMeta tracks the user's answer to the follow-up at the same ordinal.
type AnswerMeta struct {
	SelectedIndex int         `json:"selected_index"` // -1 = none, else 0..2
	SelectedText  string      `json:"selected_text"`
	CustomText    string      `json:"custom_text"`
	Layer         AnswerLayer `json:"layer"`
}

// Answered reports whether this follow-up satisfies the advance precondition.
func (m *AnswerMeta) Answered() bool {
	return m.SelectedIndex >= 0 || m.CustomText != ""
}

// LegalPath is one candidate track offered during multi-path disambiguation.
type LegalPath struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MultiPathCandidate is the disambiguation offer shown when the initial input
// plausibly spans several legal tracks. Ephemeral: it exists only until the
// user picks a path or the flow proceeds without one matching.
type MultiPathCandidate struct {
	Group string      `json:"group"`
	Hint  string      `json:"hint"`
	Paths []LegalPath `json:"paths"`
}

// Session is the single mutable interview instance. It exclusively owns its
// ScenarioSet and the ordered FollowupItem/AnswerMeta pairs; restart replaces
// them wholesale, never partially.
type Session struct {
	ID              string        `json:"session_id"`
	Status          SessionStatus `json:"status"`
	CurrentStep     int           `json:"current_step"`
	InitialQuestion string        `json:"initial_question"`

	DetectedCaseType string `json:"detected_case_type"`
	CaseTypeKey      string `json:"case_type_key"`
	ForcedCaseType   string `json:"forced_case_type"`
	LegalPath        string `json:"legal_path"`
	LegalPathGroup   string `json:"legal_path_group"`
	PickedTemplate   string `json:"picked_template"`

	Scenario  ScenarioSet    `json:"scenario"`
	Followups []FollowupItem `json:"followups"`
	Answers   []AnswerMeta   `json:"answers_meta"`

	Opinion string `json:"opinion,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reset collapses the session back to the initial input state, discarding the
// scenario set, follow-ups, answers and any disambiguation choice.
func (s *Session) Reset() {
	s.Status = SessionStatusInitial
	s.CurrentStep = StepInitial
	s.InitialQuestion = ""
	s.DetectedCaseType = ""
	s.CaseTypeKey = ""
	s.ForcedCaseType = ""
	s.LegalPath = ""
	s.LegalPathGroup = ""
	s.PickedTemplate = ""
	s.Scenario = ScenarioSet{}
	s.Followups = nil
	s.Answers = nil
	s.Opinion = ""
}

// FollowupIndex returns the zero-based follow-up ordinal for the current step.
func (s *Session) FollowupIndex() (int, error) {
	if s.CurrentStep < StepFirstFollowup || s.CurrentStep > StepLastFollowup {
		return 0, fmt.Errorf("%w: step %d is not a follow-up step", ErrInvalidSessionStatus, s.CurrentStep)
	}
	return s.CurrentStep - 1, nil
}

// Snapshot is the durable persistence payload written after every
// state-mutating action (best-effort, last-write-wins).
type Snapshot struct {
	TS             int64          `json:"ts"`
	CaseType       string         `json:"caseType"`
	PickedTemplate string         `json:"pickedTemplate"`
	LegalPath      string         `json:"legalPath"`
	LegalPathGroup string         `json:"legalPathGroup"`
	Scenario       ScenarioSet    `json:"scenario"`
	AnswersMeta    []AnswerMeta   `json:"answersMeta"`
	Followups      []FollowupItem `json:"followups"`
	Session        *Session       `json:"session"`
}

// NewSnapshot derives the persisted meta from the current session state.
func NewSnapshot(s *Session, now time.Time) *Snapshot {
	return &Snapshot{
		TS:             now.UnixMilli(),
		CaseType:       s.DetectedCaseType,
		PickedTemplate: s.PickedTemplate,
		LegalPath:      s.ForcedCaseType,
		LegalPathGroup: s.LegalPathGroup,
		Scenario:       s.Scenario,
		AnswersMeta:    s.Answers,
		Followups:      s.Followups,
		Session:        s,
	}
}

// ContactRequest is a lawyer-contact submission forwarded to the email service.
type ContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Line  string `json:"line"`
	Text  string `json:"text"`
}
