package entity

// Classification statuses returned by the generation endpoint. The model
// answers in Traditional Chinese; these literals are part of the wire contract.
const (
	GenStatusLegal    = "法律問題"
	GenStatusNonLegal = "非法律問題"
)

// ChatMessage is one message of the chat-completion envelope.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the request envelope shared by the scenario and
// follow-up generation endpoints.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// ChatCompletionResponse mirrors the subset of the completion response the
// service relies on: choices[0].message.content.
type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// Content returns the first choice's message content, or "" when absent.
func (r *ChatCompletionResponse) Content() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// ScenarioPayload is the JSON document expected inside the completion content
// for scenario generation.
type ScenarioPayload struct {
	Status    string   `json:"status"`
	CaseType  string   `json:"caseType"`
	Scenarios []string `json:"scenarios"`
}

// FollowupQuestion is one follow-up block inside FollowupPayload.
type FollowupQuestion struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
}

// FollowupPayload is the JSON document expected inside the completion content
// for follow-up generation.
type FollowupPayload struct {
	Status    string             `json:"status"`
	Questions []FollowupQuestion `json:"questions"`
}

// ScenarioResult is the gateway's validated scenario-generation outcome.
// NonLegal is a recognized terminal outcome, not an error.
type ScenarioResult struct {
	NonLegal  bool
	CaseType  string
	Scenarios []string
}

// OpinionAnswer is the per-follow-up answer pair sent to the opinion endpoint.
type OpinionAnswer struct {
	SelectedText string `json:"selectedText"`
	CustomText   string `json:"customText"`
}

// OpinionRequest is the bespoke request body of the final opinion endpoint.
type OpinionRequest struct {
	ChosenScenario string          `json:"chosenScenario"`
	Followups      []FollowupItem  `json:"followups"`
	AnswersMeta    []OpinionAnswer `json:"answersMeta"`
}
