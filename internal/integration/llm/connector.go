package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/config"
	"github.com/lawai/consult-backend/internal/entity"
	"github.com/lawai/consult-backend/internal/integration/common"
	"github.com/lawai/consult-backend/internal/pkg/textnorm"
	pkghttp "github.com/lawai/consult-backend/pkg/http"
)

type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// GenerateScenarios classifies the user's input and produces the three
// scenario angles. A non-legal classification is a recognized outcome, not
// an error.
func (c *Connector) GenerateScenarios(ctx context.Context, input, forcedCaseType string) (
	*entity.ScenarioResult, error,
) {
	ctxzap.Info(ctx, "generating scenarios via LLM service")

	content, err := c.chat(ctx, scenarioPrompt(input, forcedCaseType))
	if err != nil {
		return nil, err
	}

	jsonText, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	var payload entity.ScenarioPayload
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, &FormatError{Reason: "content is not valid JSON", Raw: content}
	}

	if payload.Status == entity.GenStatusNonLegal {
		ctxzap.Info(ctx, "input classified as non-legal")
		return &entity.ScenarioResult{NonLegal: true}, nil
	}

	if payload.Status != entity.GenStatusLegal || len(payload.Scenarios) != entity.OptionCount {
		return nil, &FormatError{Reason: "unexpected scenario payload shape", Raw: content}
	}

	scenarios := textnorm.EnforceOptionLengths(payload.Scenarios, textnorm.OptionMinLen, textnorm.OptionMaxLen)
	if len(scenarios) != entity.OptionCount {
		return nil, &FormatError{Reason: "scenario options empty after normalization", Raw: content}
	}

	ctxzap.Info(ctx, "scenarios generated successfully", zap.String("case_type", payload.CaseType))

	return &entity.ScenarioResult{
		CaseType:  strings.TrimSpace(payload.CaseType),
		Scenarios: scenarios,
	}, nil
}

// GenerateFollowups produces the three follow-up questions for the chosen
// scenario, each with exactly three length-normalized options.
func (c *Connector) GenerateFollowups(ctx context.Context, chosenScenario, caseType string) (
	[]entity.FollowupItem, error,
) {
	ctxzap.Info(ctx, "generating follow-up questions via LLM service")

	content, err := c.chat(ctx, followupPrompt(chosenScenario, caseType))
	if err != nil {
		return nil, err
	}

	jsonText, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	var payload entity.FollowupPayload
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, &FormatError{Reason: "content is not valid JSON", Raw: content}
	}

	if payload.Status != entity.GenStatusLegal || len(payload.Questions) != entity.FollowupCount {
		return nil, &FormatError{Reason: "unexpected follow-up payload shape", Raw: content}
	}

	followups := make([]entity.FollowupItem, 0, entity.FollowupCount)
	for _, q := range payload.Questions {
		options := textnorm.EnforceOptionLengths(q.Options, textnorm.OptionMinLen, textnorm.OptionMaxLen)
		if len(options) != entity.OptionCount {
			return nil, &FormatError{Reason: "follow-up options empty after normalization", Raw: content}
		}
		followups = append(followups, entity.FollowupItem{
			Question: strings.TrimSpace(q.Q),
			Options:  options,
		})
	}

	ctxzap.Info(ctx, "follow-up questions generated successfully", zap.Int("count", len(followups)))

	return followups, nil
}

// GenerateOpinion produces the final legal opinion text from the confirmed
// scenario and the three answers.
func (c *Connector) GenerateOpinion(ctx context.Context, req *entity.OpinionRequest) (string, error) {
	ctxzap.Info(ctx, "generating final opinion via LLM service")

	var resp entity.ChatCompletionResponse
	err := c.doWithRetry(ctx, func() error {
		resp = entity.ChatCompletionResponse{}
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.OpinionEndpoint, req, &resp)
	})
	if err != nil {
		return "", err
	}

	opinion := strings.TrimSpace(resp.Content())
	if opinion == "" {
		return "", &FormatError{Reason: "empty opinion content"}
	}

	ctxzap.Info(ctx, "final opinion generated successfully", zap.Int("length", len(opinion)))

	return opinion, nil
}

// chat sends a single-user-message completion request and returns the raw
// content of the first choice.
func (c *Connector) chat(ctx context.Context, prompt string) (string, error) {
	req := &entity.ChatCompletionRequest{
		Model:       c.config.Model,
		Messages:    []entity.ChatMessage{{Role: "user", Content: prompt}},
		Temperature: c.config.Temperature,
	}

	var resp entity.ChatCompletionResponse
	err := c.doWithRetry(ctx, func() error {
		resp = entity.ChatCompletionResponse{}
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.ChatEndpoint, req, &resp)
	})
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(resp.Content())
	if content == "" {
		return "", &FormatError{Reason: "completion has no choices"}
	}

	return content, nil
}

// doWithRetry retries transport-level failures only. Format and HTTP errors
// would fail identically on a replay.
func (c *Connector) doWithRetry(ctx context.Context, fn func() error) error {
	opts := append(
		c.config.Retry.ToRetryOptions(),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			var netErr *pkghttp.NetworkError
			return errors.As(err, &netErr)
		}),
	)

	return retry.Do(fn, opts...)
}
