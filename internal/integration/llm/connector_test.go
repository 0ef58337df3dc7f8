package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/config"
	"github.com/lawai/consult-backend/internal/entity"
	pkgRetry "github.com/lawai/consult-backend/internal/pkg/retry"
	pkghttp "github.com/lawai/consult-backend/pkg/http"
)

func testConnector(url string) *Connector {
	timeouts := config.HTTPClientConfig{
		URL:                   url,
		RequestTimeout:        5 * time.Second,
		DialTimeout:           5 * time.Second,
		KeepAlive:             5 * time.Second,
		IdleConnTimeout:       5 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
	}

	cfg := config.LLMConnectorConfig{
		HTTPClientConfig: timeouts,
		ChatEndpoint:     "/airobot/api/generate",
		OpinionEndpoint:  "/aireport/api/opinion",
		Model:            "gpt-4o",
		Temperature:      0.2,
		Retry: pkgRetry.RetryConfig{
			Attempts: 1,
			Delay:    time.Millisecond,
			MaxDelay: time.Millisecond,
		},
	}

	return NewConnector(cfg, zap.NewNop())
}

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestGenerateScenarios(t *testing.T) {
	payload := entity.ScenarioPayload{
		Status:   entity.GenStatusLegal,
		CaseType: "租賃",
		Scenarios: []string{
			"我租屋期滿搬離後，房東以牆面污損為由拒絕返還押金兩萬元，我已拍照存證並保留租約與對話紀錄，目前多次聯繫房東均未獲具體回應，想確認押金返還的主張方式與後續程序。",
			"房東不退押金",
			"我已完成點交，房東口頭承諾返還押金卻一再拖延，我保留了點交清單與通訊軟體對話內容，目前考慮寄發存證信函，想了解後續法律程序與可能的處理途徑以及相關費用負擔。",
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	srv := chatServer(t, "```json\n"+string(raw)+"\n```")
	defer srv.Close()

	result, err := testConnector(srv.URL).GenerateScenarios(context.Background(), "房東不退押金", "")
	require.NoError(t, err)

	assert.False(t, result.NonLegal)
	assert.Equal(t, "租賃", result.CaseType)
	require.Len(t, result.Scenarios, 3)
	for _, s := range result.Scenarios {
		n := len([]rune(s))
		assert.GreaterOrEqual(t, n, 80)
		assert.LessOrEqual(t, n, 100)
	}
}

func TestGenerateScenariosNonLegal(t *testing.T) {
	srv := chatServer(t, `{"status":"非法律問題","caseType":"","scenarios":[]}`)
	defer srv.Close()

	result, err := testConnector(srv.URL).GenerateScenarios(context.Background(), "今天天氣真好", "")
	require.NoError(t, err)
	assert.True(t, result.NonLegal)
	assert.Empty(t, result.Scenarios)
}

func TestGenerateScenariosFormatError(t *testing.T) {
	srv := chatServer(t, "抱歉，我不確定您的意思。")
	defer srv.Close()

	_, err := testConnector(srv.URL).GenerateScenarios(context.Background(), "房東不退押金", "")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestGenerateScenariosWrongArity(t *testing.T) {
	srv := chatServer(t, `{"status":"法律問題","caseType":"租賃","scenarios":["只有一個"]}`)
	defer srv.Close()

	_, err := testConnector(srv.URL).GenerateScenarios(context.Background(), "房東不退押金", "")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestGenerateScenariosNetworkError(t *testing.T) {
	srv := chatServer(t, "{}")
	srv.Close() // connection refused

	_, err := testConnector(srv.URL).GenerateScenarios(context.Background(), "房東不退押金", "")

	var netErr *pkghttp.NetworkError
	require.ErrorAs(t, err, &netErr)
	var formatErr *FormatError
	assert.False(t, errors.As(err, &formatErr))
}

func TestGenerateFollowups(t *testing.T) {
	opt := "我與對方簽有書面契約，爭議金額約兩萬元，契約中對相關項目有明確記載，我保留了契約正本、付款紀錄與對話截圖，目前對方對我的主張已讀不回，尚未進入任何正式程序處理。"
	payload := entity.FollowupPayload{
		Status: entity.GenStatusLegal,
		Questions: []entity.FollowupQuestion{
			{Q: "第一組\n（1）子問題一？\n（2）子問題二？", Options: []string{opt, opt, opt}},
			{Q: "第二組\n（1）子問題一？\n（2）子問題二？", Options: []string{opt, opt, opt}},
			{Q: "第三組\n（1）子問題一？\n（2）子問題二？", Options: []string{opt, opt, opt}},
		},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	srv := chatServer(t, string(raw))
	defer srv.Close()

	followups, err := testConnector(srv.URL).GenerateFollowups(context.Background(), "已確認情境", "租賃")
	require.NoError(t, err)

	require.Len(t, followups, 3)
	for _, f := range followups {
		assert.NotEmpty(t, f.Question)
		assert.Len(t, f.Options, 3)
	}
}

func TestGenerateFollowupsWrongCount(t *testing.T) {
	srv := chatServer(t, `{"status":"法律問題","questions":[{"q":"只有一組","options":["一","二","三"]}]}`)
	defer srv.Close()

	_, err := testConnector(srv.URL).GenerateFollowups(context.Background(), "已確認情境", "租賃")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}

func TestGenerateOpinion(t *testing.T) {
	srv := chatServer(t, "法律意見書\n一、案件事實：經過。\n二、結論：建議調解。")
	defer srv.Close()

	opinion, err := testConnector(srv.URL).GenerateOpinion(context.Background(), &entity.OpinionRequest{
		ChosenScenario: "已確認情境",
	})
	require.NoError(t, err)
	assert.Contains(t, opinion, "一、案件事實")
}

func TestGenerateOpinionEmpty(t *testing.T) {
	srv := chatServer(t, "   ")
	defer srv.Close()

	_, err := testConnector(srv.URL).GenerateOpinion(context.Background(), &entity.OpinionRequest{})

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}
