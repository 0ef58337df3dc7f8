package llm

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/lawai/consult-backend/internal/entity"
)

// MockConnector is the canned LLM implementation used for local development
// and tests.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// GenerateScenarios returns a canned rental-deposit case. Inputs mentioning
// the weather are classified non-legal so the reset path stays testable
// without a live model.
func (m *MockConnector) GenerateScenarios(ctx context.Context, input, forcedCaseType string) (
	*entity.ScenarioResult, error,
) {
	ctxzap.Info(ctx, "[MOCK] generating scenarios via LLM")

	if strings.Contains(input, "天氣") {
		return &entity.ScenarioResult{NonLegal: true}, nil
	}

	caseType := "租賃"
	if forcedCaseType != "" {
		caseType = forcedCaseType
	}

	resp := &entity.ScenarioResult{
		CaseType: caseType,
		Scenarios: []string{
			"我租屋期滿搬離後，房東以牆面污損與清潔不足為由拒絕返還押金兩萬元，我已拍照存證並保留租約與對話紀錄，目前多次聯繫房東均未獲具體回應，想確認押金返還的主張方式。",
			"我與房東就押金扣除項目認知不一致，房東主張修繕費用應由我負擔，但租約並未明確約定此項目，我手邊留有點交時的照片與匯款紀錄，近期溝通已陷入僵局，想釐清雙方責任歸屬。",
			"我已將房屋回復原狀並完成點交，房東口頭承諾近期返還押金卻一再拖延，我保留了點交清單與通訊軟體對話內容，目前考慮寄發存證信函，想了解後續程序與可能的處理途徑。",
		},
	}

	ctxzap.Info(ctx, "[MOCK] scenarios generated", zap.String("case_type", resp.CaseType))
	return resp, nil
}

// GenerateFollowups returns three canned fact-finding questions.
func (m *MockConnector) GenerateFollowups(ctx context.Context, chosenScenario, caseType string) (
	[]entity.FollowupItem, error,
) {
	ctxzap.Info(ctx, "[MOCK] generating follow-up questions via LLM")

	followups := []entity.FollowupItem{
		{
			Question: "本組想釐清事件的基本事實經過。\n（1）雙方是否有書面約定？\n（2）目前爭議金額大約是多少？",
			Options: []string{
				"我與對方簽有書面契約，爭議金額約兩萬元，契約中對相關項目有明確記載，我保留了契約正本、付款紀錄與對話截圖，目前對方對我的主張已讀不回，尚未進入任何正式程序處理。",
				"我與對方僅有口頭約定，爭議金額約五萬元，沒有書面文件可以佐證，但我留有匯款紀錄與部分通訊內容，對方承認部分事實但對金額有爭執，目前仍在私下協商階段尚未破局。",
				"我與對方有書面契約但內容簡略，爭議金額超過十萬元，關鍵項目未明確約定，我另外保留了現場照片與證人聯絡方式，對方態度強硬拒絕協商，我正考慮採取正式法律程序處理。",
			},
		},
		{
			Question: "本組想確認雙方的責任與過失分配。\n（1）對方對爭議的說法是什麼？\n（2）您認為自己是否也有應注意之處？",
			Options: []string{
				"對方主張損害是我造成的，應由我全額負擔，但我認為是自然損耗，我方已盡到一般注意義務，並留有使用期間的紀錄照片，雙方對責任比例認知落差很大，目前沒有第三方介入評估。",
				"對方承認部分責任但主張我也有過失，要求各自分擔一半費用，我認為比例不合理，因為關鍵環節是對方未盡告知義務，我保留了當時的通知紀錄，希望由專業第三方協助釐清責任歸屬。",
				"對方完全否認責任並反過來求償，我方已蒐集契約、單據與對話紀錄證明履約過程，另有證人可以作證，雙方責任認定僵持不下，我擔心時間拖久證據保存與請求時效會出現問題。",
			},
		},
		{
			Question: "本組想了解損害範圍與您期望的處理結果。\n（1）目前實際損失包含哪些項目？\n（2）您希望達成什麼結果？",
			Options: []string{
				"我的損失主要是押金兩萬元與搬遷衍生費用，均有單據可證，我希望對方全額返還並負擔部分衍生費用，若協商不成願意先聲請調解，盡量避免直接進入訴訟程序增加雙方成本。",
				"我的損失包含金錢與精神壓力，金額合計約五萬元，部分項目舉證較困難，我希望至少取回主要款項，並讓對方承諾不再有類似行為，必要時會請律師發函並評估提起民事訴訟。",
				"我的實際損失仍在擴大，除既有費用外每月還有持續支出，我已逐筆記錄並保留憑證，希望盡速透過法律程序止損並一次解決爭議，也想了解聲請假扣押保全對方財產的可行性。",
			},
		},
	}

	ctxzap.Info(ctx, "[MOCK] follow-up questions generated", zap.Int("count", len(followups)))
	return followups, nil
}

// GenerateOpinion returns a canned opinion with the ordinal section headings
// the formatter expects.
func (m *MockConnector) GenerateOpinion(ctx context.Context, req *entity.OpinionRequest) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating final opinion via LLM")

	opinion := `法律意見書
一、案件事實概述：依您所述，本案為租賃關係終止後之押金返還爭議，您已完成搬遷與點交，出租人以房屋污損為由拒絕返還押金，雙方就扣除項目與責任歸屬存有爭執。
二、法律關係分析：押金之目的在擔保租賃債務之履行，租賃關係消滅且無應擔保之債務時，承租人得請求返還。出租人主張扣抵者，應就損害事實與可歸責事由負舉證責任，自然損耗原則上不在承租人負擔範圍。
三、證據與程序建議：建議保全租約、點交紀錄、照片與通訊內容，先以存證信函催告返還，未獲置理時可聲請鄉鎮市調解或提起小額訴訟程序處理。
四、風險提醒：實際結果仍取決於個案證據與法院認定，本意見僅供初步參考。
五、結論：本案請求返還押金具相當依據，建議循催告、調解、訴訟之順序逐步處理，並注意相關請求權時效。`

	ctxzap.Info(ctx, "[MOCK] final opinion generated", zap.Int("length", len(opinion)))
	return opinion, nil
}
