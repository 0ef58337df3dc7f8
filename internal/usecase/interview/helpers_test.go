package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lawai/consult-backend/internal/entity"
)

func TestBuildCaseSummary(t *testing.T) {
	session := &entity.Session{
		Scenario: entity.ScenarioSet{Selected: "房東不退押金"},
		Answers: []entity.AnswerMeta{
			{SelectedText: "我有書面契約"},
			{SelectedText: "押金兩萬元", CustomText: "忽略我"}, // picked wins over custom
			{CustomText: "已寄存證信函"},
		},
	}

	got := BuildCaseSummary(session)
	assert.Equal(t, "本案初步情況概述為：房東不退押金；我有書面契約；押金兩萬元；已寄存證信函。", got)
}

func TestBuildCaseSummaryEmpty(t *testing.T) {
	assert.Empty(t, BuildCaseSummary(&entity.Session{}))

	session := &entity.Session{
		Answers: []entity.AnswerMeta{{SelectedIndex: -1}},
	}
	assert.Empty(t, BuildCaseSummary(session))
}

func TestBuildCaseSummaryTruncates(t *testing.T) {
	session := &entity.Session{
		Scenario: entity.ScenarioSet{Custom: strings.Repeat("長", 300)},
	}

	got := BuildCaseSummary(session)
	runes := []rune(got)
	assert.Len(t, runes, 177)
	assert.Equal(t, "…", string(runes[len(runes)-1]))
}
