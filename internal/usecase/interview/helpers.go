package interview

import (
	"strings"

	"github.com/lawai/consult-backend/internal/entity"
)

const (
	summaryMaxLen = 180
	summaryCutLen = 176
)

// BuildCaseSummary composes the one-sentence case overview from the chosen
// scenario and the recorded answers (picked option first, custom fallback).
// Lengths are in runes; overlong summaries are cut and ellipsized.
func BuildCaseSummary(session *entity.Session) string {
	var parts []string

	if cs := strings.TrimSpace(session.Scenario.Chosen()); cs != "" {
		parts = append(parts, cs)
	}

	for _, m := range session.Answers {
		picked := strings.TrimSpace(m.SelectedText)
		custom := strings.TrimSpace(m.CustomText)

		if picked != "" {
			parts = append(parts, picked)
		} else if custom != "" {
			parts = append(parts, custom)
		}
	}

	if len(parts) == 0 {
		return ""
	}

	sentence := "本案初步情況概述為：" + strings.Join(parts, "；") + "。"
	if runes := []rune(sentence); len(runes) > summaryMaxLen {
		sentence = string(runes[:summaryCutLen]) + "…"
	}
	return sentence
}
