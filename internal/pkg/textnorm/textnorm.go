// Package textnorm normalizes free-text answer options into a fixed length
// band. All lengths are measured in runes: the payloads are Traditional
// Chinese and byte lengths would triple every bound.
package textnorm

import "strings"

const (
	// DefaultMinLen is the minimum option length for EnsureMinLen.
	DefaultMinLen = 25

	// Option length band enforced on every AI-returned option string.
	OptionMinLen = 80
	OptionMaxLen = 100
)

// Elaboration suffixes appended to short options. The second is a fallback
// when the first append still leaves the text under the minimum.
const (
	shortPad     = "，並補充時間、金額與相關證據細節"
	shortPadTail = "以利判斷"

	// optionPad closes the gap up to the 80-rune floor. One append covers any
	// realistic gap; pathological min/max pairs fall back to a hard cut.
	optionPad = "，並補充時間、地點、金額、當事人關係與目前處理情況的具體細節，以利後續法律分析與律師判斷。"
)

// EnsureMinLen trims text and pads it up to minLen runes. Deterministic and
// total; idempotent for inputs already at or above minLen.
func EnsureMinLen(text string, minLen int) string {
	s := strings.TrimSpace(text)
	if len([]rune(s)) >= minLen {
		return s
	}
	out := strings.TrimSpace(s + shortPad)
	if len([]rune(out)) >= minLen {
		return out
	}
	return strings.TrimSpace(out + shortPadTail)
}

// EnforceOptionLengths trims every entry, drops empties, and forces each
// survivor into [minLen, maxLen] runes: overlong entries are hard-cut at
// maxLen, short entries are padded with a fixed elaboration phrase and re-cut
// if an append overshoots the cap. The hard cut is not word-aware; the only
// hard guarantee is that no result exceeds maxLen.
func EnforceOptionLengths(list []string, minLen, maxLen int) []string {
	out := make([]string, 0, len(list))
	for _, raw := range list {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		out = append(out, fitOption(s, minLen, maxLen))
	}
	return out
}

func fitOption(s string, minLen, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	for len(runes) < minLen {
		runes = append(runes, []rune(optionPad)...)
		if len(runes) > maxLen {
			runes = runes[:maxLen]
			break
		}
	}
	return string(runes)
}
