package classify

import "regexp"

// SubtypeRule ranks a candidate subtype template for a classified case type.
// Match is required; Keywords add +1 each when they also hit; Score overrides
// the default base score of 1; Priority breaks score ties.
type SubtypeRule struct {
	Name     string
	Match    *regexp.Regexp
	Keywords []*regexp.Regexp
	Score    int
	Priority int
}

// subtypeScore is the outcome of scoring one rule against a text. ok=false is
// the non-match variant; predicate failures map here instead of propagating.
type subtypeScore struct {
	ok       bool
	score    int
	priority int
}

// ScoreSubtype scores a subtype rule against the text. Fails closed: a nil
// rule, missing pattern, non-matching pattern or panicking predicate all
// yield a non-match.
func ScoreSubtype(st *SubtypeRule, text string) (matched bool, score, priority int) {
	meta := scoreSubtype(st, text)
	return meta.ok, meta.score, meta.priority
}

func scoreSubtype(st *SubtypeRule, text string) (meta subtypeScore) {
	defer func() {
		if recover() != nil {
			meta = subtypeScore{}
		}
	}()

	if st == nil || st.Match == nil || !st.Match.MatchString(text) {
		return subtypeScore{}
	}

	score := st.Score
	if score == 0 {
		score = 1
	}
	for _, kw := range st.Keywords {
		if kw != nil && safeKeywordMatch(kw, text) {
			score++
		}
	}
	return subtypeScore{ok: true, score: score, priority: st.Priority}
}

func safeKeywordMatch(kw *regexp.Regexp, text string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return kw.MatchString(text)
}

// PickBestSubtype scores all candidates and returns the one with the strictly
// highest score, breaking ties by strictly highest priority; the first seen
// wins when still tied. Returns nil when the list is empty or nothing matches.
func PickBestSubtype(subtypes []*SubtypeRule, text string) *SubtypeRule {
	if len(subtypes) == 0 {
		return nil
	}

	var best *SubtypeRule
	var bestMeta subtypeScore
	for _, st := range subtypes {
		meta := scoreSubtype(st, text)
		if !meta.ok {
			continue
		}
		if best == nil || meta.score > bestMeta.score ||
			(meta.score == bestMeta.score && meta.priority > bestMeta.priority) {
			best = st
			bestMeta = meta
		}
	}
	return best
}
