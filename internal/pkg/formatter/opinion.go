// Package formatter splits the generated legal opinion into display sections.
package formatter

import (
	"regexp"
	"strings"

	"github.com/lawai/consult-backend/internal/entity"
)

var (
	sectionSplitRe = regexp.MustCompile(`\n([一二三四五]、)`)
	sectionHeadRe  = regexp.MustCompile(`^([一二三四五]、[^:：]+)[:：]?`)
	bareTitleRe    = regexp.MustCompile(`^法律意見書[\s\-–—]*$`)
)

// SectionOpinion splits free-form opinion text on CJK ordinal headings
// (一、二、…). Text before the first heading becomes an untitled section;
// bare "法律意見書" title lines are dropped.
func SectionOpinion(text string) []entity.OpinionSection {
	parts := splitOnHeadings(text)

	sections := make([]entity.OpinionSection, 0, len(parts))
	for _, raw := range parts {
		section := strings.TrimSpace(raw)
		if section == "" {
			continue
		}
		if section == "法律意見書" || section == "【法律意見書】" || bareTitleRe.MatchString(section) {
			continue
		}

		if m := sectionHeadRe.FindStringSubmatch(section); m != nil {
			body := strings.TrimSpace(strings.TrimPrefix(section, m[0]))
			sections = append(sections, entity.OpinionSection{Title: m[1], Body: body})
			continue
		}
		sections = append(sections, entity.OpinionSection{Body: section})
	}
	return sections
}

// splitOnHeadings splits before each "\n一、"-style marker, keeping the
// marker with the section that follows it.
func splitOnHeadings(text string) []string {
	idxs := sectionSplitRe.FindAllStringSubmatchIndex(text, -1)
	if len(idxs) == 0 {
		return []string{text}
	}

	parts := make([]string, 0, len(idxs)+1)
	prev := 0
	for _, loc := range idxs {
		// loc[2] is the start of the ordinal marker, after the newline.
		parts = append(parts, text[prev:loc[2]])
		prev = loc[2]
	}
	parts = append(parts, text[prev:])
	return parts
}
