package classify

import (
	"regexp"
	"strings"

	"github.com/lawai/consult-backend/internal/entity"
)

// multiPathRule offers a choice of legal tracks when an input plausibly
// belongs to more than one. Predicates require co-occurring keyword classes
// so that a single stray keyword does not trigger the gate.
type multiPathRule struct {
	group string
	match func(s string) bool
	paths []entity.LegalPath
}

const multiPathHint = "你的描述可能同時落在多個法律方向。先選擇你現在最想聚焦的方向（後續仍可再切換）。"

var (
	infidelityRe = regexp.MustCompile(`外遇|出軌|劈腿|偷吃|不忠|通姦|小三|小王|第三者|婚外情`)
	spouseRe     = regexp.MustCompile(`太太|老婆|妻子|妻|老公|先生|丈夫|配偶|另一半|伴侶`)
	moneyRe      = regexp.MustCompile(`借|欠|貸款|利息|本息|還款|催討|對方不還|匯款|轉帳|帳戶|詐騙|騙|投資|代購|保證獲利`)
	housingRe    = regexp.MustCompile(`漏水|滲水|壁癌|管線|修繕|鄰損|噪音|惡鄰|大樓|管委會|公設|公共區域|頂樓|陽台`)
)

// multiPathRules is evaluated strictly in order; the first matching rule with
// at least two paths wins. No cross-rule scoring.
var multiPathRules = []multiPathRule{
	{
		group: "婚姻/外遇",
		match: func(s string) bool { return infidelityRe.MatchString(s) && spouseRe.MatchString(s) },
		paths: []entity.LegalPath{
			{Key: "離婚", Title: "離婚相關", Description: "先釐清是否具離婚事由、是否要走協議/調解/訴訟，以及子女/財產/扶養等安排。"},
			{Key: "侵害配偶權", Title: "侵害配偶權", Description: "聚焦第三者/配偶不法侵害之證據、精神慰撫金（賠償）請求，以及訴訟與和解策略。"},
		},
	},
	{
		group: "金錢/借貸/詐騙",
		match: func(s string) bool { return moneyRe.MatchString(s) },
		paths: []entity.LegalPath{
			{Key: "借貸", Title: "借貸/清償請求", Description: "以借貸合意與金流證明為主，先釐清借款事實、利息約定與催討紀錄。"},
			{Key: "詐欺", Title: "詐欺/刑事告訴", Description: "以詐欺構成與報案資料為主，先釐清對方話術、交付原因、收款帳戶與證據保存。"},
		},
	},
	{
		group: "房屋/鄰損/公寓大廈",
		match: func(s string) bool { return housingRe.MatchString(s) },
		paths: []entity.LegalPath{
			{Key: "房屋漏水", Title: "房屋漏水/修繕", Description: "先釐清漏水來源、修繕責任、估價與通知紀錄，並做證據保全（照片/鑑定）。"},
			{Key: "公寓大廈", Title: "管委會/公設爭議", Description: "聚焦規約/區分所有權人會議決議、管委會權限，以及管理費與修繕分擔。"},
		},
	},
}

// DetectMultiPath returns a disambiguation candidate when the text plausibly
// spans several legal tracks, or nil when the text is empty, no rule matches,
// or a track has already been forced for the session. A forced track makes
// this idempotent: once disambiguated, the session is never re-prompted.
func DetectMultiPath(text, forcedCaseType string) *entity.MultiPathCandidate {
	s := trimmed(text)
	if s == "" || trimmed(forcedCaseType) != "" {
		return nil
	}

	for _, rule := range multiPathRules {
		if !safeMatch(rule.match, s) {
			continue
		}
		paths := make([]entity.LegalPath, 0, len(rule.paths))
		for _, p := range rule.paths {
			if p.Key != "" && p.Title != "" {
				paths = append(paths, p)
			}
		}
		if len(paths) >= 2 {
			return &entity.MultiPathCandidate{
				Group: rule.group,
				Hint:  multiPathHint,
				Paths: paths,
			}
		}
	}
	return nil
}

// safeMatch treats a panicking predicate as a non-match.
func safeMatch(match func(string) bool, s string) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	if match == nil {
		return false
	}
	return match(s)
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
