// Package classify maps free-text problem descriptions onto canonical case
// types, detects inputs spanning several legal tracks, and scores subtype
// templates for local follow-up lookup.
package classify

import "regexp"

// caseTypeRule maps a description pattern to a canonical case-type key.
type caseTypeRule struct {
	pattern *regexp.Regexp
	key     string
}

// caseTypeRules is evaluated strictly in order, first match wins. The order
// encodes specificity from the high-frequency general categories down to
// rarer sub-issues; do not reorder.
var caseTypeRules = []caseTypeRule{
	{regexp.MustCompile(`車禍|交通事故|肇事|碰撞|追撞|擦撞|行車事故`), "車禍"},
	{regexp.MustCompile(`租賃|租屋|房租|承租|押金|房東|租約|退租`), "租賃"},
	{regexp.MustCompile(`買賣|購屋|交屋|房屋買賣|中古屋|瑕疵|漏水|仲介|房屋瑕疵`), "買賣"},
	{regexp.MustCompile(`借貸|借款|借錢|欠款|借據|本息|還款`), "借貸"},
	{regexp.MustCompile(`詐欺|被騙|騙局|投資詐騙|代購詐騙|釣魚|人頭帳戶`), "詐欺"},
	{regexp.MustCompile(`(?i)毒品|毒|安非他命|海洛因|K他命|K他|ketamine|大麻|MDMA|搖頭丸|喵喵|咖啡包|依托咪酯|冰毒|驗尿|尿液|勒戒|戒治|戒癮|緩起訴.*治療`), "毒品"},
	{regexp.MustCompile(`侵權|結論賠償|侵害權利|不當行為|車損以外結論`), "侵權"},
	{regexp.MustCompile(`名譽|毀謗|誹謗|公然侮辱|抹黑|爆料`), "名譽毀損"},
	{regexp.MustCompile(`個資|個人資料|外洩|洩漏|個資法|資料被用|盜用資料`), "個資"},
	{regexp.MustCompile(`勞資|勞動|欠薪|加班|資遣|解僱|離職|勞基法`), "勞資"},
	{regexp.MustCompile(`職災|職業災害|工傷|職務受傷|通勤職災`), "職災"},
	{regexp.MustCompile(`侵害配偶權|配偶權|精神賠償.*外遇|外遇.*精神賠償`), "侵害配偶權"},
	{regexp.MustCompile(`離婚|分居|夫妻|婚姻|外遇|婚姻破裂`), "離婚"},
	{regexp.MustCompile(`監護|監護權|親權|主要照顧|探視|扶養照顧`), "監護權"},
	{regexp.MustCompile(`扶養費|子女扶養|生活費分擔|撫養費`), "扶養費"},
	{regexp.MustCompile(`保護令|家暴|家庭暴力|暴力|威脅|恐嚇配偶|同居暴力`), "保護令"},
	{regexp.MustCompile(`遺產|繼承|遺囑|特留分|繼承人|遺產分配`), "遺產"},
	{regexp.MustCompile(`工程|承攬|裝修|工程款|尾款|追加款|驗收|瑕疵修補`), "工程款"},
	{regexp.MustCompile(`消費|退貨|退款|消保|商品瑕疵|延遲交付|履約爭議`), "消費爭議"},
	{regexp.MustCompile(`醫療|醫師|手術|診所|病歷|醫療疏失|併發症`), "醫療糾紛"},
	{regexp.MustCompile(`著作權|侵權轉載|抄襲|重製|公開傳輸|影片被用|圖片被用`), "著作權"},
	{regexp.MustCompile(`商標|仿冒|侵害商標|混淆|品牌被用|攀附`), "商標"},
	{regexp.MustCompile(`股權|股份|股東|公司法|出資|經營權|分紅|董事會`), "公司股權"},
	{regexp.MustCompile(`合夥|合作|分潤|退夥|結算|共同債務|夥伴`), "合夥"},
	{regexp.MustCompile(`票據|支票|本票|退票|跳票|背書`), "票據"},
	{regexp.MustCompile(`行政罰|罰鍰|裁罰|處分書|訴願|申復|行政處分`), "行政罰"},
	{regexp.MustCompile(`稅務|補稅|追稅|查核|稅單|營業稅|綜所稅|扣繳`), "稅務"},
	{regexp.MustCompile(`不動產|房地|土地|房屋|過戶|抵押|共有|占用`), "不動產"},
	{regexp.MustCompile(`分割共有|共有物分割|分割共有物`), "分割共有物"},
	{regexp.MustCompile(`借名登記|代持|人頭登記|掛名|名義人`), "借名登記"},
	{regexp.MustCompile(`保險|理賠|拒賠|減賠|保單|出險`), "保險理賠"},
	{regexp.MustCompile(`跟騷|騷擾|尾隨|糾纏|盯梢|持續聯絡`), "跟騷"},
	{regexp.MustCompile(`強制執行|執行|扣押|查封|支付命令|判決確定|調解筆錄`), "強制執行"},
	{regexp.MustCompile(`傷害|打人|互毆|毆打|驗傷|診斷證明`), "刑事傷害"},
	{regexp.MustCompile(`性侵|妨害性自主|猥褻|強制性交|性騷擾嚴重|不當性行為`), "妨害性自主"},

	// Common sub-issue fallbacks, matched only after the broader categories.
	{regexp.MustCompile(`網購|電商|蝦皮|露天|momo|PChome|賣家不出貨|退貨|退款`), "網購糾紛"},
	{regexp.MustCompile(`退費|退款|解約退費|消費爭議|定型化契約`), "消費退費"},
	{regexp.MustCompile(`健身房|教練課|會籍|會員退費`), "健身房退費"},
	{regexp.MustCompile(`補習班|課程退費|補教|補課`), "補習班退費"},
	{regexp.MustCompile(`旅遊|旅行社|行程取消|退費爭議`), "旅遊契約"},
	{regexp.MustCompile(`醫美|美容|醫療糾紛|醫療過失|診所`), "醫療過失"},
	{regexp.MustCompile(`本票|裁定|本票裁定|票款`), "本票裁定"},
	{regexp.MustCompile(`假扣押|假處分|保全|保全程序`), "保全程序"},
	{regexp.MustCompile(`強制執行異議|執行異議|分配表|異議之訴`), "強制執行異議"},
	{regexp.MustCompile(`侵占|挪用`), "侵占"},
	{regexp.MustCompile(`竊盜|偷|失竊`), "竊盜"},
	{regexp.MustCompile(`恐嚇|勒索`), "恐嚇"},
	{regexp.MustCompile(`偽造|變造|偽造文書|私文書`), "偽造文書"},
}

// NormalizeCaseTypeKey maps raw case-type text onto a canonical key. The rule
// list is evaluated in order and the first match wins; later rules never
// override earlier ones even when more specific. Unmatched input yields ""
// unless a local template asset exists under the literal text. Total: never
// fails, never panics.
func NormalizeCaseTypeKey(raw string) string {
	s := trimmed(raw)
	if s == "" {
		return ""
	}
	for _, rule := range caseTypeRules {
		if rule.pattern.MatchString(s) {
			return rule.key
		}
	}
	if _, ok := scenarioAssets[s]; ok {
		return s
	}
	return ""
}
