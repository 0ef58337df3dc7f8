package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionOpinionSplitsOnOrdinals(t *testing.T) {
	text := "法律意見書\n一、案件事實：甲向乙承租房屋。\n二、法律分析：押金返還請求權。\n三、結論：可請求返還。"

	sections := SectionOpinion(text)
	require.Len(t, sections, 3)

	assert.Equal(t, "一、案件事實", sections[0].Title)
	assert.Equal(t, "甲向乙承租房屋。", sections[0].Body)
	assert.Equal(t, "二、法律分析", sections[1].Title)
	assert.Equal(t, "三、結論", sections[2].Title)
}

func TestSectionOpinionDropsBareTitleLines(t *testing.T) {
	for _, title := range []string{"法律意見書", "【法律意見書】", "法律意見書 —"} {
		sections := SectionOpinion(title + "\n一、分析：內容。")
		require.Len(t, sections, 1, "title %q", title)
		assert.Equal(t, "一、分析", sections[0].Title)
	}
}

func TestSectionOpinionNoHeadings(t *testing.T) {
	sections := SectionOpinion("純文字意見，沒有任何標題。")
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Title)
	assert.Equal(t, "純文字意見，沒有任何標題。", sections[0].Body)
}

func TestSectionOpinionPreambleKeptUntitled(t *testing.T) {
	sections := SectionOpinion("以下為初步分析。\n一、事實：經過。")
	require.Len(t, sections, 2)
	assert.Empty(t, sections[0].Title)
	assert.Equal(t, "以下為初步分析。", sections[0].Body)
	assert.Equal(t, "一、事實", sections[1].Title)
}

func TestSectionOpinionEmpty(t *testing.T) {
	assert.Empty(t, SectionOpinion(""))
	assert.Empty(t, SectionOpinion("   \n  "))
}
