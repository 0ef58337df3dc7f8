package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMultiPathInfidelity(t *testing.T) {
	got := DetectMultiPath("先生外遇，太太要離婚", "")
	require.NotNil(t, got)
	assert.Equal(t, "婚姻/外遇", got.Group)
	require.Len(t, got.Paths, 2)
	assert.Equal(t, "離婚", got.Paths[0].Key)
	assert.Equal(t, "侵害配偶權", got.Paths[1].Key)
	assert.NotEmpty(t, got.Hint)
}

func TestDetectMultiPathRequiresCooccurrence(t *testing.T) {
	// Infidelity terms without any spousal-relationship term must not trigger
	// the marriage rule.
	assert.Nil(t, DetectMultiPath("朋友說我被小三了", ""))
}

func TestDetectMultiPathIdempotentOnceForced(t *testing.T) {
	assert.Nil(t, DetectMultiPath("先生外遇，太太要離婚", "離婚"))
}

func TestDetectMultiPathEmptyInput(t *testing.T) {
	assert.Nil(t, DetectMultiPath("", ""))
	assert.Nil(t, DetectMultiPath("   ", ""))
}

func TestDetectMultiPathFirstRuleWins(t *testing.T) {
	// Text matching both the marriage and money rules resolves to the
	// marriage group because it is listed first.
	got := DetectMultiPath("老公外遇還跟小三借錢投資", "")
	require.NotNil(t, got)
	assert.Equal(t, "婚姻/外遇", got.Group)
}

func TestDetectMultiPathMoneyGroup(t *testing.T) {
	got := DetectMultiPath("我匯款給對方之後對方不還", "")
	require.NotNil(t, got)
	assert.Equal(t, "金錢/借貸/詐騙", got.Group)
	require.Len(t, got.Paths, 2)
}

func TestDetectMultiPathHousingGroup(t *testing.T) {
	got := DetectMultiPath("樓上漏水，管委會都不處理", "")
	require.NotNil(t, got)
	assert.Equal(t, "房屋/鄰損/公寓大廈", got.Group)
}
