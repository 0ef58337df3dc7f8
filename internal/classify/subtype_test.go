package classify

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSubtypeBaseAndKeywords(t *testing.T) {
	st := &SubtypeRule{
		Name:  "押金返還",
		Match: regexp.MustCompile(`押金`),
		Keywords: []*regexp.Regexp{
			regexp.MustCompile(`房東`),
			regexp.MustCompile(`點交`),
		},
	}

	ok, score, priority := ScoreSubtype(st, "房東不退押金")
	require.True(t, ok)
	assert.Equal(t, 2, score) // base 1 + one keyword hit
	assert.Equal(t, 0, priority)
}

func TestScoreSubtypeFailsClosed(t *testing.T) {
	ok, score, _ := ScoreSubtype(nil, "任何文字")
	assert.False(t, ok)
	assert.Zero(t, score)

	ok, _, _ = ScoreSubtype(&SubtypeRule{}, "任何文字")
	assert.False(t, ok)

	ok, _, _ = ScoreSubtype(&SubtypeRule{Match: regexp.MustCompile(`押金`)}, "毫無關聯")
	assert.False(t, ok)
}

func TestScoreSubtypeNilKeywordIgnored(t *testing.T) {
	st := &SubtypeRule{
		Match:    regexp.MustCompile(`押金`),
		Keywords: []*regexp.Regexp{nil},
	}
	ok, score, _ := ScoreSubtype(st, "押金糾紛")
	require.True(t, ok)
	assert.Equal(t, 1, score)
}

func TestPickBestSubtypeHighestScore(t *testing.T) {
	low := &SubtypeRule{Name: "low", Match: regexp.MustCompile(`押金`)}
	high := &SubtypeRule{
		Name:     "high",
		Match:    regexp.MustCompile(`押金`),
		Keywords: []*regexp.Regexp{regexp.MustCompile(`房東`)},
	}

	got := PickBestSubtype([]*SubtypeRule{low, high}, "房東不退押金")
	require.NotNil(t, got)
	assert.Equal(t, "high", got.Name)
}

func TestPickBestSubtypePriorityBreaksTies(t *testing.T) {
	a := &SubtypeRule{Name: "a", Match: regexp.MustCompile(`押金`), Score: 2, Priority: 0}
	b := &SubtypeRule{Name: "b", Match: regexp.MustCompile(`押金`), Score: 2, Priority: 1}

	got := PickBestSubtype([]*SubtypeRule{a, b}, "押金")
	require.NotNil(t, got)
	assert.Equal(t, "b", got.Name)
}

func TestPickBestSubtypeFirstSeenWinsOnFullTie(t *testing.T) {
	a := &SubtypeRule{Name: "a", Match: regexp.MustCompile(`押金`)}
	b := &SubtypeRule{Name: "b", Match: regexp.MustCompile(`押金`)}

	got := PickBestSubtype([]*SubtypeRule{a, b}, "押金")
	require.NotNil(t, got)
	assert.Equal(t, "a", got.Name)
}

func TestPickBestSubtypeEmptyOrNoMatch(t *testing.T) {
	assert.Nil(t, PickBestSubtype(nil, "押金"))
	assert.Nil(t, PickBestSubtype([]*SubtypeRule{}, "押金"))
	assert.Nil(t, PickBestSubtype([]*SubtypeRule{{Match: regexp.MustCompile(`車禍`)}}, "押金"))
}

func TestAssetTemplateSourceDormant(t *testing.T) {
	src := NewAssetTemplateSource()
	name, items := src.Lookup("租賃", "房東不退押金")
	assert.Empty(t, name)
	assert.Nil(t, items)
}
