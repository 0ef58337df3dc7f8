package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureMinLenKeepsLongInput(t *testing.T) {
	long := strings.Repeat("甲", 30)
	assert.Equal(t, long, EnsureMinLen(long, DefaultMinLen))
}

func TestEnsureMinLenIdempotentForLongInput(t *testing.T) {
	long := strings.Repeat("乙", DefaultMinLen)
	once := EnsureMinLen(long, DefaultMinLen)
	assert.Equal(t, once, EnsureMinLen(once, DefaultMinLen))
}

func TestEnsureMinLenPadsShortInput(t *testing.T) {
	out := EnsureMinLen("房東不退押金", DefaultMinLen)
	assert.GreaterOrEqual(t, len([]rune(out)), DefaultMinLen)
	assert.True(t, strings.HasPrefix(out, "房東不退押金"))
}

func TestEnsureMinLenTrims(t *testing.T) {
	long := strings.Repeat("丙", 30)
	assert.Equal(t, long, EnsureMinLen("  "+long+"\n", DefaultMinLen))
}

func TestEnforceOptionLengthsBand(t *testing.T) {
	cases := []string{
		"太短",
		strings.Repeat("丁", 80),
		strings.Repeat("戊", 90),
		strings.Repeat("己", 100),
		strings.Repeat("庚", 150),
	}
	out := EnforceOptionLengths(cases, OptionMinLen, OptionMaxLen)
	require.Len(t, out, len(cases))
	for i, s := range out {
		n := len([]rune(s))
		assert.GreaterOrEqual(t, n, OptionMinLen, "entry %d", i)
		assert.LessOrEqual(t, n, OptionMaxLen, "entry %d", i)
	}
}

func TestEnforceOptionLengthsDropsEmptyEntries(t *testing.T) {
	out := EnforceOptionLengths([]string{"", "  ", "\t", strings.Repeat("辛", 85)}, OptionMinLen, OptionMaxLen)
	require.Len(t, out, 1)
}

func TestEnforceOptionLengthsHardCutAtMax(t *testing.T) {
	long := strings.Repeat("壬", 300)
	out := EnforceOptionLengths([]string{long}, OptionMinLen, OptionMaxLen)
	require.Len(t, out, 1)
	assert.Equal(t, OptionMaxLen, len([]rune(out[0])))
	assert.Equal(t, strings.Repeat("壬", OptionMaxLen), out[0])
}

func TestEnforceOptionLengthsPreservesInBandText(t *testing.T) {
	s := strings.Repeat("癸", 95)
	out := EnforceOptionLengths([]string{s}, OptionMinLen, OptionMaxLen)
	require.Len(t, out, 1)
	assert.Equal(t, s, out[0])
}
