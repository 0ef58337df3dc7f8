package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCaseTypeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rental deposit", "我租的房子房東不退押金", "租賃"},
		{"traffic accident", "上週發生車禍，對方不理賠", "車禍"},
		{"drug case insensitive", "朋友給我ketamine被警察查到", "毒品"},
		{"divorce", "想跟先生離婚", "離婚"},
		{"unmatched", "今天天氣真好", ""},
		{"empty", "", ""},
		{"whitespace only", "   \t\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCaseTypeKey(tt.in))
		})
	}
}

func TestNormalizeCaseTypeKeyFirstMatchWins(t *testing.T) {
	// Mentions both a rental and a sale; the rental rule sits earlier in the
	// ordered list and must win.
	assert.Equal(t, "租賃", NormalizeCaseTypeKey("房東說租約到期要我搬走，還想把房子買賣掉"))
}

func TestNormalizeCaseTypeKeyOrderedSpecificity(t *testing.T) {
	// 侵害配偶權 is listed before the broader 離婚 rule and must take priority.
	assert.Equal(t, "侵害配偶權", NormalizeCaseTypeKey("我要對第三者主張侵害配偶權"))
}
