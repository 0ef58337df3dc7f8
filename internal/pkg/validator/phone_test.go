package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTaiwanPhoneMobile(t *testing.T) {
	assert.True(t, ValidTaiwanPhone("0912345678"))
	assert.True(t, ValidTaiwanPhone("0912-345-678")) // digits-only check for mobile

	assert.False(t, ValidTaiwanPhone("091234567"))   // 9 digits
	assert.False(t, ValidTaiwanPhone("09123456789")) // 11 digits
}

func TestValidTaiwanPhoneLandline(t *testing.T) {
	assert.True(t, ValidTaiwanPhone("0223456789"))
	assert.True(t, ValidTaiwanPhone("02-23456789"))
	assert.True(t, ValidTaiwanPhone("02 23456789"))
	assert.True(t, ValidTaiwanPhone("049-2234567"))

	assert.False(t, ValidTaiwanPhone("2-23456789")) // missing leading 0
	assert.False(t, ValidTaiwanPhone("02-12345"))   // subscriber too short
}

func TestValidTaiwanPhoneRejectsGarbage(t *testing.T) {
	assert.False(t, ValidTaiwanPhone(""))
	assert.False(t, ValidTaiwanPhone("   "))
	assert.False(t, ValidTaiwanPhone("abc"))
	assert.False(t, ValidTaiwanPhone("+886912345678"))
}
