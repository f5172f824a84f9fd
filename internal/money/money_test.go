package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$150.00", FormatCents(15000))
	assert.Equal(t, "$80.00", FormatCents(8000))
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$1,234.56", FormatCents(123456))
}

func TestCentsToUnits(t *testing.T) {
	assert.Equal(t, 100.99, CentsToUnits(10099))
	assert.Equal(t, 0.0, CentsToUnits(0))
}

func TestParseCurrencyRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 666, 15000, 123456, 999999999} {
		parsed, err := ParseCurrency(FormatCents(cents))
		require.NoError(t, err)
		assert.Equal(t, cents, parsed)
	}
}

func TestParseCurrencyRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "$", "abc", "$12.3", "$12.345", "$-5.00", "$1.2.3"} {
		_, err := ParseCurrency(s)
		assert.Error(t, err, "input %q", s)
	}
}
