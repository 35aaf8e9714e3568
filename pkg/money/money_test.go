package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "R$ 150,00", Format(decimal.NewFromInt(150)))
	assert.Equal(t, "R$ 1.234,50", Format(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "R$ 0,00", Format(decimal.Zero))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "100,0%", FormatPercent(decimal.NewFromInt(100)))
	assert.Equal(t, "33,3%", FormatPercent(decimal.RequireFromString("33.3333")))
}
