package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "₦0"},
		{950, "₦950"},
		{1000, "₦1,000"},
		{180000, "₦180,000"},
		{2500000, "₦2,500,000"},
		{1234567890, "₦1,234,567,890"},
		{-180000, "-₦180,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.in), "FormatPrice(%d)", tt.in)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash := HashPassword("demo123")
	assert.NotEqual(t, "demo123", hash)
	assert.True(t, CheckPassword("demo123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
