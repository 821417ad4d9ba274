package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"student@demo.com", true},
		{"a@b.co", true},
		{"first.last@sub.example.org", true},
		{"", false},
		{"no-at-sign", false},
		{"missing@domain", false},
		{"spaces in@mail.com", false},
		{"@nodomain.com", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Email(tt.in), "Email(%q)", tt.in)
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"+2348012345678", true},
		{"08012345678", true},
		{"+2349112345678", true},
		{"07012345678", true},
		{"1234567890", false},
		{"0801234567", false},   // 少一位
		{"080123456789", false}, // 多一位
		{"+2346012345678", false},
		{"0821234567", false}, // 第三位不是 0/1
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Phone(tt.in), "Phone(%q)", tt.in)
	}
}

func TestPhoneStripsWhitespace(t *testing.T) {
	assert.True(t, Phone("+234 801 234 5678"))
	assert.True(t, Phone(" 0801 2345 678 "))
}
