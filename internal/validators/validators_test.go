package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw    string
		region string
		want   string
		ok     bool
	}{
		{"300 123 4567", "CO", "+573001234567", true},
		{"+57 300 123 4567", "us", "+573001234567", true},
		{"12", "CO", "", false},
		{"", "CO", "", false},
		{"abc", "CO", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizePhone(tt.raw, tt.region)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestIsEmailSyntaxValid(t *testing.T) {
	assert.True(t, IsEmailSyntaxValid("ana@example.com"))
	assert.False(t, IsEmailSyntaxValid("Ana <ana@example.com>"))
	assert.False(t, IsEmailSyntaxValid("ana.example.com"))
	assert.False(t, IsEmailSyntaxValid(""))
}

func TestIsEmailDomainValidRejectsMissingDomain(t *testing.T) {
	assert.False(t, IsEmailDomainValid("ana@"))
	assert.False(t, IsEmailDomainValid("ana"))
}
