package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailShapeValid(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"first.last@sub.domain.org",
		"a@b.co",
	}
	for _, email := range valid {
		assert.True(t, IsEmailShapeValid(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"alice@",
		"alice@nodot",
		"alice@domain.",
		"alice smith@example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsEmailShapeValid(email), email)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}
