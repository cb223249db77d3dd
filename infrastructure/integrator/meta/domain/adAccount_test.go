package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAccountID(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		expected  string
	}{
		{
			name:      "ID numérico recebe o prefixo act_",
			accountID: "123456",
			expected:  "act_123456",
		},
		{
			name:      "ID já prefixado não é alterado",
			accountID: "act_999",
			expected:  "act_999",
		},
		{
			name:      "ID vazio recebe apenas o prefixo",
			accountID: "",
			expected:  "act_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAccountID(tt.accountID))
		})
	}
}
