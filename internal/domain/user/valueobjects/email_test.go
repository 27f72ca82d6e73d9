package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "grower@example.com", "grower@example.com", false},
		{"uppercase normalized", "Grower@Example.COM", "grower@example.com", false},
		{"surrounding whitespace trimmed", "  grower@example.com ", "grower@example.com", false},
		{"empty", "", "", true},
		{"no at sign", "not-an-email", "", true},
		{"no tld", "a@b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewEmail(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestEmail_Equals(t *testing.T) {
	a, err := NewEmail("grower@example.com")
	require.NoError(t, err)
	b, err := NewEmail("GROWER@example.com")
	require.NoError(t, err)
	c, err := NewEmail("other@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}
