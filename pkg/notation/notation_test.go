package notation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talsforest/tether/pkg/board"
	"github.com/talsforest/tether/pkg/notation"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		from, to board.Square
		promo    board.Kind
	}{
		{"e2-e4", board.E2, board.E4, board.NoKind},
		{"e2e4", board.E2, board.E4, board.NoKind},
		{" d1-c3 ", board.D1, board.C3, board.NoKind},
		{"d7-d8=Q", board.D7, board.D8, board.Queen},
		{"d7-d8=n", board.D7, board.D8, board.Knight},
		{"d7d8=R", board.D7, board.D8, board.Rook},
	}
	for _, tt := range tests {
		m, err := notation.Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.from, m.From, tt.in)
		assert.Equal(t, tt.to, m.To, tt.in)

		promo, ok := m.Promotion.V()
		if tt.promo == board.NoKind {
			assert.False(t, ok, tt.in)
		} else {
			require.True(t, ok, tt.in)
			assert.Equal(t, tt.promo, promo, tt.in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"e2",
		"e2-",
		"e2-e9",
		"i2-e4",
		"e2-e4-e5",
		"d7-d8=",
		"d7-d8=K",
		"d7-d8=QQ",
	}
	for _, tt := range tests {
		_, err := notation.Parse(tt)
		assert.Error(t, err, tt)
	}
}

func TestString(t *testing.T) {
	m, err := notation.Parse("d7-d8=q")
	require.NoError(t, err)
	assert.Equal(t, "d7-d8=Q", m.String())

	m, err = notation.Parse("e2e4")
	require.NoError(t, err)
	assert.Equal(t, "e2-e4", m.String())
}
