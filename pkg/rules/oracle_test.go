package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talsforest/tether/pkg/board"
	"github.com/talsforest/tether/pkg/rules"
)

func mustPosition(t *testing.T, placements []board.Placement, castling board.Castling, ep board.Square) *board.Position {
	t.Helper()

	pos, err := board.NewPosition(placements, castling, ep)
	require.NoError(t, err)
	return pos
}

func TestNativeAttacksPawnDiagonalOnly(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.A1, Color: board.White, Kind: board.King},
		{Square: board.H8, Color: board.Black, Kind: board.King},
		{Square: board.E4, Color: board.White, Kind: board.Pawn},
	}, 0, board.ZeroSquare)

	assert.True(t, rules.NativeAttacks(pos, board.D5, board.White))
	assert.True(t, rules.NativeAttacks(pos, board.F5, board.White))
	assert.False(t, rules.NativeAttacks(pos, board.E5, board.White), "pawn push square is not attacked")
}

func TestNativeAttacksSlidingBlocked(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.E1, Color: board.White, Kind: board.King},
		{Square: board.H8, Color: board.Black, Kind: board.King},
		{Square: board.A1, Color: board.White, Kind: board.Rook},
		{Square: board.A3, Color: board.White, Kind: board.Pawn},
	}, 0, board.ZeroSquare)

	assert.True(t, rules.NativeAttacks(pos, board.A2, board.White))
	assert.False(t, rules.NativeAttacks(pos, board.A4, board.White), "rook ray stops at the blocker")
	assert.False(t, rules.NativeAttacks(pos, board.A5, board.White))
}

// A Knight entangled with a Rook can ride the Rook's file vector, so squares
// on that ray are threatened even though no piece natively attacks them.
func TestThreatensViaTransporterReach(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.H1, Color: board.White, Kind: board.King},
		{Square: board.E8, Color: board.Black, Kind: board.King},
		{Square: board.A2, Color: board.White, Kind: board.Rook},
		{Square: board.E2, Color: board.White, Kind: board.Knight},
	}, 0, board.ZeroSquare)

	assert.False(t, rules.NativeAttacks(pos, board.E7, board.White))
	assert.True(t, rules.Threatens(pos, board.E7, board.White), "knight transports up the e-file")

	// A friendly-occupied square is never a transporter destination.
	assert.False(t, rules.Threatens(pos, board.A2, board.White))
}

func TestRankMates(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.E1, Color: board.White, Kind: board.King},
		{Square: board.A1, Color: board.White, Kind: board.Rook},
		{Square: board.B1, Color: board.White, Kind: board.Knight},
		{Square: board.A2, Color: board.White, Kind: board.Pawn},
		{Square: board.E8, Color: board.Black, Kind: board.King},
	}, 0, board.ZeroSquare)

	var squares []board.Square
	for _, mate := range rules.RankMates(pos, board.White, board.A1) {
		squares = append(squares, mate.Square)
	}
	assert.Equal(t, []board.Square{board.B1, board.E1}, squares, "same rank only, excluding self")

	assert.Empty(t, rules.RankMates(pos, board.White, board.A2))
}
