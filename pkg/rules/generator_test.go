package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talsforest/tether/pkg/board"
	"github.com/talsforest/tether/pkg/rules"
)

func movesTo(moves []board.Move, to board.Square) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if m.To == to {
			out = append(out, m)
		}
	}
	return out
}

func destinations(moves []board.Move) map[board.Square]bool {
	out := map[board.Square]bool{}
	for _, m := range moves {
		out[m.To] = true
	}
	return out
}

// From the standard starting position the Queen can vault the pawn wall by
// borrowing a back-rank Knight's L-vector, applied from d1.
func TestMichaelTalQueenJumpFromStart(t *testing.T) {
	b := board.NewGame()

	moves := movesTo(rules.LegalMovesFrom(b, board.D1), board.C3)
	require.NotEmpty(t, moves)

	for _, m := range moves {
		assert.True(t, m.IsTransporter())
		borrowed, ok := m.Borrowed.V()
		require.True(t, ok)
		assert.Equal(t, board.Knight, borrowed.Kind)
	}

	// Both knights lend the same vector; the duplicates are distinct moves.
	borrowed, _ := moves[0].Borrowed.V()
	assert.Equal(t, board.B1, borrowed.Square)
	assert.Len(t, moves, 2)

	next := b.Position().Apply(moves[0])
	assert.False(t, rules.GivesCheck(next, board.White))
}

// A Pawn borrowing a Knight's L-jump onto the far rank promotes mid-jump,
// with all four promotion choices on offer.
func TestPawnKnightApexPromotion(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.A1, Color: board.White, Kind: board.King},
		{Square: board.H1, Color: board.Black, Kind: board.King},
		{Square: board.D6, Color: board.White, Kind: board.Pawn},
		{Square: board.A6, Color: board.White, Kind: board.Knight},
	}, 0, board.ZeroSquare)
	b := board.NewBoard(pos, board.White, nil)

	moves := movesTo(rules.LegalMovesFrom(b, board.D6), board.E8)
	require.Len(t, moves, 4)

	kinds := map[board.Kind]bool{}
	for _, m := range moves {
		assert.True(t, m.IsPawnKnightApex())
		promo, ok := m.Promotion.V()
		require.True(t, ok)
		kinds[promo] = true
	}
	assert.Len(t, kinds, 4)

	next := pos.Apply(moves[0])
	piece, ok := next.PieceAt(board.E8)
	require.True(t, ok)
	assert.True(t, piece.Kind.IsPromotable())
	_, stillThere := next.PieceAt(board.D6)
	assert.False(t, stillThere)
}

// Native lethality: a Rook landing via a borrowed Knight jump attacks like a
// Rook afterwards, so a king on its old L-target square is not in check.
func TestTransporterLandingDoesNotCheckLikeLender(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.A1, Color: board.White, Kind: board.King},
		{Square: board.F5, Color: board.Black, Kind: board.King},
		{Square: board.D4, Color: board.White, Kind: board.Rook},
		{Square: board.C4, Color: board.White, Kind: board.Knight},
	}, 0, board.ZeroSquare)
	b := board.NewBoard(pos, board.White, nil)

	moves := movesTo(rules.LegalMovesFrom(b, board.D4), board.E6)
	require.NotEmpty(t, moves)
	assert.True(t, moves[0].IsTransporter())

	next := pos.Apply(moves[0])
	assert.False(t, rules.GivesCheck(next, board.White), "rook on e6 does not natively attack f5")
}

// Stealth capture prevention: the king may not step onto a square reachable
// only by an opposing transporter move.
func TestKingCannotStepIntoTransporterReach(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.H1, Color: board.White, Kind: board.King},
		{Square: board.E8, Color: board.Black, Kind: board.King},
		{Square: board.A2, Color: board.White, Kind: board.Rook},
		{Square: board.E2, Color: board.White, Kind: board.Knight},
	}, 0, board.ZeroSquare)
	b := board.NewBoard(pos, board.Black, nil)

	dests := destinations(rules.LegalMovesFrom(b, board.E8))
	assert.False(t, dests[board.E7], "e7 is in the white knight's borrowed file reach")
	assert.True(t, dests[board.D7])
	assert.True(t, dests[board.D8])
	assert.True(t, dests[board.F7])
	assert.True(t, dests[board.F8])

	assert.False(t, rules.NativeAttacks(pos, board.E7, board.White), "no native attacker; only the transporter reach forbids e7")
}

// Castling through a square covered only by an opposing transporter move is
// forbidden, same as castling through a native attack.
func TestCastlingThroughTransporterThreatForbidden(t *testing.T) {
	placements := []board.Placement{
		{Square: board.E1, Color: board.White, Kind: board.King},
		{Square: board.H1, Color: board.White, Kind: board.Rook},
		{Square: board.E8, Color: board.Black, Kind: board.King},
		{Square: board.F6, Color: board.Black, Kind: board.Knight},
	}

	// With a rank-mate on f6's rank, the knight can ride the rook's file
	// vector down to f1, covering the king's transit square.
	entangled := append(append([]board.Placement(nil), placements...),
		board.Placement{Square: board.A6, Color: board.Black, Kind: board.Rook})
	b := board.NewBoard(mustPosition(t, entangled, board.WhiteKingSideCastle, board.ZeroSquare), board.White, nil)

	for _, m := range rules.LegalMoves(b) {
		assert.False(t, m.IsCastling, "castling through transporter-covered f1 must not be generated")
	}

	// Without the rank-mate the knight has no borrowed vectors and castling
	// is available again.
	b = board.NewBoard(mustPosition(t, placements, board.WhiteKingSideCastle, board.ZeroSquare), board.White, nil)

	var castles []board.Move
	for _, m := range rules.LegalMoves(b) {
		if m.IsCastling {
			castles = append(castles, m)
		}
	}
	require.Len(t, castles, 1)
	assert.Equal(t, board.G1, castles[0].To)
}

// A sliding transporter ray is subject to path integrity from the mover's
// square: any occupied intermediate square cuts it short.
func TestSlidingTransporterBlockedByIntermediate(t *testing.T) {
	placements := []board.Placement{
		{Square: board.E1, Color: board.White, Kind: board.King},
		{Square: board.H8, Color: board.Black, Kind: board.King},
		{Square: board.A1, Color: board.White, Kind: board.Rook},
		{Square: board.C1, Color: board.White, Kind: board.Bishop},
	}

	b := board.NewBoard(mustPosition(t, placements, 0, board.ZeroSquare), board.White, nil)
	dests := destinations(rules.LegalMovesFrom(b, board.A1))
	assert.True(t, dests[board.C3], "rook rides the bishop's diagonal from a1")

	blocked := append(append([]board.Placement(nil), placements...),
		board.Placement{Square: board.B2, Color: board.White, Kind: board.Pawn})
	b = board.NewBoard(mustPosition(t, blocked, 0, board.ZeroSquare), board.White, nil)
	dests = destinations(rules.LegalMovesFrom(b, board.A1))
	assert.False(t, dests[board.C3], "own pawn on b2 blocks the borrowed diagonal")
	assert.False(t, dests[board.B2])
}

// Disconnection: entanglement is re-derived from the current position, so a
// piece that leaves its rank loses its former mates' vectors on its next
// turn.
func TestDisconnectionAfterRankChange(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.B1, Color: board.White, Kind: board.King},
		{Square: board.H8, Color: board.Black, Kind: board.King},
		{Square: board.A3, Color: board.White, Kind: board.Rook},
		{Square: board.H3, Color: board.White, Kind: board.Knight},
	}, 0, board.ZeroSquare)
	b := board.NewBoard(pos, board.White, nil)

	before := rules.TransporterMoves(rules.LegalMovesFrom(b, board.A3))
	require.NotEmpty(t, before, "rook entangled with the h3 knight has L-jumps")

	rookUp := movesTo(rules.LegalMovesFrom(b, board.A3), board.A4)
	require.NotEmpty(t, rookUp)
	b.Apply(rookUp[0])

	kingMoves := rules.LegalMovesFrom(b, board.H8)
	require.NotEmpty(t, kingMoves)
	b.Apply(kingMoves[0])

	after := rules.TransporterMoves(rules.LegalMovesFrom(b, board.A4))
	assert.Empty(t, after, "rook on rank 4 has no rank-mates left")
}

// No recursive jumping: a borrowed vector is always applied from the mover's
// own square, never chained off another borrowed landing square. The Queen's
// transporter destinations are exactly the union of each mate's vector
// table applied from d1.
func TestNoRecursiveJumping(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.A8, Color: board.White, Kind: board.King},
		{Square: board.H8, Color: board.Black, Kind: board.King},
		{Square: board.D1, Color: board.White, Kind: board.Queen},
		{Square: board.B1, Color: board.White, Kind: board.Knight},
		{Square: board.C1, Color: board.White, Kind: board.Bishop},
	}, 0, board.ZeroSquare)
	b := board.NewBoard(pos, board.White, nil)

	transporters := rules.TransporterMoves(rules.LegalMovesFrom(b, board.D1))

	want := map[board.Square]bool{
		// Knight vectors from d1.
		board.B2: true, board.C3: true, board.E3: true, board.F2: true,
		// Bishop diagonals from d1.
		board.C2: true, board.B3: true, board.A4: true,
		board.E2: true, board.F3: true, board.G4: true, board.H5: true,
	}
	assert.Equal(t, want, destinations(transporters))
	assert.Len(t, transporters, 11, "one move per (mate, vector) pair, no composites")
}

// The legality filter applies to transporter moves too: a pinned piece may
// only move along its pin line, even when borrowing.
func TestLegalityFilterConstrainsPinnedTransporter(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.E1, Color: board.White, Kind: board.King},
		{Square: board.H8, Color: board.Black, Kind: board.King},
		{Square: board.E2, Color: board.White, Kind: board.Bishop},
		{Square: board.A2, Color: board.White, Kind: board.Rook},
		{Square: board.E8, Color: board.Black, Kind: board.Rook},
	}, 0, board.ZeroSquare)
	b := board.NewBoard(pos, board.White, nil)

	moves := rules.LegalMovesFrom(b, board.E2)
	require.NotEmpty(t, moves)
	for _, m := range moves {
		assert.Equal(t, board.FileE, m.To.File(), "pinned bishop may only ride the borrowed e-file vector")
		assert.True(t, m.IsTransporter())
	}

	captures := movesTo(moves, board.E8)
	require.Len(t, captures, 1)
	captured, ok := captures[0].Captured.V()
	require.True(t, ok)
	assert.Equal(t, board.Rook, captured.Kind)
}

func TestEnPassantGenerated(t *testing.T) {
	pos := mustPosition(t, []board.Placement{
		{Square: board.E1, Color: board.White, Kind: board.King},
		{Square: board.E8, Color: board.Black, Kind: board.King},
		{Square: board.D5, Color: board.White, Kind: board.Pawn},
		{Square: board.E5, Color: board.Black, Kind: board.Pawn},
	}, 0, board.E6)
	b := board.NewBoard(pos, board.White, nil)

	moves := movesTo(rules.LegalMovesFrom(b, board.D5), board.E6)
	require.Len(t, moves, 1)
	assert.True(t, moves[0].IsEnPassant)
}
