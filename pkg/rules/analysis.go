package rules

import "github.com/talsforest/tether/pkg/board"

// TransporterMoves filters moves down to transporter moves.
func TransporterMoves(moves []board.Move) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if m.IsTransporter() {
			out = append(out, m)
		}
	}
	return out
}

// PawnKnightApexMoves filters moves down to Pawn-Knight Apex moves.
func PawnKnightApexMoves(moves []board.Move) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if m.IsPawnKnightApex() {
			out = append(out, m)
		}
	}
	return out
}

// CheckingMoves filters moves down to those whose post-state gives check to
// the opponent.
func CheckingMoves(b *board.Board, moves []board.Move) []board.Move {
	turn := b.Turn()
	var out []board.Move
	for _, m := range moves {
		if GivesCheck(b.Position().Apply(m), turn) {
			out = append(out, m)
		}
	}
	return out
}

// GivesCheck reports whether moverColor natively attacks the opponent's
// king on pos. Transporter reach never gives check.
func GivesCheck(pos *board.Position, moverColor board.Color) bool {
	return NativeAttacks(pos, pos.KingSquare(moverColor.Opponent()), moverColor)
}

// MichaelTalMoves filters moves down to the opening-move-1 "Michael Tal"
// jumps: available only when history is empty, a transporter move borrowing
// from a Knight on the mover's back rank, played by a Queen or Rook also on
// the back rank.
func MichaelTalMoves(b *board.Board, moves []board.Move) []board.Move {
	if len(b.History()) != 0 {
		return nil
	}

	var out []board.Move
	for _, m := range moves {
		borrowed, ok := m.Borrowed.V()
		if !ok || borrowed.Kind != board.Knight {
			continue
		}
		if m.Mover.Kind != board.Queen && m.Mover.Kind != board.Rook {
			continue
		}
		back := m.Mover.Color.BackRank()
		if m.From.Rank() == back && borrowed.Square.Rank() == back {
			out = append(out, m)
		}
	}
	return out
}
