// Package rules implements the attack oracle and move generator on top of
// pkg/board: entanglement-aware move generation, king-safety filtering and
// check classification. Two attack relations coexist: the native relation
// is the only one that can deliver check or mate, while the fuller threat
// relation (native plus transporter reach) governs where a king may step.
package rules

import "github.com/talsforest/tether/pkg/board"

// NativeAttacks reports whether any piece of byColor natively attacks
// target on pos. This is the check/checkmate relation: only native attacks
// are lethal.
func NativeAttacks(pos *board.Position, target board.Square, byColor board.Color) bool {
	occ := pos.All()
	for _, sq := range pos.Occupancy(byColor).Squares() {
		piece, _ := pos.PieceAt(sq)
		if board.CanNativelyAttack(piece.Kind, piece.Color, sq, target, occ) {
			return true
		}
	}
	return false
}

// Threatens reports whether target is reachable by byColor via a native
// attack or a pseudo-legal transporter move. It is used exclusively to
// forbid a king (or a king's own transporter move) from stepping onto
// target. The king-move legality filter passes the hypothetical post-move
// position; castling generation passes the current position. Transporter
// reach is evaluated pseudo-legally here, ignoring byColor's own king
// safety, so this never recurses through the legality filter.
func Threatens(pos *board.Position, target board.Square, byColor board.Color) bool {
	if NativeAttacks(pos, target, byColor) {
		return true
	}
	return hasTransporterReach(pos, target, byColor)
}

func hasTransporterReach(pos *board.Position, target board.Square, byColor board.Color) bool {
	if pos.Occupancy(byColor).IsSet(target) {
		return false // a transporter move never lands on a friendly piece
	}

	occ := pos.All()
	for _, origin := range pos.Occupancy(byColor).Squares() {
		for _, mate := range RankMates(pos, byColor, origin) {
			for _, v := range board.NativeVectors(mate.Kind, mate.Color) {
				for _, sq := range board.Walk(occ, origin, v) {
					if sq == target {
						return true
					}
				}
			}
		}
	}
	return false
}

// RankMates returns the friendly pieces sharing origin's rank, excluding
// whatever occupies origin itself. Rank-mates are recomputed from the
// current position every call; nothing is cached across turns, so a piece
// that changes rank forgets its former mates immediately.
func RankMates(pos *board.Position, color board.Color, origin board.Square) []board.Piece {
	mask := board.BitRank(origin.Rank()) & pos.Occupancy(color)
	mask = mask.Clear(origin)

	var out []board.Piece
	for _, sq := range mask.Squares() {
		p, _ := pos.PieceAt(sq)
		out = append(out, p)
	}
	return out
}
