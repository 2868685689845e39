package rules

import (
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/talsforest/tether/pkg/board"
)

// promotionKinds are the four legal promotion targets.
var promotionKinds = []board.Kind{board.Queen, board.Rook, board.Bishop, board.Knight}

// LegalMoves returns every legal move for the side to move: pseudo-legal
// native moves (including castling) and pseudo-legal transporter moves,
// filtered for king safety.
func LegalMoves(b *board.Board) []board.Move {
	pos, turn := b.Position(), b.Turn()

	var candidates []board.Move
	candidates = append(candidates, pseudoLegalNative(pos, turn)...)
	candidates = append(candidates, pseudoLegalCastling(pos, turn)...)
	candidates = append(candidates, pseudoLegalTransporters(pos, turn)...)

	var out []board.Move
	for _, m := range candidates {
		if isLegal(pos, turn, m) {
			out = append(out, m)
		}
	}
	return out
}

// LegalMovesFrom returns every legal move with the given origin square.
func LegalMovesFrom(b *board.Board, from board.Square) []board.Move {
	var out []board.Move
	for _, m := range LegalMoves(b) {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

// isLegal drops any move whose execution would leave the moving side's king
// under attack. The relations are asymmetric: a king move (native or the
// king's own transporter move) is tested against the fuller Threatens
// relation, forbidding it from stepping into transporter reach too; every
// other piece's king-safety test uses NativeAttacks only.
func isLegal(pos *board.Position, turn board.Color, m board.Move) bool {
	next := pos.Apply(m)
	if m.Mover.Kind == board.King {
		return !Threatens(next, m.To, turn.Opponent())
	}
	return !NativeAttacks(next, next.KingSquare(turn), turn.Opponent())
}

// pseudoLegalNative emits every piece's native pseudo-legal moves: standard
// sliding/stepping moves for non-pawns, and push/double-push/capture/en
// passant for pawns. Castling is generated separately.
func pseudoLegalNative(pos *board.Position, turn board.Color) []board.Move {
	var out []board.Move
	for _, origin := range pos.Occupancy(turn).Squares() {
		piece, _ := pos.PieceAt(origin)
		if piece.Kind == board.Pawn {
			out = append(out, pawnNativeMoves(pos, turn, origin)...)
			continue
		}
		out = append(out, nativeStepMoves(pos, turn, origin, piece.Kind)...)
	}
	return out
}

// nativeStepMoves generates a non-pawn kind's native moves by walking each
// vector in its table from origin.
func nativeStepMoves(pos *board.Position, color board.Color, origin board.Square, kind board.Kind) []board.Move {
	occ := pos.All()
	own := pos.Occupancy(color)

	var out []board.Move
	for _, v := range board.NativeVectors(kind, color) {
		for _, sq := range board.Walk(occ, origin, v) {
			if own.IsSet(sq) {
				continue
			}

			var captured lang.Optional[board.Snapshot]
			if victim, ok := pos.PieceAt(sq); ok {
				captured = lang.Some(board.Snapshot{Kind: victim.Kind, Color: victim.Color, Square: sq})
			}
			m, err := board.NewMove(board.MoveSpec{From: origin, To: sq, Mover: board.Snapshot{Kind: kind, Color: color, Square: origin}, Captured: captured})
			if err == nil {
				out = append(out, m)
			}
		}
	}
	return out
}

func pawnNativeMoves(pos *board.Position, color board.Color, origin board.Square) []board.Move {
	var out []board.Move
	mover := board.Snapshot{Kind: board.Pawn, Color: color, Square: origin}
	dir := color.Direction()
	occ := pos.All()

	// Single push.
	if push := origin.Offset(0, dir); push.IsValid() && !occ.IsSet(push) {
		out = append(out, withPromotions(mover, origin, push, lang.Optional[board.Snapshot]{}, lang.Optional[board.Snapshot]{})...)

		// Double push, only from the color's starting rank.
		if origin.Rank() == startingPawnRank(color) {
			if dbl := push.Offset(0, dir); dbl.IsValid() && !occ.IsSet(dbl) {
				m, err := board.NewMove(board.MoveSpec{From: origin, To: dbl, Mover: mover})
				if err == nil {
					out = append(out, m)
				}
			}
		}
	}

	// Captures, including en passant.
	for _, dx := range []int{-1, 1} {
		target := origin.Offset(dx, dir)
		if !target.IsValid() {
			continue
		}

		if captured, ok := pos.PieceAt(target); ok && captured.Color != color {
			out = append(out, withPromotions(mover, origin, target, lang.Some(board.Snapshot{Kind: captured.Kind, Color: captured.Color, Square: target}), lang.Optional[board.Snapshot]{})...)
			continue
		}

		if ep, ok := pos.EnPassant(); ok && target == ep {
			captured, capOK := pos.PieceAt(board.NewSquare(target.File(), origin.Rank()))
			if capOK && captured.Color != color {
				m, err := board.NewMove(board.MoveSpec{
					From:        origin,
					To:          target,
					Mover:       mover,
					Captured:    lang.Some(board.Snapshot{Kind: captured.Kind, Color: captured.Color, Square: board.NewSquare(target.File(), origin.Rank())}),
					IsEnPassant: true,
				})
				if err == nil {
					out = append(out, m)
				}
			}
		}
	}
	return out
}

func startingPawnRank(color board.Color) board.Rank {
	if color == board.White {
		return board.Rank2
	}
	return board.Rank7
}

// pseudoLegalCastling emits a castling move for each side (king/queen) whose
// preconditions hold on the current board: king and rook unmoved (tracked
// via castling rights), intermediate squares empty, and none of the king's
// current/transit/destination squares under full threat. The king may not
// castle through transporter reach any more than through a native attack.
func pseudoLegalCastling(pos *board.Position, turn board.Color) []board.Move {
	home := turn.BackRank()
	king := board.NewSquare(board.FileE, home)
	if !pos.Occupancy(turn).IsSet(king) {
		return nil
	}
	if k, ok := pos.PieceAt(king); !ok || k.Kind != board.King {
		return nil
	}

	mover := board.Snapshot{Kind: board.King, Color: turn, Square: king}
	occ := pos.All()
	opp := turn.Opponent()

	var out []board.Move
	if pos.Castling().IsAllowed(board.KingSide(turn)) {
		transit, dest := board.NewSquare(board.FileF, home), board.NewSquare(board.FileG, home)
		rook := board.NewSquare(board.FileH, home)
		if !occ.IsSet(transit) && !occ.IsSet(dest) && hasRook(pos, turn, rook) {
			if !Threatens(pos, king, opp) && !Threatens(pos, transit, opp) && !Threatens(pos, dest, opp) {
				if m, err := board.NewMove(board.MoveSpec{From: king, To: dest, Mover: mover, IsCastling: true}); err == nil {
					out = append(out, m)
				}
			}
		}
	}
	if pos.Castling().IsAllowed(board.QueenSide(turn)) {
		transit, dest := board.NewSquare(board.FileD, home), board.NewSquare(board.FileC, home)
		passthrough := board.NewSquare(board.FileB, home)
		rook := board.NewSquare(board.FileA, home)
		if !occ.IsSet(transit) && !occ.IsSet(dest) && !occ.IsSet(passthrough) && hasRook(pos, turn, rook) {
			if !Threatens(pos, king, opp) && !Threatens(pos, transit, opp) && !Threatens(pos, dest, opp) {
				if m, err := board.NewMove(board.MoveSpec{From: king, To: dest, Mover: mover, IsCastling: true}); err == nil {
					out = append(out, m)
				}
			}
		}
	}
	return out
}

func hasRook(pos *board.Position, color board.Color, sq board.Square) bool {
	p, ok := pos.PieceAt(sq)
	return ok && p.Color == color && p.Kind == board.Rook
}

// pseudoLegalTransporters emits every transporter move: for each friendly
// piece P and each rank-mate M, P borrows each of M's native vectors,
// walking from P's own square. Path integrity is checked along that ray
// from the mover outward. The inner loop iterates M's native vectors only,
// never a transporter move fed back in, which is what structurally rules
// out recursive jumping.
func pseudoLegalTransporters(pos *board.Position, turn board.Color) []board.Move {
	occ := pos.All()
	own := pos.Occupancy(turn)

	var out []board.Move
	for _, origin := range pos.Occupancy(turn).Squares() {
		mover, _ := pos.PieceAt(origin)
		moverSnap := board.Snapshot{Kind: mover.Kind, Color: mover.Color, Square: origin}

		for _, mate := range RankMates(pos, turn, origin) {
			borrowed := lang.Some(board.Snapshot{Kind: mate.Kind, Color: mate.Color, Square: mate.Square})

			for _, v := range board.NativeVectors(mate.Kind, mate.Color) {
				for _, sq := range board.Walk(occ, origin, v) {
					if own.IsSet(sq) {
						continue
					}

					var captured lang.Optional[board.Snapshot]
					if victim, ok := pos.PieceAt(sq); ok {
						captured = lang.Some(board.Snapshot{Kind: victim.Kind, Color: victim.Color, Square: sq})
					}

					if mover.Kind == board.Pawn {
						out = append(out, withPromotions(moverSnap, origin, sq, captured, borrowed)...)
						continue
					}

					m, err := board.NewMove(board.MoveSpec{
						From:     origin,
						To:       sq,
						Mover:    moverSnap,
						Captured: captured,
						Borrowed: borrowed,
					})
					if err == nil {
						out = append(out, m)
					}
				}
			}
		}
	}
	return out
}

// withPromotions builds one move for a Pawn destination, or all four
// promotion variants when the destination lies on the mover's far rank.
func withPromotions(mover board.Snapshot, from, to board.Square, captured, borrowed lang.Optional[board.Snapshot]) []board.Move {
	if !to.IsPromotionRank(mover.Color) {
		m, err := board.NewMove(board.MoveSpec{From: from, To: to, Mover: mover, Captured: captured, Borrowed: borrowed})
		if err != nil {
			return nil
		}
		return []board.Move{m}
	}

	var out []board.Move
	for _, k := range promotionKinds {
		m, err := board.NewMove(board.MoveSpec{From: from, To: to, Mover: mover, Captured: captured, Borrowed: borrowed, Promotion: lang.Some(k)})
		if err == nil {
			out = append(out, m)
		}
	}
	return out
}
