// Package fen contains utilities for reading and writing positions in a
// FEN-shaped notation: piece placement, side to move, castling rights and
// en-passant target. The half-move and full-move counters of full FEN are
// omitted; nothing in the engine consumes them.
package fen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/talsforest/tether/pkg/board"
)

const (
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"
)

// Decode returns a new position and side to move from a FEN-shaped
// description.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"
func Decode(fen string) (*board.Position, board.Color, error) {
	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 4 {
		return nil, 0, fmt.Errorf("invalid number of sections in FEN: '%v'", fen)
	}

	// (1) Piece placement (from white's perspective). Each rank is described,
	// starting with rank 8 and ending with rank 1; within each rank, the
	// contents of each square are described from file a through file h.

	var pieces []board.Placement

	f, r := board.FileA, board.Rank8
	for _, c := range []rune(parts[0]) {
		switch {
		case c == '/':
			// "/" separates ranks.

			if f != board.NumFiles {
				return nil, 0, fmt.Errorf("short rank in FEN: '%v'", fen)
			}
			f = board.FileA
			r--

		case unicode.IsDigit(c):
			// Blank squares are noted using digits 1 through 8 (the number of blank squares).

			f += board.File(c - '0')

		case unicode.IsLetter(c):
			// White pieces are designated using upper-case letters ("PNBRQK")
			// while Black take lowercase ("pnbrqk").

			kind, ok := board.ParseKind(c)
			if !ok {
				return nil, 0, fmt.Errorf("invalid piece '%v' in FEN: '%v'", c, fen)
			}
			color := board.Black
			if unicode.IsUpper(c) {
				color = board.White
			}
			if !f.IsValid() || !r.IsValid() {
				return nil, 0, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
			}
			pieces = append(pieces, board.Placement{Square: board.NewSquare(f, r), Color: color, Kind: kind})
			f++

		default:
			return nil, 0, fmt.Errorf("invalid character in FEN: '%v'", fen)
		}
	}
	if f != board.NumFiles || r != board.Rank1 {
		return nil, 0, fmt.Errorf("invalid number of squares in FEN: '%v'", fen)
	}

	// (2) Active color. "w" means white moves next, "b" means black.

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, 0, fmt.Errorf("invalid active color in FEN: '%v'", fen)
	}

	// (3) Castling availability. If neither side can castle, this is
	// "-". Otherwise, this has one or more letters: "K" (White can castle
	// kingside), "Q" (White can castle queenside), "k" (Black can castle
	// kingside), and/or "q" (Black can castle queenside).

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, 0, fmt.Errorf("invalid castling in FEN: '%v'", fen)
	}

	// (4) En passant target square in algebraic notation. If there's no en
	// passant target square, this is "-". If a pawn has just made a
	// 2-square move, this is the position "behind" the pawn.

	ep := board.ZeroSquare
	if parts[3] != "-" {
		sq, err := board.FromText(parts[3])
		if err != nil {
			return nil, 0, fmt.Errorf("invalid en passant in FEN: '%v'", fen)
		}
		ep = sq
	}

	pos, err := board.NewPosition(pieces, castling, ep)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid position in FEN '%v': %v", fen, err)
	}
	return pos, active, nil
}

// Encode encodes the position and side to move in FEN-shaped notation.
func Encode(pos *board.Position, c board.Color) string {
	var sb strings.Builder
	for r := int(board.Rank8); r >= int(board.Rank1); r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			piece, ok := pos.PieceAt(board.NewSquare(f, board.Rank(r)))
			if !ok {
				blanks++
				continue
			}

			if blanks > 0 {
				sb.WriteString(fmt.Sprintf("%d", blanks))
				blanks = 0
			}

			sb.WriteString(printPiece(piece.Color, piece.Kind))
		}

		if blanks > 0 {
			sb.WriteString(fmt.Sprintf("%d", blanks))
		}

		if r > int(board.Rank1) {
			sb.WriteString("/")
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v", sb.String(), c, pos.Castling(), ep)
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling

	if str == "-" {
		return ret, true
	}
	for _, r := range []rune(str) {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w", "W":
		return board.White, true
	case "b", "B":
		return board.Black, true
	default:
		return 0, false
	}
}

func printPiece(c board.Color, k board.Kind) string {
	if c == board.White {
		return strings.ToUpper(k.String())
	}
	return k.String()
}
