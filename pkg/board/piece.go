package board

import "strings"

// Kind represents a chess piece kind (King, Pawn, etc), color-agnostic.
// 3 bits.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

const (
	ZeroKind Kind = Pawn
	NumKinds Kind = King + 1
)

func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoKind, false
	}
}

func (k Kind) IsValid() bool {
	return Pawn <= k && k <= King
}

// IsSliding returns true iff the kind rides a ray rather than stepping once.
// Queen, Rook and Bishop slide; King, Knight and Pawn do not.
func (k Kind) IsSliding() bool {
	return k == Queen || k == Rook || k == Bishop
}

// IsPromotable returns true iff the kind is a legal promotion target.
func (k Kind) IsPromotable() bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

func (k Kind) String() string {
	switch k {
	case NoKind:
		return " "
	case Pawn:
		return "p"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Vector is one entry of a piece kind's native movement-vector table:
// a (dx, dy) offset plus whether it rides the ray (Sliding) or steps once.
type Vector struct {
	Dx, Dy  int
	Sliding bool
}

var (
	rookVectors = []Vector{
		{1, 0, true}, {-1, 0, true}, {0, 1, true}, {0, -1, true},
	}
	bishopVectors = []Vector{
		{1, 1, true}, {1, -1, true}, {-1, 1, true}, {-1, -1, true},
	}
	queenVectors  = append(append([]Vector{}, rookVectors...), bishopVectors...)
	kingVectors   = asStepping(queenVectors)
	knightVectors = []Vector{
		{1, 2, false}, {2, 1, false}, {2, -1, false}, {1, -2, false},
		{-1, -2, false}, {-2, -1, false}, {-2, 1, false}, {-1, 2, false},
	}
)

func asStepping(src []Vector) []Vector {
	out := make([]Vector, len(src))
	for i, v := range src {
		out[i] = Vector{v.Dx, v.Dy, false}
	}
	return out
}

// NativeVectors returns kind's native movement-vector table for the given
// color. Pawn's table is the single forward push; captures and the
// double-push are rendered directly by the move generator, not encoded here.
func NativeVectors(kind Kind, color Color) []Vector {
	switch kind {
	case King:
		return kingVectors
	case Queen:
		return queenVectors
	case Rook:
		return rookVectors
	case Bishop:
		return bishopVectors
	case Knight:
		return knightVectors
	case Pawn:
		return []Vector{{0, color.Direction(), false}}
	default:
		return nil
	}
}

// CanNativelyAttack reports whether a piece of kind/color on origin natively
// attacks target given occupancy. Pawns attack only the two forward
// diagonals (never the push square); sliding kinds require an unobstructed
// path; non-sliding kinds require an exact vector match.
func CanNativelyAttack(kind Kind, color Color, origin, target Square, occupancy Bitboard) bool {
	if kind == Pawn {
		return PawnCaptureReach(color, origin).IsSet(target)
	}
	for _, v := range NativeVectors(kind, color) {
		for _, sq := range Walk(occupancy, origin, v) {
			if sq == target {
				return true
			}
		}
	}
	return false
}

// Piece is a view of one occupied square: its kind, color, current square
// and moved-flag. It is a derived snapshot for callers (board views, rank
// mate listings, console display), not the storage representation itself:
// Position stores occupancy as per-kind bitboards.
type Piece struct {
	Kind     Kind
	Color    Color
	Square   Square
	HasMoved bool
}

func (p Piece) String() string {
	return printPiece(p.Color, p.Kind) + "@" + p.Square.String()
}

// printPiece renders a kind with case indicating color, White upper and
// Black lower, the convention shared by FEN and the console board.
func printPiece(c Color, k Kind) string {
	if c == White {
		return strings.ToUpper(k.String())
	}
	return strings.ToLower(k.String())
}
