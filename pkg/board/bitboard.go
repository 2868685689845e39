package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a bit-wise representation of the chess board: each bit marks
// the presence of something on that square (bit 0 = A1, bit 63 = H8). It
// relies on CPU-supported popcount/bitscan via math/bits.
type Bitboard uint64

const (
	EmptyBitboard Bitboard = 0
)

func (b Bitboard) IsSet(sq Square) bool {
	return b&BitMask(sq) != 0
}

func (b Bitboard) Set(sq Square) Bitboard {
	return b | BitMask(sq)
}

func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ BitMask(sq)
}

// PopCount returns the population count of the bitboard, i.e. the number of
// set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// FirstSquare returns the index of the least-significant set bit. Returns
// NumSquares if b is empty.
func (b Bitboard) FirstSquare() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Squares returns every set square, low to high.
func (b Bitboard) Squares() []Square {
	var out []Square
	for b != 0 {
		sq := b.FirstSquare()
		out = append(out, sq)
		b = b.Clear(sq)
	}
	return out
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := ZeroFile; f < NumFiles; f++ {
			if b.IsSet(NewSquare(f, Rank(r))) {
				sb.WriteRune('X')
			} else {
				sb.WriteRune('-')
			}
		}
		if r != int(Rank1) {
			sb.WriteRune('/')
		}
	}
	return sb.String()
}

// BitMask returns a bitboard with only the given square populated.
func BitMask(sq Square) Bitboard {
	return Bitboard(1) << sq
}

// BitRank returns a bitboard with every square of rank r populated.
func BitRank(r Rank) Bitboard {
	return Bitboard(0xff) << (Square(r) * 8)
}

// BitFile returns a bitboard with every square of file f populated.
func BitFile(f File) Bitboard {
	return Bitboard(0x0101010101010101) << Square(f)
}

// Walk returns every square reachable from origin along vector v given the
// current occupancy:
//
//   - a non-sliding vector yields at most one destination square.
//   - a sliding vector rides the ray, stopping at (and including) the first
//     occupied square, or at the edge of the board.
//
// The ray is cast directly rather than precomputed: borrowed vectors apply
// from arbitrary origin squares, so there is no fixed table to index. Walk
// only enforces path integrity; whether a destination is a legal move target
// (empty, or enemy-occupied for a capture) is the caller's concern.
func Walk(occupancy Bitboard, origin Square, v Vector) []Square {
	var out []Square
	cur := origin
	for {
		next := cur.Offset(v.Dx, v.Dy)
		if !next.IsValid() {
			return out
		}
		out = append(out, next)
		if occupancy.IsSet(next) {
			return out
		}
		if !v.Sliding {
			return out
		}
		cur = next
	}
}

var (
	knightOffsets = knightVectors
	kingOffsets   = kingVectors
)

// KnightReach returns every square a Knight on sq attacks, occupancy-independent.
func KnightReach(sq Square) Bitboard {
	var out Bitboard
	for _, v := range knightOffsets {
		if d := sq.Offset(v.Dx, v.Dy); d.IsValid() {
			out = out.Set(d)
		}
	}
	return out
}

// KingReach returns every square a King on sq attacks, occupancy-independent.
func KingReach(sq Square) Bitboard {
	var out Bitboard
	for _, v := range kingOffsets {
		if d := sq.Offset(v.Dx, v.Dy); d.IsValid() {
			out = out.Set(d)
		}
	}
	return out
}

// PawnCaptureReach returns the (occupancy-independent) squares a Pawn of the
// given color on sq attacks diagonally.
func PawnCaptureReach(color Color, sq Square) Bitboard {
	var out Bitboard
	for _, dx := range []int{-1, 1} {
		if d := sq.Offset(dx, color.Direction()); d.IsValid() {
			out = out.Set(d)
		}
	}
	return out
}
