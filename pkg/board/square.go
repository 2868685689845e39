package board

import "fmt"

// Square represents a square on the board, ordered A1=0, B1=1, .., H8=63.
// The numbering maps file a..h directly onto 0..7, so Offset(dx, dy)
// arithmetic is a plain add: index = file + 8*rank. A square is a bit-index
// into the Bitboard layout. 6 bits.
type Square uint8

const (
	ZeroSquare Square = 0
	NumSquares Square = 64

	// InvalidSquare is returned by Offset when the result falls off the board.
	InvalidSquare Square = 0xff
)

// NewSquare builds a square from file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(r)*8 + Square(f)
}

// FromText parses algebraic square text such as "e4", failing on malformed
// input.
func FromText(s string) (Square, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %q", s)
	}
	f, ok := ParseFile(runes[0])
	if !ok {
		return 0, fmt.Errorf("invalid square: %q", s)
	}
	r, ok := ParseRank(runes[1])
	if !ok {
		return 0, fmt.Errorf("invalid square: %q", s)
	}
	return NewSquare(f, r), nil
}

// IsValid returns true iff the square lies on the board.
func (s Square) IsValid() bool {
	return s < NumSquares
}

func (s Square) Rank() Rank {
	return Rank(s / 8)
}

func (s Square) File() File {
	return File(s % 8)
}

// Offset returns the square reached by stepping (dx, dy) files/ranks from s.
// The result may be InvalidSquare if it would fall off the board; callers
// must check IsValid before using it.
func (s Square) Offset(dx, dy int) Square {
	f := int(s.File()) + dx
	r := int(s.Rank()) + dy
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return InvalidSquare
	}
	return NewSquare(File(f), Rank(r))
}

// IsPromotionRank returns true iff s lies on color's far rank (rank 8 for
// White, rank 1 for Black).
func (s Square) IsPromotionRank(color Color) bool {
	return s.Rank() == color.FarRank()
}

func (s Square) String() string {
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// Rank represents a chess board rank, Rank1=0 .. Rank8=7. 3 bits.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	ZeroRank Rank = 0
	NumRanks Rank = 8
)

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r - '1'), true
}

func (r Rank) IsValid() bool {
	return r <= Rank8
}

func (r Rank) V() int {
	return int(r)
}

func (r Rank) String() string {
	return fmt.Sprintf("%d", r+1)
}

// File represents a chess board file, FileA=0 .. FileH=7. 3 bits.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	ZeroFile File = 0
	NumFiles File = 8
)

func ParseFile(r rune) (File, bool) {
	switch r {
	case 'a', 'A':
		return FileA, true
	case 'b', 'B':
		return FileB, true
	case 'c', 'C':
		return FileC, true
	case 'd', 'D':
		return FileD, true
	case 'e', 'E':
		return FileE, true
	case 'f', 'F':
		return FileF, true
	case 'g', 'G':
		return FileG, true
	case 'h', 'H':
		return FileH, true
	default:
		return 0, false
	}
}

func (f File) IsValid() bool {
	return f <= FileH
}

func (f File) V() int {
	return int(f)
}

func (f File) String() string {
	return string(rune('a' + f))
}

// Named squares, for readable test scenarios and console commands.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 = Square(0), Square(1), Square(2), Square(3), Square(4), Square(5), Square(6), Square(7)
	A2, B2, C2, D2, E2, F2, G2, H2 = Square(8), Square(9), Square(10), Square(11), Square(12), Square(13), Square(14), Square(15)
	A3, B3, C3, D3, E3, F3, G3, H3 = Square(16), Square(17), Square(18), Square(19), Square(20), Square(21), Square(22), Square(23)
	A4, B4, C4, D4, E4, F4, G4, H4 = Square(24), Square(25), Square(26), Square(27), Square(28), Square(29), Square(30), Square(31)
	A5, B5, C5, D5, E5, F5, G5, H5 = Square(32), Square(33), Square(34), Square(35), Square(36), Square(37), Square(38), Square(39)
	A6, B6, C6, D6, E6, F6, G6, H6 = Square(40), Square(41), Square(42), Square(43), Square(44), Square(45), Square(46), Square(47)
	A7, B7, C7, D7, E7, F7, G7, H7 = Square(48), Square(49), Square(50), Square(51), Square(52), Square(53), Square(54), Square(55)
	A8, B8, C8, D8, E8, F8, G8, H8 = Square(56), Square(57), Square(58), Square(59), Square(60), Square(61), Square(62), Square(63)
)
