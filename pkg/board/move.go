package board

import (
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Snapshot is a value capture of a piece's kind, color and square at the
// time a Move was built. Move embeds snapshots of the pieces it touches
// rather than live references into the grid, so a recorded move stays
// meaningful after the pieces have moved on.
type Snapshot struct {
	Kind   Kind
	Color  Color
	Square Square
}

func (s Snapshot) String() string {
	return printPiece(s.Color, s.Kind) + "@" + s.Square.String()
}

// Move is an immutable description of one move, native or transporter.
// Construct it with NewMove, which enforces the cross-field invariants.
type Move struct {
	From, To Square

	Mover     Snapshot
	Captured  lang.Optional[Snapshot]
	Borrowed  lang.Optional[Snapshot] // present iff transporter move
	Promotion lang.Optional[Kind]

	IsCastling  bool
	IsEnPassant bool
}

// IsTransporter reports whether the move borrows a rank-mate's movement
// rather than the mover's own.
func (m Move) IsTransporter() bool {
	_, ok := m.Borrowed.V()
	return ok
}

// IsPawnKnightApex reports whether the move is a Pawn borrowing a Knight's
// L-jump onto its far rank, promoting mid-jump.
func (m Move) IsPawnKnightApex() bool {
	borrowed, ok := m.Borrowed.V()
	if !ok || m.Mover.Kind != Pawn || borrowed.Kind != Knight {
		return false
	}
	_, promotes := m.Promotion.V()
	return promotes
}

// MoveSpec carries the candidate fields for NewMove. Optional fields left
// at their zero value are absent; the castling and en-passant flags default
// to false.
type MoveSpec struct {
	From, To Square

	Mover     Snapshot
	Captured  lang.Optional[Snapshot]
	Borrowed  lang.Optional[Snapshot]
	Promotion lang.Optional[Kind]

	IsCastling  bool
	IsEnPassant bool
}

// NewMove builds a Move from spec, enforcing the cross-field construction
// invariants. Promotion presence is resolved against the mover's kind and
// far rank here rather than trusted from the caller, since that is the one
// invariant every caller (native generator, transporter generator, apex
// handling) must get right identically.
func NewMove(spec MoveSpec) (Move, error) {
	if spec.IsCastling && spec.IsEnPassant {
		return Move{}, fmt.Errorf("move cannot be both castling and en passant")
	}
	if _, borrowed := spec.Borrowed.V(); borrowed && (spec.IsCastling || spec.IsEnPassant) {
		return Move{}, fmt.Errorf("transporter move cannot castle or capture en passant")
	}

	if spec.IsCastling {
		if spec.Mover.Kind != King {
			return Move{}, fmt.Errorf("castling mover must be a King, got %v", spec.Mover.Kind)
		}
		df := int(spec.To.File()) - int(spec.From.File())
		if df != 2 && df != -2 {
			return Move{}, fmt.Errorf("castling must be a 2-file step, got %v->%v", spec.From, spec.To)
		}
		wantFile := FileG
		if df < 0 {
			wantFile = FileC
		}
		if spec.To.File() != wantFile || spec.To.Rank() != spec.From.Rank() {
			return Move{}, fmt.Errorf("castling destination %v does not match king home rank", spec.To)
		}
	}

	if spec.IsEnPassant {
		if spec.Mover.Kind != Pawn {
			return Move{}, fmt.Errorf("en passant mover must be a Pawn, got %v", spec.Mover.Kind)
		}
		captured, ok := spec.Captured.V()
		if !ok {
			return Move{}, fmt.Errorf("en passant move must capture a pawn")
		}
		want := NewSquare(spec.To.File(), spec.From.Rank())
		if captured.Square != want || captured.Kind != Pawn {
			return Move{}, fmt.Errorf("en passant capture square %v does not match adjacent pawn at %v", captured.Square, want)
		}
	}

	wantsPromotion := spec.Mover.Kind == Pawn && spec.To.IsPromotionRank(spec.Mover.Color)
	if promo, ok := spec.Promotion.V(); ok != wantsPromotion {
		return Move{}, fmt.Errorf("promotion presence mismatch for %v->%v", spec.From, spec.To)
	} else if ok && !promo.IsPromotable() {
		return Move{}, fmt.Errorf("invalid promotion kind %v", promo)
	}

	return Move{
		From:        spec.From,
		To:          spec.To,
		Mover:       spec.Mover,
		Captured:    spec.Captured,
		Borrowed:    spec.Borrowed,
		Promotion:   spec.Promotion,
		IsCastling:  spec.IsCastling,
		IsEnPassant: spec.IsEnPassant,
	}, nil
}

// String renders the move as
//
//	[KindSymbol][~BorrowedKindSymbol] from ("-"|"x") to [ "=" PromoKind [ "!" if apex ] ]
//	castling: "O-O" or "O-O-O"
//
// This is a log/test notation, not a parser input.
func (m Move) String() string {
	if m.IsCastling {
		if m.To.File() == FileG {
			return "O-O"
		}
		return "O-O-O"
	}

	var sb strings.Builder
	sb.WriteString(strings.ToUpper(m.Mover.Kind.String()))
	if borrowed, ok := m.Borrowed.V(); ok {
		sb.WriteString("~" + strings.ToUpper(borrowed.Kind.String()))
	}
	sb.WriteString(" " + m.From.String())
	if _, captured := m.Captured.V(); captured || m.IsEnPassant {
		sb.WriteString("x")
	} else {
		sb.WriteString("-")
	}
	sb.WriteString(m.To.String())
	if promo, ok := m.Promotion.V(); ok {
		sb.WriteString("=" + strings.ToUpper(promo.String()))
		if m.IsPawnKnightApex() {
			sb.WriteString("!")
		}
	}
	return sb.String()
}
