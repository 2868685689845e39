// Package notation parses and prints the minimal coordinate move form the
// engine's external surface accepts: "from-to" with an optional promotion
// suffix "=Q", "=R", "=B" or "=N", e.g. "e2-e4", "d7-d8=Q". A bare "e2e4" without the
// separator is accepted too. Rich algebraic notation is out of scope; the
// engine resolves the (from, to, promotion) triple against its own legal
// move list.
package notation

import (
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/talsforest/tether/pkg/board"
)

// ParsedMove is the (from, to, promotion) triple a coordinate move string
// denotes. It carries no legality judgement.
type ParsedMove struct {
	From, To  board.Square
	Promotion lang.Optional[board.Kind]
}

func (p ParsedMove) String() string {
	if promo, ok := p.Promotion.V(); ok {
		return fmt.Sprintf("%v-%v=%v", p.From, p.To, strings.ToUpper(promo.String()))
	}
	return fmt.Sprintf("%v-%v", p.From, p.To)
}

// Parse parses a coordinate move of the form "from-to[=promo]".
func Parse(s string) (ParsedMove, error) {
	text := strings.TrimSpace(s)

	var promo lang.Optional[board.Kind]
	if at := strings.IndexRune(text, '='); at >= 0 {
		suffix := []rune(text[at+1:])
		if len(suffix) != 1 {
			return ParsedMove{}, fmt.Errorf("invalid promotion in move: %q", s)
		}
		kind, ok := board.ParseKind(suffix[0])
		if !ok || !kind.IsPromotable() {
			return ParsedMove{}, fmt.Errorf("invalid promotion kind in move: %q", s)
		}
		promo = lang.Some(kind)
		text = text[:at]
	}

	parts := strings.SplitN(text, "-", 2)
	if len(parts) == 1 && len(text) == 4 {
		parts = []string{text[:2], text[2:]}
	}
	if len(parts) != 2 {
		return ParsedMove{}, fmt.Errorf("invalid move: %q", s)
	}

	from, err := board.FromText(parts[0])
	if err != nil {
		return ParsedMove{}, fmt.Errorf("invalid move origin in %q: %v", s, err)
	}
	to, err := board.FromText(parts[1])
	if err != nil {
		return ParsedMove{}, fmt.Errorf("invalid move destination in %q: %v", s, err)
	}
	return ParsedMove{From: from, To: to, Promotion: promo}, nil
}
