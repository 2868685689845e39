package engine

// GameState classifies the game after the latest move. The three draw
// enumerants beyond Stalemate are reserved: threefold repetition, the
// fifty-move rule and insufficient material are not implemented, and the
// engine never reports them.
type GameState int

const (
	InProgress GameState = iota
	WhiteWinsCheckmate
	BlackWinsCheckmate
	Stalemate
	DrawByRepetition           // reserved, not implemented
	DrawByFiftyMoves           // reserved, not implemented
	DrawByInsufficientMaterial // reserved, not implemented
)

// IsTerminal reports whether the game has ended.
func (s GameState) IsTerminal() bool {
	return s != InProgress
}

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case WhiteWinsCheckmate:
		return "white wins by checkmate"
	case BlackWinsCheckmate:
		return "black wins by checkmate"
	case Stalemate:
		return "draw by stalemate"
	case DrawByRepetition:
		return "draw by repetition"
	case DrawByFiftyMoves:
		return "draw by fifty-move rule"
	case DrawByInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "unknown"
	}
}
