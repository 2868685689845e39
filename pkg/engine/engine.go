// Package engine orchestrates Tether Chess games: it owns the board, runs
// moves through the rule core in pkg/rules, and classifies the resulting
// game state. All mutating operations are context-scoped and logged; the
// rule core itself stays logging-free.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/talsforest/tether/pkg/board"
	"github.com/talsforest/tether/pkg/board/fen"
	"github.com/talsforest/tether/pkg/rules"
)

var version = build.NewVersion(0, 1, 0)

// MoveResult reports the outcome of an Apply request. Failed requests leave
// the board unchanged; Err then carries an *EngineError for errors.Is and
// Message a short human description.
type MoveResult struct {
	Ok      bool
	Message string
	Err     error

	Move        lang.Optional[board.Move]
	GivesCheck  bool
	IsCheckmate bool
}

func (r MoveResult) String() string {
	if !r.Ok {
		return fmt.Sprintf("rejected: %v", r.Message)
	}
	return fmt.Sprintf("ok: %v", r.Message)
}

// Engine encapsulates one Tether Chess game. It is safe for concurrent use;
// each call holds the engine lock for its duration, so a host serializing
// operations per game gets the atomic-apply guarantee for free.
type Engine struct {
	name, author string

	b     *board.Board
	state GameState
	mu    sync.Mutex
}

// New returns an engine set up for a new game in the standard starting
// position.
func New(ctx context.Context, name, author string) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		b:      board.NewGame(),
	}

	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// NewGame returns an engine for a fresh standard game.
func NewGame(ctx context.Context) *Engine {
	return New(ctx, "talsforest", "talsforest authors")
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Board returns a deep copy of the current board.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Clone()
}

// Position returns the current position in FEN-shaped notation. Convenience
// function.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b.Position(), e.b.Turn())
}

// State returns the current game state.
func (e *Engine) State() GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// History returns the moves played so far, oldest first.
func (e *Engine) History() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.History()
}

// Reset resets the engine to a new game from the given position in
// FEN-shaped notation.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v", position)

	pos, turn, err := fen.Decode(position)
	if err != nil {
		return inputErr(err)
	}
	e.b = board.NewBoard(pos, turn, nil)
	e.state = classify(e.b)

	logw.Infof(ctx, "New board: %v", e.b)
	return nil
}

// LegalMoves returns every legal move for the side to move. Empty when the
// game is over.
func (e *Engine) LegalMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.IsTerminal() {
		return nil
	}
	return rules.LegalMoves(e.b)
}

// LegalMovesFrom returns every legal move originating at the given square.
func (e *Engine) LegalMovesFrom(from board.Square) []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.IsTerminal() {
		return nil
	}
	return rules.LegalMovesFrom(e.b, from)
}

// RankMatesOf returns the squares of the friendly pieces entangled with the
// piece on the given square: those sharing its rank, excluding itself.
func (e *Engine) RankMatesOf(sq board.Square) []board.Square {
	e.mu.Lock()
	defer e.mu.Unlock()

	piece, ok := e.b.Position().PieceAt(sq)
	if !ok {
		return nil
	}

	var out []board.Square
	for _, mate := range rules.RankMates(e.b.Position(), piece.Color, sq) {
		out = append(out, mate.Square)
	}
	return out
}

// BoardView returns a display snapshot of the board: one optional piece per
// square, indexed [rank][file].
func (e *Engine) BoardView() [8][8]lang.Optional[board.Piece] {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out [8][8]lang.Optional[board.Piece]
	for r := board.ZeroRank; r < board.NumRanks; r++ {
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			if piece, ok := e.b.Position().PieceAt(board.NewSquare(f, r)); ok {
				out[r][f] = lang.Some(piece)
			}
		}
	}
	return out
}

// Apply plays the move denoted by (from, to, promotion) for the side to
// move. When the destination lies on the mover's far rank and no promotion
// kind is supplied, the engine promotes to Queen; ErrAmbiguousPromotion is
// reserved for hosts that want to force an explicit choice instead. Errors
// are returned inside the MoveResult and leave the board unchanged; a panic
// out of the rule core is converted to a rejection rather than propagated.
func (e *Engine) Apply(ctx context.Context, from, to board.Square, promotion lang.Optional[board.Kind]) (result MoveResult) {
	e.mu.Lock()
	defer e.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logw.Errorf(ctx, "Move %v-%v panicked: %v", from, to, r)
			result = rejected(ruleErr(fmt.Errorf("internal error: %v", r)))
		}
	}()

	logw.Infof(ctx, "Move %v-%v", from, to)

	if !from.IsValid() || !to.IsValid() {
		return rejected(inputErr(fmt.Errorf("%w: %v-%v", ErrInvalidSquare, from, to)))
	}
	if e.state.IsTerminal() {
		return rejected(stateErr(fmt.Errorf("%w: %v", ErrGameOver, e.state)))
	}

	piece, ok := e.b.Position().PieceAt(from)
	if !ok {
		return rejected(stateErr(fmt.Errorf("%w: %v", ErrEmptySource, from)))
	}
	if piece.Color != e.b.Turn() {
		return rejected(stateErr(fmt.Errorf("%w: %v", ErrWrongColorToMove, piece)))
	}

	m, ok := matchMove(rules.LegalMovesFrom(e.b, from), to, promotion)
	if !ok {
		return rejected(ruleErr(fmt.Errorf("%w: %v-%v", ErrIllegalMove, from, to)))
	}

	e.b.Apply(m)
	e.state = classify(e.b)

	givesCheck := rules.GivesCheck(e.b.Position(), m.Mover.Color)
	isCheckmate := e.state == WhiteWinsCheckmate || e.state == BlackWinsCheckmate

	logw.Infof(ctx, "Move %v: %v, state=%v", m, e.b, e.state)

	return MoveResult{
		Ok:          true,
		Message:     m.String(),
		Move:        lang.Some(m),
		GivesCheck:  givesCheck,
		IsCheckmate: isCheckmate,
	}
}

// TransporterMoves returns the legal moves that borrow a rank-mate's
// movement.
func (e *Engine) TransporterMoves() []board.Move {
	return rules.TransporterMoves(e.LegalMoves())
}

// PawnKnightApexMoves returns the legal Pawn-Knight Apex moves: pawns
// borrowing a Knight's L-jump onto their far rank.
func (e *Engine) PawnKnightApexMoves() []board.Move {
	return rules.PawnKnightApexMoves(e.LegalMoves())
}

// CheckingMoves returns the legal moves that give check.
func (e *Engine) CheckingMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.IsTerminal() {
		return nil
	}
	return rules.CheckingMoves(e.b, rules.LegalMoves(e.b))
}

// MichaelTalMoves returns the opening Queen/Rook-over-the-pawn-wall jumps
// available from the starting position. Empty once any move has been played.
func (e *Engine) MichaelTalMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.IsTerminal() {
		return nil
	}
	return rules.MichaelTalMoves(e.b, rules.LegalMoves(e.b))
}

// matchMove resolves the requested (to, promotion) against the legal moves
// from the origin. A promotion request must match a promoting candidate; a
// missing promotion on a promoting destination selects the Queen variant.
func matchMove(candidates []board.Move, to board.Square, promotion lang.Optional[board.Kind]) (board.Move, bool) {
	want, explicit := promotion.V()

	var fallback lang.Optional[board.Move]
	for _, m := range candidates {
		if m.To != to {
			continue
		}

		promo, promotes := m.Promotion.V()
		if explicit {
			if promotes && promo == want {
				return m, true
			}
			continue
		}
		if !promotes {
			return m, true
		}
		if promo == board.Queen {
			fallback = lang.Some(m)
		}
	}
	return fallback.V()
}

// classify computes the game state for the side to move, per the post-move
// classification rules: no legal moves means checkmate when the king is
// under native attack, stalemate otherwise.
func classify(b *board.Board) GameState {
	if len(rules.LegalMoves(b)) > 0 {
		return InProgress
	}

	turn := b.Turn()
	if rules.NativeAttacks(b.Position(), b.Position().KingSquare(turn), turn.Opponent()) {
		if turn == board.White {
			return BlackWinsCheckmate
		}
		return WhiteWinsCheckmate
	}
	return Stalemate
}

func rejected(err *EngineError) MoveResult {
	return MoveResult{Ok: false, Message: err.Err.Error(), Err: err}
}
