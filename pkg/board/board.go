// Package board contains the chess board representation for Tether Chess:
// squares, pieces, positions and moves, plus the Board wrapper that adds
// side-to-move and move history on top of a Position.
package board

import "fmt"

// Board is the full mutable game state: a Position (occupancy, castling
// rights, en-passant target) plus side-to-move and an append-only move
// history. It does not decide legality; it performs the requested mutation.
// Legality is pkg/rules's job.
type Board struct {
	pos     *Position
	turn    Color
	history []Move
}

// NewGame returns a Board set up in the standard starting position, White
// to move.
func NewGame() *Board {
	return &Board{pos: standardPosition(), turn: White}
}

// NewBoard wraps an already-built position with the given side to move and
// history, for loading a scenario (tests, a serialized save) rather than
// starting a fresh game.
func NewBoard(pos *Position, turn Color, history []Move) *Board {
	return &Board{pos: pos, turn: turn, history: append([]Move(nil), history...)}
}

// Position returns the board's current position.
func (b *Board) Position() *Position {
	return b.pos
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return b.turn
}

// History returns the moves played so far, oldest first.
func (b *Board) History() []Move {
	return append([]Move(nil), b.history...)
}

// LastMove returns the most recently played move, if any.
func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1], true
}

// Clone returns a deep copy, for the legality filter and analysis passes
// that must explore a move without disturbing the live game.
func (b *Board) Clone() *Board {
	return &Board{pos: b.pos.Clone(), turn: b.turn, history: append([]Move(nil), b.history...)}
}

// Apply mutates the board by playing m: Position.Apply performs the grid
// mutation, Apply itself appends to history and toggles side to move
// exactly once.
func (b *Board) Apply(m Move) {
	b.pos = b.pos.Apply(m)
	b.history = append(b.history, m)
	b.turn = b.turn.Opponent()
}

func (b *Board) String() string {
	return fmt.Sprintf("board{pos=%v, turn=%v, ply=%v}", b.pos, b.turn, len(b.history))
}
