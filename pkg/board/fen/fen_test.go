package fen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talsforest/tether/pkg/board"
	"github.com/talsforest/tether/pkg/board/fen"
)

func TestDecodeInitial(t *testing.T) {
	pos, turn, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, board.White, turn)
	assert.Equal(t, board.FullCastingRights, pos.Castling())
	_, hasEP := pos.EnPassant()
	assert.False(t, hasEP)

	queen, ok := pos.PieceAt(board.D1)
	require.True(t, ok)
	assert.Equal(t, board.Queen, queen.Kind)
	assert.Equal(t, board.White, queen.Color)

	king, ok := pos.PieceAt(board.E8)
	require.True(t, ok)
	assert.Equal(t, board.King, king.Kind)
	assert.Equal(t, board.Black, king.Color)

	assert.Equal(t, 32, pos.All().PopCount())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3",
		"7k/Q7/6K1/8/8/8/8/8 w - -",
		"k7/2Q5/1K6/8/8/8/8/8 b - -",
	}
	for _, tt := range tests {
		pos, turn, err := fen.Decode(tt)
		require.NoError(t, err, tt)
		assert.Equal(t, tt, fen.Encode(pos, turn), tt)
	}
}

func TestDecodeEnPassantTarget(t *testing.T) {
	pos, turn, err := fen.Decode("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3")
	require.NoError(t, err)

	assert.Equal(t, board.Black, turn)
	ep, ok := pos.EnPassant()
	require.True(t, ok)
	assert.Equal(t, board.E3, ep)
}

func TestDecodeErrors(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",             // missing sections
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",    // bad color
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq -",    // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9",   // bad en passant
		"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",      // short board
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq -",    // bad piece
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN1R w KQkq -",   // long rank
		"8/8/8/8/8/8/8/8 w - -",                                   // no kings
	}
	for _, tt := range tests {
		_, _, err := fen.Decode(tt)
		assert.Error(t, err, tt)
	}
}
