package adapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placement(fen string) string {
	return strings.Fields(fen)[0]
}

func TestAdapterChess_Replay(t *testing.T) {
	engine := NewAdapterChess()

	halfMoves, err := engine.Replay("1. e4 e5 2. Nf3")
	require.NoError(t, err)
	require.Len(t, halfMoves, 3)

	assert.Equal(t, "e4", halfMoves[0].San)
	assert.Equal(t, "e5", halfMoves[1].San)
	assert.Equal(t, "Nf3", halfMoves[2].San)

	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", placement(halfMoves[0].Fen))
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR", placement(halfMoves[1].Fen))
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R", placement(halfMoves[2].Fen))
}

func TestAdapterChess_ReplayIllegalMove(t *testing.T) {
	engine := NewAdapterChess()

	_, err := engine.Replay("1. e4 e5 2. Ke3")
	assert.Error(t, err)
}

func TestAdapterChess_ReplayRejectsUnparsableText(t *testing.T) {
	engine := NewAdapterChess()

	tests := []struct {
		name   string
		record string
	}{
		{"free text", "hello world"},
		{"sentence with a number", "not a game at all 123"},
		{"trailing garbage", "1. e4 hello"},
		{"garbage between moves", "1. e4 e5 2. xyz Nc6"},
		{"tags only", `[Event "Casual"]`},
		{"result only", "1-0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			halfMoves, err := engine.Replay(tt.record)
			assert.Error(t, err)
			assert.Nil(t, halfMoves)
		})
	}
}

func TestAdapterChess_ReplayFullRecord(t *testing.T) {
	engine := NewAdapterChess()

	record := `[Event "Casual"]
[White "A"]
[Black "B"]

1. e4 {king pawn} e5 2. Nf3 Nc6
3. Bb5 1-0`

	halfMoves, err := engine.Replay(record)
	require.NoError(t, err)

	sans := make([]string, 0, len(halfMoves))
	for _, h := range halfMoves {
		sans = append(sans, h.San)
	}
	assert.Equal(t, []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}, sans)
}

func TestMovetextTokens(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   []string
	}{
		{"numbers and result", "1. e4 e5 2. Nf3 *", []string{"e4", "e5", "Nf3"}},
		{"attached numbers", "1.d4 1...d5 2.c4", []string{"d4", "d5", "c4"}},
		{"nested variations", "1. e4 (1. d4 (1. c4) d5) e5", []string{"e4", "e5"}},
		{"comments and nags", "1. e4 {best by test} $1 c5 ; sicilian", []string{"e4", "c5"}},
		{"annotations", "1. e4!? e5?!", []string{"e4", "e5"}},
		{"draw", "1. e4 e5 1/2-1/2", []string{"e4", "e5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, movetextTokens(tt.record))
		})
	}
}

const startingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestAdapterChess_LoadPosition(t *testing.T) {
	engine := NewAdapterChess()

	board, err := engine.LoadPosition("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR", placement(board.Fen))
	assert.Equal(t, "White", board.Turn)
	assert.NotEmpty(t, board.Diagram)
}

func TestAdapterChess_LoadPositionEmptyIsStart(t *testing.T) {
	engine := NewAdapterChess()

	board, err := engine.LoadPosition("")
	require.NoError(t, err)
	assert.Equal(t, startingFen, board.Fen)
}

func TestAdapterChess_LoadPositionInvalid(t *testing.T) {
	engine := NewAdapterChess()

	_, err := engine.LoadPosition("not a fen")
	assert.Error(t, err)
}
