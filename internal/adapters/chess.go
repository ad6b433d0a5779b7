package adapters

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/notnil/chess"

	"chess_analysis/internal/domain/game"
)

var (
	tagPairRe    = regexp.MustCompile(`\[[^\]]*\]`)
	commentRe    = regexp.MustCompile(`\{[^}]*\}|;[^\n]*`)
	moveNumberRe = regexp.MustCompile(`^\d+\.(\.\.)?`)
)

var errNoMoves = errors.New("record contains no moves")

// AdapterChess binds the rules engine capability to notnil/chess.
type AdapterChess struct {
	notation chess.AlgebraicNotation
}

func NewAdapterChess() *AdapterChess {
	return &AdapterChess{}
}

// Replay loads a PGN record and returns every half-move with its SAN and the FEN after it.
// Every movetext token has to be a legal move; the record is rejected otherwise.
func (a *AdapterChess) Replay(record string) ([]game.HalfMove, error) {
	if _, err := chess.PGN(strings.NewReader(record)); err != nil {
		return nil, err
	}

	replayed := chess.NewGame()
	for _, token := range movetextTokens(record) {
		if err := replayed.MoveStr(token); err != nil {
			return nil, fmt.Errorf("move %d %q: %w", len(replayed.Moves())+1, token, err)
		}
	}

	moves := replayed.Moves()
	if len(moves) == 0 {
		return nil, errNoMoves
	}
	positions := replayed.Positions()

	halfMoves := make([]game.HalfMove, 0, len(moves))
	for i, move := range moves {
		halfMoves = append(halfMoves, game.HalfMove{
			San: a.notation.Encode(positions[i], move),
			Fen: positions[i+1].String(),
		})
	}
	return halfMoves, nil
}

// movetextTokens returns the SAN tokens of the main line. Tag pairs, comments,
// variations, NAGs, move numbers and the result are dropped.
func movetextTokens(record string) []string {
	text := tagPairRe.ReplaceAllString(record, " ")
	text = commentRe.ReplaceAllString(text, " ")
	text = stripVariations(text)

	var tokens []string
	for _, field := range strings.Fields(text) {
		field = moveNumberRe.ReplaceAllString(field, "")
		field = strings.TrimRight(field, "!?")
		switch {
		case field == "":
		case strings.HasPrefix(field, "$"):
		case field == "1-0", field == "0-1", field == "1/2-1/2", field == "*":
		default:
			tokens = append(tokens, field)
		}
	}
	return tokens
}

func stripVariations(text string) string {
	var b strings.Builder
	depth := 0
	for _, r := range text {
		switch {
		case r == '(':
			depth++
			b.WriteByte(' ')
		case r == ')' && depth > 0:
			depth--
			b.WriteByte(' ')
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LoadPosition resets the engine to fen. An empty fen loads the initial position.
func (a *AdapterChess) LoadPosition(fen string) (game.Board, error) {
	loaded := chess.StartingPosition()
	if fen != "" {
		position, err := chess.FEN(fen)
		if err != nil {
			return game.Board{}, err
		}
		loaded = chess.NewGame(position).Position()
	}

	return game.Board{
		Fen:     loaded.String(),
		Turn:    loaded.Turn().Name(),
		Diagram: loaded.Board().Draw(),
	}, nil
}
