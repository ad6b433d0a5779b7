package game

import (
	"strings"

	"chess_analysis/internal/domain/game"
	errs "chess_analysis/internal/errors"
)

// RulesEngine is the legal-move engine the parser and board view rely on.
type RulesEngine interface {
	Replay(record string) ([]game.HalfMove, error)
	LoadPosition(fen string) (game.Board, error)
}

// ParsePgn replays a record and pairs its half-moves into numbered moves.
func ParsePgn(engine RulesEngine, record string) (game.Game, error) {
	if strings.TrimSpace(record) == "" {
		return game.Game{}, &errs.ParseError{Err: errs.ErrEmptyRecord}
	}

	halfMoves, err := engine.Replay(record)
	if err != nil {
		return game.Game{}, &errs.ParseError{Err: err}
	}

	moves := make([]game.Move, 0, (len(halfMoves)+1)/2)
	current := game.Move{Number: 1}
	whiteTurn := true

	for _, half := range halfMoves {
		if whiteTurn {
			current.White = half.San
			current.Fen = half.Fen
		} else {
			black := half.San
			current.Black = &black
			current.Fen = half.Fen
			moves = append(moves, current)
			current = game.Move{Number: current.Number + 1}
		}
		whiteTurn = !whiteTurn
	}

	// trailing White move with no reply
	if !whiteTurn {
		moves = append(moves, current)
	}

	return game.NewGame(moves), nil
}

// MergeGames keeps base as the main line and turns the part of incoming
// that diverges from it into a single variation.
func MergeGames(base, incoming game.Game) game.Game {
	merged := make([]game.Move, 0, len(base.Moves))
	i, j := 0, 0

	for i < len(base.Moves) && j < len(incoming.Moves) {
		if !base.Moves[i].SamePair(incoming.Moves[j]) {
			break
		}
		merged = append(merged, base.Moves[i])
		i++
		j++
	}

	merged = append(merged, base.Moves[i:]...)

	variations := []game.Game{}
	if j < len(incoming.Moves) {
		tail := make([]game.Move, len(incoming.Moves)-j)
		copy(tail, incoming.Moves[j:])
		variations = append(variations, game.NewGame(tail))
	}

	return game.Game{Moves: merged, Variations: variations}
}

// FindTranspositions pairs each repeated position with the index where it first occurred.
func FindTranspositions(g game.Game) []game.Transposition {
	firstSeen := make(map[string]int, len(g.Moves))
	transpositions := []game.Transposition{}

	for index, move := range g.Moves {
		key := positionKey(move.Fen)
		if first, ok := firstSeen[key]; ok {
			transpositions = append(transpositions, game.Transposition{First: first, Repeat: index})
			continue
		}
		firstSeen[key] = index
	}
	return transpositions
}

// positionKey drops the halfmove clock and fullmove number so that the same
// placement, side to move, castling rights and en passant square compare equal.
func positionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

// TagTranspositions returns g unchanged. Transpositions are served by FindTranspositions
// so the persisted game layout stays the same.
func TagTranspositions(g game.Game) game.Game {
	return g
}
