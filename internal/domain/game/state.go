package game

import (
	"encoding/json"
	"fmt"

	errs "chess_analysis/internal/errors"
)

const DefaultStateKey = "chess-analysis-tool"

type LibraryEntry struct {
	Name string `json:"name"`
	Pgn  string `json:"pgn"`
}

// State is the whole application state. Its JSON form is the persisted layout.
type State struct {
	Library []LibraryEntry `json:"library"`
	Games   []Game         `json:"games"`
	Move    int            `json:"move"`
}

func NewState() State {
	return State{Library: []LibraryEntry{}, Games: []Game{}}
}

func (s State) Clone() State {
	library := make([]LibraryEntry, len(s.Library))
	copy(library, s.Library)
	games := make([]Game, 0, len(s.Games))
	for _, g := range s.Games {
		games = append(games, g.Clone())
	}
	return State{Library: library, Games: games, Move: s.Move}
}

// MaxMoves is the longest main line across all games.
func (s State) MaxMoves() int {
	longest := 0
	for _, g := range s.Games {
		if len(g.Moves) > longest {
			longest = len(g.Moves)
		}
	}
	return longest
}

func (s *State) normalize() {
	if s.Library == nil {
		s.Library = []LibraryEntry{}
	}
	if s.Games == nil {
		s.Games = []Game{}
	}
	for i := range s.Games {
		s.Games[i].normalize()
	}
}

func EncodeState(s State) ([]byte, error) {
	s.normalize()
	return json.Marshal(s)
}

func DecodeState(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return NewState(), fmt.Errorf("%w: %v", errs.ErrStateCorrupt, err)
	}
	s.normalize()
	return s, nil
}
