package game

// Game is a main line plus alternative continuations.
type Game struct {
	Moves      []Move `json:"moves"`
	Variations []Game `json:"variations"`
}

func NewGame(moves []Move) Game {
	if moves == nil {
		moves = []Move{}
	}
	return Game{Moves: moves, Variations: []Game{}}
}

// Clone returns a copy that shares no slices with g.
func (g Game) Clone() Game {
	moves := make([]Move, len(g.Moves))
	copy(moves, g.Moves)
	variations := make([]Game, 0, len(g.Variations))
	for _, v := range g.Variations {
		variations = append(variations, v.Clone())
	}
	return Game{Moves: moves, Variations: variations}
}

func (g *Game) normalize() {
	if g.Moves == nil {
		g.Moves = []Move{}
	}
	if g.Variations == nil {
		g.Variations = []Game{}
	}
	for i := range g.Variations {
		g.Variations[i].normalize()
	}
}
