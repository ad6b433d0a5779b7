package game

// Move is one move pair. Black is nil when the record ends after White's move.
type Move struct {
	Number int     `json:"number"`
	White  string  `json:"white"`
	Black  *string `json:"black"`
	Fen    string  `json:"fen"`
}

// SamePair reports whether both moves record the same White and Black half-moves.
func (m Move) SamePair(other Move) bool {
	if m.White != other.White {
		return false
	}
	if m.Black == nil || other.Black == nil {
		return m.Black == nil && other.Black == nil
	}
	return *m.Black == *other.Black
}

// BlackSan returns Black's move or an empty string.
func (m Move) BlackSan() string {
	if m.Black == nil {
		return ""
	}
	return *m.Black
}

// HalfMove is a single side's move as replayed by the rules engine.
type HalfMove struct {
	San string
	Fen string
}

// Board is a position loaded into the rules engine.
type Board struct {
	Fen     string `json:"fen"`
	Turn    string `json:"turn"`
	Diagram string `json:"diagram"`
}

// Transposition marks two moves of one game that reach the same position.
type Transposition struct {
	First  int `json:"first"`
	Repeat int `json:"repeat"`
}
