package game

const GraphRootID = "start"

// GraphNode is one distinct move pair across all loaded games.
type GraphNode struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Fen       string `json:"fen"`
	GameIndex int    `json:"game_index"`
	MoveIndex int    `json:"move_index"`
}

// GraphEdge links consecutive moves. Shared edges point at a node first created by another line.
type GraphEdge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Shared bool   `json:"shared"`
}

type MoveGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}
