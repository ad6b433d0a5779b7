package game

import (
	"fmt"
	"strings"

	"chess_analysis/internal/domain/game"
)

// BuildMoveGraph lays out the main lines of all games as one graph.
// Move pairs with the same number and moves share a node; the first game to reach one owns it.
func BuildMoveGraph(games []game.Game) game.MoveGraph {
	graph := game.MoveGraph{Nodes: []game.GraphNode{}, Edges: []game.GraphEdge{}}
	nodeByKey := make(map[string]string)

	for gameIndex, g := range games {
		last := game.GraphRootID
		for moveIndex, move := range g.Moves {
			key := fmt.Sprintf("%d-%s-%s", move.Number, move.White, move.BlackSan())
			edgeID := fmt.Sprintf("edge-%d-%d", gameIndex, moveIndex)

			if existing, ok := nodeByKey[key]; ok {
				graph.Edges = append(graph.Edges, game.GraphEdge{ID: edgeID, Source: last, Target: existing, Shared: true})
				last = existing
				continue
			}

			nodeID := fmt.Sprintf("game-%d-%d", gameIndex, moveIndex)
			graph.Nodes = append(graph.Nodes, game.GraphNode{
				ID:        nodeID,
				Label:     strings.TrimSpace(fmt.Sprintf("%d. %s %s", move.Number, move.White, move.BlackSan())),
				Fen:       move.Fen,
				GameIndex: gameIndex,
				MoveIndex: moveIndex,
			})
			nodeByKey[key] = nodeID
			graph.Edges = append(graph.Edges, game.GraphEdge{ID: edgeID, Source: last, Target: nodeID})
			last = nodeID
		}
	}
	return graph
}
