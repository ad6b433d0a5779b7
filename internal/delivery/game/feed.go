package game

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"chess_analysis/internal/domain/game"
)

const feedWriteTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type feedClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *feedClient) send(state game.State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
	return c.conn.WriteJSON(state)
}

// StateFeed pushes state snapshots to connected websocket clients.
type StateFeed struct {
	log     *zap.SugaredLogger
	mu      sync.RWMutex
	clients map[string]*feedClient
}

func NewStateFeed(log *zap.SugaredLogger) *StateFeed {
	return &StateFeed{
		log:     log,
		clients: make(map[string]*feedClient),
	}
}

func (f *StateFeed) Broadcast(state game.State) {
	f.mu.RLock()
	targets := make(map[string]*feedClient, len(f.clients))
	for id, client := range f.clients {
		targets[id] = client
	}
	f.mu.RUnlock()

	for id, client := range targets {
		if err := client.send(state); err != nil {
			f.log.Infof("dropping feed client %s: %v", id, err)
			f.remove(id)
		}
	}
}

func (f *StateFeed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.clients)
}

func (f *StateFeed) add(conn *websocket.Conn) (string, *feedClient) {
	id := uuid.NewString()
	client := &feedClient{conn: conn}

	f.mu.Lock()
	f.clients[id] = client
	f.mu.Unlock()
	return id, client
}

func (f *StateFeed) remove(id string) {
	f.mu.Lock()
	client, ok := f.clients[id]
	delete(f.clients, id)
	f.mu.Unlock()

	if ok {
		_ = client.conn.Close()
	}
}

// HandleStateFeed upgrades to a websocket, sends the current state and then
// every state produced by a successful command.
func (g *GameHandler) HandleStateFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.requestLog(r).Error("websocket upgrade failed: ", err)
		return
	}

	id, client := g.feed.add(conn)
	g.log.Infof("feed client %s connected", id)

	if err := client.send(g.gameUC.Snapshot()); err != nil {
		g.feed.remove(id)
		return
	}

	// reads only detect the close; clients send commands over HTTP
	go func() {
		defer g.feed.remove(id)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				g.log.Infof("feed client %s disconnected", id)
				return
			}
		}
	}()
}
