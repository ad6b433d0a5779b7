package repository

import (
	"context"
	"sync"

	"chess_analysis/internal/domain/game"
	errs "chess_analysis/internal/errors"
)

// MapStateStorage keeps state blobs in process memory.
type MapStateStorage struct {
	mu    sync.RWMutex
	key   string
	blobs map[string][]byte
}

func NewMapStateStorage(key string) *MapStateStorage {
	return &MapStateStorage{
		key:   key,
		blobs: make(map[string][]byte),
	}
}

func (m *MapStateStorage) LoadState(ctx context.Context) (game.State, error) {
	m.mu.RLock()
	blob, ok := m.blobs[m.key]
	m.mu.RUnlock()
	if !ok {
		return game.NewState(), errs.ErrStateNotFound
	}
	return game.DecodeState(blob)
}

func (m *MapStateStorage) SaveState(ctx context.Context, state game.State) error {
	blob, err := game.EncodeState(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.blobs[m.key] = blob
	m.mu.Unlock()
	return nil
}

// PutRaw stores an arbitrary blob under the state key.
func (m *MapStateStorage) PutRaw(blob []byte) {
	m.mu.Lock()
	m.blobs[m.key] = blob
	m.mu.Unlock()
}
