package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chess_analysis/internal/bootstrap"
	"chess_analysis/internal/domain/game"
	errs "chess_analysis/internal/errors"
)

func sampleState() game.State {
	black := "e5"
	state := game.NewState()
	state.Library = append(state.Library, game.LibraryEntry{Name: "king pawn", Pgn: "1. e4 e5"})
	state.Games = append(state.Games, game.NewGame([]game.Move{{Number: 1, White: "e4", Black: &black, Fen: "fen"}}))
	state.Move = 1
	return state
}

func TestMapStateStorage_NotFound(t *testing.T) {
	storage := NewMapStateStorage(game.DefaultStateKey)

	state, err := storage.LoadState(context.Background())
	assert.True(t, errors.Is(err, errs.ErrStateNotFound))
	assert.Equal(t, game.NewState(), state)
}

func TestMapStateStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMapStateStorage(game.DefaultStateKey)

	require.NoError(t, storage.SaveState(ctx, sampleState()))

	loaded, err := storage.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleState(), loaded)
}

func TestMapStateStorage_Corrupt(t *testing.T) {
	storage := NewMapStateStorage(game.DefaultStateKey)
	storage.PutRaw([]byte("{not json"))

	_, err := storage.LoadState(context.Background())
	assert.True(t, errors.Is(err, errs.ErrStateCorrupt))
}

func TestOpenStateStorage_Memory(t *testing.T) {
	cfg := &bootstrap.Config{StateStorage: bootstrap.StorageMemory, StateKey: game.DefaultStateKey}

	storage, closeFn, err := OpenStateStorage(context.Background(), cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.IsType(t, &MapStateStorage{}, storage)
	assert.NoError(t, closeFn(context.Background()))
}
