package repository

import (
	"context"

	"go.uber.org/zap"

	"chess_analysis/internal/adapters"
	"chess_analysis/internal/bootstrap"
	"chess_analysis/internal/domain/game"
)

type StateStorage interface {
	LoadState(ctx context.Context) (game.State, error)
	SaveState(ctx context.Context, state game.State) error
}

// OpenStateStorage builds the storage selected by cfg.StateStorage.
// The returned close func releases the underlying client.
func OpenStateStorage(ctx context.Context, cfg *bootstrap.Config, log *zap.SugaredLogger) (StateStorage, func(context.Context) error, error) {
	switch cfg.StateStorage {
	case bootstrap.StorageRedis:
		redisAdapter := adapters.NewAdapterRedis(cfg, log)
		if err := redisAdapter.Init(ctx); err != nil {
			return nil, nil, err
		}
		storage := NewRedisStateStorage(redisAdapter.GetClient(), log, cfg.StateKey, cfg.StorageTimeout)
		return storage, redisAdapter.Close, nil
	case bootstrap.StorageMongo:
		mongoAdapter := adapters.NewAdapterMongo(cfg, log)
		if err := mongoAdapter.Init(ctx); err != nil {
			return nil, nil, err
		}
		storage := NewMongoStateStorage(mongoAdapter.Database, log, cfg.StateKey, cfg.StorageTimeout)
		return storage, mongoAdapter.Close, nil
	default:
		return NewMapStateStorage(cfg.StateKey), func(context.Context) error { return nil }, nil
	}
}
