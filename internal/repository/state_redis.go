package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chess_analysis/internal/domain/game"
	errs "chess_analysis/internal/errors"
)

type RedisStateStorage struct {
	client  *redis.Client
	log     *zap.SugaredLogger
	key     string
	timeout time.Duration
}

func NewRedisStateStorage(client *redis.Client, log *zap.SugaredLogger, key string, timeout time.Duration) *RedisStateStorage {
	return &RedisStateStorage{
		client:  client,
		log:     log,
		key:     key,
		timeout: timeout,
	}
}

func (r *RedisStateStorage) LoadState(ctx context.Context) (game.State, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	blob, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return game.NewState(), errs.ErrStateNotFound
		}
		r.log.Error(err)
		return game.NewState(), err
	}
	return game.DecodeState(blob)
}

func (r *RedisStateStorage) SaveState(ctx context.Context, state game.State) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	blob, err := game.EncodeState(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, blob, 0).Err()
}
