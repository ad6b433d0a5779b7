package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"chess_analysis/internal/domain/game"
	errs "chess_analysis/internal/errors"
)

const stateCollection = "state"

type stateDocument struct {
	ID        string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type MongoStateStorage struct {
	mongo   *mongo.Database
	log     *zap.SugaredLogger
	key     string
	timeout time.Duration
}

func NewMongoStateStorage(mongo *mongo.Database, log *zap.SugaredLogger, key string, timeout time.Duration) *MongoStateStorage {
	return &MongoStateStorage{
		mongo:   mongo,
		log:     log,
		key:     key,
		timeout: timeout,
	}
}

func (m *MongoStateStorage) LoadState(ctx context.Context) (game.State, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	collection := m.mongo.Collection(stateCollection)

	var doc stateDocument
	err := collection.FindOne(ctx, bson.M{"_id": m.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return game.NewState(), errs.ErrStateNotFound
	} else if err != nil {
		m.log.Error(err)
		return game.NewState(), err
	}

	return game.DecodeState([]byte(doc.Payload))
}

func (m *MongoStateStorage) SaveState(ctx context.Context, state game.State) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	blob, err := game.EncodeState(state)
	if err != nil {
		return err
	}

	collection := m.mongo.Collection(stateCollection)
	doc := stateDocument{
		ID:        m.key,
		Payload:   string(blob),
		UpdatedAt: time.Now().UTC(),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": m.key}, doc, opts); err != nil {
		m.log.Errorf("failed to save state to database: %v", err)
		return err
	}
	return nil
}
