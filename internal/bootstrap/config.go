package bootstrap

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageMongo  = "mongo"
)

type Config struct {
	ServerPort     string        `mapstructure:"SERVER_PORT"`
	StateStorage   string        `mapstructure:"STATE_STORAGE"`
	StateKey       string        `mapstructure:"STATE_KEY"`
	RedisUrl       string        `mapstructure:"REDIS_URL"`
	MongoUri       string        `mapstructure:"MONGO_URI"`
	MongoDatabase  string        `mapstructure:"MONGO_DATABASE"`
	IsLocalCors    bool          `mapstructure:"LOCAL_CORS"`
	StorageTimeout time.Duration `mapstructure:"STORAGE_TIMEOUT"`
}

var defaults = map[string]any{
	"SERVER_PORT":     "8080",
	"STATE_STORAGE":   StorageMemory,
	"STATE_KEY":       "chess-analysis-tool",
	"REDIS_URL":       "localhost:6379",
	"MONGO_URI":       "mongodb://localhost:27017",
	"MONGO_DATABASE":  "chess_analysis",
	"LOCAL_CORS":      false,
	"STORAGE_TIMEOUT": 5 * time.Second,
}

// Setup loads cfgPath into the environment when it exists and reads the config from env.
func Setup(cfgPath string) (*Config, error) {
	if cfgPath != "" {
		if err := godotenv.Load(cfgPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	switch cfg.StateStorage {
	case StorageMemory, StorageRedis, StorageMongo:
	default:
		return nil, errors.New("unknown STATE_STORAGE: " + cfg.StateStorage)
	}

	return &cfg, nil
}
