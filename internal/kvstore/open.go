package kvstore

import (
	"context"
	"fmt"

	"letify_backend/internal/config"
)

// Open builds the backend selected by cfg.Store.Type.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	sc := cfg.Store
	switch sc.Type {
	case "memory":
		return NewMemoryStore(), nil
	case "postgres", "mysql":
		return OpenGorm(sc.Type, sc.DSN, sc.Table)
	case "redis":
		return OpenRedis(ctx, sc.Redis.Addr, sc.Redis.Password, sc.Redis.DB)
	case "mongo":
		return OpenMongo(ctx, sc.Mongo.URI, sc.Mongo.Database, sc.Mongo.Collection)
	default:
		return nil, fmt.Errorf("kvstore: unknown store type %q", sc.Type)
	}
}
