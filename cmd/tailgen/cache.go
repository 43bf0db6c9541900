package main

import (
	"context"
	"fmt"

	"github.com/yacobolo/tailgen/internal/accel"
)

// openCache opens the compile cache named by the settings.
func openCache(ctx context.Context, s cacheSettings) (accel.Cache, error) {
	switch s.Backend {
	case "", "memory":
		return accel.NewMemoryCache(s.Size), nil
	case "file":
		return accel.NewFileCache(s.Dir)
	case "redis":
		return accel.NewRedisCache(ctx, s.Redis)
	case "none":
		return accel.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want memory, file, redis or none)", s.Backend)
	}
}
