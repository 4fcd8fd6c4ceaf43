package redis

import (
	"github.com/redis/go-redis/v9"
)

// Store handles Redis operations for view counters
type Store struct {
	client redis.UniversalClient
}

// NewStore creates a new Redis store
func NewStore(client redis.UniversalClient) *Store {
	return &Store{
		client: client,
	}
}
