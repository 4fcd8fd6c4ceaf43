package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// IncrementViews bumps the view counter of a category and returns the new
// value.
func (s *Store) IncrementViews(ctx context.Context, category string) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, ViewsKey(category))
	pipe.SAdd(ctx, ViewedCategoriesKey(), category)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to increment views for %q: %w", category, err)
	}
	return incr.Val(), nil
}

// GetViews retrieves the view counters of every viewed category
func (s *Store) GetViews(ctx context.Context) (map[string]int64, error) {
	names, err := s.client.SMembers(ctx, ViewedCategoriesKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get viewed categories: %w", err)
	}

	stats := make(map[string]int64, len(names))
	if len(names) == 0 {
		return stats, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = ViewsKey(name)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get view counters: %w", err)
	}

	for i, v := range values {
		n, err := parseCounter(v)
		if err != nil {
			// Skip counters that couldn't be parsed
			continue
		}
		stats[names[i]] = n
	}
	return stats, nil
}

// ResetViews removes every view counter
func (s *Store) ResetViews(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, KeyPrefixViews+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete views key: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to reset views: %w", err)
	}
	return nil
}

func parseCounter(v any) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case string:
		return strconv.ParseInt(x, 10, 64)
	default:
		return 0, errors.New("unexpected counter type")
	}
}
