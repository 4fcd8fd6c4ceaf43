package redis

import "fmt"

const (
	// KeyPrefixViews is the prefix for per-category view counters
	KeyPrefixViews = "faves:views:"
	// KeyViewedCategories is the key for the set of categories with a counter
	KeyViewedCategories = "faves:views:_all"
)

// ViewsKey returns the Redis key for a category's view counter
func ViewsKey(category string) string {
	return KeyPrefixViews + category
}

// ViewedCategoriesKey returns the key for the set of viewed categories
func ViewedCategoriesKey() string {
	return KeyViewedCategories
}

// ExtractCategory extracts the category name from a view counter key
func ExtractCategory(key string) (string, error) {
	if len(key) <= len(KeyPrefixViews) || key[:len(KeyPrefixViews)] != KeyPrefixViews {
		return "", fmt.Errorf("invalid views key: %s", key)
	}
	return key[len(KeyPrefixViews):], nil
}
