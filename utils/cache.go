package utils

// CacheResult represents the result of a cache operation
type CacheResult struct {
	Data  string
	Found bool
}
