package config

// Config represents the configuration for the application.
type Config struct {
	// Redis holds the configuration for the Redis database used as the
	// primary cache.
	Redis struct {
		Addr     string `yaml:"addr" json:"addr"`         // Addr is the address of the Redis server.
		Password string `yaml:"password" json:"password"` // Password is the password for the Redis server.
		DB       int    `yaml:"db" json:"db"`             // DB is the database number for the Redis server.
	} `yaml:"redis" json:"redis"`
	// CacheExpiration is the expiration time for cached lookup results, in seconds.
	CacheExpiration int `yaml:"cacheExpiration" json:"cacheExpiration"`
	// Port is the port number for the HTTP server.
	Port int `yaml:"port" json:"port"`
	// RateLimit is the maximum number of lookups processed concurrently.
	RateLimit int `yaml:"rateLimit" json:"rateLimit"`
	// Cache holds the cache behavior configuration.
	Cache struct {
		// RequireRedis aborts startup when Redis is unavailable instead of
		// falling back to the memory cache.
		RequireRedis bool `yaml:"requireRedis" json:"requireRedis"`
		// MemoryMaxSize is the maximum number of entries in the memory cache.
		MemoryMaxSize int `yaml:"memoryMaxSize" json:"memoryMaxSize"`
		// MemoryCleanInterval is the expired-entry sweep interval, in seconds.
		MemoryCleanInterval int `yaml:"memoryCleanInterval" json:"memoryCleanInterval"`
	} `yaml:"cache" json:"cache"`
}
