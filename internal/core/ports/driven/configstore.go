package driven

// ConfigStore reads and writes persisted settings. Keys use dotted
// notation (scraper.base_url, mcp.port); typed getters return the zero
// value when the key is absent or holds a different type.
type ConfigStore interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns a string value, or "" when absent.
	GetString(key string) string

	// GetInt returns an integer value, or 0 when absent.
	GetInt(key string) int

	// GetBool returns a boolean value, or false when absent.
	GetBool(key string) bool

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load re-reads configuration from storage.
	Load() error

	// Path returns the backing file path.
	Path() string
}
