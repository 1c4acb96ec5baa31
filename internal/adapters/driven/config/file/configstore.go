package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/opskit/runbooks/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

const configFileName = "config.toml"

// ConfigStore persists settings to a TOML file under the runbooks
// config directory. Nested tables are flattened to dotted keys on
// load, so callers address values as scraper.base_url or mcp.port.
type ConfigStore struct {
	mu   sync.RWMutex
	path string
	data map[string]any
}

// NewConfigStore opens the store rooted at configDir, creating the
// directory when needed. An empty configDir means ~/.runbooks.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		configDir = filepath.Join(home, ".runbooks")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &ConfigStore{
		path: filepath.Join(configDir, configFileName),
		data: make(map[string]any),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get returns the raw value and whether the key exists.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString returns a string value, or "" when absent or mistyped.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, _ := val.(string)
	return str
}

// GetInt returns an integer value, or 0 when absent or mistyped.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int64: // go-toml decodes TOML integers as int64
		return int(v)
	case int:
		return v
	}
	return 0
}

// GetBool returns a boolean value, or false when absent or mistyped.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, _ := val.(bool)
	return b
}

// Set stores a value under key and persists the store immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.persist()
}

// Save persists the current configuration.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

// persist marshals the store to disk. Caller holds the lock.
func (s *ConfigStore) persist() error {
	raw, err := toml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(s.path, raw, 0600)
}

// Load re-reads the TOML file. A missing file leaves the store empty.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.data = make(map[string]any)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var nested map[string]any
	if err := toml.Unmarshal(raw, &nested); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}

	s.data = flatten(nested, "")
	return nil
}

// flatten rewrites nested tables as dotted keys, so [scraper]
// base_url becomes scraper.base_url.
func flatten(m map[string]any, prefix string) map[string]any {
	out := make(map[string]any, len(m))

	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}

		if table, ok := value.(map[string]any); ok {
			for k, v := range flatten(table, key) {
				out[k] = v
			}
			continue
		}
		out[key] = value
	}

	return out
}

// Path returns the backing file path.
func (s *ConfigStore) Path() string {
	return s.path
}
