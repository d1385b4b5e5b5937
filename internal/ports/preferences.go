package ports

// PreferenceStore persists user preferences between runs
type PreferenceStore interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	// Load returns every stored key; keys never written are absent
	Load() (map[string]string, error)
	Set(key, value string) error
	Delete(key string) error
}
