package core

import "strconv"

// PrefStore is the persistent preference boundary games read at Reset and
// write on change: best-score records keyed by difficulty and boolean
// toggles such as comfort mode. Implementations are best-effort; a failing
// backend must behave like NopPrefs, never surface errors, and never block
// gameplay.
type PrefStore interface {
	GetString(key, def string) string
	SetString(key, value string)
	GetBool(key string, def bool) bool
	SetBool(key string, value bool)
	GetInt(key string, def int) int
	SetInt(key string, value int)
}

// NopPrefs is a PrefStore that stores nothing and always returns defaults.
// Used when persistent storage is unavailable.
type NopPrefs struct{}

func (NopPrefs) GetString(_, def string) string  { return def }
func (NopPrefs) SetString(_, _ string)           {}
func (NopPrefs) GetBool(_ string, def bool) bool { return def }
func (NopPrefs) SetBool(_ string, _ bool)        {}
func (NopPrefs) GetInt(_ string, def int) int    { return def }
func (NopPrefs) SetInt(_ string, _ int)          {}

// MemPrefs is an in-memory PrefStore used by tests and as a session-scoped
// fallback when the database cannot be opened.
type MemPrefs struct {
	values map[string]string
}

// NewMemPrefs creates an empty in-memory preference store.
func NewMemPrefs() *MemPrefs {
	return &MemPrefs{values: make(map[string]string)}
}

func (m *MemPrefs) GetString(key, def string) string {
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

func (m *MemPrefs) SetString(key, value string) {
	m.values[key] = value
}

func (m *MemPrefs) GetBool(key string, def bool) bool {
	v, ok := m.values[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func (m *MemPrefs) SetBool(key string, value bool) {
	m.values[key] = strconv.FormatBool(value)
}

func (m *MemPrefs) GetInt(key string, def int) int {
	v, ok := m.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func (m *MemPrefs) SetInt(key string, value int) {
	m.values[key] = strconv.Itoa(value)
}
