// Package settings persists the player's preferences between sessions.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage location inside the gdata store.
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are user preferences. Scores are never stored.
type Settings struct {
	SoundEnabled bool `yaml:"soundEnabled"`
}

// Default returns the settings used when nothing has been saved.
func Default() Settings {
	return Settings{SoundEnabled: true}
}

// Manager loads and saves Settings through gdata.
// A nil gdata manager keeps settings in memory only.
type Manager struct {
	store    *gdata.Manager
	settings Settings
}

// Open creates a gdata store for appName and a Manager on top of it.
// If the store cannot be opened the Manager still works, in memory only,
// and the error is returned alongside it.
func Open(appName string) (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewManager(nil), fmt.Errorf("open settings store: %w", err)
	}
	return NewManager(store), nil
}

// NewManager creates a Manager and loads any saved settings. Load failures
// are logged and leave the defaults in place.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, settings: Default()}
	if err := m.Load(); err != nil {
		log.Warn("using default settings", "err", err)
	}
	return m
}

// Load reads saved settings, falling back to defaults when none exist.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	m.settings = loaded
	return nil
}

// Save writes the current settings. It is a no-op without a store.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// SoundEnabled reports whether cues should make sound.
func (m *Manager) SoundEnabled() bool {
	return m.settings.SoundEnabled
}

// ToggleSound flips the sound setting, saves it and returns the new value.
// The in-memory value changes even if saving fails.
func (m *Manager) ToggleSound() (bool, error) {
	m.settings.SoundEnabled = !m.settings.SoundEnabled
	return m.settings.SoundEnabled, m.Save()
}
