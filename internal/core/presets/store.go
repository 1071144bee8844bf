package presets

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"timerbox/internal/core/model"
)

// Store keeps the ordered preset collection.
type Store struct {
	mu      sync.RWMutex
	presets []model.Preset
	newID   func() string
}

// New creates a store seeded with the default presets.
func New() *Store {
	return &Store{
		presets: model.DefaultPresets(),
		newID:   uuid.NewString,
	}
}

// List returns a copy of the presets in display order.
func (store *Store) List() []model.Preset {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return append([]model.Preset(nil), store.presets...)
}

// Len returns the number of presets.
func (store *Store) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.presets)
}

// Find looks a preset up by id.
func (store *Store) Find(id string) (model.Preset, bool) {
	if id == "" {
		return model.Preset{}, false
	}
	store.mu.RLock()
	defer store.mu.RUnlock()
	index := store.indexLocked(id)
	if index < 0 {
		return model.Preset{}, false
	}
	return store.presets[index], true
}

// SaveDraft validates draft and either replaces the preset with editingID in
// place or, when editingID is empty, appends a new preset.
func (store *Store) SaveDraft(draft Draft, editingID string) (model.Preset, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return model.Preset{}, model.ErrEmptyName
	}
	total := draft.TotalSeconds()
	if total <= 0 {
		return model.Preset{}, model.ErrInvalidDuration
	}

	preset := model.Preset{
		Name:            name,
		DurationSeconds: total,
		Emoji:           draft.Emoji,
		Color:           draft.Color,
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	if editingID != "" {
		if index := store.indexLocked(editingID); index >= 0 {
			preset.ID = editingID
			preset.IsDefault = store.presets[index].IsDefault
			store.presets[index] = preset
			return preset, nil
		}
	}

	preset.ID = store.uniqueIDLocked()
	store.presets = append(store.presets, preset)
	return preset, nil
}

// Delete removes the preset with id and reports whether it existed.
func (store *Store) Delete(id string) bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	index := store.indexLocked(id)
	if index < 0 {
		return false
	}
	store.presets = append(store.presets[:index:index], store.presets[index+1:]...)
	return true
}

// ResetToDefaults discards every user preset and edit.
func (store *Store) ResetToDefaults() {
	store.mu.Lock()
	store.presets = model.DefaultPresets()
	store.mu.Unlock()
}

func (store *Store) indexLocked(id string) int {
	for index, preset := range store.presets {
		if preset.ID == id {
			return index
		}
	}
	return -1
}

func (store *Store) uniqueIDLocked() string {
	for {
		id := store.newID()
		if store.indexLocked(id) < 0 {
			return id
		}
	}
}
