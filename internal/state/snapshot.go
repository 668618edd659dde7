package state

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/skilllet/skilllet/internal/models"
)

// LoadState reads the persisted state slice for the default namespace.
// A missing row rehydrates to nil (fresh session). A corrupt document is
// treated the same way: there is no migration scheme, so unreadable state
// is discarded rather than failing startup.
func (db *DB) LoadState() (*models.PersistedState, error) {
	var snap Snapshot
	err := db.Where("namespace = ?", Namespace).First(&snap).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var state models.PersistedState
	if err := json.Unmarshal([]byte(snap.Data), &state); err != nil {
		return nil, nil
	}
	return &state, nil
}

// SaveState writes the persisted state slice through to the default
// namespace, replacing any previous snapshot.
func (db *DB) SaveState(state *models.PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	snap := Snapshot{Namespace: Namespace, Data: string(data)}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
}

// GetOrCreateProfileID returns the persistent anonymous profile id,
// creating one if it doesn't exist. On any error it falls back to a
// per-session id.
func (db *DB) GetOrCreateProfileID() string {
	var profile Profile
	err := db.Where("id = ?", "default").First(&profile).Error
	if err == nil && profile.ProfileID != "" {
		return profile.ProfileID
	}

	id := uuid.New().String()
	profile = Profile{ID: "default", ProfileID: id}
	saveErr := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"profile_id", "updated_at"}),
	}).Create(&profile).Error
	if saveErr != nil {
		// Even if save fails, return the generated id for this session
		return id
	}
	return id
}
