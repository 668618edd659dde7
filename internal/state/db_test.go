package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skilllet/skilllet/internal/models"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) *DB {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := New(Config{
		Path:        dbPath,
		Debug:       false,
		MaxIdleConn: 1,
		MaxOpenConn: 1,
	})
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "skilllet.db")

	db, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	// Verify database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	// Verify path is stored correctly
	if db.Path() != dbPath {
		t.Errorf("Path() = %v, want %v", db.Path(), dbPath)
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dirs", "skilllet.db")

	db, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("nested directories were not created")
	}
}

func TestLoadState_Empty(t *testing.T) {
	db := testDB(t)

	state, err := db.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if state != nil {
		t.Errorf("LoadState() on fresh db = %+v, want nil", state)
	}
}

func TestSaveAndLoadState(t *testing.T) {
	db := testDB(t)

	in := &models.PersistedState{
		IsAuthenticated:  true,
		CurrentUser:      &models.User{ID: 1, Username: "DataPro"},
		CompletedSkills:  []int64{1, 3},
		BookmarkedSkills: []int64{2},
		UserProgress: map[int64]models.ProgressRecord{
			1: {Completed: true, CompletedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		},
		Votes: map[int64]models.VoteTally{
			3: {Difficulty: map[string]int{models.DifficultyHard: 2}},
		},
	}

	if err := db.SaveState(in); err != nil {
		t.Fatalf("SaveState() error = %v", err)
	}

	got, err := db.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if got == nil {
		t.Fatal("LoadState() = nil after save")
	}
	if !got.IsAuthenticated {
		t.Error("IsAuthenticated not round-tripped")
	}
	if got.CurrentUser == nil || got.CurrentUser.Username != "DataPro" {
		t.Errorf("CurrentUser = %+v, want DataPro", got.CurrentUser)
	}
	if len(got.CompletedSkills) != 2 || got.CompletedSkills[0] != 1 {
		t.Errorf("CompletedSkills = %v, want [1 3]", got.CompletedSkills)
	}
	if got.Votes[3].Difficulty[models.DifficultyHard] != 2 {
		t.Errorf("Votes = %+v, want 2 hard votes on skill 3", got.Votes)
	}
}

func TestSaveState_Overwrites(t *testing.T) {
	db := testDB(t)

	if err := db.SaveState(&models.PersistedState{CompletedSkills: []int64{1}}); err != nil {
		t.Fatalf("first SaveState() error = %v", err)
	}
	if err := db.SaveState(&models.PersistedState{CompletedSkills: []int64{1, 2, 3}}); err != nil {
		t.Fatalf("second SaveState() error = %v", err)
	}

	got, err := db.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if len(got.CompletedSkills) != 3 {
		t.Errorf("CompletedSkills = %v, want latest snapshot", got.CompletedSkills)
	}

	// A single namespace means a single row.
	var count int64
	if err := db.Model(&Snapshot{}).Count(&count).Error; err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1", count)
	}
}

func TestLoadState_CorruptSnapshotIsDiscarded(t *testing.T) {
	db := testDB(t)

	snap := Snapshot{Namespace: Namespace, Data: "{not json"}
	if err := db.Create(&snap).Error; err != nil {
		t.Fatalf("insert corrupt snapshot: %v", err)
	}

	state, err := db.LoadState()
	if err != nil {
		t.Fatalf("LoadState() error = %v", err)
	}
	if state != nil {
		t.Errorf("LoadState() with corrupt data = %+v, want nil", state)
	}
}

func TestGetOrCreateProfileID(t *testing.T) {
	db := testDB(t)

	id1 := db.GetOrCreateProfileID()
	if id1 == "" {
		t.Fatal("GetOrCreateProfileID() returned empty id")
	}

	id2 := db.GetOrCreateProfileID()
	if id1 != id2 {
		t.Errorf("profile id not stable: %q != %q", id1, id2)
	}
}

func TestGetOrCreateProfileID_SurvivesReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "skilllet.db")

	db, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	id1 := db.GetOrCreateProfileID()
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db2, err := New(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer func() {
		_ = db2.Close()
	}()

	if id2 := db2.GetOrCreateProfileID(); id2 != id1 {
		t.Errorf("profile id changed across reopen: %q != %q", id2, id1)
	}
}
