package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seed(t *testing.T, store *Store, rows ...ScoreEntry) {
	t.Helper()
	for _, r := range rows {
		if _, err := store.SaveScore(r.Name, r.Score); err != nil {
			t.Fatalf("SaveScore(%q, %d) failed: %v", r.Name, r.Score, err)
		}
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	seed(t, store,
		ScoreEntry{Name: "Player1", Score: 100},
		ScoreEntry{Name: "Player1", Score: 50},
		ScoreEntry{Name: "moti", Score: 200},
	)

	scores, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct {
		name  string
		score int
	}{
		{"moti", 200},
		{"Player1", 100},
		{"Player1", 50},
	}
	for i, w := range want {
		if scores[i].Name != w.name || scores[i].Score != w.score {
			t.Errorf("row %d = %s/%d, want %s/%d", i, scores[i].Name, scores[i].Score, w.name, w.score)
		}
	}

	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
	if time.Since(scores[0].CreatedAt) > 24*time.Hour {
		t.Errorf("CreatedAt looks wrong: %v", scores[0].CreatedAt)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 15; i++ {
		seed(t, store, ScoreEntry{Name: "p", Score: i * 10})
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, 10},
		{-3, 10},
		{100, 15},
	}
	for _, tt := range tests {
		scores, err := store.TopScores(tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tt.limit, err)
		}
		if len(scores) != tt.want {
			t.Errorf("TopScores(%d) returned %d rows, want %d", tt.limit, len(scores), tt.want)
		}
		if scores[0].Score != 150 {
			t.Errorf("TopScores(%d) first = %d, want 150", tt.limit, scores[0].Score)
		}
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)
	seed(t, store,
		ScoreEntry{Name: "ann", Score: 3},
		ScoreEntry{Name: "bob", Score: 9},
		ScoreEntry{Name: "ann", Score: 7},
	)

	scores, err := store.PlayerScores("ann", 10)
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 7 || scores[1].Score != 3 {
		t.Errorf("unexpected rows %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	seed(t, store,
		ScoreEntry{Name: "a", Score: 12},
		ScoreEntry{Name: "b", Score: 30},
		ScoreEntry{Name: "c", Score: 7},
	)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	seed(t, store, ScoreEntry{Name: "a", Score: 1}, ScoreEntry{Name: "b", Score: 2})

	n, err := store.ClearScores()
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearScores() removed %d, want 2", n)
	}

	scores, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreReset(t *testing.T) {
	store := openTestStore(t)
	seed(t, store, ScoreEntry{Name: "a", Score: 1}, ScoreEntry{Name: "b", Score: 2})

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	scores, err := store.AllScores()
	if err != nil {
		t.Fatalf("AllScores() after reset failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected empty table after reset, got %d rows", len(scores))
	}

	id, err := store.SaveScore("c", 3)
	if err != nil {
		t.Fatalf("SaveScore() after reset failed: %v", err)
	}
	if id != 1 {
		t.Errorf("IDs should start over after reset, got %d", id)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store1, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store1.SaveScore("Player1", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store1.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store2.Close()

	scores, err := store2.AllScores()
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Name != "Player1" || scores[0].Score != 42 {
		t.Errorf("Expected persisted Player1/42, got %+v", scores)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() on empty table failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty table: %+v", stats)
	}

	seed(t, store,
		ScoreEntry{Name: "a", Score: 10},
		ScoreEntry{Name: "a", Score: 20},
		ScoreEntry{Name: "b", Score: 30},
	)

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Players != 2 || stats.HighScore != 30 || stats.TotalScore != 60 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, want 20", stats.AvgScore)
	}
}
