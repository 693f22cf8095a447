package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// maxHighscores is the length of the persisted top list.
const maxHighscores = 5

// Record is one highscore entry.
type Record struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

const (
	highscoreObject   = "highscores"
	highscoreProperty = "top"
)

// HighscoreStore persists the top-5 list through gdata. With a nil manager it
// degrades to an in-memory list; persistence failures are logged and never
// stop the game.
type HighscoreStore struct {
	manager *gdata.Manager
	records []Record
}

// NewHighscoreStore creates a store and loads whatever is on disk. A missing
// or unreadable list is an empty list, not an error.
func NewHighscoreStore(manager *gdata.Manager) *HighscoreStore {
	hs := &HighscoreStore{manager: manager}
	if err := hs.Load(); err != nil {
		log.Printf("highscores: load failed: %v (starting empty)", err)
	}
	return hs
}

// Load reads the persisted list. Corrupt data resets to empty.
func (hs *HighscoreStore) Load() error {
	hs.records = nil
	if hs.manager == nil {
		return nil
	}
	if !hs.manager.ObjectPropExists(highscoreObject, highscoreProperty) {
		return nil
	}
	data, err := hs.manager.LoadObjectProp(highscoreObject, highscoreProperty)
	if err != nil {
		return fmt.Errorf("load highscores: %w", err)
	}
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("unmarshal highscores: %w", err)
	}
	if len(records) > maxHighscores {
		records = records[:maxHighscores]
	}
	hs.records = records
	return nil
}

// Top returns the current list, best first.
func (hs *HighscoreStore) Top() []Record {
	out := make([]Record, len(hs.records))
	copy(out, hs.records)
	return out
}

// Best returns the highest persisted score, or 0 with an empty list.
func (hs *HighscoreStore) Best() int {
	if len(hs.records) == 0 {
		return 0
	}
	return hs.records[0].Score
}

// Submit inserts a score under the given name (empty means "anonymous"),
// keeping the list sorted descending and at most five entries long. Earlier
// submissions rank above later ones with the same score. It reports whether
// the score made the list.
func (hs *HighscoreStore) Submit(name string, score int) bool {
	if name == "" {
		name = "anonymous"
	}
	records := append(hs.Top(), Record{Name: name, Score: score})
	// Stable sort keeps the new entry behind existing equal scores.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	// The new entry is the last of its score group, so the highest matching
	// index is the new entry itself.
	idx := 0
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Name == name && records[i].Score == score {
			idx = i
			break
		}
	}
	if idx >= maxHighscores {
		return false
	}
	if len(records) > maxHighscores {
		records = records[:maxHighscores]
	}
	hs.records = records
	hs.save()
	return true
}

// save writes the list out. Failure is logged, never fatal.
func (hs *HighscoreStore) save() {
	if hs.manager == nil {
		return
	}
	data, err := yaml.Marshal(hs.records)
	if err != nil {
		log.Printf("highscores: marshal failed: %v", err)
		return
	}
	if err := hs.manager.SaveObjectProp(highscoreObject, highscoreProperty, data); err != nil {
		log.Printf("highscores: save failed: %v", err)
	}
}
