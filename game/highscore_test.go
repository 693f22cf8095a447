package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

func TestHighscoreEmptyWithoutStorage(t *testing.T) {
	hs := NewHighscoreStore(nil)
	if got := len(hs.Top()); got != 0 {
		t.Errorf("fresh store: got %d records, want 0", got)
	}
	if hs.Best() != 0 {
		t.Errorf("best of empty store: got %d, want 0", hs.Best())
	}
}

func TestHighscoreSubmitOrdering(t *testing.T) {
	hs := NewHighscoreStore(nil)
	for _, score := range []int{100, 300, 200} {
		hs.Submit("", score)
	}

	top := hs.Top()
	want := []int{300, 200, 100}
	if len(top) != len(want) {
		t.Fatalf("records: got %d, want %d", len(top), len(want))
	}
	for i, w := range want {
		if top[i].Score != w {
			t.Errorf("rank %d: got %d, want %d", i+1, top[i].Score, w)
		}
		if top[i].Name != "anonymous" {
			t.Errorf("rank %d name: got %q, want \"anonymous\"", i+1, top[i].Name)
		}
	}
}

func TestHighscoreNeverExceedsFive(t *testing.T) {
	hs := NewHighscoreStore(nil)
	for score := 10; score <= 80; score += 10 {
		hs.Submit("", score)
	}
	if got := len(hs.Top()); got != 5 {
		t.Errorf("records: got %d, want 5", got)
	}
	if hs.Best() != 80 {
		t.Errorf("best: got %d, want 80", hs.Best())
	}
}

func TestHighscoreLowScoreLeavesListUnchanged(t *testing.T) {
	hs := NewHighscoreStore(nil)
	for _, score := range []int{500, 400, 300, 200, 100} {
		hs.Submit("", score)
	}
	before := hs.Top()

	if hs.Submit("", 50) {
		t.Error("score below the whole list reported as making it")
	}
	after := hs.Top()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("rank %d changed: %v -> %v", i+1, before[i], after[i])
		}
	}
}

func TestHighscoreNewMaximumRanksFirst(t *testing.T) {
	hs := NewHighscoreStore(nil)
	for _, score := range []int{500, 400, 300, 200, 100} {
		hs.Submit("", score)
	}
	if !hs.Submit("", 900) {
		t.Fatal("new maximum not reported as making the list")
	}
	if hs.Top()[0].Score != 900 {
		t.Errorf("rank 1: got %d, want 900", hs.Top()[0].Score)
	}
	if got := len(hs.Top()); got != 5 {
		t.Errorf("records: got %d, want 5", got)
	}
}

func TestHighscoreTiesKeepEarlierSubmissionFirst(t *testing.T) {
	hs := NewHighscoreStore(nil)
	hs.Submit("first", 200)
	hs.Submit("second", 200)

	top := hs.Top()
	if top[0].Name != "first" || top[1].Name != "second" {
		t.Errorf("tie order: got [%s %s], want [first second]", top[0].Name, top[1].Name)
	}
}

func TestHighscorePersistsThroughGdata(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	m, err := gdata.Open(gdata.Config{AppName: "spaceinvader_test"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}

	hs := NewHighscoreStore(m)
	hs.Submit("ada", 420)

	reloaded := NewHighscoreStore(m)
	top := reloaded.Top()
	if len(top) != 1 {
		t.Fatalf("reloaded records: got %d, want 1", len(top))
	}
	if top[0].Name != "ada" || top[0].Score != 420 {
		t.Errorf("reloaded record: got %+v, want {ada 420}", top[0])
	}
}
