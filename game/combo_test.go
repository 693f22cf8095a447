package game

import "testing"

func TestComboChainIncreasesMultiplier(t *testing.T) {
	c := NewComboTracker(1.0, 10)

	if got := c.RecordKill(10); got != 10 {
		t.Errorf("first kill: got %d, want 10", got)
	}
	if c.Multiplier != 1 {
		t.Errorf("multiplier after first kill: got %d, want 1", c.Multiplier)
	}

	c.Tick(0.5)
	if got := c.RecordKill(10); got != 20 {
		t.Errorf("chained kill: got %d, want 20", got)
	}
	c.Tick(0.9)
	if got := c.RecordKill(10); got != 30 {
		t.Errorf("third chained kill: got %d, want 30", got)
	}
}

func TestComboMonotonicWithinWindow(t *testing.T) {
	c := NewComboTracker(1.0, 10)
	prev := 0
	for i := 0; i < 6; i++ {
		c.RecordKill(10)
		if c.Multiplier < prev {
			t.Fatalf("multiplier decreased mid-streak: %d -> %d", prev, c.Multiplier)
		}
		prev = c.Multiplier
		c.Tick(0.2)
	}
}

func TestComboGapResetsBeforeScoring(t *testing.T) {
	c := NewComboTracker(1.0, 10)
	c.RecordKill(10)
	c.Tick(0.5)
	c.RecordKill(10) // multiplier 2

	c.Tick(1.1) // past the window
	if got := c.RecordKill(10); got != 10 {
		t.Errorf("kill after gap: got %d, want 10", got)
	}
	if c.Multiplier != 1 {
		t.Errorf("multiplier after gap: got %d, want 1", c.Multiplier)
	}
}

func TestComboIdleDecayWithoutKill(t *testing.T) {
	c := NewComboTracker(1.0, 10)
	c.RecordKill(10)
	c.Tick(0.5)
	c.RecordKill(10)
	c.Tick(0.5)
	c.RecordKill(10)
	if c.Multiplier != 3 {
		t.Fatalf("setup: multiplier got %d, want 3", c.Multiplier)
	}

	// 1.5 simulated seconds with no kill: the multiplier must drop back to 1
	// even though no further kill ever happens.
	for i := 0; i < 90; i++ {
		c.Tick(1.0 / 60.0)
	}
	if c.Multiplier != 1 {
		t.Errorf("multiplier after idle decay: got %d, want 1", c.Multiplier)
	}
}

func TestComboNeverBelowOne(t *testing.T) {
	c := NewComboTracker(1.0, 10)
	for i := 0; i < 5; i++ {
		c.Tick(2.0)
		if c.Multiplier < 1 {
			t.Fatalf("multiplier below 1: %d", c.Multiplier)
		}
	}
}

func TestComboCap(t *testing.T) {
	c := NewComboTracker(1.0, 3)
	for i := 0; i < 10; i++ {
		c.RecordKill(10)
	}
	if c.Multiplier != 3 {
		t.Errorf("multiplier: got %d, want cap 3", c.Multiplier)
	}
	if got := c.RecordKill(10); got != 30 {
		t.Errorf("capped kill: got %d, want 30", got)
	}
}
