package gamification

import "testing"

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{599, 3},
		{600, 4},
		{1000, 5},
	}

	for _, tt := range tests {
		got := LevelForXP(tt.xp)
		if got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 100},
		{40, 60},
		{100, 200},
		{250, 50},
	}

	for _, tt := range tests {
		got := XPToNextLevel(tt.xp)
		if got != tt.want {
			t.Errorf("XPToNextLevel(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestBadgesForXP(t *testing.T) {
	if got := BadgesForXP(0); len(got) != 0 {
		t.Errorf("BadgesForXP(0) returned %d badges, want 0", len(got))
	}

	got := BadgesForXP(500)
	want := []string{"FIRST_STEPS", "NODE_RUNNER", "HODLER"}
	if len(got) != len(want) {
		t.Fatalf("BadgesForXP(500) returned %d badges, want %d", len(got), len(want))
	}
	for i, b := range got {
		if b.Code != want[i] {
			t.Errorf("BadgesForXP(500)[%d] = %q, want %q", i, b.Code, want[i])
		}
	}
}

func TestBadgesAscending(t *testing.T) {
	for i := 1; i < len(Badges); i++ {
		if Badges[i].MinXP <= Badges[i-1].MinXP {
			t.Errorf("Badges[%d].MinXP = %d, not above previous %d", i, Badges[i].MinXP, Badges[i-1].MinXP)
		}
	}
}
