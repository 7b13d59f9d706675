package governance

import "testing"

func TestOutcome(t *testing.T) {
	tests := []struct {
		name         string
		votesFor     int
		votesAgainst int
		want         string
	}{
		{"no votes", 0, 0, StatusQuorumNotMet},
		{"below quorum unanimous", 9, 0, StatusQuorumNotMet},
		{"at quorum passes", 6, 4, StatusPassed},
		{"at quorum exact threshold", 6, 4, StatusPassed}, // 60% is enough
		{"at quorum below threshold", 5, 5, StatusRejected},
		{"landslide against", 2, 20, StatusRejected},
		{"large pass", 70, 30, StatusPassed},
		{"69 percent of 100", 69, 31, StatusPassed},
		{"59 percent of 100", 59, 41, StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Outcome(tt.votesFor, tt.votesAgainst)
			if got != tt.want {
				t.Errorf("Outcome(%d, %d) = %q, want %q", tt.votesFor, tt.votesAgainst, got, tt.want)
			}
		})
	}
}
