package domain

import "testing"

func TestGenerateSessionID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateSessionID()
		if err != nil {
			t.Fatalf("GenerateSessionID() error = %v", err)
		}
		if len(id) != 31 {
			t.Errorf("len(%q) = %d, want 31", id, len(id))
		}
		if !IsValidSessionID(id) {
			t.Errorf("IsValidSessionID(%q) = false", id)
		}
		if seen[id] {
			t.Errorf("duplicate session id %q", id)
		}
		seen[id] = true
	}
}

func TestIsValidSessionID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"uvss-01arz3ndektsv4rrffq69g5fav", true},
		{"tmss-01arz3ndektsv4rrffq69g5fav", false},
		{"uvss-short", false},
		{"uvss-01arz3ndektsv4rrffq69g5fa!", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := IsValidSessionID(tt.id); got != tt.want {
				t.Errorf("IsValidSessionID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
