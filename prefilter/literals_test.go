package prefilter

import "testing"

func TestLiteralsCouldMatch(t *testing.T) {
	l := New([][]byte{[]byte("dog"), []byte("cat"), []byte("bird")})
	if l == nil {
		t.Fatal("New() returned nil for non-empty branches")
	}

	tests := []struct {
		name string
		tail string
		want bool
	}{
		{"contains first branch", "I have a dog", true},
		{"contains second branch", "I have a cat", true},
		{"contains none", "I have a fish", false},
		{"empty tail", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.CouldMatch([]byte(tt.tail)); got != tt.want {
				t.Errorf("CouldMatch(%q) = %v, want %v", tt.tail, got, tt.want)
			}
		})
	}
}

func TestLiteralsEmptyBranches(t *testing.T) {
	if l := New(nil); l != nil {
		t.Errorf("New(nil) = %v, want nil", l)
	}
}

func TestNilLiteralsAlwaysCouldMatch(t *testing.T) {
	var l *Literals
	if !l.CouldMatch([]byte("anything")) {
		t.Errorf("nil *Literals.CouldMatch should always report true")
	}
}
