package input

import "testing"

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()
	tests := []struct {
		name string
		want Dir
	}{
		{"up", DirUp}, {"down", DirDown}, {"left", DirLeft}, {"right", DirRight},
		{"w", DirUp}, {"s", DirDown}, {"a", DirLeft}, {"d", DirRight},
	}
	for _, tt := range tests {
		dir, ok := b.Lookup(tt.name)
		if !ok || dir != tt.want {
			t.Errorf("Lookup(%q) = %v, %v; want %v, true", tt.name, dir, ok, tt.want)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	b := DefaultBindings()
	if dir, ok := b.Lookup("UP"); !ok || dir != DirUp {
		t.Errorf("Lookup(UP) = %v, %v; want up, true", dir, ok)
	}
}

func TestLookupUnboundKey(t *testing.T) {
	b := DefaultBindings()
	if _, ok := b.Lookup("p"); ok {
		t.Error("unbound key resolved to a direction")
	}
}
