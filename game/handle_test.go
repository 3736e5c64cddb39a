package game

import "testing"

func TestNoopDrawNeverFails(t *testing.T) {
	h := Noop()
	for i := 0; i < 100; i++ {
		if h.Draw(i%2 == 0, false, i%3 == 0, true) == nil {
			t.Fatalf("noop handle returned nil result on frame %d", i)
		}
	}
}

func TestMakeDefaultsToNoop(t *testing.T) {
	h, err := Make()
	if err != nil {
		t.Fatalf("Make() error: %v", err)
	}
	if h == nil {
		t.Fatal("Make() returned nil handle")
	}
	if h.Draw(false, false, false, false) == nil {
		t.Error("default handle failed to draw")
	}
}

func TestRegisterReplacesFactory(t *testing.T) {
	old := defaultFactory
	defer func() { defaultFactory = old }()

	called := false
	Register(func() (Handle, error) {
		called = true
		return Noop(), nil
	})
	if _, err := Make(); err != nil {
		t.Fatalf("Make() error: %v", err)
	}
	if !called {
		t.Error("registered factory was not used")
	}
}
