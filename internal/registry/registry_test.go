package registry

import (
	"errors"
	"testing"
)

type fakeFactory string

func (f fakeFactory) Name() string { return string(f) }

func TestRegisterPreservesOrder(t *testing.T) {
	r := New[fakeFactory]("widget", 4)
	for _, name := range []string{"Value", "Timer", "Text"} {
		if err := r.Register(fakeFactory(name)); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if r.At(0) != "Value" || r.At(2) != "Text" {
		t.Errorf("order = %v, want [Value Timer Text]", r.All())
	}
	if got := r.IndexOf("Timer"); got != 1 {
		t.Errorf("IndexOf(Timer) = %d, want 1", got)
	}
	if got := r.IndexOf("Gauge"); got != -1 {
		t.Errorf("IndexOf(Gauge) = %d, want -1", got)
	}
}

func TestRegisterErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(r *Registry[fakeFactory])
		factory fakeFactory
		wantErr error
	}{
		{
			name:    "duplicate",
			setup:   func(r *Registry[fakeFactory]) { _ = r.Register("Value") },
			factory: "Value",
			wantErr: ErrDuplicate,
		},
		{
			name: "full",
			setup: func(r *Registry[fakeFactory]) {
				_ = r.Register("a")
				_ = r.Register("b")
			},
			factory: "c",
			wantErr: ErrFull,
		},
		{
			name:    "sealed",
			setup:   func(r *Registry[fakeFactory]) { r.Seal() },
			factory: "a",
			wantErr: ErrSealed,
		},
		{
			name:    "empty name",
			setup:   func(r *Registry[fakeFactory]) {},
			factory: "",
			wantErr: ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New[fakeFactory]("layout", 2)
			tt.setup(r)
			err := r.Register(tt.factory)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	r := New[fakeFactory]("theme", 2)
	_ = r.Register("Default")

	if f, ok := r.Lookup("Default"); !ok || f != "Default" {
		t.Errorf("Lookup(Default) = %q, %v", f, ok)
	}
	if _, ok := r.Lookup("Missing"); ok {
		t.Error("Lookup(Missing) should fail")
	}
}

func TestLookupTruncatedName(t *testing.T) {
	r := New[fakeFactory]("widget", 4).WithKeyLength(10)
	if err := r.Register("Telemetry value"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if f, ok := r.Lookup("Telemetry "); !ok || f != "Telemetry value" {
		t.Errorf("Lookup(stored name) = %q, %v", f, ok)
	}
	if got := r.IndexOf("Telemetry value"); got != 0 {
		t.Errorf("IndexOf(full name) = %d, want 0", got)
	}
	if _, ok := r.Lookup("Telemetr"); ok {
		t.Error("Lookup of a shorter prefix should fail")
	}
	if err := r.Register("Telemetry gauge"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Register(same prefix) error = %v, want %v", err, ErrDuplicate)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	r := New[fakeFactory]("theme", 2)
	_ = r.Register("Default")

	all := r.All()
	all[0] = "Changed"
	if r.At(0) != "Default" {
		t.Error("All() must not expose internal storage")
	}
}
