package typeid

import (
	"strings"
	"testing"
)

func TestNewIDs(t *testing.T) {
	tests := []struct {
		name   string
		gen    func() string
		prefix string
	}{
		{name: "ship", gen: NewShipID, prefix: PrefixShip},
		{name: "fleet", gen: NewFleetID, prefix: PrefixFleet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.gen()
			if !strings.HasPrefix(id, tt.prefix+"_") {
				t.Fatalf("id %q missing prefix %q", id, tt.prefix)
			}
			if err := Validate(id, tt.prefix); err != nil {
				t.Fatalf("Validate(%q) = %v", id, err)
			}
			if got := Prefix(id); got != tt.prefix {
				t.Errorf("Prefix(%q) = %q; want %q", id, got, tt.prefix)
			}
		})
	}
}

func TestNewIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewShipID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestValidateRejects(t *testing.T) {
	if err := Validate(NewShipID(), PrefixFleet); err == nil {
		t.Error("expected prefix mismatch error")
	}
	if err := Validate("not-an-id", PrefixShip); err == nil {
		t.Error("expected parse error")
	}
	if got := Prefix("not-an-id"); got != "" {
		t.Errorf("Prefix of invalid id = %q; want empty", got)
	}
}
