package tdr

import (
	"errors"
	"strings"
	"testing"
)

func TestCablesCatalogSanity(t *testing.T) {
	cables := Cables()
	if len(cables) == 0 {
		t.Fatal("catalog is empty")
	}

	for _, c := range cables {
		if c.Name == "" {
			t.Fatal("catalog entry with empty name")
		}
		if c.VelocityFactor <= 0 || c.VelocityFactor > 1 {
			t.Fatalf("cable %q: velocity factor %v out of range", c.Name, c.VelocityFactor)
		}
	}

	// The returned slice is a copy and must not alias the catalog.
	cables[0].VelocityFactor = -1
	if Cables()[0].VelocityFactor == -1 {
		t.Fatal("Cables() exposes the internal catalog")
	}
}

func TestCableByName(t *testing.T) {
	catalog := Cables()

	c, ok := CableByName(catalog, "rg-174 pe")
	if !ok {
		t.Fatal("expected a match for rg-174 pe")
	}
	if c.VelocityFactor != 0.66 {
		t.Fatalf("velocity factor %v, want 0.66", c.VelocityFactor)
	}

	// Substring matching takes the first catalog entry in order.
	first, ok := CableByName(catalog, "RG-58")
	if !ok {
		t.Fatal("expected a match for RG-58")
	}
	if !strings.Contains(first.Name, "RG-58") {
		t.Fatalf("matched %q, want an RG-58 entry", first.Name)
	}

	if _, ok := CableByName(catalog, "no such cable"); ok {
		t.Fatal("unexpected match")
	}

	if _, ok := CableByName(catalog, "   "); ok {
		t.Fatal("blank name must not match")
	}
}

func TestLoadCables(t *testing.T) {
	const doc = `
- name: Custom hardline
  velocity_factor: 0.92
- name: Lab jumper
  velocity_factor: 0.7
`

	cables, err := LoadCables(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	if len(cables) != 2 {
		t.Fatalf("loaded %d cables, want 2", len(cables))
	}

	if cables[0].Name != "Custom hardline" || cables[0].VelocityFactor != 0.92 {
		t.Fatalf("unexpected first entry: %+v", cables[0])
	}
}

func TestLoadCablesRejectsBadVelocity(t *testing.T) {
	const doc = `
- name: Broken
  velocity_factor: 1.4
`

	if _, err := LoadCables(strings.NewReader(doc)); !errors.Is(err, ErrInvalidVelocity) {
		t.Fatalf("got %v, want ErrInvalidVelocity", err)
	}
}

func TestLoadCablesRejectsMalformedYAML(t *testing.T) {
	if _, err := LoadCables(strings.NewReader("{not valid: [")); err == nil {
		t.Fatal("expected a parse error")
	}
}
