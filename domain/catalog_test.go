package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogListLoadRoundtrip(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	names := c.List()
	if len(names) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	if names[0] != GenericDomain {
		t.Errorf("expected %s first in catalog order, got %s", GenericDomain, names[0])
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			d, err := c.Load(name)
			if err != nil {
				t.Fatalf("Load(%s) error = %v", name, err)
			}
			if d.Name != name {
				t.Errorf("Load(%s) returned profile named %s", name, d.Name)
			}
			if d.DisplayName == "" {
				t.Errorf("profile %s has no display name", name)
			}
		})
	}
}

func TestCatalogLoadUnknown(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = c.Load("underwater-basket-weaving")
	if !errors.Is(err, ErrDomainNotFound) {
		t.Errorf("expected ErrDomainNotFound, got %v", err)
	}
}

func TestCatalogLoadReturnsCopy(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	first, err := c.Load("healthcare")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	first.Keywords[0] = "mutated"
	first.Stakeholders = nil

	second, err := c.Load("healthcare")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if second.Keywords[0] == "mutated" {
		t.Error("mutating a loaded profile leaked into the catalog")
	}
	if len(second.Stakeholders) == 0 {
		t.Error("expected stakeholders on a fresh copy")
	}
}

func TestResolve(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name        string
		description string
		want        string
	}{
		{
			name:        "no keywords resolves generic",
			description: "A simple todo list manager for small teams",
			want:        GenericDomain,
		},
		{
			name:        "empty description resolves generic",
			description: "",
			want:        GenericDomain,
		},
		{
			name:        "healthcare keywords",
			description: "Patient health records management with HIPAA compliance",
			want:        "healthcare",
		},
		{
			name:        "fintech keywords",
			description: "A payment wallet with a transaction ledger",
			want:        "fintech",
		},
		{
			name:        "secure communication keywords",
			description: "Encrypted chat with the signal protocol",
			want:        "secure-communication",
		},
		{
			name:        "repeated keyword still resolves",
			description: "telemedicine telemedicine telemedicine",
			want:        "healthcare",
		},
		{
			name:        "tie keeps earlier catalog entry",
			description: "patient payment portal",
			want:        "healthcare",
		},
		{
			name:        "higher count displaces earlier entry",
			description: "patient payment wallet for loan settlement",
			want:        "fintech",
		},
		{
			name:        "matching is case-insensitive",
			description: "BLOCKCHAIN VALIDATOR STAKING dashboard",
			want:        "blockchain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Resolve(tt.description); got != tt.want {
				t.Errorf("Resolve(%q) = %s, want %s", tt.description, got, tt.want)
			}
		})
	}
}

func TestLoadAuto(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	d, err := c.LoadAuto("Patient health records management with HIPAA compliance")
	if err != nil {
		t.Fatalf("LoadAuto() error = %v", err)
	}
	if d.Name != "healthcare" {
		t.Errorf("expected healthcare, got %s", d.Name)
	}
	if !d.HasCriticalData() {
		t.Error("expected healthcare to declare critical data")
	}
}

func TestOverlayDir(t *testing.T) {
	dir := t.TempDir()

	valid := `
name: robotics
display_name: Robotics
description: Industrial robot fleet control.
keywords:
  - robot
  - actuator
stakeholders:
  - plant operator
sensitive_data:
  - name: motion plans
    classification: internal
`
	if err := os.WriteFile(filepath.Join(dir, "robotics.yaml"), []byte(valid), 0644); err != nil {
		t.Fatalf("writing overlay profile: %v", err)
	}

	nestedDir := filepath.Join(dir, "nested")
	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	nested := `
name: agritech
display_name: AgriTech
description: Crop monitoring platforms.
keywords:
  - irrigation
stakeholders:
  - farmer
sensitive_data: []
`
	if err := os.WriteFile(filepath.Join(nestedDir, "agritech.yaml"), []byte(nested), 0644); err != nil {
		t.Fatalf("writing nested overlay profile: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [unclosed"), 0644); err != nil {
		t.Fatalf("writing broken overlay profile: %v", err)
	}

	c, err := New(WithOverlayDir(dir))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("overlay names appended after embedded set", func(t *testing.T) {
		names := c.List()
		index := make(map[string]int, len(names))
		for i, n := range names {
			index[n] = i
		}
		for _, want := range []string{"robotics", "agritech"} {
			i, ok := index[want]
			if !ok {
				t.Fatalf("overlay profile %s missing from List()", want)
			}
			if i <= index["iot"] {
				t.Errorf("overlay profile %s listed before the embedded set", want)
			}
		}
	})

	t.Run("overlay profile loads and resolves", func(t *testing.T) {
		d, err := c.Load("robotics")
		if err != nil {
			t.Fatalf("Load(robotics) error = %v", err)
		}
		if d.DisplayName != "Robotics" {
			t.Errorf("unexpected display name %s", d.DisplayName)
		}
		if got := c.Resolve("robot arm actuator scheduling"); got != "robotics" {
			t.Errorf("Resolve() = %s, want robotics", got)
		}
	})

	t.Run("malformed overlay fails by name but not detection", func(t *testing.T) {
		if _, err := c.Load("broken"); !errors.Is(err, ErrMalformedProfile) {
			t.Errorf("expected ErrMalformedProfile, got %v", err)
		}
		// Detection still works over the rest of the catalog.
		if got := c.Resolve("telemedicine appointments"); got != "healthcare" {
			t.Errorf("Resolve() = %s, want healthcare", got)
		}
	})

	t.Run("malformed overlay never listed", func(t *testing.T) {
		for _, name := range c.List() {
			if name == "broken" {
				t.Fatal("broken overlay profile appeared in List()")
			}
			if _, err := c.Load(name); err != nil {
				t.Errorf("Load(%s) failed for a name returned by List(): %v", name, err)
			}
		}
	})

	t.Run("overlay replaces embedded profile with same name", func(t *testing.T) {
		override := `
name: iot
display_name: Overridden IoT
description: Replaced by overlay.
keywords:
  - device
stakeholders:
  - operator
sensitive_data: []
`
		dir2 := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir2, "iot.yaml"), []byte(override), 0644); err != nil {
			t.Fatalf("writing override profile: %v", err)
		}
		c2, err := New(WithOverlayDir(dir2))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		d, err := c2.Load("iot")
		if err != nil {
			t.Fatalf("Load(iot) error = %v", err)
		}
		if d.DisplayName != "Overridden IoT" {
			t.Errorf("expected overlay to replace embedded iot, got %s", d.DisplayName)
		}
		// Still listed exactly once.
		count := 0
		for _, n := range c2.List() {
			if n == "iot" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("iot listed %d times, want 1", count)
		}
	})
}
