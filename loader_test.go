package marina

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFleet_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-fleet.csv")
	fleet, err := LoadFleet(path, 0)
	if err != nil {
		t.Fatalf("LoadFleet on a missing file = %v, want an empty fleet", err)
	}
	if fleet.Len() != 0 {
		t.Errorf("Len() = %d, want 0", fleet.Len())
	}
}

// The full session scenario: load, apply a month, pay, save.
func TestFleet_SaveLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.csv")
	if err := os.WriteFile(path, []byte("Alice,20,slip,5,100.00\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fleet, err := LoadFleet(path, 0)
	if err != nil {
		t.Fatalf("LoadFleet returned error: %v", err)
	}
	if fleet.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", fleet.Len())
	}

	fleet.ApplyMonthlyCharges(DefaultRates())
	v, _ := fleet.Vessel("Alice")
	if got := v.Outstanding.Fixed(); got != "350.00" {
		t.Errorf("after month Outstanding = %s, want 350.00", got)
	}

	if err := fleet.RecordPayment("Alice", M(200.00)); err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}
	v, _ = fleet.Vessel("Alice")
	if got := v.Outstanding.Fixed(); got != "150.00" {
		t.Errorf("after payment Outstanding = %s, want 150.00", got)
	}

	if err := SaveFleet(path, fleet); err != nil {
		t.Fatalf("SaveFleet returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Alice,20,slip,5,150.00\n" {
		t.Errorf("saved file = %q, want %q", string(data), "Alice,20,slip,5,150.00\n")
	}
}

func TestSaveFleet_UnwritablePath(t *testing.T) {
	fleet := NewFleet(0)
	if err := SaveFleet(filepath.Join(t.TempDir(), "missing-dir", "fleet.csv"), fleet); err == nil {
		t.Error("SaveFleet to an unwritable path = nil, want an error")
	}
}

func TestLockSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.csv")

	lock, err := LockSession(path)
	if err != nil {
		t.Fatalf("LockSession returned error: %v", err)
	}

	if _, err := LockSession(path); err == nil {
		t.Error("second LockSession succeeded, want an in-use error")
	}

	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock returned error: %v", err)
	}
	second, err := LockSession(path)
	if err != nil {
		t.Fatalf("LockSession after unlock returned error: %v", err)
	}
	second.Unlock()
}
