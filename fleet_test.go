package marina

import (
	"errors"
	"fmt"
	"testing"
)

func mustVessel(t *testing.T, line string) Vessel {
	t.Helper()
	v, err := ParseVessel(line)
	if err != nil {
		t.Fatalf("ParseVessel(%q) returned error: %v", line, err)
	}
	return v
}

func TestFleet_Insert_KeepsNameOrder(t *testing.T) {
	fleet := NewFleet(0)
	for _, line := range []string{
		"zulu,10,slip,1,0.00",
		"Alpha,10,slip,2,0.00",
		"mike,10,slip,3,0.00",
		"BRAVO,10,slip,4,0.00",
	} {
		if err := fleet.Insert(mustVessel(t, line)); err != nil {
			t.Fatalf("Insert returned error: %v", err)
		}
	}

	want := []string{"Alpha", "BRAVO", "mike", "zulu"}
	for i, v := range fleet.All() {
		if v.Name != want[i] {
			t.Errorf("All()[%d].Name = %q, want %q", i, v.Name, want[i])
		}
	}
}

func TestFleet_Remove_CaseInsensitive(t *testing.T) {
	for _, query := range []string{"Seahorse", "SEAHORSE", "seahorse"} {
		t.Run(query, func(t *testing.T) {
			fleet := NewFleet(0)
			if err := fleet.Insert(mustVessel(t, "Seahorse,20,slip,5,0.00")); err != nil {
				t.Fatalf("Insert returned error: %v", err)
			}
			if err := fleet.Remove(query); err != nil {
				t.Errorf("Remove(%q) = %v, want nil", query, err)
			}
			if fleet.Len() != 0 {
				t.Errorf("Len() = %d after remove, want 0", fleet.Len())
			}
		})
	}
}

func TestFleet_Remove_NotFound(t *testing.T) {
	fleet := NewFleet(0)
	if err := fleet.Remove("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(ghost) = %v, want ErrNotFound", err)
	}
}

func TestFleet_Remove_FirstMatchOnly(t *testing.T) {
	fleet := NewFleet(0)
	// duplicate names are accepted
	if err := fleet.Insert(mustVessel(t, "Twin,20,slip,1,0.00")); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if err := fleet.Insert(mustVessel(t, "twin,30,land,A,0.00")); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if err := fleet.Remove("TWIN"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if fleet.Len() != 1 {
		t.Errorf("Len() = %d, want 1", fleet.Len())
	}
}

func TestFleet_FindByName(t *testing.T) {
	fleet := NewFleet(0)
	fleet.Insert(mustVessel(t, "Bravo,20,slip,1,0.00"))
	fleet.Insert(mustVessel(t, "Alpha,20,slip,2,0.00"))

	i, ok := fleet.FindByName("bravo")
	if !ok || i != 1 {
		t.Errorf("FindByName(bravo) = (%d, %v), want (1, true)", i, ok)
	}
	if _, ok := fleet.FindByName("charlie"); ok {
		t.Error("FindByName(charlie) found a vessel, want none")
	}
}

func TestFleet_Insert_CapacityExceeded(t *testing.T) {
	fleet := NewFleet(0) // default capacity of MaxVessels
	for i := 0; i < MaxVessels; i++ {
		line := fmt.Sprintf("Boat%03d,10,slip,1,0.00", i)
		if err := fleet.Insert(mustVessel(t, line)); err != nil {
			t.Fatalf("Insert %d returned error: %v", i, err)
		}
	}

	err := fleet.Insert(mustVessel(t, "Overflow,10,slip,1,0.00"))
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Insert into full fleet = %v, want ErrCapacityExceeded", err)
	}
	if fleet.Len() != MaxVessels {
		t.Errorf("Len() = %d after failed insert, want %d", fleet.Len(), MaxVessels)
	}
	if _, ok := fleet.FindByName("Overflow"); ok {
		t.Error("failed insert still added the vessel")
	}
}

func TestFleet_Vessels_Iteration(t *testing.T) {
	fleet := NewFleet(0)
	fleet.Insert(mustVessel(t, "B,10,slip,1,0.00"))
	fleet.Insert(mustVessel(t, "A,10,slip,2,0.00"))

	var names []string
	for _, v := range fleet.Vessels() {
		names = append(names, v.Name)
	}
	if len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("Vessels() order = %v, want [A B]", names)
	}
}
