package marina

import (
	"errors"
	"iter"
	"sort"
	"strings"
)

// ErrCapacityExceeded is returned by Insert when the fleet is full.
var ErrCapacityExceeded = errors.New("maximum fleet capacity reached")

// ErrNotFound is returned when no vessel matches a given name.
var ErrNotFound = errors.New("no vessel with that name")

// Fleet owns the in-memory collection of vessels.
//
// Vessels are kept in ascending case-insensitive name order after every
// mutation. Names are the natural key, compared case-insensitively;
// duplicates are accepted, lookups return the first match.
type Fleet struct {
	vessels  []Vessel
	capacity int
}

// NewFleet creates an empty fleet holding at most capacity vessels.
// A capacity of zero or less means the default MaxVessels bound.
func NewFleet(capacity int) *Fleet {
	if capacity <= 0 {
		capacity = MaxVessels
	}
	return &Fleet{
		vessels:  make([]Vessel, 0, capacity),
		capacity: capacity,
	}
}

// Len returns the number of vessels in the fleet.
func (f *Fleet) Len() int { return len(f.vessels) }

// Full reports whether the fleet is at capacity.
func (f *Fleet) Full() bool { return len(f.vessels) >= f.capacity }

// Insert adds a vessel to the fleet and restores name order.
// It returns ErrCapacityExceeded when the fleet is full, leaving it unchanged.
func (f *Fleet) Insert(v Vessel) error {
	if f.Full() {
		return ErrCapacityExceeded
	}
	f.vessels = append(f.vessels, v)
	f.sort()
	return nil
}

// Remove deletes the first vessel whose name matches, case-insensitively.
// The relative order of the remaining vessels is preserved.
func (f *Fleet) Remove(name string) error {
	i, ok := f.FindByName(name)
	if !ok {
		return ErrNotFound
	}
	f.vessels = append(f.vessels[:i], f.vessels[i+1:]...)
	return nil
}

// FindByName returns the index of the first vessel whose name matches,
// case-insensitively.
func (f *Fleet) FindByName(name string) (int, bool) {
	for i, v := range f.vessels {
		if v.Is(name) {
			return i, true
		}
	}
	return 0, false
}

// Vessel returns a copy of the first vessel whose name matches,
// case-insensitively.
func (f *Fleet) Vessel(name string) (Vessel, bool) {
	i, ok := f.FindByName(name)
	if !ok {
		return Vessel{}, false
	}
	return f.vessels[i], true
}

// Vessels returns an iterator over the fleet in its sorted order.
// The yielded vessels are copies; mutations go through the fleet's methods.
func (f *Fleet) Vessels() iter.Seq2[int, Vessel] {
	return func(yield func(int, Vessel) bool) {
		for i, v := range f.vessels {
			if !yield(i, v) {
				return
			}
		}
	}
}

// All returns the fleet contents as a fresh slice, in sorted order.
func (f *Fleet) All() []Vessel {
	out := make([]Vessel, len(f.vessels))
	copy(out, f.vessels)
	return out
}

// sort restores ascending case-insensitive name order. The sort is stable,
// so equal names keep their relative order.
func (f *Fleet) sort() {
	sort.SliceStable(f.vessels, func(i, j int) bool {
		return strings.ToLower(f.vessels[i].Name) < strings.ToLower(f.vessels[j].Name)
	})
}
