package marina

import (
	"fmt"
	"strings"
)

// Limits inherited from the original marina records. The slip and storage
// ranges are documented bounds only: lines outside them are accepted as-is.
const (
	MaxVessels    = 120 // default fleet capacity
	MaxNameLen    = 127 // vessel names are truncated beyond this
	MaxSlipNumber = 85
	MaxStorageLoc = 50
	MaxTrailerTag = 9 // trailer tags are truncated beyond this
)

// Category is the closed set of places a vessel can be kept. It determines
// both the monthly billing rate and the shape of the location detail.
type Category int

const (
	Slip Category = iota
	Land
	Trailer
	Storage
)

// String returns the keyword used in the fleet file. The historical spelling
// "trailor" is part of the on-disk format and must be preserved.
func (c Category) String() string {
	switch c {
	case Slip:
		return "slip"
	case Land:
		return "land"
	case Trailer:
		return "trailor"
	case Storage:
		return "storage"
	default:
		return "unknown"
	}
}

// ParseCategory parses a fleet file keyword, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "slip":
		return Slip, nil
	case "land":
		return Land, nil
	case "trailor":
		return Trailer, nil
	case "storage":
		return Storage, nil
	default:
		return 0, fmt.Errorf("unknown location category: %q", s)
	}
}

// Location is the category-specific half of a vessel record. Exactly one
// variant exists per Category, and a vessel's variant always matches its
// category.
type Location interface {
	Category() Category
	// value returns the encoding of the location detail in the fleet file.
	value() string
}

// SlipLocation is a numbered slip in the water (1–85 by convention).
type SlipLocation struct {
	Number int
}

// LandLocation is a lettered bay on land (A–Z).
type LandLocation struct {
	Bay byte
}

// TrailerLocation is a trailer identified by its license tag.
type TrailerLocation struct {
	Tag string
}

// StorageLocation is a numbered spot in the storage building (1–50 by convention).
type StorageLocation struct {
	Spot int
}

func (l SlipLocation) Category() Category    { return Slip }
func (l LandLocation) Category() Category    { return Land }
func (l TrailerLocation) Category() Category { return Trailer }
func (l StorageLocation) Category() Category { return Storage }

func (l SlipLocation) value() string    { return fmt.Sprintf("%d", l.Number) }
func (l LandLocation) value() string    { return string(l.Bay) }
func (l TrailerLocation) value() string { return l.Tag }
func (l StorageLocation) value() string { return fmt.Sprintf("%d", l.Spot) }

// Vessel is the inventory record for one boat. The name is its natural key,
// compared case-insensitively; original casing is preserved for display and
// storage. Only Outstanding changes after creation, through billing.
type Vessel struct {
	Name        string
	LengthFt    float64
	Location    Location
	Outstanding Money
}

// Is reports whether this vessel's name matches, case-insensitively.
func (v Vessel) Is(name string) bool {
	return strings.EqualFold(v.Name, name)
}
