package marina

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// This file contains code to translate between Vessel records and the flat
// fleet file format: one vessel per line, five comma-separated fields in
// fixed order:
//
//	name,length,category,categoryValue,outstandingFees
//
// There is no quoting or escaping. A vessel name containing a comma corrupts
// the format; this is a known limitation of the file format.

// ParseErrorKind discriminates the ways a fleet file line can be rejected.
type ParseErrorKind int

const (
	// MissingField indicates the line has fewer than five fields.
	MissingField ParseErrorKind = iota
	// UnknownCategory indicates the category keyword matched none of
	// slip, land, trailor, storage.
	UnknownCategory
	// EmptyValue indicates a mandatory field is present but empty.
	EmptyValue
)

func (k ParseErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case UnknownCategory:
		return "unknown category"
	case EmptyValue:
		return "empty value"
	default:
		return "invalid"
	}
}

// ParseError reports why a line could not be parsed into a Vessel.
type ParseError struct {
	Kind  ParseErrorKind
	Field string // the field at fault, e.g. "category"
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

// fieldNames in file order, for error messages.
var fieldNames = [5]string{"name", "length", "category", "location", "fees"}

// lenientFloat converts a numeric field the way the original format did:
// a field that does not parse as a number is read as zero, not rejected.
func lenientFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func lenientInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// ParseVessel parses a single fleet file line into a Vessel.
//
// The category keyword is matched case-insensitively. Numeric fields parse
// leniently (see lenientFloat). The name is truncated to MaxNameLen and a
// trailer tag to MaxTrailerTag characters, silently.
func ParseVessel(line string) (Vessel, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 5 {
		return Vessel{}, &ParseError{Kind: MissingField, Field: fieldNames[len(fields)]}
	}

	name := fields[0]
	if name == "" {
		return Vessel{}, &ParseError{Kind: EmptyValue, Field: "name"}
	}
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}

	cat, err := ParseCategory(fields[2])
	if err != nil {
		return Vessel{}, &ParseError{Kind: UnknownCategory, Field: "category"}
	}

	var loc Location
	value := fields[3]
	switch cat {
	case Slip:
		loc = SlipLocation{Number: lenientInt(value)}
	case Land:
		if value == "" {
			return Vessel{}, &ParseError{Kind: EmptyValue, Field: "location"}
		}
		loc = LandLocation{Bay: value[0]}
	case Trailer:
		if len(value) > MaxTrailerTag {
			value = value[:MaxTrailerTag]
		}
		loc = TrailerLocation{Tag: value}
	case Storage:
		loc = StorageLocation{Spot: lenientInt(value)}
	}

	return Vessel{
		Name:        name,
		LengthFt:    lenientFloat(fields[1]),
		Location:    loc,
		Outstanding: M(lenientFloat(fields[4])),
	}, nil
}

// EncodeVessel produces the exact inverse of ParseVessel: length with zero
// decimal places, fees with two.
func EncodeVessel(v Vessel) string {
	return fmt.Sprintf("%s,%s,%s,%s,%s",
		v.Name,
		strconv.FormatFloat(v.LengthFt, 'f', 0, 64),
		v.Location.Category(),
		v.Location.value(),
		v.Outstanding.Fixed())
}

// DecodeFleet reads a whole fleet file from r. Malformed lines are skipped
// with a warning, empty lines are ignored, and reading stops once the fleet
// is full. The returned fleet is sorted.
func DecodeFleet(r io.Reader, capacity int) (*Fleet, error) {
	f := NewFleet(capacity)
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() && !f.Full() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := ParseVessel(line)
		if err != nil {
			log.Printf("warning: skipping line %d: %v", n, err)
			continue
		}
		f.vessels = append(f.vessels, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading fleet data: %w", err)
	}
	f.sort()
	return f, nil
}

// EncodeFleet writes the whole fleet to w, one vessel per line, in the
// fleet's sorted order.
func EncodeFleet(w io.Writer, f *Fleet) error {
	for _, v := range f.vessels {
		if _, err := fmt.Fprintln(w, EncodeVessel(v)); err != nil {
			return fmt.Errorf("failed to write vessel %q: %w", v.Name, err)
		}
	}
	return nil
}
