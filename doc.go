// Package marina manages a small fleet of vessels kept at a marina.
//
// The fleet is persisted as a flat text file, one vessel per line, loaded
// whole at startup and written back whole at exit. In between, the fleet
// lives in memory in ascending case-insensitive name order, and supports
// adding and removing vessels, recording payments, and applying the
// monthly per-foot billing for each location category.
package marina
