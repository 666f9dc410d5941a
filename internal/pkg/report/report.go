package report

import (
	"fmt"
	"time"
)

// Report is the rendering input for one employee's monthly recap.
type Report struct {
	Login       string
	DisplayName string
	Year        int
	Month       int
	GeneratedAt time.Time // pinned by the export job so re-renders are byte-identical
	Entries     []Entry
}

// Entry is one approved day in the month.
type Entry struct {
	Day  time.Time
	Type string
}

// Counts is the per-type summary printed under the table.
type Counts struct {
	Day    int
	Night  int
	Travel int
}

// CountByType tallies the entries per classification.
func (r Report) CountByType() Counts {
	var c Counts
	for _, e := range r.Entries {
		switch e.Type {
		case "day":
			c.Day++
		case "night":
			c.Night++
		case "travel":
			c.Travel++
		}
	}
	return c
}

// Period formats the report month as MM/YYYY.
func (r Report) Period() string {
	return fmt.Sprintf("%02d/%d", r.Month, r.Year)
}

// Renderer turns a report into one document. Implementations must be
// deterministic: the same report renders to the same bytes.
type Renderer interface {
	Render(r Report) ([]byte, error)

	// Ext returns the file extension of rendered documents, including the dot
	Ext() string
}

var typeLabels = map[string]string{
	"day":    "Day",
	"night":  "Night",
	"travel": "Travel",
}

// TypeLabel renders a record type for report output.
func TypeLabel(t string) string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return t
}
