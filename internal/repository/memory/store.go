// Package memory provides an in-memory RecordStore implementation. It backs
// isolated service tests and keeps every invariant the PostgreSQL store
// enforces: per-day uniqueness and the compare-and-set decision.
package memory

import (
	"sort"
	"sync"

	"github.com/becom/pointage-backend-go/internal/domain/employee"
	"github.com/becom/pointage-backend-go/internal/domain/record"
)

type Store struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
	records   map[string]record.Record
	byDay     map[dayKey]string // (employee, day) -> record id
}

type dayKey struct {
	employeeID string
	day        string // YYYY-MM-DD
}

func NewStore() *Store {
	return &Store{
		employees: make(map[string]employee.Employee),
		records:   make(map[string]record.Record),
		byDay:     make(map[dayKey]string),
	}
}

func key(employeeID string, day string) dayKey {
	return dayKey{employeeID: employeeID, day: day}
}

// sortRecords orders by day ascending, then record id ascending, matching the
// store's deterministic query order.
func sortRecords(records []record.Record) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Day.Equal(records[j].Day) {
			return records[i].Day.Before(records[j].Day)
		}
		return records[i].ID < records[j].ID
	})
}
