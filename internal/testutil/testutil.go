// Package testutil wires an in-memory database for tests.
package testutil

import (
	"testing"
	"time"

	"partner_management/internal/db"
	"partner_management/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB returns a migrated in-memory SQLite database with roles seeded
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, db.Initialize(gdb, "", ""))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// CreatePartner inserts a partner with the given name and status
func CreatePartner(t *testing.T, gdb *gorm.DB, name, status string) *domain.Partner {
	t.Helper()
	p := &domain.Partner{Name: name, Status: status}
	require.NoError(t, gdb.Create(p).Error)
	return p
}

// CreateEvent inserts an event starting at start
func CreateEvent(t *testing.T, gdb *gorm.DB, name string, start time.Time) *domain.Event {
	t.Helper()
	e := &domain.Event{
		Name:      name,
		StartDate: start.UTC(),
		EndDate:   start.Add(2 * time.Hour).UTC(),
		Status:    domain.EventStatusPlanned,
	}
	require.NoError(t, gdb.Create(e).Error)
	return e
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// Now returns the current time truncated to seconds in UTC
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
