/* store_interface.go
 * Contains the store Interface for dependency injection and testing, and the no-op implementation used when no
 * database is configured
 */

package store

import "context"

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	RecordLookup(ctx context.Context, record LookupRecord) error
	Close(ctx context.Context) error
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// NopStore discards every record
type NopStore struct{}

var _ Interface = NopStore{}

func (NopStore) RecordLookup(ctx context.Context, record LookupRecord) error {
	return nil
}

func (NopStore) Close(ctx context.Context) error {
	return nil
}
