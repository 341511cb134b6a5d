/* lookups.go
 * Contains the methods for interacting with the lookups collection
 */

package store

import (
	"context"
	"fmt"
	"time"
)

// RecordLookup inserts one audit entry
// Preconditions: Receives the record to store, CreatedAt is filled in when zero
// Postconditions: Inserts the record into the lookups collection, or returns an error if it occurs
func (s *Store) RecordLookup(ctx context.Context, record LookupRecord) error {
	if record.UserID == "" || record.Outcome == "" {
		return fmt.Errorf("lookup record needs a user id and an outcome")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.Collections.Lookups.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("lookup insert failed: %w", err)
	}
	return nil
}
