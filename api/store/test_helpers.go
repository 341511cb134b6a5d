/* test_helpers.go
 * Contains test helper functions for store package tests
 */

package store

import "time"

// CreateSampleLookup creates sample LookupRecord data for testing.
func CreateSampleLookup(userID string, outcome Outcome) LookupRecord {
	return LookupRecord{
		UserID:    userID,
		Username:  "tester",
		GuildID:   "guild123",
		Name:      "Ada",
		Tag:       "1234",
		Mode:      "competitive",
		Outcome:   outcome,
		CreatedAt: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}
