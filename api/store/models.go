/* models.go
 * This file contain the structs that relate to DB objects
 */

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Outcome is the result of one step of a lookup
type Outcome string

const (
	OutcomeConfirmed      Outcome = "confirmed"
	OutcomeInvalidInput   Outcome = "invalid_input"
	OutcomePlayerNotFound Outcome = "player_not_found"
	OutcomeTransientError Outcome = "transient_error"
	OutcomeNoMatches      Outcome = "no_matches"
	OutcomeShown          Outcome = "shown"
)

// LookupRecord is one audit log entry
type LookupRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Username  string             `bson:"username,omitempty"`
	GuildID   string             `bson:"guild_id,omitempty"`
	Name      string             `bson:"name,omitempty"`
	Tag       string             `bson:"tag,omitempty"`
	Mode      string             `bson:"mode,omitempty"`
	Outcome   Outcome            `bson:"outcome"`
	Detail    string             `bson:"detail,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}
