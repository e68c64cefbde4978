package redis

import (
	"fmt"

	"github.com/sweepstats/sweepstats/internal/model"
)

// Key prefix for all stats-related data
const keyPrefix = "sweepstats"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%d", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// recordKey returns the Redis key for a GameRecord
func recordKey(id model.RecordID) string {
	return fmt.Sprintf("%s:record:%d", keyPrefix, id)
}

// recordsForUserIndexKey returns the Redis key for the sorted set of a
// user's record IDs, scored by played_at
func recordsForUserIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:records_for_user:%d", keyPrefix, userID)
}

// userSeqKey returns the Redis key for the user ID sequence
func userSeqKey() string {
	return fmt.Sprintf("%s:seq:user", keyPrefix)
}

// recordSeqKey returns the Redis key for the record ID sequence
func recordSeqKey() string {
	return fmt.Sprintf("%s:seq:record", keyPrefix)
}
