package redis

import (
	"fmt"
)

// Key prefix for all player data
const keyPrefix = "gamestats"

// playerKeyPrefix is prepended to a record id; the Lua scripts build keys from it
var playerKeyPrefix = keyPrefix + ":player:"

// playerKey returns the Redis key for a player HASH
func playerKey(id string) string {
	return playerKeyPrefix + id
}

// nameIndexKey returns the Redis key for the SET of ids sharing a name
func nameIndexKey(name string) string {
	return fmt.Sprintf("%s:idx:name:%s", keyPrefix, name)
}

// allPlayersKey returns the Redis key for the SET of every player id
func allPlayersKey() string {
	return fmt.Sprintf("%s:players", keyPrefix)
}
