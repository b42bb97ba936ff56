package redis

import "fmt"

// Key prefix isolating boardnight data from anything else in the same Redis
const keyPrefix = "boardnight"

// playersKey returns the Redis key for the player collection
func playersKey() string {
	return fmt.Sprintf("%s:players", keyPrefix)
}

// gamesKey returns the Redis key for the game library
func gamesKey() string {
	return fmt.Sprintf("%s:games", keyPrefix)
}

// sessionsKey returns the Redis key for the session collection
func sessionsKey() string {
	return fmt.Sprintf("%s:sessions", keyPrefix)
}

// namespaceKeys returns every key boardnight owns, for Reset
func namespaceKeys() []string {
	return []string{playersKey(), gamesKey(), sessionsKey()}
}
