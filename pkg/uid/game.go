package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier used to tag the logs of one game.
func GenerateGameID() string {
	return uuid.NewString()
}
