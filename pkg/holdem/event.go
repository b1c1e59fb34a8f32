package holdem

import (
	"encoding/json"

	"holdemsim/pkg/action"
)

// Event is an entry in the event log
// Total is the player's cumulative commitment, never the increment
type Event struct {
	Player *Player
	Kind   action.Action
	Total  int
}

type eventJSON struct {
	PlayerID int           `json:"playerId"`
	Player   string        `json:"player"`
	Action   action.Action `json:"action"`
	Total    int           `json:"total"`
}

// MarshalJSON implements json.Marshaler
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		PlayerID: e.Player.ID(),
		Player:   e.Player.String(),
		Action:   e.Kind,
		Total:    e.Total,
	})
}

func (e Event) String() string {
	return e.Player.String() + " " + e.Kind.LogMessage(e.Total)
}
