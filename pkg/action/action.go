package action

import (
	"encoding/json"
	"fmt"
)

// Action is the kind of an entry in a game's event log
type Action string

// action constants
const (
	SmallBlind Action = "small-blind"
	BigBlind   Action = "big-blind"
	Pass       Action = "pass"
	Call       Action = "call"
	Fold       Action = "fold"
	AllIn      Action = "all-in"
	Raise      Action = "raise"
	Win        Action = "win"
	Tie        Action = "tie"
	Lost       Action = "lost"
)

var allowedActions = map[Action]bool{
	SmallBlind: true,
	BigBlind:   true,
	Pass:       true,
	Call:       true,
	Fold:       true,
	AllIn:      true,
	Raise:      true,
	Win:        true,
	Tie:        true,
	Lost:       true,
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case SmallBlind:
		return "Small blind"
	case BigBlind:
		return "Big blind"
	case Pass:
		return "Pass"
	case Call:
		return "Call"
	case Fold:
		return "Fold"
	case AllIn:
		return "All-in"
	case Raise:
		return "Raise"
	case Win:
		return "Win"
	case Tie:
		return "Tie"
	case Lost:
		return "Lost"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// UnmarshalJSON decodes the action from either its ID or the object MarshalJSON writes
func (a *Action) UnmarshalJSON(b []byte) error {
	var obj struct {
		ID string `json:"id"`
	}

	if err := json.Unmarshal(b, &obj.ID); err != nil {
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
	}

	act, err := FromString(obj.ID)
	if err != nil {
		return err
	}

	*a = act
	return nil
}

// IsValid returns true if the action is known
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// IsBlind returns true for the forced bets
func (a Action) IsBlind() bool {
	return a == SmallBlind || a == BigBlind
}

// IsResult returns true for the actions recorded at settlement
func (a Action) IsResult() bool {
	return a == Win || a == Tie || a == Lost
}

// LogMessage returns a message formatted for the log
// The total is the player's cumulative commitment for the game
func (a Action) LogMessage(total int) string {
	switch a {
	case SmallBlind:
		return fmt.Sprintf("posted the small blind of ${%d}", total)
	case BigBlind:
		return fmt.Sprintf("posted the big blind of ${%d}", total)
	case Pass:
		return "passed"
	case Call:
		return fmt.Sprintf("called ${%d}", total)
	case Fold:
		return fmt.Sprintf("folded with ${%d} in", total)
	case AllIn:
		return fmt.Sprintf("went all-in for ${%d}", total)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", total)
	case Win:
		return fmt.Sprintf("won with ${%d} in", total)
	case Tie:
		return fmt.Sprintf("tied with ${%d} in", total)
	case Lost:
		return fmt.Sprintf("lost with ${%d} in", total)
	}

	return ""
}
