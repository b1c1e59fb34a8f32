package bot

import (
	"errors"
	"fmt"
	"strings"

	"holdemsim/internal/rng"
	"holdemsim/pkg/holdem"
)

// ErrUnknownBot is an error when a bot name cannot be resolved
var ErrUnknownBot = errors.New("unknown bot")

// bot names
const (
	CallBotName   = "CallBot"
	RandomBotName = "RandomBot"
)

// Names returns the names accepted by FromName
func Names() []string {
	return []string{CallBotName, RandomBotName}
}

// FromName returns the strategy for the bot name. Names are case-insensitive
// gen is only used by bots that make random decisions
func FromName(name string, gen rng.Generator) (holdem.Strategy, error) {
	switch strings.ToLower(name) {
	case strings.ToLower(CallBotName):
		return CallBot{}, nil
	case strings.ToLower(RandomBotName):
		return NewRandomBot(gen), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownBot, name)
}
