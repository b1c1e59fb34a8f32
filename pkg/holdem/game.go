package holdem

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"holdemsim/internal/rng"
	"holdemsim/pkg/action"
	"holdemsim/pkg/deck"
)

// ErrTooFewPlayers is an error when a game is started with less than two players
var ErrTooFewPlayers = errors.New("there must be at least two players")

// ErrTooManyPlayers is an error when the deck cannot serve every player and the board
var ErrTooManyPlayers = errors.New("too many players for one deck")

// ErrNotResolved is an error when the result of a game is requested before Resolve()
var ErrNotResolved = errors.New("game has not been resolved")

const communityCards = 5

// Game is a single hand of No-Limit Texas Hold'em
// A game is not safe for concurrent use
type Game struct {
	id      string
	logger  logrus.FieldLogger
	options Options
	deck    *deck.Deck

	// players is the seating order the game started with
	players []*Player
	folded  map[*Player]bool
	cursor  int

	community deck.Cards
	events    []Event
	lastEvent map[*Player]Event

	blind      int
	smallBlind *Player
	bigBlind   *Player

	showdown bool
	result   *Result
}

// NewGame posts the blinds and deals two cards to every player
// The last two players in the order post the small and the big blind.
// If gen is nil, the deck is shuffled with a crypto generator
func NewGame(logger logrus.FieldLogger, players []*Player, opts Options, gen rng.Generator) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(players) < 2 {
		return nil, ErrTooFewPlayers
	}

	if 2*len(players)+communityCards > deck.Size {
		return nil, ErrTooManyPlayers
	}

	d := deck.New()
	if gen != nil {
		d = deck.NewWithGenerator(gen)
	}

	return newGameWithDeck(logger, players, opts, d)
}

func newGameWithDeck(logger logrus.FieldLogger, players []*Player, opts Options, d *deck.Deck) (*Game, error) {
	id := uuid.New().String()

	seats := make([]*Player, len(players))
	copy(seats, players)

	g := &Game{
		id:        id,
		logger:    logger.WithField("game", id),
		options:   opts,
		deck:      d,
		players:   seats,
		folded:    make(map[*Player]bool),
		community: make(deck.Cards, 0, communityCards),
		events:    make([]Event, 0),
		lastEvent: make(map[*Player]Event),
	}

	g.setBlinds()
	if err := g.deal(); err != nil {
		return nil, fmt.Errorf("could not deal: %w", err)
	}

	return g, nil
}

func (g *Game) setBlinds() {
	n := len(g.players)
	g.blind = g.options.blindFor(n)
	g.smallBlind = g.players[n-2]
	g.bigBlind = g.players[n-1]

	g.addEvent(g.smallBlind, action.SmallBlind, min(g.smallBlind.cash, g.blind))
	g.addEvent(g.bigBlind, action.BigBlind, min(g.bigBlind.cash, g.blind*2))
}

func (g *Game) deal() error {
	for _, p := range g.players {
		hand, err := g.deck.DealHand()
		if err != nil {
			return err
		}

		p.setHand(g, hand)
	}

	return nil
}

// DealCommunityCards deals community cards until there are n on the table
// The community cards never shrink, so a smaller n is a no-op
func (g *Game) DealCommunityCards(n int) error {
	if n > communityCards {
		return fmt.Errorf("cannot deal more than %d community cards", communityCards)
	}

	for len(g.community) < n {
		card, err := g.deck.Draw()
		if err != nil {
			return fmt.Errorf("could not deal community cards: %w", err)
		}

		g.community = append(g.community, card)
	}

	g.logger.WithField("community", g.community.String()).Debug("dealt community cards")
	return nil
}

func (g *Game) addEvent(p *Player, kind action.Action, total int) {
	e := Event{
		Player: p,
		Kind:   kind,
		Total:  total,
	}

	g.events = append(g.events, e)
	g.lastEvent[p] = e

	g.logger.WithFields(logrus.Fields{
		"player": p.String(),
		"action": string(kind),
		"total":  total,
	}).Debug(kind.LogMessage(total))
}

// ID returns the unique identifier of the game
func (g *Game) ID() string {
	return g.id
}

// Players returns the players in the order the game started with
func (g *Game) Players() []*Player {
	players := make([]*Player, len(g.players))
	copy(players, g.players)

	return players
}

// Blind returns the small blind. The big blind is twice this amount
func (g *Game) Blind() int {
	return g.blind
}

// SmallBlind returns the player who posted the small blind
func (g *Game) SmallBlind() *Player {
	return g.smallBlind
}

// BigBlind returns the player who posted the big blind
func (g *Game) BigBlind() *Player {
	return g.bigBlind
}

// DeckHash identifies the shuffle the game was dealt from
func (g *Game) DeckHash() string {
	return g.deck.HashCode()
}

// CommunityCards returns a copy of the community cards
func (g *Game) CommunityCards() deck.Cards {
	return g.community.Clone()
}

// EventHistory returns a copy of the event log, oldest first
func (g *Game) EventHistory() []Event {
	events := make([]Event, len(g.events))
	copy(events, g.events)

	return events
}

// LastEvent returns the most recent event of the player
func (g *Game) LastEvent(p *Player) (Event, bool) {
	e, ok := g.lastEvent[p]
	return e, ok
}

// Commitment returns the cumulative amount the player has put in
func (g *Game) Commitment(p *Player) int {
	return g.lastEvent[p].Total
}

// LastAction returns the player's most recent action, or an empty action if the player has not acted
func (g *Game) LastAction(p *Player) action.Action {
	return g.lastEvent[p].Kind
}

// HasFolded returns true if the player left the hand
func (g *Game) HasFolded(p *Player) bool {
	return g.folded[p]
}

// IsShowdown returns true once the game was decided by revealing hands, for players who did not fold
func (g *Game) IsShowdown(p *Player) bool {
	return g.showdown && g.isDealtIn(p) && !g.folded[p]
}

// Pot returns the sum of every player's commitment
func (g *Game) Pot() int {
	pot := 0
	for _, e := range g.lastEvent {
		pot += e.Total
	}

	return pot
}

// bidLevel is the highest commitment of any player
func (g *Game) bidLevel() int {
	level := 0
	for _, e := range g.lastEvent {
		if e.Total > level {
			level = e.Total
		}
	}

	return level
}

func (g *Game) isDealtIn(p *Player) bool {
	for _, seat := range g.players {
		if seat == p {
			return true
		}
	}

	return false
}

// remaining returns the players still in the hand, in seating order
func (g *Game) remaining() []*Player {
	players := make([]*Player, 0, len(g.players))
	for _, p := range g.players {
		if !g.folded[p] {
			players = append(players, p)
		}
	}

	return players
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
