package holdem

// StartingCash is the cash a player is registered with unless stated otherwise
const StartingCash = 10000

// Registry hands out stable player indices
// Indices start at zero and are never reused within a registry
type Registry struct {
	players []*Player
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{
		players: make([]*Player, 0),
	}
}

// Register creates a player with StartingCash
func (r *Registry) Register(name string, strategy Strategy) *Player {
	return r.RegisterWithCash(name, strategy, StartingCash)
}

// RegisterWithCash creates a player with the provided cash
func (r *Registry) RegisterWithCash(name string, strategy Strategy, cash int) *Player {
	p := &Player{
		name:     name,
		id:       len(r.players),
		cash:     cash,
		strategy: strategy,
	}

	r.players = append(r.players, p)
	return p
}

// Players returns every registered player in registration order
func (r *Registry) Players() []*Player {
	players := make([]*Player, len(r.players))
	copy(players, r.players)

	return players
}

// Len returns the number of registered players
func (r *Registry) Len() int {
	return len(r.players)
}
