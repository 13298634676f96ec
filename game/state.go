package game

// GameState bundles every entity of a running episode. The search explores
// hypothetical futures on clones only; Play* methods never touch the receiver.
type GameState struct {
	Board     *Board
	Forager   *Forager
	Adversary Adversary
	Weather   *WeatherModel
	Turn      int
}

func NewGameState(b *Board, f *Forager, a Adversary, w *WeatherModel) *GameState {
	return &GameState{
		Board:     b,
		Forager:   f,
		Adversary: a,
		Weather:   w,
	}
}

// Clone returns a fully independent copy of gs.
func (gs *GameState) Clone() *GameState {
	return &GameState{
		Board:     gs.Board.Clone(),
		Forager:   gs.Forager.Clone(),
		Adversary: gs.Adversary,
		Weather:   gs.Weather.Clone(),
		Turn:      gs.Turn,
	}
}

// ForagerActions enumerates the forager's legal actions in a stable order:
// per neighbor (Neighborhood order) collect then move, then rest, then deposit.
func (gs *GameState) ForagerActions() []ForagerAction {
	b, f := gs.Board, gs.Forager
	var actions []ForagerAction
	for _, d := range Neighborhood {
		n := f.Pos.Add(d)
		if !b.InBounds(n) {
			continue
		}
		if flower := b.FlowerAt(n); flower != nil && flower.IsAlive() &&
			f.CanCarry() && f.HasEnergy(f.CollectCost) {
			actions = append(actions, Collect(n))
		}
		if b.IsTraversable(n) && f.HasEnergy(f.MoveCost) {
			actions = append(actions, Move(n))
		}
	}
	if f.Energy < f.MaxEnergy {
		actions = append(actions, Rest())
	}
	if b.IsHome(f.Pos) && f.Nectar > 0 {
		actions = append(actions, Deposit())
	}
	return actions
}

// ApplyForager mutates gs in place. Depositing also restores life and energy.
func (gs *GameState) ApplyForager(action ForagerAction) bool {
	b, f := gs.Board, gs.Forager
	switch action.Type {
	case MoveAction:
		return f.Move(b, action.Target)
	case CollectAction:
		return f.CollectAndPollinate(b, action.Target)
	case RestAction:
		return f.Rest(f.RestAmount)
	case DepositAction:
		if !f.DepositAtHome(b) {
			return false
		}
		return f.RecoverAtHome(b)
	default:
		panic("unexpected action type")
	}
}

// Play returns the state that follows action, leaving gs untouched.
func (gs *GameState) Play(action ForagerAction) *GameState {
	next := gs.Clone()
	next.ApplyForager(action)
	return next
}

func (gs *GameState) AdversaryActions() []AdversaryAction {
	return gs.Adversary.LegalActions(gs.Board, gs.Forager.Pos)
}

func (gs *GameState) ApplyAdversary(action AdversaryAction) bool {
	return gs.Adversary.Execute(gs.Board, action, gs.Forager.Pos)
}

func (gs *GameState) PlayAdversary(action AdversaryAction) *GameState {
	next := gs.Clone()
	next.ApplyAdversary(action)
	return next
}

// PlayWeather returns the state in which weather has been forced and its
// immediate effects applied.
func (gs *GameState) PlayWeather(weather Weather) *GameState {
	next := gs.Clone()
	next.Weather.Force(weather)
	next.Weather.ApplyEffects(next.Board)
	return next
}
