package game

// Adversary is the minimizing agent. It carries configuration only; every
// action it takes mutates the board it is given.
type Adversary struct {
	PesticideRadius int `yaml:"pesticide_radius"` // Manhattan distance from the forager
	ObstacleRadius  int `yaml:"obstacle_radius"`  // Manhattan distance from home or the forager
	MaxObstacles    int `yaml:"max_obstacles"`
}

func DefaultAdversary() Adversary {
	return Adversary{
		PesticideRadius: 2,
		ObstacleRadius:  3,
		MaxObstacles:    4,
	}
}

// LegalActions enumerates every contamination and obstacle placement
// available against a forager standing on foragerPos.
func (a Adversary) LegalActions(b *Board, foragerPos Pos) []AdversaryAction {
	var actions []AdversaryAction
	for _, planted := range b.Flowers() {
		if planted.Flower.IsAlive() && planted.Pos.Manhattan(foragerPos) <= a.PesticideRadius {
			actions = append(actions, Contaminate(planted.Pos))
		}
	}
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			p := Pos{Row: row, Col: col}
			if a.canObstruct(b, p, foragerPos) {
				actions = append(actions, Obstruct(p))
			}
		}
	}
	return actions
}

func (a Adversary) canObstruct(b *Board, p, foragerPos Pos) bool {
	if a.MaxObstacles <= 0 || p == foragerPos || !b.IsEmpty(p) {
		return false
	}
	nearHome := p.Manhattan(b.Home) <= a.ObstacleRadius
	nearForager := p.Manhattan(foragerPos) <= a.ObstacleRadius
	return nearHome || nearForager
}

// Execute applies action to b. Placing an obstacle at the cap evicts the
// oldest one first.
func (a Adversary) Execute(b *Board, action AdversaryAction, foragerPos Pos) bool {
	switch action.Type {
	case ContaminateAction:
		if action.Target.Manhattan(foragerPos) > a.PesticideRadius {
			return false
		}
		return b.ApplyPesticide(action.Target)
	case ObstructAction:
		if !a.canObstruct(b, action.Target, foragerPos) {
			return false
		}
		for b.ObstacleCount() >= a.MaxObstacles {
			b.EvictOldestObstacle()
		}
		return b.PlaceObstacle(action.Target)
	default:
		panic("unexpected adversary action type")
	}
}
