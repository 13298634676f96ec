package game

import "fmt"

const (
	DefaultFlowerLife = 100
	LethalPesticide   = 3
)

// Flower is a nectar source. Once its pesticide level reaches LethalPesticide
// it dies for good and is purged from the board a turn later.
type Flower struct {
	Life       int
	MaxLife    int
	Pollinated bool
	Pesticide  int // 0..LethalPesticide
	Alive      bool
	DeadTurns  int // turns elapsed since death
}

func NewFlower(life int) Flower {
	if life <= 0 {
		panic("flower life must be positive")
	}
	return Flower{Life: life, MaxLife: life, Alive: true}
}

func (f *Flower) IsAlive() bool {
	return f.Alive
}

func (f *Flower) IsContaminated() bool {
	return f.Pesticide > 0
}

// ApplyPesticide adds one contamination unit to a live flower, killing it at the lethal level.
func (f *Flower) ApplyPesticide() bool {
	if !f.Alive {
		return false
	}
	f.Pesticide++
	if f.Pesticide >= LethalPesticide {
		f.Pesticide = LethalPesticide
		f.Kill()
	}
	return true
}

// ReducePesticide strips up to amount units, never going below zero.
func (f *Flower) ReducePesticide(amount int) {
	f.Pesticide = max(0, f.Pesticide-amount)
}

func (f *Flower) Pollinate() {
	if f.Alive {
		f.Pollinated = true
	}
}

func (f *Flower) Kill() {
	f.Alive = false
	f.Life = 0
	f.DeadTurns = 0
}

func (f *Flower) Damage(amount int) {
	if !f.Alive {
		return
	}
	f.Life -= amount
	if f.Life <= 0 {
		f.Kill()
	}
}

func (f *Flower) Heal(amount int) {
	if f.Alive {
		f.Life = min(f.MaxLife, f.Life+amount)
	}
}

// ContactDamage is the life a forager loses when stepping onto this flower.
func (f *Flower) ContactDamage() int {
	switch {
	case f.Pesticide <= 0:
		return 0
	case f.Pesticide == 1:
		return 5
	case f.Pesticide == 2:
		return 10
	default:
		return 15
	}
}

// tickDead advances the death timer and reports whether the flower should be purged.
func (f *Flower) tickDead() bool {
	if f.Alive {
		return false
	}
	f.DeadTurns++
	return f.DeadTurns >= 1
}

func (f Flower) String() string {
	state := "alive"
	if !f.Alive {
		state = "dead"
	}
	return fmt.Sprintf("flower{%s life=%d/%d pollinated=%t pesticide=%d/%d}",
		state, f.Life, f.MaxLife, f.Pollinated, f.Pesticide, LethalPesticide)
}
