package game

import (
	"fmt"

	"forage/utils"
)

// ForagerConfig holds the forager's fixed capacities and action costs.
type ForagerConfig struct {
	MaxLife         int `yaml:"max_life"`
	MaxEnergy       int `yaml:"max_energy"`
	Capacity        int `yaml:"capacity"`
	MoveCost        int `yaml:"move_cost"`
	CollectCost     int `yaml:"collect_cost"`
	NectarPerFlower int `yaml:"nectar_per_flower"`
	RestAmount      int `yaml:"rest_amount"`
}

func DefaultForagerConfig() ForagerConfig {
	return ForagerConfig{
		MaxLife:         100,
		MaxEnergy:       100,
		Capacity:        50,
		MoveCost:        5,
		CollectCost:     3,
		NectarPerFlower: 10,
		RestAmount:      20,
	}
}

// Forager is the maximizing agent. Life and energy are clamped at every
// mutation; actions attempted without enough energy or capacity are rejected.
type Forager struct {
	ForagerConfig
	Pos    Pos
	Life   int
	Energy int
	Nectar int // carried
}

func NewForager(cfg ForagerConfig, at Pos) *Forager {
	if cfg.MaxLife <= 0 || cfg.MaxEnergy <= 0 || cfg.Capacity <= 0 {
		panic("forager life, energy and capacity must be positive")
	}
	return &Forager{
		ForagerConfig: cfg,
		Pos:           at,
		Life:          cfg.MaxLife,
		Energy:        cfg.MaxEnergy,
	}
}

func (f *Forager) IsAlive() bool {
	return f.Life > 0
}

func (f *Forager) HasEnergy(amount int) bool {
	return f.Energy >= amount
}

func (f *Forager) CanCarry() bool {
	return f.Nectar < f.Capacity
}

func (f *Forager) LifeRatio() float64 {
	return float64(f.Life) / float64(f.MaxLife)
}

func (f *Forager) EnergyRatio() float64 {
	return float64(f.Energy) / float64(f.MaxEnergy)
}

func (f *Forager) TakeDamage(amount int) {
	f.Life = utils.Clamp(f.Life-amount, 0, f.MaxLife)
}

func (f *Forager) Heal(amount int) {
	f.Life = utils.Clamp(f.Life+amount, 0, f.MaxLife)
}

// Move steps onto an adjacent traversable cell, paying the move cost and any
// pesticide contact damage of a live flower there.
func (f *Forager) Move(b *Board, to Pos) bool {
	if !f.HasEnergy(f.MoveCost) {
		return false
	}
	if f.Pos.Chebyshev(to) > 1 || !b.IsTraversable(to) {
		return false
	}
	if flower := b.FlowerAt(to); flower != nil && flower.IsAlive() {
		f.TakeDamage(flower.ContactDamage())
	}
	if to != f.Pos {
		f.Energy = utils.Clamp(f.Energy-f.MoveCost, 0, f.MaxEnergy)
	}
	f.Pos = to
	return true
}

// CollectAndPollinate gathers nectar from an adjacent live flower and
// pollinates it. The forager stays where it is.
func (f *Forager) CollectAndPollinate(b *Board, at Pos) bool {
	if !f.HasEnergy(f.CollectCost) || !f.CanCarry() {
		return false
	}
	if f.Pos.Chebyshev(at) > 1 {
		return false
	}
	flower := b.FlowerAt(at)
	if flower == nil || !flower.IsAlive() {
		return false
	}
	flower.Pollinate()
	f.Nectar += min(f.NectarPerFlower, f.Capacity-f.Nectar)
	f.Energy = utils.Clamp(f.Energy-f.CollectCost, 0, f.MaxEnergy)
	return true
}

func (f *Forager) Rest(amount int) bool {
	f.Energy = utils.Clamp(f.Energy+amount, 0, f.MaxEnergy)
	return true
}

// DepositAtHome unloads carried nectar when the forager stands on home.
func (f *Forager) DepositAtHome(b *Board) bool {
	if !b.IsHome(f.Pos) || f.Nectar == 0 {
		return false
	}
	b.Deposit(f.Nectar)
	f.Nectar = 0
	return true
}

// RecoverAtHome restores full life and energy when the forager stands on home.
func (f *Forager) RecoverAtHome(b *Board) bool {
	if !b.IsHome(f.Pos) {
		return false
	}
	f.Life = f.MaxLife
	f.Energy = f.MaxEnergy
	return true
}

func (f *Forager) Clone() *Forager {
	clone := *f
	return &clone
}

func (f *Forager) String() string {
	return fmt.Sprintf("forager{at=%s life=%d/%d energy=%d/%d nectar=%d/%d}",
		f.Pos, f.Life, f.MaxLife, f.Energy, f.MaxEnergy, f.Nectar, f.Capacity)
}
