package game

import (
	"forage/utils"

	"golang.org/x/exp/rand"
)

type CellKind int

const (
	EmptyCell CellKind = iota
	HomeCell
	ObstacleCell
	FlowerCell
)

func (k CellKind) String() string {
	switch k {
	case EmptyCell:
		return "empty"
	case HomeCell:
		return "home"
	case ObstacleCell:
		return "obstacle"
	case FlowerCell:
		return "flower"
	default:
		panic("unexpected cell kind")
	}
}

// Cell is one grid square. Flower cells index into the board's flower arena.
type Cell struct {
	Kind   CellKind
	flower int
}

// Planted pairs a flower with the cell it grows on.
type Planted struct {
	Pos    Pos
	Flower Flower
}

// Board is the grid plus everything that lives on it. Flowers are stored by
// value in an arena indexed from the grid, so cloning a board is two slice
// copies and never shares a flower with the original.
type Board struct {
	Rows   int
	Cols   int
	Home   Pos
	Nectar int // accumulated at home

	cells     []Cell
	flowers   []Planted
	obstacles []Pos // oldest first
}

// NewBoard creates an empty rows x cols board with its home at home.
func NewBoard(rows, cols int, home Pos) *Board {
	if rows <= 0 || cols <= 0 {
		panic("board dimensions must be positive")
	}
	b := &Board{
		Rows:  rows,
		Cols:  cols,
		Home:  home,
		cells: make([]Cell, rows*cols),
	}
	if !b.InBounds(home) {
		panic("home must be on the board")
	}
	b.cells[b.index(home)] = Cell{Kind: HomeCell}
	return b
}

func (b *Board) index(p Pos) int {
	return p.Row*b.Cols + p.Col
}

func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.Rows && p.Col >= 0 && p.Col < b.Cols
}

// Cell returns the content of (row, col), or false when it is off the board.
func (b *Board) Cell(row, col int) (Cell, bool) {
	p := Pos{Row: row, Col: col}
	if !b.InBounds(p) {
		return Cell{}, false
	}
	return b.cells[b.index(p)], true
}

func (b *Board) kind(p Pos) CellKind {
	return b.cells[b.index(p)].Kind
}

func (b *Board) IsHome(p Pos) bool {
	return p == b.Home
}

func (b *Board) IsObstacle(p Pos) bool {
	return b.InBounds(p) && b.kind(p) == ObstacleCell
}

func (b *Board) IsFlower(p Pos) bool {
	return b.InBounds(p) && b.kind(p) == FlowerCell
}

func (b *Board) IsEmpty(p Pos) bool {
	return b.InBounds(p) && b.kind(p) == EmptyCell
}

// IsTraversable reports whether a forager may stand on p. Flowers, live or
// dead, never block movement; only obstacles and the board edge do.
func (b *Board) IsTraversable(p Pos) bool {
	return b.InBounds(p) && b.kind(p) != ObstacleCell
}

// FlowerAt returns the flower on p, or nil. The pointer is invalidated by
// PlantFlower and PurgeDead.
func (b *Board) FlowerAt(p Pos) *Flower {
	if !b.IsFlower(p) {
		return nil
	}
	return &b.flowers[b.cells[b.index(p)].flower].Flower
}

// Flowers returns every planted flower, dead ones included. Callers must not
// modify the returned slice.
func (b *Board) Flowers() []Planted {
	return b.flowers
}

func (b *Board) LiveFlowers() []Planted {
	live := make([]Planted, 0, len(b.flowers))
	for _, planted := range b.flowers {
		if planted.Flower.IsAlive() {
			live = append(live, planted)
		}
	}
	return live
}

func (b *Board) CountLiveFlowers() int {
	count := 0
	for _, planted := range b.flowers {
		if planted.Flower.IsAlive() {
			count++
		}
	}
	return count
}

// PlantFlower puts f on an empty cell.
func (b *Board) PlantFlower(p Pos, f Flower) bool {
	if !b.IsEmpty(p) {
		return false
	}
	b.cells[b.index(p)] = Cell{Kind: FlowerCell, flower: len(b.flowers)}
	b.flowers = append(b.flowers, Planted{Pos: p, Flower: f})
	return true
}

func (b *Board) Obstacles() []Pos {
	obstacles := make([]Pos, len(b.obstacles))
	copy(obstacles, b.obstacles)
	return obstacles
}

func (b *Board) ObstacleCount() int {
	return len(b.obstacles)
}

// PlaceObstacle blocks an empty cell. Home and flower cells are never overwritten.
func (b *Board) PlaceObstacle(p Pos) bool {
	if !b.IsEmpty(p) {
		return false
	}
	b.cells[b.index(p)] = Cell{Kind: ObstacleCell}
	b.obstacles = append(b.obstacles, p)
	return true
}

// EvictOldestObstacle clears the obstacle that has been on the board longest.
func (b *Board) EvictOldestObstacle() (Pos, bool) {
	if len(b.obstacles) == 0 {
		return Pos{}, false
	}
	oldest := b.obstacles[0]
	b.cells[b.index(oldest)] = Cell{Kind: EmptyCell}
	b.obstacles = b.obstacles[1:]
	return oldest, true
}

// RemoveObstacle clears a specific obstacle.
func (b *Board) RemoveObstacle(p Pos) bool {
	i := utils.FindIndex(b.obstacles, p)
	if i < 0 {
		return false
	}
	b.cells[b.index(p)] = Cell{Kind: EmptyCell}
	b.obstacles = append(b.obstacles[:i:i], b.obstacles[i+1:]...)
	return true
}

// ApplyPesticide contaminates the live flower on p.
func (b *Board) ApplyPesticide(p Pos) bool {
	f := b.FlowerAt(p)
	if f == nil {
		return false
	}
	return f.ApplyPesticide()
}

func (b *Board) Deposit(amount int) {
	if amount > 0 {
		b.Nectar += amount
	}
}

// EmptyNeighbors lists the empty cells around p in Neighborhood order.
func (b *Board) EmptyNeighbors(p Pos) []Pos {
	var empty []Pos
	for _, d := range Neighborhood {
		if n := p.Add(d); b.IsEmpty(n) {
			empty = append(empty, n)
		}
	}
	return empty
}

// PurgeDead advances the death timer of dead flowers and removes those that
// have been dead for a full turn. It returns the number removed.
func (b *Board) PurgeDead() int {
	kept := b.flowers[:0]
	removed := 0
	for _, planted := range b.flowers {
		if planted.Flower.tickDead() {
			b.cells[b.index(planted.Pos)] = Cell{Kind: EmptyCell}
			removed++
			continue
		}
		b.cells[b.index(planted.Pos)].flower = len(kept)
		kept = append(kept, planted)
	}
	b.flowers = kept
	return removed
}

// Clone returns a board that shares no mutable state with b.
func (b *Board) Clone() *Board {
	clone := *b
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	clone.flowers = make([]Planted, len(b.flowers))
	copy(clone.flowers, b.flowers)
	clone.obstacles = make([]Pos, len(b.obstacles))
	copy(clone.obstacles, b.obstacles)
	return &clone
}

// Scatter randomly places flowers and obstacles on empty cells, skipping the
// reserved ones. Counts are clamped to the free space available.
func (b *Board) Scatter(rng *rand.Rand, flowers, obstacles, flowerLife int, reserved ...Pos) {
	var free []Pos
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			p := Pos{Row: row, Col: col}
			if b.IsEmpty(p) && utils.FindIndex(reserved, p) < 0 {
				free = append(free, p)
			}
		}
	}
	rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})

	flowers = utils.Clamp(flowers, 0, len(free))
	for _, p := range free[:flowers] {
		b.PlantFlower(p, NewFlower(flowerLife))
	}
	free = free[flowers:]

	obstacles = utils.Clamp(obstacles, 0, len(free))
	for _, p := range free[:obstacles] {
		b.PlaceObstacle(p)
	}
}
