package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestBoardCells(t *testing.T) {
	b := NewBoard(5, 5, Pos{2, 2})

	t.Run("home is set and traversable", func(t *testing.T) {
		cell, ok := b.Cell(2, 2)
		require.True(t, ok)
		require.Equal(t, HomeCell, cell.Kind)
		require.True(t, b.IsTraversable(Pos{2, 2}))
		require.False(t, b.IsEmpty(Pos{2, 2}))
	})

	t.Run("off board", func(t *testing.T) {
		_, ok := b.Cell(5, 0)
		require.False(t, ok)
		require.False(t, b.IsTraversable(Pos{-1, 0}))
		require.Nil(t, b.FlowerAt(Pos{0, 9}))
	})

	t.Run("obstacles and flowers only go on empty cells", func(t *testing.T) {
		b := NewBoard(5, 5, Pos{2, 2})
		require.False(t, b.PlaceObstacle(Pos{2, 2}), "Home is never overwritten")
		require.True(t, b.PlantFlower(Pos{0, 0}, NewFlower(10)))
		require.False(t, b.PlaceObstacle(Pos{0, 0}), "Flowers are never overwritten")
		require.True(t, b.PlaceObstacle(Pos{0, 1}))
		require.False(t, b.PlantFlower(Pos{0, 1}, NewFlower(10)))
		require.False(t, b.IsTraversable(Pos{0, 1}))
		require.True(t, b.IsTraversable(Pos{0, 0}), "Flowers do not block movement")
	})

	t.Run("invalid boards panic", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(0, 5, Pos{}) })
		require.Panics(t, func() { NewBoard(3, 3, Pos{3, 0}) })
	})
}

func TestBoardObstacles(t *testing.T) {
	b := NewBoard(5, 5, Pos{2, 2})
	b.PlaceObstacle(Pos{0, 0})
	b.PlaceObstacle(Pos{0, 1})
	b.PlaceObstacle(Pos{0, 2})

	t.Run("eviction is oldest first", func(t *testing.T) {
		b := b.Clone()
		oldest, ok := b.EvictOldestObstacle()
		require.True(t, ok)
		require.Equal(t, Pos{0, 0}, oldest)
		require.True(t, b.IsEmpty(Pos{0, 0}))
		require.Equal(t, []Pos{{0, 1}, {0, 2}}, b.Obstacles())
	})

	t.Run("removing a specific obstacle", func(t *testing.T) {
		b := b.Clone()
		require.True(t, b.RemoveObstacle(Pos{0, 1}))
		require.False(t, b.RemoveObstacle(Pos{4, 4}))
		require.Equal(t, []Pos{{0, 0}, {0, 2}}, b.Obstacles())
	})
}

func TestBoardClone(t *testing.T) {
	b := NewBoard(5, 5, Pos{2, 2})
	b.PlantFlower(Pos{0, 0}, NewFlower(10))
	b.PlaceObstacle(Pos{4, 4})

	clone := b.Clone()
	clone.FlowerAt(Pos{0, 0}).ApplyPesticide()
	clone.PlantFlower(Pos{1, 1}, NewFlower(10))
	clone.EvictOldestObstacle()
	clone.Deposit(10)

	require.Equal(t, 0, b.FlowerAt(Pos{0, 0}).Pesticide, "Original flower should be untouched")
	require.Nil(t, b.FlowerAt(Pos{1, 1}))
	require.True(t, b.IsObstacle(Pos{4, 4}))
	require.Equal(t, 0, b.Nectar)
	require.Equal(t, 2, clone.CountLiveFlowers())
}

func TestBoardPurgeDead(t *testing.T) {
	b := NewBoard(5, 5, Pos{2, 2})
	b.PlantFlower(Pos{0, 0}, NewFlower(10))
	b.PlantFlower(Pos{0, 1}, NewFlower(10))
	b.PlantFlower(Pos{0, 2}, NewFlower(10))
	b.FlowerAt(Pos{0, 1}).Kill()

	require.Equal(t, 1, b.PurgeDead())
	require.True(t, b.IsEmpty(Pos{0, 1}))
	require.Len(t, b.Flowers(), 2)

	// Surviving flowers are still reachable through the grid after reindexing
	b.FlowerAt(Pos{0, 2}).Pollinate()
	require.True(t, b.Flowers()[1].Flower.Pollinated)
	require.Equal(t, Pos{0, 2}, b.Flowers()[1].Pos)
	require.Equal(t, 0, b.PurgeDead())
}

func TestBoardScatter(t *testing.T) {
	t.Run("places the requested counts off reserved cells", func(t *testing.T) {
		b := NewBoard(6, 6, Pos{0, 0})
		b.Scatter(rand.New(rand.NewSource(7)), 10, 4, DefaultFlowerLife, Pos{1, 1})

		require.Equal(t, 10, b.CountLiveFlowers())
		require.Equal(t, 4, b.ObstacleCount())
		require.True(t, b.IsEmpty(Pos{1, 1}))
		cell, _ := b.Cell(0, 0)
		require.Equal(t, HomeCell, cell.Kind)
	})

	t.Run("clamps to free space", func(t *testing.T) {
		b := NewBoard(2, 2, Pos{0, 0})
		b.Scatter(rand.New(rand.NewSource(7)), 10, 10, DefaultFlowerLife)

		require.Equal(t, 3, b.CountLiveFlowers())
		require.Equal(t, 0, b.ObstacleCount())
	})

	t.Run("same seed same layout", func(t *testing.T) {
		b1 := NewBoard(6, 6, Pos{0, 0})
		b2 := NewBoard(6, 6, Pos{0, 0})
		b1.Scatter(rand.New(rand.NewSource(42)), 8, 3, DefaultFlowerLife)
		b2.Scatter(rand.New(rand.NewSource(42)), 8, 3, DefaultFlowerLife)

		require.Equal(t, b1.Flowers(), b2.Flowers())
		require.Equal(t, b1.Obstacles(), b2.Obstacles())
	})
}
