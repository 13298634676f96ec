package game

import (
	"fmt"

	"forage/utils"
)

// Pos is a (row, column) cell coordinate on the board.
type Pos struct {
	Row int
	Col int
}

// Neighborhood lists the 8 king-move offsets in reading order.
var Neighborhood = [8]Pos{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (p Pos) Add(d Pos) Pos {
	return Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Chebyshev returns max(|drow|, |dcol|), the step count for 8-directional movement.
func (p Pos) Chebyshev(q Pos) int {
	return max(utils.Abs(p.Row-q.Row), utils.Abs(p.Col-q.Col))
}

func (p Pos) Manhattan(q Pos) int {
	return utils.Abs(p.Row-q.Row) + utils.Abs(p.Col-q.Col)
}

// Adjacent reports whether q is one king move away from p (p itself excluded).
func (p Pos) Adjacent(q Pos) bool {
	return p.Chebyshev(q) == 1
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
