package planner

import (
	"container/heap"
	"forage/game"

	"golang.org/x/exp/rand"
)

// node is an open-list entry. parent links let the path be rebuilt once
// the goal is popped.
type node struct {
	pos    game.Pos
	parent *node
	g      int
	f      float64
	index  int
}

// priorityQueue is a min-heap on f, breaking ties on g.
type priorityQueue []*node

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].g < pq[j].g
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*node)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]
	return item
}

// Planner is an A* route finder over the board's 8-connected grid. A random
// term added to every edge makes it an imperfect navigator.
type Planner struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Planner {
	if rng == nil {
		panic("planner needs a random source")
	}
	return &Planner{rng: rng}
}

// Route returns the cells from start to goal inclusive, or nil when goal is
// unreachable. Each expanded edge adds noise drawn uniformly from
// [0, noise] to its priority; with noise 0 the route is shortest.
func (p *Planner) Route(b *game.Board, start, goal game.Pos, noise float64) []game.Pos {
	if !b.InBounds(start) || !b.InBounds(goal) {
		return nil
	}

	open := &priorityQueue{}
	heap.Push(open, &node{pos: start, f: float64(start.Chebyshev(goal))})
	closed := make(map[game.Pos]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		if current.pos == goal {
			return reconstruct(current)
		}
		if closed[current.pos] {
			continue
		}
		closed[current.pos] = true

		for _, d := range game.Neighborhood {
			next := current.pos.Add(d)
			if !b.InBounds(next) || closed[next] {
				continue
			}
			if !b.IsTraversable(next) && next != goal {
				continue
			}
			g := current.g + 1
			f := float64(g + next.Chebyshev(goal))
			if noise > 0 {
				f += p.rng.Float64() * noise
			}
			heap.Push(open, &node{pos: next, parent: current, g: g, f: f})
		}
	}
	return nil
}

func reconstruct(n *node) []game.Pos {
	var path []game.Pos
	for ; n != nil; n = n.parent {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
