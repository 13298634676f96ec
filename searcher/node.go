package searcher

// nodeKind is the ply type of a search node. Plies cycle max -> min -> chance -> max.
type nodeKind int

const (
	maxNode    nodeKind = iota // forager
	minNode                    // adversary
	chanceNode                 // weather
)

func (k nodeKind) String() string {
	switch k {
	case maxNode:
		return "max"
	case minNode:
		return "min"
	case chanceNode:
		return "chance"
	default:
		panic("Unexpected node type")
	}
}

func (k nodeKind) next() nodeKind {
	return (k + 1) % 3
}
