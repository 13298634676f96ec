package game

// ActionType is the kind of a forager action.
type ActionType int

const (
	MoveAction ActionType = iota
	CollectAction
	RestAction
	DepositAction
)

func (t ActionType) String() string {
	switch t {
	case MoveAction:
		return "move"
	case CollectAction:
		return "collect"
	case RestAction:
		return "rest"
	case DepositAction:
		return "deposit"
	default:
		panic("unexpected action type")
	}
}

// AdversaryActionType is the kind of an adversary action.
type AdversaryActionType int

const (
	ContaminateAction AdversaryActionType = iota
	ObstructAction
)

func (t AdversaryActionType) String() string {
	switch t {
	case ContaminateAction:
		return "contaminate"
	case ObstructAction:
		return "obstruct"
	default:
		panic("unexpected adversary action type")
	}
}
