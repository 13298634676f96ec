package game

import "fmt"

// ForagerAction is a forager move. Target is the destination cell for
// MoveAction, the flower for CollectAction and unused otherwise.
type ForagerAction struct {
	Type   ActionType
	Target Pos
}

func Move(to Pos) ForagerAction {
	return ForagerAction{Type: MoveAction, Target: to}
}

func Collect(at Pos) ForagerAction {
	return ForagerAction{Type: CollectAction, Target: at}
}

func Rest() ForagerAction {
	return ForagerAction{Type: RestAction}
}

func Deposit() ForagerAction {
	return ForagerAction{Type: DepositAction}
}

func (a ForagerAction) String() string {
	switch a.Type {
	case MoveAction, CollectAction:
		return fmt.Sprintf("%s%s", a.Type, a.Target)
	default:
		return a.Type.String()
	}
}

// AdversaryAction contaminates the flower at Target or blocks the cell at Target.
type AdversaryAction struct {
	Type   AdversaryActionType
	Target Pos
}

func Contaminate(at Pos) AdversaryAction {
	return AdversaryAction{Type: ContaminateAction, Target: at}
}

func Obstruct(at Pos) AdversaryAction {
	return AdversaryAction{Type: ObstructAction, Target: at}
}

func (a AdversaryAction) String() string {
	return fmt.Sprintf("%s%s", a.Type, a.Target)
}
