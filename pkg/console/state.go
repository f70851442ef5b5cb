package console

import "fmt"

// State is a step of the interactive loop.
type State int

const (
	MenuShown State = iota
	AwaitingChoice
	AwaitingListSize
	AwaitingOrdinal
	ActionComplete
	Quit
)

func (s State) String() string {
	switch s {
	case MenuShown:
		return "menu-shown"
	case AwaitingChoice:
		return "awaiting-choice"
	case AwaitingListSize:
		return "awaiting-list-size"
	case AwaitingOrdinal:
		return "awaiting-ordinal"
	case ActionComplete:
		return "action-complete"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// action is what the operator picked from the menu.
type action int

const (
	actionNone action = iota
	actionListCPU
	actionListMemory
	actionStop
)
