package core

import "strings"

// Action represents a semantic move, abstracted from the key or word that produced it.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow
	ActionDown         // S, J, Down arrow
	ActionLeft         // A, H, Left arrow
	ActionRight        // D, L, Right arrow
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ActionForKey translates a key name or word to an action.
// Matching is case-insensitive. Unknown keys map to ActionNone.
func ActionForKey(key string) Action {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "w", "k", "up", "↑":
		return ActionUp
	case "s", "j", "down", "↓":
		return ActionDown
	case "a", "h", "left", "←":
		return ActionLeft
	case "d", "l", "right", "→":
		return ActionRight
	}
	return ActionNone
}
