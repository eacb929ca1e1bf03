package config

// StateID identifies a character or effect state. Each state maps to one animation clip.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Jump
	Fall
	Die
	Explode
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Walk:      "walk",
	Jump:      "jump",
	Fall:      "fall",
	Die:       "die",
	Explode:   "explode",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MenuID is the overlay currently shown on top of gameplay.
type MenuID int

const (
	MenuNone MenuID = iota
	MenuPause
	MenuDeath
	MenuWon
)

func (m MenuID) String() string {
	switch m {
	case MenuPause:
		return "pause"
	case MenuDeath:
		return "death"
	case MenuWon:
		return "won"
	default:
		return "none"
	}
}

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionRestart
	ActionConfirm
	ActionNewGame
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// Default is the ECS layer every entity and renderer lives on.
const Default = 0
