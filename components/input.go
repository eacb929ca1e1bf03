package components

import (
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Swap starts a new frame: current becomes previous and current is cleared.
func (in *InputData) Swap() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
