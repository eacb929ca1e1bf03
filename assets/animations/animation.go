package animations

import "github.com/Jokler/escape-my-basement/config"

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	changed          bool
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	a.changed = false
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		prev := a.frame
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
			} else {
				// loop back to the beginning
				a.frame = a.First
			}
		}
		a.changed = a.frame != prev
	}
}

// Frame returns the current atlas index.
func (a *Animation) Frame() int {
	return a.frame
}

// Changed reports whether the last Update moved to a different frame.
func (a *Animation) Changed() bool {
	return a.changed
}

// Finished reports whether a one-shot animation has played through.
func (a *Animation) Finished() bool {
	return a.FreezeOnComplete && a.Looped
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
	a.changed = true
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
		Looped:       false,
	}
}

// FromDef builds an animation from a configured clip.
func FromDef(def config.AnimationDef) *Animation {
	a := NewAnimation(def.First, def.Last, def.Step, def.Speed)
	a.FreezeOnComplete = def.OneShot
	return a
}

// Set builds one animation per configured clip of a character.
func Set(character string) map[config.StateID]*Animation {
	defs := config.CharacterAnimations[character]
	set := make(map[config.StateID]*Animation, len(defs))
	for state, def := range defs {
		set[state] = FromDef(def)
	}
	return set
}
