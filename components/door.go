package components

import (
	"github.com/Jokler/escape-my-basement/shared/platemerge"
	"github.com/yohamta/donburi"
)

// DoorData is one merged door rectangle acting as a level exit sensor.
type DoorData struct {
	Cells   platemerge.Rect
	Entered bool
}

var Door = donburi.NewComponentType[DoorData]()
