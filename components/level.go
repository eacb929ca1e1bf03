package components

import (
	"github.com/Jokler/escape-my-basement/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.CollisionData
	LevelIndex   int
	Levels       []*leveldata.CollisionData
	// ReloadRequested is set when the world must be rebuilt for LevelIndex.
	ReloadRequested bool
}

// Advance moves to the next level. It reports false when there is no next level.
func (l *LevelData) Advance() bool {
	if l.LevelIndex+1 >= len(l.Levels) {
		return false
	}
	l.LevelIndex++
	l.CurrentLevel = l.Levels[l.LevelIndex]
	l.ReloadRequested = true
	return true
}

var Level = donburi.NewComponentType[LevelData]()
