package animations

import (
	"testing"

	"github.com/Jokler/escape-my-basement/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tick(a *Animation, n int) {
	for range n {
		a.Update()
	}
}

func TestAnimation_Loops(t *testing.T) {
	t.Parallel()

	a := NewAnimation(6, 8, 1, 1)
	assert.Equal(t, 6, a.Frame())

	// speed 1: the frame advances every second tick
	tick(a, 2)
	assert.Equal(t, 7, a.Frame())
	assert.True(t, a.Changed())

	tick(a, 4)
	assert.Equal(t, 6, a.Frame())
	assert.True(t, a.Looped)
	assert.False(t, a.Finished())
}

func TestAnimation_OneShot(t *testing.T) {
	t.Parallel()

	a := FromDef(config.AnimationDef{First: 16, Last: 18, Step: 1, Speed: 0, OneShot: true})
	tick(a, 2)
	assert.Equal(t, 18, a.Frame())
	assert.False(t, a.Finished())

	a.Update()
	assert.Equal(t, 18, a.Frame())
	assert.True(t, a.Finished())
	assert.False(t, a.Changed())

	a.Restart()
	assert.Equal(t, 16, a.Frame())
	assert.False(t, a.Finished())
}

func TestSet(t *testing.T) {
	t.Parallel()

	set := Set("player")
	require.Contains(t, set, config.Die)
	assert.True(t, set[config.Die].FreezeOnComplete)
	assert.Equal(t, 6, set[config.Idle].Frame())
	assert.Empty(t, Set("nobody"))
}
