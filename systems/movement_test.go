package systems

import (
	"testing"

	"github.com/Jokler/escape-my-basement/components"
	cfg "github.com/Jokler/escape-my-basement/config"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var box = []string{
	"######",
	"#.P..#",
	"#....#",
	"#....#",
	"######",
}

func TestPlayer_FallsAndLands(t *testing.T) {
	t.Parallel()

	e := newGame(t, box)
	tick(e, 60)

	p := player(t, e)
	obj := components.Object.Get(p)
	physics := components.Physics.Get(p)

	// Floor is row 4.
	assert.InDelta(t, 64.0, obj.Y+obj.H, 1e-9)
	require.NotNil(t, physics.OnGround)
	assert.Zero(t, physics.SpeedY)
	assert.Equal(t, cfg.Idle, components.State.Get(p).CurrentState)
}

func TestPlayer_StopsAtWall(t *testing.T) {
	t.Parallel()

	e := newGame(t, box)
	tick(e, 30)
	press(e, cfg.ActionMoveRight)
	tick(e, 120)

	p := player(t, e)
	obj := components.Object.Get(p)
	// Right wall starts at column 5.
	assert.InDelta(t, 80.0, obj.X+obj.W, 1e-9)
	assert.Equal(t, cfg.DirectionRight, components.Player.Get(p).Direction.X)

	press(e, cfg.ActionMoveLeft)
	release(e, cfg.ActionMoveRight)
	tick(e, 120)
	assert.InDelta(t, 16.0, obj.X, 1e-9)
	assert.Equal(t, cfg.DirectionLeft, components.Player.Get(p).Direction.X)
}

func TestPlayer_Jump(t *testing.T) {
	t.Parallel()

	e := newGame(t, box)
	tick(e, 60)
	p := player(t, e)
	groundY := components.Object.Get(p).Y

	press(e, cfg.ActionJump)
	tick(e, 3)
	assert.Less(t, components.Object.Get(p).Y, groundY)
	assert.Equal(t, cfg.Jump, components.State.Get(p).CurrentState)

	// Holding jump does not bounce again after landing.
	tick(e, 120)
	assert.InDelta(t, groundY, components.Object.Get(p).Y, 1e-9)
}

func TestPlayer_HeadBump(t *testing.T) {
	t.Parallel()

	e := newGame(t, []string{
		"#####",
		"#...#",
		"#.P.#",
		"#####",
	})
	tick(e, 30)
	press(e, cfg.ActionJump)
	tick(e, 10)

	obj := components.Object.Get(player(t, e))
	// Ceiling is row 0, so the player never goes above y=16.
	assert.GreaterOrEqual(t, obj.Y, 16.0)
}

func TestPlayerState(t *testing.T) {
	t.Parallel()

	floor := resolv.NewObject(0, 0, 16, 16, "solid")

	tests := []struct {
		name    string
		dead    bool
		physics components.PhysicsData
		want    cfg.StateID
	}{
		{name: "dead wins", dead: true, physics: components.PhysicsData{SpeedY: -3}, want: cfg.Die},
		{name: "rising", physics: components.PhysicsData{SpeedY: -3}, want: cfg.Jump},
		{name: "falling", physics: components.PhysicsData{SpeedY: 2}, want: cfg.Fall},
		{name: "walking", physics: components.PhysicsData{SpeedX: 1.5, OnGround: floor}, want: cfg.Walk},
		{name: "idle", physics: components.PhysicsData{SpeedX: 0.001, OnGround: floor}, want: cfg.Idle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, playerState(tt.dead, &tt.physics))
		})
	}
}
