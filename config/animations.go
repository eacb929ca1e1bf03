package config

// AnimationDef describes one clip in a sprite atlas. First and Last are atlas indices,
// Speed is ticks per frame.
type AnimationDef struct {
	First   int
	Last    int
	Step    int
	Speed   float32
	OneShot bool // stop on the last frame instead of looping
}

// CharacterAnimations maps a character key to its clips.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	// 16x16 frames, 4 columns
	"player": {
		Walk: {First: 0, Last: 5, Step: 1, Speed: 5},
		Idle: {First: 6, Last: 9, Step: 1, Speed: 9},
		Fall: {First: 10, Last: 12, Step: 1, Speed: 9},
		Jump: {First: 13, Last: 15, Step: 1, Speed: 9},
		Die:  {First: 16, Last: 18, Step: 1, Speed: 5, OneShot: true},
	},
	// 32x32 frames, one row
	"mine": {
		Explode: {First: 0, Last: 7, Step: 1, Speed: 4, OneShot: true},
	},
}
