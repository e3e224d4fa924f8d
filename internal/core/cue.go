package core

// Cue is a fire-and-forget notification emitted by a game step.
// Drivers forward cues to audio or visual feedback; games never wait on them.
type Cue int

const (
	CueJump Cue = iota
	CueDamage
	CueShoot
	CueEnemyHit
	CueCoin
	CuePickup
	CueGameOver
	cueCount
)

// CueCount is the number of defined cues.
const CueCount = int(cueCount)

// String returns the cue name used in logs.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueDamage:
		return "damage"
	case CueShoot:
		return "shoot"
	case CueEnemyHit:
		return "enemy_hit"
	case CueCoin:
		return "coin"
	case CuePickup:
		return "pickup"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
