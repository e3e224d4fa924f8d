package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// SessionState is the scalar simulation state of one game session.
// It is owned by Game and reset wholesale by Reset.
type SessionState struct {
	Score            int
	Lives            int
	GameSpeed        float64
	GameOver         bool
	CameraOffset     float64
	BackgroundOffset float64
	CoinOffset       float64 // Shared coin bob offset
	CoinDirection    float64 // +1 or -1
	Frame            int

	Stats core.RunStats
}

func newSession(lives int, speed float64) SessionState {
	return SessionState{
		Lives:         lives,
		GameSpeed:     speed,
		CoinDirection: 1,
	}
}

// addScore is the only way score changes during a session.
func (s *SessionState) addScore(n int) {
	if n > 0 {
		s.Score += n
	}
}

// updateCoinBob moves the shared coin offset, reversing past ±bobRange.
func (s *SessionState) updateCoinBob(bobRange, step float64) {
	if s.CoinOffset > bobRange || s.CoinOffset < -bobRange {
		s.CoinDirection = -s.CoinDirection
	}
	s.CoinOffset += s.CoinDirection * step
}
