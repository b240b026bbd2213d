package kitchen

type GameState int

const (
	StateWaitingToStart   GameState = iota
	StateCountdownToStart           // short countdown before play
	StateGamePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateWaitingToStart:
		return "waiting"
	case StateCountdownToStart:
		return "countdown"
	case StateGamePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

type GameSession struct {
	State          GameState
	Paused         bool
	PlayingTimeMax float64

	countdownTimer float64
	playingTimer   float64
	bus            *EventBus
}

func NewGameSession(bus *EventBus, playingTime float64) *GameSession {
	if playingTime <= 0 {
		playingTime = DefaultPlayingTime
	}
	return &GameSession{
		State:          StateWaitingToStart,
		PlayingTimeMax: playingTime,
		bus:            bus,
	}
}

// Start leaves the waiting state and begins the countdown. It is a no-op in
// any other state.
func (s *GameSession) Start() {
	if s.State != StateWaitingToStart {
		return
	}
	s.countdownTimer = CountdownToStartTime
	s.setState(StateCountdownToStart)
}

// Restart returns a finished session to the waiting state.
func (s *GameSession) Restart() {
	if s.State != StateGameOver {
		return
	}
	s.countdownTimer = 0
	s.playingTimer = 0
	s.setState(StateWaitingToStart)
}

// Update advances the countdown and the round timer.
func (s *GameSession) Update(dt float64) {
	if s.Paused {
		return
	}
	switch s.State {
	case StateCountdownToStart:
		s.countdownTimer -= dt
		if s.countdownTimer <= 0 {
			s.countdownTimer = 0
			s.playingTimer = s.PlayingTimeMax
			s.setState(StateGamePlaying)
		}
	case StateGamePlaying:
		s.playingTimer -= dt
		if s.playingTimer <= 0 {
			s.playingTimer = 0
			s.setState(StateGameOver)
		}
	}
}

func (s *GameSession) TogglePause() {
	s.Paused = !s.Paused
	s.bus.Emit(Event{Type: EventPauseChanged, State: s.State, Paused: s.Paused})
}

// IsPlaying reports whether player interactions are accepted.
func (s *GameSession) IsPlaying() bool {
	return s.State == StateGamePlaying && !s.Paused
}

func (s *GameSession) CountdownRemaining() float64 { return s.countdownTimer }
func (s *GameSession) PlayingRemaining() float64   { return s.playingTimer }

// PlayingTimerNormalized returns elapsed round time as 0..1.
func (s *GameSession) PlayingTimerNormalized() float64 {
	if s.State != StateGamePlaying {
		if s.State == StateGameOver {
			return 1
		}
		return 0
	}
	return clampF(1-s.playingTimer/s.PlayingTimeMax, 0, 1)
}

func (s *GameSession) setState(st GameState) {
	s.State = st
	s.bus.Emit(Event{Type: EventStateChanged, State: st, Paused: s.Paused})
}
