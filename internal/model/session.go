package model

import "time"

// SessionID uniquely identifies a planned or completed session
type SessionID string

// SessionStatus is a session's lifecycle state. The only transition is
// Scheduled -> Completed, made exactly once when results are recorded.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
)

// Date/time layouts used in the persisted representation
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// SessionResults holds the outcome of a completed session. WinnerIDs is a
// non-empty subset of the session's PlayerIDs.
type SessionResults struct {
	WinnerIDs []PlayerID `json:"winnerIds"`
}

// Session links a date/time, a game, and the participating players.
// Results is nil while the session is scheduled.
type Session struct {
	ID        SessionID       `json:"id"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	Location  string          `json:"location"`
	Vibe      Vibe            `json:"vibe"`
	PlayerIDs []PlayerID      `json:"playerIds"`
	GameID    GameID          `json:"gameId"`
	Status    SessionStatus   `json:"status"`
	Results   *SessionResults `json:"results"`
}

// HasParticipant reports whether id is among the session's players
func (s *Session) HasParticipant(id PlayerID) bool {
	for _, pid := range s.PlayerIDs {
		if pid == id {
			return true
		}
	}
	return false
}

// HasWinner reports whether id is recorded as a winner
func (s *Session) HasWinner(id PlayerID) bool {
	if s.Results == nil {
		return false
	}
	for _, wid := range s.Results.WinnerIDs {
		if wid == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the session. Status and results are preserved;
// the caller is responsible for assigning a fresh ID.
func (s *Session) Clone() Session {
	copied := *s
	copied.PlayerIDs = append([]PlayerID(nil), s.PlayerIDs...)
	if s.Results != nil {
		results := SessionResults{
			WinnerIDs: append([]PlayerID(nil), s.Results.WinnerIDs...),
		}
		copied.Results = &results
	}
	return copied
}

// StartsAt combines the date and time fields into a single instant.
// Malformed values yield the zero time, which sorts before everything else.
func (s *Session) StartsAt() time.Time {
	t := s.Time
	if t == "" {
		t = "00:00"
	}
	parsed, err := time.Parse(DateLayout+" "+TimeLayout, s.Date+" "+t)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
