package store

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/mcoot/boardnight/internal/dependencies/random"
	"github.com/mcoot/boardnight/internal/model"
	"github.com/mcoot/boardnight/internal/services/stats"
	"github.com/mcoot/boardnight/internal/storage"
)

const (
	// IDLength is the length of generated entity identifiers
	IDLength = 12
	// IDAlphabet is the characters used in entity identifiers
	IDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Store is the sole owner and mutator of the player, game, and session
// collections. Every mutation validates, applies in memory, then persists;
// persistence faults are logged and the in-memory state remains the current
// view. The three collections are persisted as independent entries, so a
// failed write to one does not roll back a successful write to another.
type Store struct {
	mu      sync.Mutex
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger

	players  []model.Player
	games    []model.Game
	sessions []model.Session
}

// New creates a Store backed by the given storage
func New(st storage.Storage, rnd random.Random, logger *slog.Logger) *Store {
	return &Store{
		storage: st,
		random:  rnd,
		logger:  logger,
	}
}

// GameParams are the caller-supplied fields for a new game
type GameParams struct {
	Title      string
	MinPlayers int
	MaxPlayers int
	Duration   int
	Vibes      []model.Vibe
	Weight     model.Weight
	Notes      string
}

// SessionParams are the caller-supplied fields for a new session
type SessionParams struct {
	Date      string
	Time      string
	Location  string
	Vibe      model.Vibe
	GameID    model.GameID
	PlayerIDs []model.PlayerID
}

// Initialize loads the collections from storage. On first run (no persisted
// players or games, or an unreadable store) the seed data set is installed
// and persisted; previously stored sessions survive either way.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, playersErr := s.storage.LoadPlayers(ctx)
	games, gamesErr := s.storage.LoadGames(ctx)
	sessions, sessionsErr := s.storage.LoadSessions(ctx)

	if sessionsErr != nil {
		if !errors.Is(sessionsErr, storage.ErrNoData) {
			s.logger.Warn("could not load sessions, starting empty",
				slog.String("error", sessionsErr.Error()))
		}
		sessions = []model.Session{}
	}
	s.sessions = sessions

	if playersErr != nil || gamesErr != nil {
		for _, err := range []error{playersErr, gamesErr} {
			if err != nil && !errors.Is(err, storage.ErrNoData) {
				s.logger.Warn("could not load library, reseeding",
					slog.String("error", err.Error()))
			}
		}
		seed := model.Seed(s.newID)
		s.players = seed.Players
		s.games = seed.Games
		stats.RecalcWins(s.players, s.sessions)
		s.persistPlayers(ctx)
		s.persistGames(ctx)
		s.persistSessions(ctx)
		return
	}

	s.players = players
	s.games = games
	stats.RecalcWins(s.players, s.sessions)
}

// Player operations

// AddPlayer creates a player with a fresh identifier and a color derived
// from the name. Names must be non-empty and unique ignoring case.
func (s *Store) AddPlayer(ctx context.Context, name, emoji string) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, model.ErrPlayerNameEmpty
	}
	if s.playerNameTaken(name, "") {
		return model.Player{}, model.ErrPlayerNameTaken
	}

	emoji = strings.TrimSpace(emoji)
	if emoji == "" {
		emoji = model.DefaultEmoji
	}

	player := model.Player{
		ID:    model.PlayerID(s.newID()),
		Name:  name,
		Emoji: emoji,
		Color: model.ColorFromName(name),
		Wins:  0,
	}
	s.players = append(s.players, player)
	s.persistPlayers(ctx)
	return player, nil
}

// RemovePlayer removes a player unless any session references them as a
// participant or a winner.
func (s *Store) RemovePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.playerIndex(id)
	if idx < 0 {
		return model.ErrPlayerNotFound
	}
	for i := range s.sessions {
		if s.sessions[i].HasParticipant(id) || s.sessions[i].HasWinner(id) {
			return model.ErrPlayerInSessions
		}
	}

	s.players = append(s.players[:idx], s.players[idx+1:]...)
	s.persistPlayers(ctx)
	return nil
}

// EditPlayerName renames a player and recomputes their color
func (s *Store) EditPlayerName(ctx context.Context, id model.PlayerID, newName string) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.playerIndex(id)
	if idx < 0 {
		return model.Player{}, model.ErrPlayerNotFound
	}

	newName = strings.TrimSpace(newName)
	if newName == "" {
		return model.Player{}, model.ErrPlayerNameEmpty
	}
	if s.playerNameTaken(newName, id) {
		return model.Player{}, model.ErrPlayerNameTaken
	}

	s.players[idx].Name = newName
	s.players[idx].Color = model.ColorFromName(newName)
	s.persistPlayers(ctx)
	return s.players[idx], nil
}

// Game operations

// AddGame creates a game with a fresh identifier
func (s *Store) AddGame(ctx context.Context, params GameParams) (model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return model.Game{}, model.ErrGameTitleEmpty
	}
	if params.MinPlayers < 1 || params.MaxPlayers < 1 {
		return model.Game{}, model.ErrPlayerCountInvalid
	}
	if params.MinPlayers > params.MaxPlayers {
		return model.Game{}, model.ErrPlayerRangeInvalid
	}
	if params.Duration < 0 {
		return model.Game{}, model.ErrDurationInvalid
	}
	if !model.ValidWeight(params.Weight) {
		return model.Game{}, model.ErrUnknownWeight
	}
	for _, v := range params.Vibes {
		if !model.ValidVibe(v) {
			return model.Game{}, model.ErrUnknownVibe
		}
	}

	game := model.Game{
		ID:         model.GameID(s.newID()),
		Title:      title,
		MinPlayers: params.MinPlayers,
		MaxPlayers: params.MaxPlayers,
		Duration:   params.Duration,
		Vibes:      append([]model.Vibe(nil), params.Vibes...),
		Weight:     params.Weight,
		Notes:      strings.TrimSpace(params.Notes),
	}
	s.games = append(s.games, game)
	s.persistGames(ctx)
	return game, nil
}

// RemoveGame removes a game unless any session references it
func (s *Store) RemoveGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.gameIndex(id)
	if idx < 0 {
		return model.ErrGameNotFound
	}
	for i := range s.sessions {
		if s.sessions[i].GameID == id {
			return model.ErrGameInSessions
		}
	}

	s.games = append(s.games[:idx], s.games[idx+1:]...)
	s.persistGames(ctx)
	return nil
}

// EditGameTitle retitles a game
func (s *Store) EditGameTitle(ctx context.Context, id model.GameID, newTitle string) (model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.gameIndex(id)
	if idx < 0 {
		return model.Game{}, model.ErrGameNotFound
	}

	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return model.Game{}, model.ErrGameTitleEmpty
	}

	s.games[idx].Title = newTitle
	s.persistGames(ctx)
	return s.games[idx], nil
}

// Session operations

// AddSession schedules a new session
func (s *Store) AddSession(ctx context.Context, params SessionParams) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if params.Date == "" || params.Time == "" {
		return model.Session{}, model.ErrDateTimeRequired
	}
	if !validDateTime(params.Date, params.Time) {
		return model.Session{}, model.ErrDateTimeInvalid
	}
	if params.Vibe != "" && !model.ValidVibe(params.Vibe) {
		return model.Session{}, model.ErrUnknownVibe
	}
	if s.gameIndex(params.GameID) < 0 {
		return model.Session{}, model.ErrGameNotFound
	}
	if len(params.PlayerIDs) < 2 {
		return model.Session{}, model.ErrTooFewPlayers
	}

	session := model.Session{
		ID:        model.SessionID(s.newID()),
		Date:      params.Date,
		Time:      params.Time,
		Location:  strings.TrimSpace(params.Location),
		Vibe:      params.Vibe,
		PlayerIDs: append([]model.PlayerID(nil), params.PlayerIDs...),
		GameID:    params.GameID,
		Status:    model.SessionScheduled,
		Results:   nil,
	}
	s.sessions = append(s.sessions, session)
	s.sessionsChanged(ctx)
	return session.Clone(), nil
}

// DuplicateSession deep-copies a session under a fresh identifier.
// Status and results carry over with it.
func (s *Store) DuplicateSession(ctx context.Context, id model.SessionID) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sessionIndex(id)
	if idx < 0 {
		return model.Session{}, model.ErrSessionNotFound
	}

	copied := s.sessions[idx].Clone()
	copied.ID = model.SessionID(s.newID())
	s.sessions = append(s.sessions, copied)
	s.sessionsChanged(ctx)
	return copied.Clone(), nil
}

// RemoveSession removes a session unconditionally
func (s *Store) RemoveSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sessionIndex(id)
	if idx < 0 {
		return model.ErrSessionNotFound
	}

	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)
	s.sessionsChanged(ctx)
	return nil
}

// RecordResults completes a scheduled session with the given winners, each of
// whom must be a participant. The transition is one-way.
func (s *Store) RecordResults(ctx context.Context, id model.SessionID, winnerIDs []model.PlayerID) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sessionIndex(id)
	if idx < 0 {
		return model.Session{}, model.ErrSessionNotFound
	}
	session := &s.sessions[idx]
	if session.Status == model.SessionCompleted {
		return model.Session{}, model.ErrSessionCompleted
	}
	if len(winnerIDs) == 0 {
		return model.Session{}, model.ErrNoWinners
	}
	for _, wid := range winnerIDs {
		if !session.HasParticipant(wid) {
			return model.Session{}, model.ErrWinnerNotParticipant
		}
	}

	session.Status = model.SessionCompleted
	session.Results = &model.SessionResults{
		WinnerIDs: append([]model.PlayerID(nil), winnerIDs...),
	}
	s.sessionsChanged(ctx)
	return session.Clone(), nil
}

// Queries

// Players returns a copy of the player collection
func (s *Store) Players() []model.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Player(nil), s.players...)
}

// Games returns a copy of the game library
func (s *Store) Games() []model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyGames(s.games)
}

// GamesMatching returns games whose title contains q, ignoring case.
// An empty query returns the whole library.
func (s *Store) GamesMatching(q string) []model.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return copyGames(s.games)
	}
	var matched []model.Game
	for _, g := range s.games {
		if strings.Contains(strings.ToLower(g.Title), q) {
			g.Vibes = append([]model.Vibe(nil), g.Vibes...)
			matched = append(matched, g)
		}
	}
	return matched
}

// Sessions returns a copy of the session collection
func (s *Store) Sessions() []model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySessions(s.sessions)
}

// Player looks up a single player
func (s *Store) Player(id model.PlayerID) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.playerIndex(id)
	if idx < 0 {
		return model.Player{}, model.ErrPlayerNotFound
	}
	return s.players[idx], nil
}

// Game looks up a single game
func (s *Store) Game(id model.GameID) (model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.gameIndex(id)
	if idx < 0 {
		return model.Game{}, model.ErrGameNotFound
	}
	g := s.games[idx]
	g.Vibes = append([]model.Vibe(nil), g.Vibes...)
	return g, nil
}

// Session looks up a single session
func (s *Store) Session(id model.SessionID) (model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.sessionIndex(id)
	if idx < 0 {
		return model.Session{}, model.ErrSessionNotFound
	}
	return s.sessions[idx].Clone(), nil
}

// Export returns a snapshot of all three collections
func (s *Store) Export() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.Snapshot{
		Players:  append([]model.Player(nil), s.players...),
		Games:    copyGames(s.games),
		Sessions: copySessions(s.sessions),
	}
}

// ResetLibrary reinstalls the seed players and games. Session history is kept;
// win counts are recomputed against the new player set.
func (s *Store) ResetLibrary(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seed := model.Seed(s.newID)
	s.players = seed.Players
	s.games = seed.Games
	stats.RecalcWins(s.players, s.sessions)
	s.persistPlayers(ctx)
	s.persistGames(ctx)
}

// ResetAll clears the persisted namespace and reinstalls the seed data,
// dropping session history too.
func (s *Store) ResetAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Reset(ctx); err != nil {
		s.logger.Warn("could not reset storage", slog.String("error", err.Error()))
	}
	seed := model.Seed(s.newID)
	s.players = seed.Players
	s.games = seed.Games
	s.sessions = []model.Session{}
	s.persistPlayers(ctx)
	s.persistGames(ctx)
	s.persistSessions(ctx)
}

// Internal helpers. All assume s.mu is held.

func (s *Store) newID() string {
	return s.random.String(IDLength, IDAlphabet)
}

func (s *Store) playerIndex(id model.PlayerID) int {
	for i := range s.players {
		if s.players[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) gameIndex(id model.GameID) int {
	for i := range s.games {
		if s.games[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) sessionIndex(id model.SessionID) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) playerNameTaken(name string, exclude model.PlayerID) bool {
	for i := range s.players {
		if s.players[i].ID == exclude {
			continue
		}
		if strings.EqualFold(s.players[i].Name, name) {
			return true
		}
	}
	return false
}

// sessionsChanged is the single place the win cache is refreshed: every
// session mutation funnels through here before its results can be observed.
func (s *Store) sessionsChanged(ctx context.Context) {
	stats.RecalcWins(s.players, s.sessions)
	s.persistSessions(ctx)
	s.persistPlayers(ctx)
}

func (s *Store) persistPlayers(ctx context.Context) {
	if err := s.storage.SavePlayers(ctx, s.players); err != nil {
		s.logger.Warn("could not persist players", slog.String("error", err.Error()))
	}
}

func (s *Store) persistGames(ctx context.Context) {
	if err := s.storage.SaveGames(ctx, s.games); err != nil {
		s.logger.Warn("could not persist games", slog.String("error", err.Error()))
	}
}

func (s *Store) persistSessions(ctx context.Context) {
	if err := s.storage.SaveSessions(ctx, s.sessions); err != nil {
		s.logger.Warn("could not persist sessions", slog.String("error", err.Error()))
	}
}

func validDateTime(date, timeOfDay string) bool {
	s := model.Session{Date: date, Time: timeOfDay}
	return !s.StartsAt().IsZero()
}

func copyGames(games []model.Game) []model.Game {
	copied := make([]model.Game, len(games))
	for i, g := range games {
		copied[i] = g
		copied[i].Vibes = append([]model.Vibe(nil), g.Vibes...)
	}
	return copied
}

func copySessions(sessions []model.Session) []model.Session {
	copied := make([]model.Session, len(sessions))
	for i := range sessions {
		copied[i] = sessions[i].Clone()
	}
	return copied
}
