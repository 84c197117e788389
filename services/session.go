package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"vibeflow/models"
	"vibeflow/store"
)

const historyLimit = 100

// Session owns the mood and recommendation state for one signed-in
// user: current mood, newest-first history, the deduplicated
// recommendation list, and per-recommendation rating state. The
// persistent store stays the source of truth; this state is a cache
// that self-heals on the next load. A mutex stands in for the
// single-threaded dispatch loop the design assumes, since HTTP
// handlers run concurrently.
type Session struct {
	mu sync.Mutex

	userID  string
	moods   store.MoodStore
	ratings store.RatingStore
	recs    *RecommendationService

	currentMood     *models.MoodEntry
	moodHistory     []models.MoodEntry
	recommendations []models.Recommendation
	lastSource      FetchSource
	ratingState     map[string]models.Rating
	loading         bool
}

// SessionView is the serializable snapshot handed to the HTTP layer.
type SessionView struct {
	CurrentMood     *models.MoodEntry           `json:"currentMood"`
	MoodHistory     []models.MoodEntry          `json:"moodHistory"`
	Recommendations []models.RecommendationView `json:"recommendations"`
	Source          FetchSource                 `json:"source"`
	Loading         bool                        `json:"loading"`
}

// NewSession builds the session and loads persisted history and
// ratings. Load failures degrade to empty state rather than failing
// the sign-in.
func NewSession(ctx context.Context, userID string, moods store.MoodStore, ratings store.RatingStore, recs *RecommendationService) *Session {
	s := &Session{
		userID:      userID,
		moods:       moods,
		ratings:     ratings,
		recs:        recs,
		ratingState: make(map[string]models.Rating),
	}

	history, err := moods.MoodHistory(ctx, userID, historyLimit)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("mood history load failed, starting empty")
		history = nil
	}
	s.moodHistory = history
	if len(history) > 0 {
		head := history[0]
		s.currentMood = &head
	}

	userRatings, err := ratings.RatingsByUser(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("ratings load failed, starting empty")
	}
	for _, r := range userRatings {
		s.ratingState[r.RecommendationID] = r
	}
	return s
}

func (s *Session) UserID() string { return s.userID }

// LogMood records a new entry: optimistically sets it as the current
// mood and prepends it to history under a client-generated correlation
// id, persists it, merges the store-assigned record back in place, and
// refreshes recommendations. Persist failure keeps the optimistic
// entry; the store wins on the next session load.
func (s *Session) LogMood(ctx context.Context, mood models.MoodKind, energy models.EnergyKind, note string) (*models.MoodEntry, error) {
	if !mood.Valid() {
		return nil, fmt.Errorf("unknown mood %q", mood)
	}
	if !energy.Valid() {
		return nil, fmt.Errorf("unknown energy level %q", energy)
	}

	entry := models.MoodEntry{
		ClientID:  uuid.NewString(),
		UserID:    s.userID,
		Mood:      mood,
		Energy:    energy,
		Note:      note,
		Timestamp: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	s.loading = true
	s.currentMood = &entry
	s.moodHistory = append([]models.MoodEntry{entry}, s.moodHistory...)
	s.mu.Unlock()

	stored, err := s.moods.InsertMoodEntry(ctx, &entry)
	if err != nil {
		log.Warn().Err(err).Str("user_id", s.userID).Msg("mood entry persist failed, keeping optimistic entry")
	} else {
		s.mergeStoredEntry(stored)
	}

	s.RefreshRecommendations(ctx)

	s.mu.Lock()
	s.loading = false
	current := s.currentMood
	s.mu.Unlock()
	return current, nil
}

// mergeStoredEntry replaces the optimistic placeholder with the
// store-assigned record, matched on the correlation id.
func (s *Session) mergeStoredEntry(stored *models.MoodEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.moodHistory {
		if s.moodHistory[i].ClientID == stored.ClientID {
			s.moodHistory[i] = *stored
			if s.currentMood != nil && s.currentMood.ClientID == stored.ClientID {
				s.currentMood = stored
			}
			return
		}
	}
}

// RefreshRecommendations re-runs the fetch cascade for the mood to
// use: the current mood if set, else the head of history. With
// neither, the list is cleared and the cascade is not called.
func (s *Session) RefreshRecommendations(ctx context.Context) {
	s.mu.Lock()
	mood := s.currentMood
	if mood == nil && len(s.moodHistory) > 0 {
		head := s.moodHistory[0]
		mood = &head
	}
	s.mu.Unlock()

	if mood == nil {
		s.mu.Lock()
		s.recommendations = nil
		s.lastSource = SourceNone
		s.mu.Unlock()
		return
	}

	recs, source := s.recs.Fetch(ctx, mood, s.userID)

	s.mu.Lock()
	s.recommendations = recs
	s.lastSource = source
	s.mu.Unlock()
}

// SetLikeState toggles the liked flag for a recommendation: local
// state first, then an upsert of the combined liked+completed snapshot
// so neither flag clobbers the other. Upsert failure is logged and the
// optimistic state stands.
func (s *Session) SetLikeState(ctx context.Context, recommendationID string, liked bool) {
	s.upsertRating(ctx, recommendationID, func(r *models.Rating) { r.Liked = liked })
}

// SetCompletionState toggles the completed flag, same contract as
// SetLikeState.
func (s *Session) SetCompletionState(ctx context.Context, recommendationID string, completed bool) {
	s.upsertRating(ctx, recommendationID, func(r *models.Rating) { r.Completed = completed })
}

func (s *Session) upsertRating(ctx context.Context, recommendationID string, apply func(*models.Rating)) {
	s.mu.Lock()
	rating := s.ratingState[recommendationID]
	rating.UserID = s.userID
	rating.RecommendationID = recommendationID
	apply(&rating)
	s.ratingState[recommendationID] = rating
	s.mu.Unlock()

	if err := s.ratings.UpsertRating(ctx, rating); err != nil {
		log.Warn().Err(err).
			Str("user_id", s.userID).
			Str("recommendation_id", recommendationID).
			Msg("rating upsert failed, keeping optimistic state")
	}
}

// Snapshot returns the current state with each recommendation
// decorated by the user's rating flags.
func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]models.RecommendationView, 0, len(s.recommendations))
	for _, rec := range s.recommendations {
		r := s.ratingState[rec.ID]
		views = append(views, models.RecommendationView{
			Recommendation: rec,
			Liked:          r.Liked,
			Completed:      r.Completed,
		})
	}

	history := make([]models.MoodEntry, len(s.moodHistory))
	copy(history, s.moodHistory)

	var current *models.MoodEntry
	if s.currentMood != nil {
		c := *s.currentMood
		current = &c
	}

	return SessionView{
		CurrentMood:     current,
		MoodHistory:     history,
		Recommendations: views,
		Source:          s.lastSource,
		Loading:         s.loading,
	}
}

// History returns a copy of the mood history, newest-first.
func (s *Session) History() []models.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MoodEntry, len(s.moodHistory))
	copy(out, s.moodHistory)
	return out
}

// CurrentMood returns a copy of the current mood entry, or nil.
func (s *Session) CurrentMood() *models.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentMood == nil {
		return nil
	}
	c := *s.currentMood
	return &c
}

// SessionManager holds one Session per signed-in user. Sessions are
// created at sign-in (or lazily on the first authenticated request
// after a server restart) and dropped at sign-out.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	moods   store.MoodStore
	ratings store.RatingStore
	recs    *RecommendationService
}

func NewSessionManager(moods store.MoodStore, ratings store.RatingStore, recs *RecommendationService) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		moods:    moods,
		ratings:  ratings,
		recs:     recs,
	}
}

// Attach returns the user's session, constructing one if absent.
func (m *SessionManager) Attach(ctx context.Context, userID string) *Session {
	m.mu.Lock()
	if s, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return s
	}
	m.mu.Unlock()

	// Built outside the lock: construction hits the store.
	s := NewSession(ctx, userID, m.moods, m.ratings, m.recs)

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[userID]; ok {
		return existing
	}
	m.sessions[userID] = s
	return s
}

// Detach tears down the user's session at sign-out.
func (m *SessionManager) Detach(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
