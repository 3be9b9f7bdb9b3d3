package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/careercompass/backend/models"
)

// MemoryStore keeps users and analyses in process memory. Used for local
// development and tests; contents are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[string]models.AnalysisResult
	users    map[string]models.User
	emails   map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		analyses: make(map[string]models.AnalysisResult),
		users:    make(map[string]models.User),
		emails:   make(map[string]string),
	}
}

func (m *MemoryStore) Name() string { return "memory" }
func (m *MemoryStore) Close() error { return nil }

// CreateAnalysis stores a copy of the analysis and returns its new id
func (m *MemoryStore) CreateAnalysis(ctx context.Context, analysis *models.AnalysisResult) (string, error) {
	id := uuid.NewString()

	stored := cloneAnalysis(*analysis)
	stored.ID = id
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = stored.CreatedAt

	m.mu.Lock()
	m.analyses[id] = stored
	m.mu.Unlock()

	return id, nil
}

func (m *MemoryStore) GetAnalysis(ctx context.Context, id, userID string) (*models.AnalysisResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.analyses[id]
	if !ok || a.UserID != userID {
		return nil, ErrNotFound
	}
	out := cloneAnalysis(a)
	return &out, nil
}

// ListAnalyses returns the user's analyses newest first, as summaries
func (m *MemoryStore) ListAnalyses(ctx context.Context, userID string, limit int) ([]models.AnalysisResult, error) {
	m.mu.RLock()
	out := make([]models.AnalysisResult, 0)
	for _, a := range m.analyses {
		if a.UserID == userID {
			out = append(out, a.Summary())
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) AppendChatTurns(ctx context.Context, id, userID string, turns ...models.ChatTurn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.analyses[id]
	if !ok || a.UserID != userID {
		return ErrNotFound
	}
	a.ChatHistory = append(append([]models.ChatTurn{}, a.ChatHistory...), turns...)
	a.UpdatedAt = time.Now()
	m.analyses[id] = a
	return nil
}

func (m *MemoryStore) DeleteAnalysis(ctx context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.analyses[id]
	if !ok || a.UserID != userID {
		return ErrNotFound
	}
	delete(m.analyses, id)
	return nil
}

// CreateUser assigns an id and stores the user; the email must be unused
func (m *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	email := models.NormalizeEmail(user.Email)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.emails[email]; taken {
		return ErrAlreadyExists
	}

	now := time.Now()
	user.ID = uuid.NewString()
	user.Email = email
	user.CreatedAt = now
	user.UpdatedAt = now

	m.users[user.ID] = *user
	m.emails[email] = user.ID
	return nil
}

func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.emails[models.NormalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.users[id]
	return &u, nil
}

func (m *MemoryStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryStore) UpdateUser(ctx context.Context, id string, update UserUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	if update.Name != "" {
		u.Name = update.Name
	}
	if update.Provider != "" {
		u.Provider = update.Provider
	}
	if update.GoogleID != "" {
		u.GoogleID = update.GoogleID
	}
	if !update.LastLogin.IsZero() {
		u.LastLogin = update.LastLogin
	}
	u.UpdatedAt = time.Now()
	m.users[id] = u
	return nil
}

// cloneAnalysis copies the slices so callers cannot alias stored state
func cloneAnalysis(a models.AnalysisResult) models.AnalysisResult {
	a.Skills.Matched = append([]models.SkillMatch(nil), a.Skills.Matched...)
	a.Skills.Missing = append([]models.MissingSkill(nil), a.Skills.Missing...)
	a.Gaps = append([]models.Gap(nil), a.Gaps...)
	a.Recommendations = append([]models.Recommendation(nil), a.Recommendations...)
	a.ChatHistory = append([]models.ChatTurn(nil), a.ChatHistory...)
	a.Normalize()
	return a
}
