// Package storage persists users and analyses. Callers depend on the
// AnalysisStore and UserStore capabilities and branch on the sentinel errors
// with errors.Is.
package storage

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careercompass/backend/models"
)

var (
	// ErrUnavailable means the backing store cannot be reached or is not configured
	ErrUnavailable = errors.New("store unavailable")
	// ErrNotFound means the record does not exist or belongs to another user
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists means a unique key is taken
	ErrAlreadyExists = errors.New("already exists")
)

// TempIDPrefix marks ids of analyses that were never stored. Store-issued ids
// never carry it.
const TempIDPrefix = "temp-"

// AnalysisStore persists analyses. Every lookup is scoped to the owning user.
type AnalysisStore interface {
	CreateAnalysis(ctx context.Context, analysis *models.AnalysisResult) (string, error)
	GetAnalysis(ctx context.Context, id, userID string) (*models.AnalysisResult, error)
	ListAnalyses(ctx context.Context, userID string, limit int) ([]models.AnalysisResult, error)
	AppendChatTurns(ctx context.Context, id, userID string, turns ...models.ChatTurn) error
	DeleteAnalysis(ctx context.Context, id, userID string) error
}

// UserUpdate holds the user fields that may change after registration.
// Zero values are left untouched.
type UserUpdate struct {
	Name      string
	Provider  string
	GoogleID  string
	LastLogin time.Time
}

// UserStore persists user accounts keyed by normalized email
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) error
}

// Store is a backend serving both capabilities
type Store interface {
	AnalysisStore
	UserStore
	Name() string
	Close() error
}

// NewTempID returns the id given to an analysis that was not persisted
func NewTempID(now time.Time) string {
	return TempIDPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "-" + uuid.NewString()[:8]
}

// IsTempID reports whether id was issued for an unsaved analysis
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

// Unavailable is the store used when no backend is configured. Every call
// fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Name() string { return "none" }
func (Unavailable) Close() error { return nil }

func (Unavailable) CreateAnalysis(context.Context, *models.AnalysisResult) (string, error) {
	return "", ErrUnavailable
}

func (Unavailable) GetAnalysis(context.Context, string, string) (*models.AnalysisResult, error) {
	return nil, ErrUnavailable
}

func (Unavailable) ListAnalyses(context.Context, string, int) ([]models.AnalysisResult, error) {
	return nil, ErrUnavailable
}

func (Unavailable) AppendChatTurns(context.Context, string, string, ...models.ChatTurn) error {
	return ErrUnavailable
}

func (Unavailable) DeleteAnalysis(context.Context, string, string) error {
	return ErrUnavailable
}

func (Unavailable) CreateUser(context.Context, *models.User) error {
	return ErrUnavailable
}

func (Unavailable) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, ErrUnavailable
}

func (Unavailable) GetUserByID(context.Context, string) (*models.User, error) {
	return nil, ErrUnavailable
}

func (Unavailable) UpdateUser(context.Context, string, UserUpdate) error {
	return ErrUnavailable
}
