package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careercompass/backend/models"
)

func newAnalysis(userID string, createdAt time.Time) *models.AnalysisResult {
	a := &models.AnalysisResult{
		UserID:         userID,
		ResumeText:     "resume",
		JobDescription: "job",
		MatchScore:     70,
		Status:         models.StatusCompleted,
		CreatedAt:      createdAt,
	}
	a.Normalize()
	return a
}

func TestMemoryStore_CreateAndGetAnalysis(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.CreateAnalysis(ctx, newAnalysis("u1", time.Now()))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.False(t, IsTempID(id))

	got, err := s.GetAnalysis(ctx, id, "u1")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "resume", got.ResumeText)
	assert.NotNil(t, got.Gaps)
}

func TestMemoryStore_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	id, err := s.CreateAnalysis(ctx, newAnalysis("owner", time.Now()))
	require.NoError(t, err)

	_, err = s.GetAnalysis(ctx, id, "intruder")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteAnalysis(ctx, id, "intruder"), ErrNotFound)
	assert.ErrorIs(t, s.AppendChatTurns(ctx, id, "intruder", models.ChatTurn{Role: "user"}), ErrNotFound)

	_, err = s.GetAnalysis(ctx, "missing", "owner")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ListAnalysesNewestFirstAsSummaries(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		_, err := s.CreateAnalysis(ctx, newAnalysis("u1", base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}
	_, err := s.CreateAnalysis(ctx, newAnalysis("u2", base))
	require.NoError(t, err)

	list, err := s.ListAnalyses(ctx, "u1", 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
	assert.True(t, list[1].CreatedAt.After(list[2].CreatedAt))
	for _, a := range list {
		assert.Empty(t, a.ResumeText)
		assert.Empty(t, a.JobDescription)
		assert.Equal(t, "u1", a.UserID)
	}

	empty, err := s.ListAnalyses(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMemoryStore_AppendChatTurnsPreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	id, err := s.CreateAnalysis(ctx, newAnalysis("u1", time.Now()))
	require.NoError(t, err)

	require.NoError(t, s.AppendChatTurns(ctx, id, "u1",
		models.ChatTurn{Role: models.RoleUser, Content: "q1"},
		models.ChatTurn{Role: models.RoleAssistant, Content: "a1"},
	))
	require.NoError(t, s.AppendChatTurns(ctx, id, "u1",
		models.ChatTurn{Role: models.RoleUser, Content: "q2"},
	))

	got, err := s.GetAnalysis(ctx, id, "u1")
	require.NoError(t, err)
	require.Len(t, got.ChatHistory, 3)
	assert.Equal(t, "q1", got.ChatHistory[0].Content)
	assert.Equal(t, "a1", got.ChatHistory[1].Content)
	assert.Equal(t, "q2", got.ChatHistory[2].Content)
}

func TestMemoryStore_ReturnedAnalysisIsACopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a := newAnalysis("u1", time.Now())
	a.Gaps = []models.Gap{{Category: "Cloud"}}
	id, err := s.CreateAnalysis(ctx, a)
	require.NoError(t, err)

	got, err := s.GetAnalysis(ctx, id, "u1")
	require.NoError(t, err)
	got.Gaps[0].Category = "changed"

	again, err := s.GetAnalysis(ctx, id, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Cloud", again.Gaps[0].Category)
}

func TestMemoryStore_DeleteAnalysis(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	id, err := s.CreateAnalysis(ctx, newAnalysis("u1", time.Now()))
	require.NoError(t, err)

	require.NoError(t, s.DeleteAnalysis(ctx, id, "u1"))
	_, err = s.GetAnalysis(ctx, id, "u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Users(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	user := &models.User{Email: " Jane@Example.com ", Name: "Jane", Provider: "email"}
	require.NoError(t, s.CreateUser(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)

	err := s.CreateUser(ctx, &models.User{Email: "jane@example.com"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	byEmail, err := s.GetUserByEmail(ctx, "JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	login := time.Now()
	require.NoError(t, s.UpdateUser(ctx, user.ID, UserUpdate{GoogleID: "g-1", LastLogin: login}))

	byID, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "g-1", byID.GoogleID)
	assert.Equal(t, "Jane", byID.Name)
	assert.True(t, byID.LastLogin.Equal(login))

	assert.ErrorIs(t, s.UpdateUser(ctx, "missing", UserUpdate{Name: "x"}), ErrNotFound)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.CreateAnalysis(ctx, newAnalysis("u1", time.Now()))
			assert.NoError(t, err)
			assert.NoError(t, s.AppendChatTurns(ctx, id, "u1", models.ChatTurn{Role: "user", Content: "hi"}))
			_, err = s.ListAnalyses(ctx, "u1", 5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := s.ListAnalyses(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

func TestUnavailable_AlwaysFails(t *testing.T) {
	ctx := context.Background()
	var s Store = Unavailable{}

	_, err := s.CreateAnalysis(ctx, newAnalysis("u1", time.Now()))
	assert.True(t, errors.Is(err, ErrUnavailable))
	_, err = s.GetAnalysis(ctx, "id", "u1")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = s.ListAnalyses(ctx, "u1", 10)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, s.AppendChatTurns(ctx, "id", "u1"), ErrUnavailable)
	assert.ErrorIs(t, s.DeleteAnalysis(ctx, "id", "u1"), ErrUnavailable)
	assert.ErrorIs(t, s.CreateUser(ctx, &models.User{}), ErrUnavailable)
	_, err = s.GetUserByEmail(ctx, "a@b.c")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "none", s.Name())
}

func TestTempID(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	id := NewTempID(now)
	assert.True(t, strings.HasPrefix(id, "temp-1700000000123-"))
	assert.Len(t, id, len("temp-1700000000123-")+8)
	assert.True(t, IsTempID(id))
	assert.False(t, IsTempID("abc"))

	assert.NotEqual(t, id, NewTempID(now), "ids minted in the same millisecond must differ")
}

func TestResumeObjectName(t *testing.T) {
	name := ResumeObjectName("jane.doe@example.com", "My CV.PDF", time.Unix(1700000000, 0))
	assert.Equal(t, "resumes/jane_doe_at_example_com/1700000000.pdf", name)
	assert.True(t, strings.HasPrefix(name, "resumes/"))
	assert.Equal(t, "application/pdf", ContentType(".PDF"))
	assert.Equal(t, "application/octet-stream", ContentType(".exe"))
}

func TestSaveAnalysis(t *testing.T) {
	ctx := context.Background()

	a := newAnalysis("u1", time.Now())
	assert.True(t, SaveAnalysis(ctx, NewMemoryStore(), a, true))
	assert.False(t, IsTempID(a.ID))

	a = newAnalysis("u1", time.Now())
	assert.False(t, SaveAnalysis(ctx, NewMemoryStore(), a, false))
	assert.True(t, IsTempID(a.ID))

	a = newAnalysis("u1", time.Now())
	assert.False(t, SaveAnalysis(ctx, Unavailable{}, a, true))
	assert.True(t, IsTempID(a.ID))
}

func TestChatSourceAndRecordExchange(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a := newAnalysis("u1", time.Now())
	a.MatchScore = 81
	require.True(t, SaveAnalysis(ctx, s, a, true))

	RecordExchange(ctx, s, a.ID, "u1", "Am I ready?", "Yes", time.Now())

	chatCtx, history, found := ChatSource(ctx, s, a.ID, "u1")
	require.True(t, found)
	assert.Equal(t, 81, chatCtx.MatchScore)
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, "Yes", history[1].Content)

	chatCtx, _, found = ChatSource(ctx, s, a.ID, "someone-else")
	assert.False(t, found)
	assert.Equal(t, 0, chatCtx.MatchScore)
	assert.NotNil(t, chatCtx.Gaps)

	_, _, found = ChatSource(ctx, Unavailable{}, "abc", "u1")
	assert.False(t, found)
}
