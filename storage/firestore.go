package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/careercompass/backend/config"
	"github.com/careercompass/backend/models"
)

const (
	usersCollection    = "users"
	analysesCollection = "analyses"
)

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

func (f *FirestoreClient) Name() string { return config.StoreFirestore }

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// mapError converts Firestore status codes into the package sentinels
func mapError(op string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.Unavailable, codes.DeadlineExceeded, codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// CreateAnalysis stores the analysis under a Firestore-assigned id
func (f *FirestoreClient) CreateAnalysis(ctx context.Context, analysis *models.AnalysisResult) (string, error) {
	docRef := f.client.Collection(analysesCollection).NewDoc()

	stored := *analysis
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = stored.CreatedAt

	if _, err := docRef.Create(ctx, stored); err != nil {
		return "", mapError("failed to create analysis", err)
	}

	log.Printf("[Firestore] Analysis %s saved for user %s", docRef.ID, stored.UserID)
	return docRef.ID, nil
}

// GetAnalysis loads an analysis owned by userID
func (f *FirestoreClient) GetAnalysis(ctx context.Context, id, userID string) (*models.AnalysisResult, error) {
	doc, err := f.client.Collection(analysesCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError("failed to get analysis", err)
	}

	var analysis models.AnalysisResult
	if err := doc.DataTo(&analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis data: %w", err)
	}
	if analysis.UserID != userID {
		return nil, ErrNotFound
	}

	analysis.ID = doc.Ref.ID
	analysis.Normalize()
	return &analysis, nil
}

// ListAnalyses returns the user's most recent analyses as summaries
func (f *FirestoreClient) ListAnalyses(ctx context.Context, userID string, limit int) ([]models.AnalysisResult, error) {
	query := f.client.Collection(analysesCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	analyses := make([]models.AnalysisResult, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, mapError("failed to query analyses", err)
		}

		var analysis models.AnalysisResult
		if err := doc.DataTo(&analysis); err != nil {
			log.Printf("[Firestore] Skipping unreadable analysis %s: %v", doc.Ref.ID, err)
			continue
		}
		analysis.ID = doc.Ref.ID
		analysis.Normalize()
		analyses = append(analyses, analysis.Summary())
	}

	return analyses, nil
}

// AppendChatTurns adds turns to the analysis chat history in one transaction
func (f *FirestoreClient) AppendChatTurns(ctx context.Context, id, userID string, turns ...models.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}
	docRef := f.client.Collection(analysesCollection).Doc(id)

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}
		owner, err := doc.DataAt("userId")
		if err != nil || owner != userID {
			return ErrNotFound
		}

		values := make([]interface{}, len(turns))
		for i, t := range turns {
			values[i] = t
		}
		return tx.Update(docRef, []firestore.Update{
			{Path: "chatHistory", Value: firestore.ArrayUnion(values...)},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return mapError("failed to append chat turns", err)
	}
	return nil
}

// DeleteAnalysis removes an analysis owned by userID
func (f *FirestoreClient) DeleteAnalysis(ctx context.Context, id, userID string) error {
	if _, err := f.GetAnalysis(ctx, id, userID); err != nil {
		return err
	}

	if _, err := f.client.Collection(analysesCollection).Doc(id).Delete(ctx); err != nil {
		return mapError("failed to delete analysis", err)
	}
	return nil
}

// CreateUser creates a new user keyed by email
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	user.Email = models.NormalizeEmail(user.Email)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	// Email is the document ID; Create fails if it is taken.
	docRef := f.client.Collection(usersCollection).Doc(user.Email)
	if _, err := docRef.Create(ctx, user); err != nil {
		return mapError("failed to create user", err)
	}

	user.ID = docRef.ID
	return nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.GetUserByID(ctx, models.NormalizeEmail(email))
}

// GetUserByID retrieves a user by document ID
func (f *FirestoreClient) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := f.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError("failed to get user", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser merges the non-zero fields of update into the user document
func (f *FirestoreClient) UpdateUser(ctx context.Context, id string, update UserUpdate) error {
	updates := map[string]interface{}{
		"updatedAt": time.Now(),
	}
	if update.Name != "" {
		updates["name"] = update.Name
	}
	if update.Provider != "" {
		updates["provider"] = update.Provider
	}
	if update.GoogleID != "" {
		updates["googleId"] = update.GoogleID
	}
	if !update.LastLogin.IsZero() {
		updates["lastLogin"] = update.LastLogin
	}

	docRef := f.client.Collection(usersCollection).Doc(id)
	if _, err := docRef.Set(ctx, updates, firestore.MergeAll); err != nil {
		return mapError("failed to update user", err)
	}
	return nil
}
