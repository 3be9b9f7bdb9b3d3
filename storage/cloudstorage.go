package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/careercompass/backend/config"
)

// Archiver keeps a copy of uploaded resume files
type Archiver interface {
	UploadResume(ctx context.Context, userID, filename string, content []byte) (string, error)
}

// CloudStorageClient wraps Google Cloud Storage operations
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.ResumeBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadResume writes the file under resumes/<user>/ and returns its URL
func (c *CloudStorageClient) UploadResume(ctx context.Context, userID, filename string, content []byte) (string, error) {
	objectName := ResumeObjectName(userID, filename, time.Now())

	wc := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = ContentType(filepath.Ext(filename))

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

var unsafePathChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// ResumeObjectName builds the object path for an uploaded resume
func ResumeObjectName(userID, filename string, now time.Time) string {
	owner := strings.ReplaceAll(userID, "@", "_at_")
	owner = unsafePathChars.ReplaceAllString(owner, "_")
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("resumes/%s/%d%s", owner, now.Unix(), ext)
}

// ContentType maps a resume file extension to its MIME type
func ContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
