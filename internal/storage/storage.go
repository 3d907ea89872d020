package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ID-proof constraints, checked before any byte leaves the client.
const (
	IDProofMIME    = "application/pdf"
	MaxIDProofSize = 2 << 20 // 2 MiB
)

// DefaultBucket holds registration documents.
const DefaultBucket = "registrations"

// ErrBucketNotFound separates infra misconfiguration from transient upload
// failures; the handler turns it into an actionable 404.
var ErrBucketNotFound = errors.New("bucket not found")

// ValidateIDProof is the synchronous pre-check for a staged identity proof.
func ValidateIDProof(contentType string, size int64) error {
	if contentType != IDProofMIME {
		return errors.New("Only PDF files are allowed")
	}
	if size > MaxIDProofSize {
		return errors.New("File size must be ≤ 2MB")
	}
	return nil
}

// IDProofPath builds a collision-free object path for a leader's proof.
func IDProofPath(filename string) string {
	return fmt.Sprintf("id-proofs/leaders/%s_%s", uuid.NewString(), filepath.Base(filename))
}

// Uploader stores one object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, bucket, path string, r io.Reader) (string, error)
}

// LocalStore keeps buckets as directories under Root and serves them at
// BaseURL, the same way event images are written to the public uploads dir.
type LocalStore struct {
	Root    string
	BaseURL string
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Upload(_ context.Context, bucket, path string, r io.Reader) (string, error) {
	if strings.Contains(bucket, "..") || strings.Contains(path, "..") {
		return "", errors.New("invalid object path")
	}

	bucketDir := filepath.Join(s.Root, bucket)
	if info, err := os.Stat(bucketDir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	dest := filepath.Join(bucketDir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}

	return s.BaseURL + "/" + bucket + "/" + strings.TrimLeft(path, "/"), nil
}
