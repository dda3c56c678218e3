// Package storage contains S3-compatible object storage used for profile
// avatars and archived scrape snapshots.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrObjectNotFound is returned by Get and Stat when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// Key prefixes.
const (
	AvatarPrefix   = "avatars"
	SnapshotPrefix = "snapshots"
)

// AvatarCacheControl is safe because avatar keys are never reused.
const AvatarCacheControl = "public, max-age=31536000, immutable"

// PutObjectOptions describe an upload. Size is the exact length, or -1 when
// unknown. An empty ContentType is stored as application/octet-stream.
type PutObjectOptions struct {
	Size         int64
	ContentType  string
	CacheControl string
	Metadata     map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is a reusable, S3-compatible object storage client interface.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Stat returns object info without content, or ErrObjectNotFound.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// AvatarKey builds avatars/<user>/<uuid><ext>. ext is lower-cased.
func AvatarKey(userID, ext string) string {
	return path.Join(AvatarPrefix, userID, uuid.NewString()+strings.ToLower(ext))
}

// SnapshotKey builds snapshots/<listing>/<unix-nanos>.html.
func SnapshotKey(listingID string, at time.Time) string {
	if listingID == "" {
		listingID = "unknown"
	}
	return path.Join(SnapshotPrefix, listingID, at.UTC().Format("20060102T150405.000000000Z")+".html")
}
