package blobstore

import (
	"context"
	"errors"
	"os"
	"strings"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrInvalidName is returned for names that are empty or escape the store root.
var ErrInvalidName = errors.New("blobstore: invalid blob name")

// Store is an abstraction for storing immutable blobs.
type Store interface {
	// Put writes a blob atomically, replacing any existing blob of that name.
	Put(ctx context.Context, name string, data []byte) error
	// Get returns the contents of a blob.
	Get(ctx context.Context, name string) ([]byte, error)
	// List returns the sorted names of all blobs starting with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
}

// RootedPrefix returns the object key prefix to list for prefix inside a
// store rooted at root. A non-empty root always ends in "/", so listing
// "runs" never matches a sibling such as "runs2/".
func RootedPrefix(root, prefix string) string {
	if root = strings.TrimSuffix(root, "/"); root == "" {
		return prefix
	}
	return root + "/" + prefix
}

// Unroot strips root from an object key and returns the blob name.
// It returns "" for keys outside root.
func Unroot(root, key string) string {
	if root = strings.TrimSuffix(root, "/"); root == "" {
		return key
	}
	name, ok := strings.CutPrefix(key, root+"/")
	if !ok {
		return ""
	}
	return name
}
