package minio

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rtc/blobstore"
)

func TestKey(t *testing.T) {
	s := NewStore(nil, "bucket", "runs/")
	assert.Equal(t, "runs/a.rtct", s.key("a.rtct"))
	assert.Equal(t, "runs/sweep/1.rtct", s.key("sweep/1.rtct"))

	bare := NewStore(nil, "bucket", "")
	assert.Equal(t, "a.rtct", bare.key("a.rtct"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NotFound"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestNew(t *testing.T) {
	s, err := New("localhost:9000", "bucket", "runs/", &minio.Options{
		Creds: credentials.NewStaticV4("minioadmin", "minioadmin", ""),
	})
	require.NoError(t, err)
	assert.Equal(t, "bucket", s.bucket)

	_, err = New("http://bad endpoint", "bucket", "", &minio.Options{})
	assert.Error(t, err)
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	bucket := "test-rtc"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Check if MinIO is reachable
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	prefix := fmt.Sprintf("test-%d/", time.Now().UnixNano())
	store := NewStore(client, bucket, prefix)

	data := []byte("trajectory bytes")
	require.NoError(t, store.Put(ctx, "default.rtct", data))

	got, err := store.Get(ctx, "default.rtct")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"default.rtct"}, names)

	require.NoError(t, store.Delete(ctx, "default.rtct"))
	_, err = store.Get(ctx, "default.rtct")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "missing"))
}
