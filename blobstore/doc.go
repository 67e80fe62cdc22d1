// Package blobstore provides storage for exported trajectories.
//
// Store is the interface for reading and writing whole blobs by name.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-memory, for tests
//   - LocalStore: a directory on the local filesystem
//   - minio.Store: MinIO and other S3-compatible servers
//   - s3.Store: Amazon S3 with managed uploads
//
// Names use forward slashes regardless of platform.
package blobstore
