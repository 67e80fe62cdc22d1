// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible servers (Ceph, SeaweedFS, Garage)
// without pulling in the AWS SDK.
//
// # Basic Usage
//
//	store, err := minio.New("localhost:9000", "trajectories", "runs/", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = store.Put(ctx, "default.rtct.zst", data)
package minio
