// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("trajectories/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
// Uploads go through the SDK's transfer manager, so large exports are sent
// as concurrent multipart uploads. Listing follows pagination automatically.
package s3
