package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/rtc/blobstore"
	"github.com/hupe1980/rtc/blobstore/minio"
	"github.com/hupe1980/rtc/blobstore/s3"
)

// openStore resolves a store URL.
//
//	file://dir or a bare path   local directory
//	mem://                      in-process memory (useful for dry runs)
//	minio://host:port/bucket/prefix?insecure=1
//	s3://bucket/prefix?region=eu-west-1&endpoint=http://localhost:4566
//
// MinIO credentials come from MINIO_ACCESS_KEY/MINIO_SECRET_KEY or the AWS
// environment variables; S3 uses the default AWS configuration chain.
func openStore(ctx context.Context, raw string) (blobstore.Store, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("store url: %w", err)
	}

	switch u.Scheme {
	case "":
		return blobstore.NewLocalStore(raw), nil
	case "file":
		dir := u.Host + u.Path
		if dir == "" {
			return nil, fmt.Errorf("store url %q: missing directory", raw)
		}
		return blobstore.NewLocalStore(dir), nil
	case "mem":
		return blobstore.NewMemoryStore(), nil
	case "minio":
		bucket, prefix := splitBucket(u.Path)
		if u.Host == "" || bucket == "" {
			return nil, fmt.Errorf("store url %q: want minio://host/bucket[/prefix]", raw)
		}
		opts, err := minioOptions(u.Query())
		if err != nil {
			return nil, fmt.Errorf("store url %q: %w", raw, err)
		}
		return minio.New(u.Host, bucket, prefix, opts)
	case "s3":
		bucket, prefix := u.Host, strings.Trim(u.Path, "/")
		if bucket == "" {
			return nil, fmt.Errorf("store url %q: want s3://bucket[/prefix]", raw)
		}
		opts := []s3.Option{s3.WithPrefix(prefix)}
		if region := u.Query().Get("region"); region != "" {
			opts = append(opts, s3.WithRegion(region))
		}
		if endpoint := u.Query().Get("endpoint"); endpoint != "" {
			opts = append(opts, s3.WithEndpoint(endpoint))
		}
		return s3.New(ctx, bucket, opts...)
	default:
		return nil, fmt.Errorf("store url %q: unsupported scheme %q", raw, u.Scheme)
	}
}

// minioOptions builds client options from the URL query. TLS is on unless
// insecure parses as true.
func minioOptions(q url.Values) (*miniogo.Options, error) {
	insecure := false
	if v := q.Get("insecure"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("insecure: %w", err)
		}
		insecure = b
	}
	return &miniogo.Options{
		Creds: credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvMinio{},
			&credentials.EnvAWS{},
		}),
		Secure: !insecure,
	}, nil
}

func splitBucket(p string) (bucket, prefix string) {
	bucket, prefix, _ = strings.Cut(strings.Trim(p, "/"), "/")
	return bucket, prefix
}
