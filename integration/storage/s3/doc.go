// Package s3 provides object storage for uploaded files over Amazon S3
// and S3-compatible services (MinIO, DigitalOcean Spaces, Wasabi).
//
// The client is configured from the environment:
//
//	cfg := config.MustLoad[s3.Config]()
//	store, err := s3.New(ctx, cfg)
//
// Save streams a multipart upload into the bucket and Delete removes an
// object; URL produces the public address for a stored key, honoring a
// custom CDN base, a custom endpoint, or the standard AWS URL layout.
package s3
