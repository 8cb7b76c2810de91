package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const loadConfigTimeout = 3 * time.Second

// S3API is the subset of the S3 client the mirror uses.
type S3API interface {
	s3.ListObjectsV2APIClient
	manager.DownloadAPIClient
}

// NewS3Client loads the shared AWS configuration (~/.aws/config) for profile
// and region. Empty values fall back to the SDK defaults.
func NewS3Client(ctx context.Context, profile, region string) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	ctxCfg, cancel := context.WithTimeout(ctx, loadConfigTimeout)
	defer cancel()
	cfg, err := config.LoadDefaultConfig(ctxCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load aws config for profile %q: %w", profile, err)
	}

	return s3.NewFromConfig(cfg), nil
}
