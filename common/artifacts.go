package common

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"rankreel/types"
)

// ArtifactStore persists composed VideoSpec documents to S3 and hands
// back the s3:// reference written into job status. The renderer and
// the datastore write-back collaborator both resolve specs through
// these references; this service never mutates a stored document.
type ArtifactStore struct {
	client *s3.Client
	bucket string
}

// ArtifactConfig selects the bucket and optional region/profile
// overrides; empty values fall back to the standard AWS config chain.
type ArtifactConfig struct {
	Bucket  string
	Region  string
	Profile string
}

// NewArtifactStore creates a store using the default AWS configuration
// chain.
func NewArtifactStore(ctx context.Context, cfg ArtifactConfig) (*ArtifactStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("artifact store: bucket is required")
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("artifact store: load aws config: %w", err)
	}

	return &ArtifactStore{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
	}, nil
}

func specKey(jobID string) string {
	return fmt.Sprintf("specs/%s.json", jobID)
}

// Put uploads the composed spec as pretty-printed JSON and returns its
// s3:// reference.
func (a *ArtifactStore) Put(ctx context.Context, jobID string, spec *types.VideoSpec) (string, error) {
	payload, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal spec: %w", err)
	}

	key := specKey(jobID)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload spec: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", a.bucket, key), nil
}

// Get fetches a previously stored spec by job ID.
func (a *ArtifactStore) Get(ctx context.Context, jobID string) (*types.VideoSpec, error) {
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(specKey(jobID)),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch spec: %w", err)
	}
	defer out.Body.Close()

	var spec types.VideoSpec
	if err := json.NewDecoder(out.Body).Decode(&spec); err != nil {
		return nil, fmt.Errorf("decode spec: %w", err)
	}
	return &spec, nil
}

// Exists reports whether a spec was stored for the job ID, mapping 404
// and NotFound responses to false.
func (a *ArtifactStore) Exists(ctx context.Context, jobID string) (bool, error) {
	_, err := a.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(specKey(jobID)),
	})
	if err == nil {
		return true, nil
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return false, nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
		return false, nil
	}

	return false, err
}
