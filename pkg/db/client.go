// Package db owns the process-wide DynamoDB client. It is created once per
// process (once per Lambda cold start) and reused by every invocation.
package db

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	client  *dynamodb.Client //nolint:gochecknoglobals // one client per process
	initErr error            //nolint:gochecknoglobals // remembered with the client
	once    sync.Once        //nolint:gochecknoglobals // guards client
)

// Options selects where the client connects.
type Options struct {
	// Region overrides the region from the default credential chain.
	Region string
	// Endpoint points the client at a DynamoDB Local or LocalStack URL.
	Endpoint string
}

// Connect loads the default AWS configuration and builds the client on the
// first call. Later calls return the same client, or the same error, and
// ignore opts.
func Connect(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	once.Do(func() {
		client, initErr = newClient(ctx, opts)
	})
	return client, initErr
}

// Client returns the client built by Connect, or nil before a successful Connect.
func Client() *dynamodb.Client {
	return client
}

func newClient(ctx context.Context, opts Options) (*dynamodb.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}
