package rekognition

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
)

// Client wraps the AWS Rekognition client
type Client struct {
	rekognition *rekognition.Client
	config      Config
}

// NewClient creates a new Rekognition client using the AWS default
// credential chain
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{
		rekognition: rekognition.NewFromConfig(awsCfg),
		config:      cfg,
	}, nil
}
