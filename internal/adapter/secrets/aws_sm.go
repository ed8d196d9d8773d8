package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// getSecretValueAPI is the Secrets Manager call this package uses.
type getSecretValueAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSSecretsManager reads raw secret strings from AWS Secrets Manager.
type AWSSecretsManager struct {
	client getSecretValueAPI
}

// NewAWSSecretsManager loads the default AWS configuration for region.
func NewAWSSecretsManager(ctx context.Context, region string) (*AWSSecretsManager, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &AWSSecretsManager{client: secretsmanager.NewFromConfig(cfg)}, nil
}

// SecretString returns the string value of the secret named id.
func (p *AWSSecretsManager) SecretString(ctx context.Context, id string) (string, error) {
	out, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		return "", fmt.Errorf("fetch secret %s: %w", id, err)
	}
	if out.SecretString == nil {
		return "", errors.New("secret " + id + " has no string value")
	}
	return *out.SecretString, nil
}
