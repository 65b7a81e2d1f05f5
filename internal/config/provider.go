package config

import (
	"context"
	"fmt"
	"os"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/joho/godotenv"
)

// Provider resolves a configuration key to its value. Get returns an error
// when the key has no value; callers decide whether that is fatal.
type Provider interface {
	Get(key string) (string, error)
}

// EnvProvider reads from process environment variables, loading a .env file
// first when one exists.
type EnvProvider struct{}

func NewEnvProvider() *EnvProvider {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	return &EnvProvider{}
}

func (p *EnvProvider) Get(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("missing required configuration: %s", key)
	}

	return value, nil
}

// SecretManagerProvider reads configuration values from Google Secret
// Manager, one secret per key, always at the latest version.
type SecretManagerProvider struct {
	client    *secretmanager.Client
	projectID string
}

func NewSecretManagerProvider(ctx context.Context, projectID string) (*SecretManagerProvider, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret manager client: %w", err)
	}

	return &SecretManagerProvider{
		client:    client,
		projectID: projectID,
	}, nil
}

func (p *SecretManagerProvider) Get(key string) (string, error) {
	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", p.projectID, key)

	resp, err := p.client.AccessSecretVersion(context.Background(), &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch secret %q: %w", key, err)
	}

	return string(resp.Payload.Data), nil
}

func (p *SecretManagerProvider) Close() error {
	return p.client.Close()
}
