package stripe

import (
	"context"
	"testing"

	"github.com/themosthappypiano/thewoofingoven/pkg/config"
)

func TestNewClientSyntheticWhenNoKey(t *testing.T) {
	t.Parallel()

	client, err := NewClient(context.Background(), config.StripeConfig{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Fatal("expected nil client without credentials")
	}

	client, err = NewClient(context.Background(), config.StripeConfig{SecretKey: config.DevStripeKey}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Fatal("expected nil client for dev dummy key")
	}
}

func TestNewClientRejectsNonSecretKey(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(context.Background(), config.StripeConfig{SecretKey: "pk_test_publishable"}, nil); err == nil {
		t.Fatal("expected error for publishable key")
	}
}

func TestNewClientEnvironment(t *testing.T) {
	t.Parallel()

	client, err := NewClient(context.Background(), config.StripeConfig{
		SecretKey: "sk_test_abc123",
		BaseURL:   "https://thewoofingoven.ie/",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Environment() != "test" {
		t.Fatalf("expected test environment, got %q", client.Environment())
	}
	if client.BaseURL() != "https://thewoofingoven.ie" {
		t.Fatalf("expected trailing slash trimmed, got %q", client.BaseURL())
	}
}
