package database

import (
	"context"
	"testing"
)

func TestNewDynamoDBConfig_LocalEndpoint(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := NewDynamoDBConfig(context.Background(), Options{Endpoint: "http://localhost:8000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "us-east-1" {
		t.Fatalf("expected default region, got %q", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("retrieve credentials: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "local" {
		t.Fatalf("expected local credentials, got %q", creds.AccessKeyID)
	}
}

func TestConnectDynamoDB(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), Options{Region: "sa-east-1", Endpoint: "http://localhost:8000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatalf("expected client")
	}
	if got := client.Options().Region; got != "sa-east-1" {
		t.Fatalf("unexpected region %q", got)
	}
}
