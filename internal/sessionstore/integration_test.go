package sessionstore

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestRedisStoreIntegration(t *testing.T) {
	url := os.Getenv("FADEAPP_TEST_REDIS_URL")
	if url == "" {
		t.Skip("FADEAPP_TEST_REDIS_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s, err := OpenRedis(ctx, url, "fadeapp:test:")
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	defer s.Close()

	exerciseStore(t, s)
}

func TestGormStoreIntegration(t *testing.T) {
	dsn := os.Getenv("FADEAPP_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("FADEAPP_TEST_DATABASE_URL not set")
	}

	s, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}

	exerciseStore(t, s)

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, _, err := s.Get(context.Background(), KeyToken); err == nil {
		t.Fatalf("Get after Close succeeded")
	}
}
