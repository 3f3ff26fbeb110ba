package store

import (
	"context"
	"testing"
)

func TestNewPool_EmptyURL(t *testing.T) {
	if _, err := newPool(context.Background(), ""); err == nil {
		t.Error("expected error for empty database url")
	}
}

func TestNewPool_MalformedURL(t *testing.T) {
	if _, err := newPool(context.Background(), "://not-a-dsn"); err == nil {
		t.Error("expected error for malformed database url")
	}
}

func TestInitDB_EmptyURLLeavesPoolNil(t *testing.T) {
	if err := InitDB(context.Background(), ""); err == nil {
		t.Error("expected error for unconfigured database")
	}
	if GetPool() != nil {
		t.Error("pool must stay nil when init fails")
	}
}
