package constants

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")

	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("RequestIDFromContext() = %q, want %q", got, "req-1")
	}
}

func TestContextWithEmptyRequestID(t *testing.T) {
	base := context.Background()

	if ctx := ContextWithRequestID(base, ""); ctx != base {
		t.Fatal("empty id should not derive a new context")
	}

	if got := RequestIDFromContext(base); got != "" {
		t.Fatalf("RequestIDFromContext() = %q, want empty", got)
	}
}

func TestAllKeysAreQualified(t *testing.T) {
	for _, key := range AllKeys() {
		if len(key) <= len(ConfigSection)+1 || key[:len(ConfigSection)+1] != ConfigSection+"." {
			t.Fatalf("key %q is not under the %q section", key, ConfigSection)
		}
	}
}
