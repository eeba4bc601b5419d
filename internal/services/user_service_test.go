package services

import (
	"context"
	"testing"
)

func TestUserUIDContextRoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := UserUIDFromContext(ctx); ok {
		t.Fatal("empty context reported a UID")
	}

	ctx = WithUserUID(ctx, "uid-42")
	uid, ok := UserUIDFromContext(ctx)
	if !ok || uid != "uid-42" {
		t.Errorf("UserUIDFromContext = %q, %v; want uid-42, true", uid, ok)
	}

	// An empty UID counts as no session.
	if _, ok := UserUIDFromContext(WithUserUID(context.Background(), "")); ok {
		t.Error("empty UID reported as present")
	}
}
