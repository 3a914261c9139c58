package contextutil_test

import (
	"context"
	"testing"

	"go-crm/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestActorRoundTrip(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithActor(ctx, contextutil.Actor{UserID: "user-1", Role: "Admin"})

	a, ok := contextutil.ActorFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
	assert.Equal(t, "user-1", a.UserID)
	assert.Equal(t, "Admin", contextutil.GetRole(ctx))
}

func TestActorFrom_Anonymous(t *testing.T) {
	_, ok := contextutil.ActorFrom(context.Background())
	assert.False(t, ok)
	assert.Empty(t, contextutil.GetUserID(context.Background()))

	_, ok = contextutil.ActorFrom(contextutil.WithActor(context.Background(), contextutil.Actor{Role: "Client"}))
	assert.False(t, ok)
}

func TestGetLogger_Fallbacks(t *testing.T) {
	fallback := zap.NewExample()
	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewExample().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
}
