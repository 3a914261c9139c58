package bootstrap_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"go-crm/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAudit struct {
	mu      sync.Mutex
	actions []string
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, entry.Action)
}

func TestStartHTTPServer_StopsOnCancel(t *testing.T) {
	audit := &recordingAudit{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		cfg := bootstrap.DefaultServerConfig("0")
		cfg.ShutdownTimeout = time.Second
		done <- bootstrap.StartHTTPServer(ctx, http.NotFoundHandler(), cfg, audit)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	audit.mu.Lock()
	defer audit.mu.Unlock()
	assert.Equal(t, []string{"SERVER_START", "SERVER_SHUTDOWN"}, audit.actions)
}

func TestStdoutAuditLogger_WritesEntry(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	audit.Log(context.Background(), bootstrap.AuditLog{
		Action:  "SUBSCRIPTION_CANCELLED",
		Message: "subscription SUB-000001 Cancelled",
		Meta:    map[string]any{"id": "s-1"},
	})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "SUBSCRIPTION_CANCELLED", fields["action"])
}

func TestNewLogger_InstallsGlobal(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	logger, err := bootstrap.NewLogger(false, "test")
	require.NoError(t, err)
	assert.Same(t, logger, zap.L())
}
