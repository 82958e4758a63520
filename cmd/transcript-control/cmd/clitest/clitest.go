// Package clitest runs CLI commands against the real router backed by
// mock services.
package clitest

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/internal/api/server"
	v1routes "transcript-control/internal/api/v1/routes"
	"transcript-control/internal/app/testutil"
	"transcript-control/internal/config"
)

// NewAPI starts a test server and points cliutil at it. Expectations
// are asserted when the test ends.
func NewAPI(t *testing.T) *testutil.MockServices {
	t.Helper()
	mocks := testutil.NewMockServices(t)
	container := &v1routes.ServiceContainer{
		TranscriptionService: mocks.TranscriptionService,
		CalendarService:      mocks.CalendarService,
		WorkflowService:      mocks.WorkflowService,
		HealthService:        mocks.HealthService,
		TableConfigService:   mocks.TableConfigService,
		SettingsService:      mocks.SettingsService,
	}
	cfg := config.Default().Server
	cfg.Environment = "test"
	ts := httptest.NewServer(server.NewServer(cfg, container, nil, zap.NewNop()).Router())
	t.Cleanup(ts.Close)
	t.Cleanup(func() { mocks.AssertExpectations(t) })

	cliutil.APIURL = ts.URL
	cliutil.Timeout = 5 * time.Second
	return mocks
}

// Execute runs cmd with args and returns everything it printed
func Execute(ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	setContext(cmd, ctx)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

// setContext resets the context on every subcommand. Cobra only hands the
// root context to a subcommand whose context is still nil, so a context
// left over from an earlier Execute would otherwise stick.
func setContext(cmd *cobra.Command, ctx context.Context) {
	for _, sub := range cmd.Commands() {
		sub.SetContext(ctx)
		setContext(sub, ctx)
	}
}
