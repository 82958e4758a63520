package health

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"transcript-control/cmd/transcript-control/cmd/cliutil"
	"transcript-control/internal/api/server"
	"transcript-control/internal/api/v1/dto"
	v1routes "transcript-control/internal/api/v1/routes"
	"transcript-control/internal/app/testutil"
	"transcript-control/internal/config"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		resp    dto.HealthResponse
		err     error
		wantOut []string
		wantErr string
	}{
		{
			name:    "all up",
			resp:    dto.HealthResponse{Database: true, N8N: true},
			wantOut: []string{"database", "up"},
		},
		{
			name:    "n8n down",
			resp:    dto.HealthResponse{Database: true},
			wantOut: []string{"n8n", "down"},
		},
		{
			name:    "database unreachable",
			err:     errors.New("connection refused"),
			wantErr: "Health check failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := testutil.NewMockServices(t)
			mocks.HealthService.On("Check", mock.Anything).Return(tt.resp, tt.err)
			container := &v1routes.ServiceContainer{
				TranscriptionService: mocks.TranscriptionService,
				CalendarService:      mocks.CalendarService,
				WorkflowService:      mocks.WorkflowService,
				HealthService:        mocks.HealthService,
				TableConfigService:   mocks.TableConfigService,
				SettingsService:      mocks.SettingsService,
			}
			ts := httptest.NewServer(server.NewServer(config.Default().Server, container, nil, zap.NewNop()).Router())
			defer ts.Close()
			cliutil.APIURL = ts.URL
			cliutil.Timeout = 5 * time.Second

			var out bytes.Buffer
			Cmd.SetOut(&out)
			Cmd.SetErr(&out)
			Cmd.SetArgs(nil)
			err := Cmd.ExecuteContext(context.Background())

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
