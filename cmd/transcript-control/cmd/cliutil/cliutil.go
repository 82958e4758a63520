// Package cliutil holds the state and helpers shared by the client commands.
package cliutil

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"transcript-control/internal/app/logging"
	"transcript-control/internal/client/api"
	"transcript-control/internal/client/cache"
)

const apiURLEnv = "TRANSCRIPT_CONTROL_API_URL"

var (
	APIURL  = DefaultAPIURL()
	Timeout = 15 * time.Second
	Verbose bool
)

func DefaultAPIURL() string {
	if v := os.Getenv(apiURLEnv); v != "" {
		return v
	}
	return "http://localhost:3001"
}

func NewClient() *api.Client {
	return api.NewClient(APIURL, Timeout)
}

// NewCache returns a client cache that logs through the CLI logger
func NewCache() *cache.Cache {
	cfg := cache.DefaultConfig()
	cfg.Logger = Logger()
	return cache.New(cfg)
}

// Logger is a development logger when --verbose is set and a no-op otherwise
func Logger() *zap.Logger {
	if !Verbose {
		return zap.NewNop()
	}
	logger, err := logging.New(true)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// Context is cancelled on SIGINT or SIGTERM
func Context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// RenderTable draws rows under headers. Short rows are padded.
func RenderTable(headers []string, rows [][]string, aligns []Alignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range headers {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// Deref renders an optional string, "-" when unset
func Deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func FormatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// FormatSeconds renders a duration in seconds as m:ss or h:mm:ss
func FormatSeconds(s *int) string {
	if s == nil {
		return "-"
	}
	d := time.Duration(*s) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
