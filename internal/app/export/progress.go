package export

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

// Progress renders page-fetch progress. A disabled Progress is a no-op.
type Progress struct {
	container *mpb.Progress
	enabled   bool
}

type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgress(config ProgressConfig) *Progress {
	if !config.Enabled {
		return &Progress{}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)
	return &Progress{container: container, enabled: true}
}

func (p *Progress) CreateBar(total int, description string) *ProgressBar {
	if !p.enabled {
		return &ProgressBar{}
	}

	bar := p.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " done"),
		),
	)
	return &ProgressBar{bar: bar, enabled: true}
}

func (pb *ProgressBar) IncrBy(n int) {
	if pb.enabled {
		pb.bar.IncrBy(n)
	}
}

func (pb *ProgressBar) SetTotal(total int64) {
	if pb.enabled {
		pb.bar.SetTotal(total, false)
	}
}

// Complete finishes the bar at its current count
func (pb *ProgressBar) Complete() {
	if pb.enabled {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}

// Abort removes an unfinished bar so Wait does not block on it
func (pb *ProgressBar) Abort() {
	if pb.enabled {
		pb.bar.Abort(true)
	}
}

func (p *Progress) Wait() {
	if p.enabled {
		p.container.Wait()
	}
}

func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
