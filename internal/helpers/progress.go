package helpers

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

type ProgressBar struct {
	Set   func(int)
	Add   func(int)
	Close func()
}

func termWidth() int {
	width, _, err := term.GetSize(0)
	if !IsNil(err) {
		return 80
	}
	return MaxInt(80, MinInt(120, width))
}

func unitForDuration(d time.Duration) time.Duration {
	if d < time.Microsecond {
		return time.Nanosecond
	}
	if d < time.Millisecond {
		return time.Microsecond
	}
	if d < time.Second {
		return time.Millisecond
	}
	if d < time.Minute {
		return time.Second
	}
	return time.Minute
}

// FormatRate renders count items over elapsed as e.g. "1.2s @ 4,096/s".
func FormatRate(count int, elapsed time.Duration) string {
	perSecond := int64(0)
	if elapsed > 0 {
		perSecond = int64(float64(count) / elapsed.Seconds())
	}
	return fmt.Sprintf("%v @ %v/s", elapsed.Round(unitForDuration(elapsed)), humanize.Comma(perSecond))
}

// CreateProgressBar draws to w. Writers that aren't terminals get one line
// per update instead of a redrawn bar.
func CreateProgressBar(w io.Writer, total int, label string) ProgressBar {
	p := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(termWidth()/2),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
	return ProgressBar{
		func(i int) {
			_ = p.Set(i)
		},
		func(i int) {
			_ = p.Add(i)
		},
		func() {
			_ = p.Set(total)
			_ = p.Finish()
		},
	}
}
