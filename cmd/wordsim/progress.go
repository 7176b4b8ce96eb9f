package main

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/simtools/wordsim/internal/progress"
)

// newObserver returns a terminal progress bar on stderr, or a no-op when
// quiet. The bar is created lazily in Start because a negative total (used
// by the loader, which learns the line count at EOF) renders as a spinner.
func newObserver(description string, quiet bool) progress.Observer {
	if quiet {
		return progress.Nop{}
	}
	return &barObserver{description: description}
}

type barObserver struct {
	description string
	bar         *progressbar.ProgressBar
}

func (o *barObserver) Start(total int64) {
	o.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(o.description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (o *barObserver) Increment(n int64) {
	if o.bar != nil {
		_ = o.bar.Add64(n)
	}
}

func (o *barObserver) Finish() {
	if o.bar != nil {
		_ = o.bar.Finish()
	}
}
