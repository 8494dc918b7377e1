package main

import (
	"io"

	"github.com/schollz/progressbar/v3"

	"goprotransfer/internal/footage"
	"goprotransfer/internal/organizer"
)

// progressObserver draws one bar while metadata is read and another while
// files are transferred.
type progressObserver struct {
	out     io.Writer
	current *progressbar.ProgressBar
}

func newProgressObserver(out io.Writer) *progressObserver {
	return &progressObserver{out: out}
}

func (p *progressObserver) start(total int, description string) {
	p.finish()
	if total <= 0 {
		return
	}
	p.current = progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetItsString("file"),
		progressbar.OptionShowIts(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionOnCompletion(func() { _, _ = io.WriteString(p.out, "\n") }),
	)
}

func (p *progressObserver) OnScan(videos, _ int) {
	p.start(videos, "Reading metadata")
}

func (p *progressObserver) OnResolved(string, footage.VideoMetadata, error) {
	if p.current != nil {
		_ = p.current.Add(1)
	}
}

func (p *progressObserver) OnTransferStart(total int) {
	p.start(total, "Transferring")
}

func (p *progressObserver) OnTransferDone(organizer.TransferOutcome) {
	if p.current != nil {
		_ = p.current.Add(1)
	}
}

func (p *progressObserver) finish() {
	if p.current == nil {
		return
	}
	if !p.current.IsFinished() {
		_ = p.current.Finish()
	}
	p.current = nil
}
