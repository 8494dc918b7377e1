package organizer

import "goprotransfer/internal/footage"

// Observer receives progress callbacks from Process. Calls happen on the
// goroutine running Process, in order.
type Observer interface {
	// OnScan reports how many video and image candidates were listed.
	OnScan(videos, images int)
	// OnResolved fires once per video after metadata resolution.
	OnResolved(path string, meta footage.VideoMetadata, err error)
	// OnTransferStart fires once before the first transfer with the number
	// of kept files.
	OnTransferStart(total int)
	// OnTransferDone fires after each file transfer attempt.
	OnTransferDone(outcome TransferOutcome)
}

type nopObserver struct{}

func (nopObserver) OnScan(int, int)                                {}
func (nopObserver) OnResolved(string, footage.VideoMetadata, error) {}
func (nopObserver) OnTransferStart(int)                            {}
func (nopObserver) OnTransferDone(TransferOutcome)                 {}
