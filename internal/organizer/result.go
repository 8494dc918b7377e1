package organizer

import (
	"goprotransfer/internal/footage"
)

// TransferStatus describes what happened to one kept file.
type TransferStatus string

const (
	StatusMoved   TransferStatus = "moved"
	StatusCopied  TransferStatus = "copied"
	StatusSkipped TransferStatus = "skipped"
	StatusFailed  TransferStatus = "failed"
)

// SkipReason explains why a video never reached the transfer phase.
type SkipReason string

const (
	ReasonMetadataUnavailable SkipReason = "metadata_unavailable"
	ReasonMissingCreateDate   SkipReason = "missing_create_date"
	ReasonInvalidCreateDate   SkipReason = "invalid_create_date"
	ReasonOutsideWindow       SkipReason = "outside_window"
)

// TransferOutcome records the transfer of one file.
type TransferOutcome struct {
	File        string         `json:"file"`
	Source      string         `json:"source"`
	Destination string         `json:"destination"`
	Status      TransferStatus `json:"status"`
	Error       string         `json:"error,omitempty"`
}

// SkipRecord records a video dropped before transfer.
type SkipRecord struct {
	File   string     `json:"file"`
	Reason SkipReason `json:"reason"`
	Detail string     `json:"detail,omitempty"`
}

// Result is the outcome of one Process call.
type Result struct {
	// Metadata maps the file name of every video that passed the time
	// window to its metadata, whether or not the transfer succeeded.
	Metadata   map[string]footage.VideoMetadata
	Transfers  []TransferOutcome
	Skipped    []SkipRecord
	ImageFiles []string
	Operation  Operation
}

// Summary aggregates a Result into counts.
type Summary struct {
	Videos  int `json:"videos"`
	Images  int `json:"images"`
	Kept    int `json:"kept"`
	Skipped int `json:"skipped"`
	Moved   int `json:"moved"`
	Copied  int `json:"copied"`
	Ignored int `json:"ignored"`
	Failed  int `json:"failed"`
}

func newResult(op Operation, images []string) *Result {
	return &Result{
		Metadata:   make(map[string]footage.VideoMetadata),
		ImageFiles: images,
		Operation:  op,
	}
}

// Summary returns counts for the result. A nil result yields zeros.
func (r *Result) Summary() Summary {
	if r == nil {
		return Summary{}
	}
	s := Summary{
		Videos:  len(r.Metadata) + len(r.Skipped),
		Images:  len(r.ImageFiles),
		Kept:    len(r.Metadata),
		Skipped: len(r.Skipped),
	}
	for _, t := range r.Transfers {
		switch t.Status {
		case StatusMoved:
			s.Moved++
		case StatusCopied:
			s.Copied++
		case StatusSkipped:
			s.Ignored++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Failed returns the outcomes whose transfer failed.
func (r *Result) Failed() []TransferOutcome {
	if r == nil {
		return nil
	}
	var failed []TransferOutcome
	for _, t := range r.Transfers {
		if t.Status == StatusFailed {
			failed = append(failed, t)
		}
	}
	return failed
}
