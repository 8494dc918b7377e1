// Package report renders the outcome of an organize run as a JSON document.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/renameio/v2"

	"goprotransfer/internal/footage"
	"goprotransfer/internal/organizer"
)

// File describes one video that passed the time window.
type File struct {
	Name        string                   `json:"name"`
	Serial      string                   `json:"serial"`
	Model       footage.Optional         `json:"model"`
	CreateDate  footage.Optional         `json:"create_date"`
	VideoType   footage.VideoType        `json:"video_type"`
	Status      organizer.TransferStatus `json:"status,omitempty"`
	Destination string                   `json:"destination,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

// Report is the JSON document written after a run.
type Report struct {
	RunID      string                 `json:"run_id"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
	InputDir   string                 `json:"input_dir"`
	OutputDir  string                 `json:"output_dir"`
	MinTime    time.Time              `json:"min_time"`
	MaxTime    time.Time              `json:"max_time"`
	Operation  string                 `json:"operation"`
	Summary    organizer.Summary      `json:"summary"`
	Files      []File                 `json:"files"`
	Skipped    []organizer.SkipRecord `json:"skipped"`
	Images     []string               `json:"images"`
}

// Build assembles a report. Files are sorted by name and all timestamps are
// converted to UTC. A nil result produces an empty report.
func Build(runID string, req organizer.Request, result *organizer.Result, started, finished time.Time) Report {
	rep := Report{
		RunID:      runID,
		StartedAt:  started.UTC(),
		FinishedAt: finished.UTC(),
		InputDir:   req.InputDir,
		OutputDir:  req.OutputDir,
		MinTime:    req.MinTime.UTC(),
		MaxTime:    req.MaxTime.UTC(),
		Operation:  string(req.Operation),
		Summary:    result.Summary(),
		Files:      []File{},
		Skipped:    []organizer.SkipRecord{},
		Images:     []string{},
	}
	if result == nil {
		return rep
	}

	outcomes := make(map[string]organizer.TransferOutcome, len(result.Transfers))
	for _, t := range result.Transfers {
		outcomes[t.File] = t
	}
	for name, meta := range result.Metadata {
		file := File{
			Name:       name,
			Serial:     meta.Serial(),
			Model:      meta.Model,
			CreateDate: meta.TrackCreateDate,
			VideoType:  meta.VideoType,
		}
		if outcome, ok := outcomes[name]; ok {
			file.Status = outcome.Status
			file.Destination = outcome.Destination
			file.Error = outcome.Error
		}
		rep.Files = append(rep.Files, file)
	}
	sort.Slice(rep.Files, func(i, j int) bool { return rep.Files[i].Name < rep.Files[j].Name })

	rep.Skipped = append(rep.Skipped, result.Skipped...)
	for _, path := range result.ImageFiles {
		rep.Images = append(rep.Images, filepath.Base(path))
	}
	return rep
}

// Encode writes the report as indented JSON.
func Encode(w io.Writer, rep Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}

// WriteFile writes the report to path atomically, replacing any previous
// file.
func WriteFile(path string, rep Report) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending report file: %w", err)
	}
	defer func() {
		if cleanupErr := pending.Cleanup(); cleanupErr != nil && err == nil {
			err = fmt.Errorf("cleanup pending report file: %w", cleanupErr)
		}
	}()

	if err := Encode(pending, rep); err != nil {
		return fmt.Errorf("write report data: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace report file: %w", err)
	}
	return nil
}
