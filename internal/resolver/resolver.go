// Package resolver turns a video file path into footage.VideoMetadata by
// running exiftool and classifying the reported filename.
package resolver

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"goprotransfer/internal/config"
	"goprotransfer/internal/footage"
	"goprotransfer/internal/logging"
	"goprotransfer/internal/media/exiftool"
	"goprotransfer/internal/services"
)

// InspectFunc runs the metadata extractor for one file.
type InspectFunc func(ctx context.Context, binary, path string) (exiftool.Record, error)

// Resolver resolves video metadata through exiftool.
type Resolver struct {
	binary  string
	timeout time.Duration
	inspect InspectFunc
	logger  *slog.Logger
}

// New constructs a resolver from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Resolver {
	binary := exiftool.DefaultBinary
	timeout := 30 * time.Second
	if cfg != nil {
		binary = cfg.ExiftoolBinary()
		timeout = cfg.ExiftoolTimeout()
	}
	return NewWithInspector(binary, timeout, exiftool.Inspect, logger)
}

// NewWithInspector allows injecting the extractor (used in tests).
func NewWithInspector(binary string, timeout time.Duration, inspect InspectFunc, logger *slog.Logger) *Resolver {
	if inspect == nil {
		inspect = exiftool.Inspect
	}
	return &Resolver{
		binary:  binary,
		timeout: timeout,
		inspect: inspect,
		logger:  logging.NewComponentLogger(logger, "resolver"),
	}
}

// Resolve reads the metadata of filePath. Failures are tagged with
// services.ErrExternalTool; callers skip the file and carry on.
func (r *Resolver) Resolve(ctx context.Context, filePath string) (footage.VideoMetadata, error) {
	logger := logging.WithContext(ctx, r.logger)

	inspectCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		inspectCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	record, err := r.inspect(inspectCtx, r.binary, filePath)
	if err != nil {
		return footage.VideoMetadata{}, services.Wrap(services.ErrExternalTool, "resolve", "exiftool", "Failed to read metadata for "+filePath, err)
	}

	fileName := norm.NFC.String(strings.TrimSpace(record.FileName.Value()))
	if fileName == "" {
		fileName = norm.NFC.String(filepath.Base(filePath))
	}

	meta := footage.VideoMetadata{
		CameraSerialNumber: record.CameraSerialNumber,
		Model:              record.Model,
		TrackCreateDate:    record.TrackCreateDate,
		FileName:           fileName,
		VideoType:          footage.ClassifyFile(fileName),
	}
	logger.Debug(
		"metadata resolved",
		logging.String("file", filePath),
		logging.String("serial", meta.CameraSerialNumber.String()),
		logging.String("model", meta.Model.String()),
		logging.String("track_create_date", meta.TrackCreateDate.String()),
		logging.String("video_type", meta.VideoType.String()),
	)
	return meta, nil
}
