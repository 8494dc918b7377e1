package organizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"goprotransfer/internal/config"
	"goprotransfer/internal/fileutil"
	"goprotransfer/internal/footage"
	"goprotransfer/internal/logging"
	"goprotransfer/internal/services"
	"goprotransfer/internal/textutil"
)

const stageName = "organize"

// MetadataResolver reads the metadata of one video file.
type MetadataResolver interface {
	Resolve(ctx context.Context, path string) (footage.VideoMetadata, error)
}

// Request describes one organize run.
type Request struct {
	InputDir  string
	OutputDir string
	MinTime   time.Time
	MaxTime   time.Time
	Operation Operation
}

// Organizer runs the scan, classify and transfer pipeline.
type Organizer struct {
	resolver  MetadataResolver
	videoExts map[string]struct{}
	imageExts map[string]struct{}
	observer  Observer
	logger    *slog.Logger
	moveFile  func(src, dst string) error
	copyFile  func(src, dst string) error
}

// Option customizes an Organizer.
type Option func(*Organizer)

// WithObserver registers a progress observer.
func WithObserver(observer Observer) Option {
	return func(o *Organizer) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithFileOps replaces the move and copy primitives (used in tests).
func WithFileOps(moveFn, copyFn func(src, dst string) error) Option {
	return func(o *Organizer) {
		if moveFn != nil {
			o.moveFile = moveFn
		}
		if copyFn != nil {
			o.copyFile = copyFn
		}
	}
}

// New constructs an organizer. Extension lists come from cfg; a nil cfg uses
// the defaults.
func New(cfg *config.Config, resolver MetadataResolver, logger *slog.Logger, opts ...Option) *Organizer {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	o := &Organizer{
		resolver:  resolver,
		videoExts: extensionSet(cfg.Transfer.VideoExtensions),
		imageExts: extensionSet(cfg.Transfer.ImageExtensions),
		observer:  nopObserver{},
		logger:    logging.NewComponentLogger(logger, "organizer"),
		moveFile:  fileutil.MoveFile,
		copyFile:  fileutil.CopyFilePreserving,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Process organizes the footage in req.InputDir. Only a failure to list the
// input folder returns an error with a nil result. When ctx is cancelled,
// Process stops between files and returns the partial result together with
// the context error.
func (o *Organizer) Process(ctx context.Context, req Request) (*Result, error) {
	ctx = services.WithStage(ctx, stageName)
	logger := logging.WithContext(ctx, o.logger)

	logger.Info(
		"starting organize run",
		logging.String("input_dir", req.InputDir),
		logging.String("output_dir", req.OutputDir),
		logging.Time("min_time", req.MinTime),
		logging.Time("max_time", req.MaxTime),
		logging.String("operation", string(req.Operation)),
	)

	videos, images, err := o.scan(req.InputDir)
	if err != nil {
		logging.ErrorWithContext(
			logger,
			"input folder listing failed",
			"input_list_failed",
			logging.String("input_dir", req.InputDir),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that the input folder exists and is readable"),
			logging.String(logging.FieldImpact, "run aborted"),
		)
		return nil, services.Wrap(services.ErrValidation, stageName, "list input", "Failed to list input folder "+req.InputDir, err)
	}

	result := newResult(req.Operation, images)
	o.observer.OnScan(len(videos), len(images))
	logger.Info(
		"found candidate files",
		logging.Int("videos", len(videos)),
		logging.Int("images", len(images)),
	)

	catalog := footage.NewCatalog()
	for _, path := range videos {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		o.collect(ctx, path, req, catalog, result)
	}

	if !req.Operation.Supported() {
		logging.WarnWithContext(
			logger,
			"unsupported operation; files stay in place",
			"unsupported_operation",
			logging.String("operation", string(req.Operation)),
			logging.String(logging.FieldErrorHint, "use move or copy"),
			logging.String(logging.FieldImpact, "no files transferred"),
		)
	}

	o.observer.OnTransferStart(catalog.Len())
	if err := o.transfer(ctx, req, catalog, result); err != nil {
		return result, err
	}

	summary := result.Summary()
	logger.Info(
		"organize run completed",
		logging.Int("kept", summary.Kept),
		logging.Int("skipped", summary.Skipped),
		logging.Int("moved", summary.Moved),
		logging.Int("copied", summary.Copied),
		logging.Int("failed", summary.Failed),
		logging.Int("images", summary.Images),
	)
	return result, nil
}

// scan lists dir without recursing and partitions its files into video and
// image candidates by extension. Names come back sorted.
func (o *Organizer) scan(dir string) (videos, images []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		path := filepath.Join(dir, entry.Name())
		if _, ok := o.videoExts[ext]; ok {
			videos = append(videos, path)
			continue
		}
		if _, ok := o.imageExts[ext]; ok {
			images = append(images, path)
		}
	}
	return videos, images, nil
}

// collect resolves one video and, when it falls inside the window, records it
// in the catalog and the result.
func (o *Organizer) collect(ctx context.Context, path string, req Request, catalog *footage.Catalog, result *Result) {
	logger := logging.WithContext(ctx, o.logger)
	name := filepath.Base(path)

	meta, err := o.resolver.Resolve(ctx, path)
	o.observer.OnResolved(path, meta, err)
	if err != nil {
		o.skip(logger, result, name, ReasonMetadataUnavailable, err)
		return
	}

	ts, err := meta.CreateTime()
	if err != nil {
		reason := ReasonInvalidCreateDate
		if errors.Is(err, footage.ErrNoCreateDate) {
			reason = ReasonMissingCreateDate
		}
		o.skip(logger, result, name, reason, err)
		return
	}

	if !footage.InWindow(ts, req.MinTime, req.MaxTime) {
		logger.Debug(
			"video outside time window",
			logging.String("file", name),
			logging.Time("create_time", ts),
		)
		result.Skipped = append(result.Skipped, SkipRecord{File: name, Reason: ReasonOutsideWindow})
		return
	}

	result.Metadata[name] = meta
	catalog.Add(
		footage.BucketKey{Serial: meta.Serial(), Type: meta.VideoType},
		footage.Entry{Path: path, CreateDate: meta.TrackCreateDate},
	)
	logger.Debug(
		"video kept",
		logging.String("file", name),
		logging.String("serial", meta.Serial()),
		logging.String("video_type", meta.VideoType.String()),
	)
}

func (o *Organizer) skip(logger *slog.Logger, result *Result, name string, reason SkipReason, err error) {
	result.Skipped = append(result.Skipped, SkipRecord{File: name, Reason: reason, Detail: err.Error()})
	hint := "check that exiftool can read the file"
	if reason != ReasonMetadataUnavailable {
		hint = "the camera did not record a usable TrackCreateDate"
	}
	logging.WarnWithContext(
		logger,
		"video skipped",
		string(reason),
		logging.String("file", name),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, hint),
	)
}

// transfer walks the catalog bucket by bucket: Chaptered videos go into one
// session folder per file number, everything else straight into the serial
// folder.
func (o *Organizer) transfer(ctx context.Context, req Request, catalog *footage.Catalog, result *Result) error {
	logger := logging.WithContext(ctx, o.logger)

	for _, serial := range catalog.Serials() {
		serialDir := filepath.Join(req.OutputDir, textutil.SanitizePathSegment(serial, footage.UnknownSerial))
		dirErr := ensureDir(serialDir)
		if dirErr == nil {
			logger.Info("serial folder ready", logging.String("serial", serial), logging.String("path", serialDir))
		}

		for _, videoType := range catalog.Types(serial) {
			entries, _ := catalog.Entries(footage.BucketKey{Serial: serial, Type: videoType})
			logger.Info(
				"processing bucket",
				logging.String("serial", serial),
				logging.String("video_type", videoType.String()),
				logging.Int("files", len(entries)),
			)

			if videoType != footage.Chaptered {
				if err := o.transferAll(ctx, req.Operation, entries, serialDir, dirErr, result); err != nil {
					return err
				}
				continue
			}

			for _, session := range footage.GroupSessions(entries) {
				sessionDir := filepath.Join(serialDir, session.Label())
				sessionErr := dirErr
				if sessionErr == nil {
					sessionErr = ensureDir(sessionDir)
				}
				if sessionErr == nil {
					logger.Info(
						"session folder ready",
						logging.String("file_number", session.FileNumber),
						logging.String("path", sessionDir),
					)
				}
				if err := o.transferAll(ctx, req.Operation, session.Entries, sessionDir, sessionErr, result); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// transferAll transfers entries into dir. When dirErr is set the folder could
// not be created and every entry is recorded as failed with that error.
func (o *Organizer) transferAll(ctx context.Context, op Operation, entries []footage.Entry, dir string, dirErr error, result *Result) error {
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		var outcome TransferOutcome
		if dirErr != nil {
			outcome = o.failed(ctx, entry.Path, filepath.Join(dir, filepath.Base(entry.Path)), fmt.Errorf("create folder: %w", dirErr))
		} else {
			outcome = o.transferOne(ctx, op, entry.Path, dir)
		}
		result.Transfers = append(result.Transfers, outcome)
		o.observer.OnTransferDone(outcome)
	}
	return nil
}

func (o *Organizer) transferOne(ctx context.Context, op Operation, src, dir string) TransferOutcome {
	logger := logging.WithContext(ctx, o.logger)
	dst := filepath.Join(dir, filepath.Base(src))

	var err error
	switch op {
	case OperationMove:
		err = o.moveFile(src, dst)
	case OperationCopy:
		err = o.copyFile(src, dst)
	default:
		return TransferOutcome{File: filepath.Base(src), Source: src, Destination: dst, Status: StatusSkipped}
	}
	if err != nil {
		return o.failed(ctx, src, dst, err)
	}

	status := op.doneStatus()
	logger.Info(
		"video transferred",
		logging.String("file", filepath.Base(src)),
		logging.String("destination", dir),
		logging.String("status", string(status)),
	)
	return TransferOutcome{File: filepath.Base(src), Source: src, Destination: dst, Status: status}
}

func (o *Organizer) failed(ctx context.Context, src, dst string, err error) TransferOutcome {
	logger := logging.WithContext(ctx, o.logger)
	logging.WarnWithContext(
		logger,
		"video transfer failed",
		"transfer_failed",
		logging.String("file", filepath.Base(src)),
		logging.String("destination", dst),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, transferErrorHint(err)),
		logging.String(logging.FieldImpact, "file left in place"),
	)
	return TransferOutcome{
		File:        filepath.Base(src),
		Source:      src,
		Destination: dst,
		Status:      StatusFailed,
		Error:       err.Error(),
	}
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}
