package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"goprotransfer/internal/config"
	"goprotransfer/internal/logging"
	"goprotransfer/internal/organizer"
	"goprotransfer/internal/preflight"
	"goprotransfer/internal/report"
	"goprotransfer/internal/resolver"
	"goprotransfer/internal/services"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var sinceFlag string
	var untilFlag string
	var operationFlag string
	var reportPath string
	var jsonOutput bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run <input-dir> <output-dir>",
		Short: "Move or copy footage into per-camera folders",
		Long: "Reads the metadata of every video in <input-dir>, keeps the ones recorded\n" +
			"between --since (inclusive) and --until (exclusive), and files them under\n" +
			"<output-dir>/<serial>. Chaptered recordings get one folder per session.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			inputDir, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve input dir: %w", err)
			}
			outputDir, err := config.ExpandPath(args[1])
			if err != nil {
				return fmt.Errorf("resolve output dir: %w", err)
			}

			minTime := defaultSince()
			if cmd.Flags().Changed("since") {
				if minTime, err = parseTimeFlag(sinceFlag); err != nil {
					return fmt.Errorf("--since: %w", err)
				}
			}
			maxTime := time.Now()
			if cmd.Flags().Changed("until") {
				if maxTime, err = parseTimeFlag(untilFlag); err != nil {
					return fmt.Errorf("--until: %w", err)
				}
			}

			operation := cfg.Transfer.Operation
			if cmd.Flags().Changed("operation") {
				operation = strings.TrimSpace(operationFlag)
			}

			if err := requireBinaries(cmd, cfg); err != nil {
				return err
			}

			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another goprotransfer run is already in progress (lock %s)", cfg.LockPath())
			}
			defer func() { _ = lock.Unlock() }()

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runID := uuid.NewString()
			runCtx = services.WithRunID(runCtx, runID)

			showProgress := !jsonOutput && isTerminal(cmd.ErrOrStderr())
			logger, err := newCommandLogger(cfg, verbose || !showProgress)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			var opts []organizer.Option
			var progress *progressObserver
			if showProgress {
				progress = newProgressObserver(cmd.ErrOrStderr())
				opts = append(opts, organizer.WithObserver(progress))
			}

			req := organizer.Request{
				InputDir:  inputDir,
				OutputDir: outputDir,
				MinTime:   minTime,
				MaxTime:   maxTime,
				Operation: organizer.Operation(operation),
			}
			org := organizer.New(cfg, resolver.New(cfg, logger), logger, opts...)

			started := time.Now()
			result, runErr := org.Process(runCtx, req)
			if progress != nil {
				progress.finish()
			}
			if result == nil {
				return runErr
			}

			rep := report.Build(runID, req, result, started, time.Now())
			if path := strings.TrimSpace(reportPath); path != "" {
				expanded, err := config.ExpandPath(path)
				if err != nil {
					return fmt.Errorf("resolve report path: %w", err)
				}
				if err := report.WriteFile(expanded, rep); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				logger.Info("report written", logging.String("path", expanded))
			}

			if jsonOutput {
				if err := writeJSON(cmd, rep); err != nil {
					return err
				}
			} else {
				printRunResult(cmd.OutOrStdout(), rep)
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&sinceFlag, "since", "", "Keep videos recorded at or after this time (default 1900-01-01 00:00:00)")
	cmd.Flags().StringVar(&untilFlag, "until", "", "Keep videos recorded before this time (default now)")
	cmd.Flags().StringVar(&operationFlag, "operation", "", "Transfer operation: move or copy (default from config)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a JSON report of the run to this path")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the run report as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Keep console logging on while the progress bar is shown")
	return cmd
}

// requireBinaries aborts before any file is touched when a required
// external tool is missing.
func requireBinaries(cmd *cobra.Command, cfg *config.Config) error {
	var missing []string
	for _, status := range preflight.CheckSystemDeps(cmd.Context(), cfg) {
		if status.Available || status.Optional {
			continue
		}
		missing = append(missing, fmt.Sprintf("%s (%s)", status.Name, status.Detail))
	}
	if len(missing) == 0 {
		return nil
	}
	return services.Wrap(
		services.ErrConfiguration,
		"preflight",
		"check binaries",
		"Missing required tools: "+strings.Join(missing, ", ")+"; install exiftool or set exiftool.binary",
		nil,
	)
}

func printRunResult(out io.Writer, rep report.Report) {
	if len(rep.Files) == 0 {
		fmt.Fprintln(out, "No videos matched the time window.")
	} else {
		rows := make([][]string, 0, len(rep.Files))
		for _, f := range rep.Files {
			rows = append(rows, []string{
				f.Name,
				f.Serial,
				f.Model.Or("-"),
				f.CreateDate.Or("-"),
				f.VideoType.String(),
				string(f.Status),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"File", "Serial", "Model", "Created", "Type", "Status"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
		))
	}

	if len(rep.Skipped) > 0 {
		rows := make([][]string, 0, len(rep.Skipped))
		for _, s := range rep.Skipped {
			rows = append(rows, []string{s.File, string(s.Reason), s.Detail})
		}
		fmt.Fprintln(out, "Skipped:")
		fmt.Fprintln(out, renderTable([]string{"File", "Reason", "Detail"}, rows, nil))
	}

	s := rep.Summary
	fmt.Fprintf(out, "Videos: %d  Kept: %d  Skipped: %d  Moved: %d  Copied: %d  Failed: %d  Images ignored: %d\n",
		s.Videos, s.Kept, s.Skipped, s.Moved, s.Copied, s.Failed, s.Images)
	if s.Ignored > 0 {
		fmt.Fprintf(out, "Operation %q is not move or copy; %d files were left in place.\n", rep.Operation, s.Ignored)
	}
	for _, f := range rep.Files {
		if f.Status == organizer.StatusFailed {
			fmt.Fprintf(out, "Failed: %s: %s\n", f.Name, f.Error)
		}
	}
}
