package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"goprotransfer/internal/config"
	"goprotransfer/internal/footage"
	"goprotransfer/internal/media/exiftool"
	"goprotransfer/internal/resolver"
	"goprotransfer/internal/services"
)

type inspectEntry struct {
	Path     string                 `json:"path"`
	Metadata *footage.VideoMetadata `json:"metadata,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var rawOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Show the camera metadata and classification of video files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := newCommandLogger(cfg, false)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			res := resolver.New(cfg, logger)

			entries := make([]inspectEntry, 0, len(args))
			failures := 0
			for _, arg := range args {
				path, err := config.ExpandPath(arg)
				if err != nil {
					return fmt.Errorf("resolve path %q: %w", arg, err)
				}
				entry := inspectEntry{Path: path}
				if err := requireFile(path); err != nil {
					entry.Error = err.Error()
					failures++
					entries = append(entries, entry)
					continue
				}
				if rawOutput {
					if err := printRaw(cmd, cfg.ExiftoolBinary(), path); err != nil {
						entry.Error = err.Error()
						failures++
					}
					entries = append(entries, entry)
					continue
				}
				meta, err := res.Resolve(cmd.Context(), path)
				if err != nil {
					entry.Error = err.Error()
					failures++
				} else {
					entry.Metadata = &meta
				}
				entries = append(entries, entry)
			}

			switch {
			case rawOutput:
				for _, entry := range entries {
					if entry.Error != "" {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", entry.Path, entry.Error)
					}
				}
			case jsonOutput:
				if err := writeJSON(cmd, entries); err != nil {
					return err
				}
			default:
				printInspectEntries(cmd, entries)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d files could not be inspected", failures, len(entries))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print metadata as JSON")
	cmd.Flags().BoolVar(&rawOutput, "raw", false, "Print every tag exiftool reports, unfiltered")
	return cmd
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return services.Wrap(services.ErrNotFound, "inspect", "stat", "No such file "+path, nil)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return services.Wrap(services.ErrValidation, "inspect", "stat", path+" is a directory", nil)
	}
	return nil
}

func printRaw(cmd *cobra.Command, binary, path string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	record, err := exiftool.Inspect(ctx, binary, path)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(append(bytes.TrimSpace(record.RawJSON()), '\n'))
	return err
}

func printInspectEntries(cmd *cobra.Command, entries []inspectEntry) {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Metadata == nil {
			rows = append(rows, []string{filepath.Base(entry.Path), "-", "-", "-", "-", "-", entry.Error})
			continue
		}
		meta := entry.Metadata
		label := footage.UnknownTimestamp
		if ts, err := meta.CreateTime(); err == nil {
			label = ts.Format(footage.SessionLabelLayout)
		}
		rows = append(rows, []string{
			filepath.Base(entry.Path),
			meta.Serial(),
			meta.Model.Or("-"),
			meta.TrackCreateDate.Or("-"),
			meta.VideoType.String(),
			label,
			"",
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"File", "Serial", "Model", "Created", "Type", "Session label", "Error"},
		rows,
		nil,
	))
}
