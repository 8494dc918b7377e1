package exiftool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"goprotransfer/internal/footage"
)

// DefaultBinary is the executable used when no binary is configured.
const DefaultBinary = "exiftool"

// ErrNoRecord reports output that decoded to an empty record list.
var ErrNoRecord = errors.New("exiftool returned no records")

// Record holds the tags read from one file.
type Record struct {
	SourceFile         string           `json:"SourceFile"`
	FileName           footage.Optional `json:"FileName"`
	CameraSerialNumber footage.Optional `json:"CameraSerialNumber"`
	Model              footage.Optional `json:"Model"`
	TrackCreateDate    footage.Optional `json:"TrackCreateDate"`
	raw                []byte
}

// Inspect executes exiftool against the provided path and decodes the first
// record of its JSON response.
func Inspect(ctx context.Context, binary string, path string) (Record, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}
	if strings.TrimSpace(path) == "" {
		return Record{}, errors.New("exiftool inspect: empty path")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, "-j", path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return Record{}, fmt.Errorf("exiftool inspect: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return Parse(stdout.Bytes())
}

// Parse decodes exiftool -j output and returns its first record.
func Parse(output []byte) (Record, error) {
	var records []Record
	if err := json.Unmarshal(output, &records); err != nil {
		return Record{}, fmt.Errorf("exiftool parse: %w", err)
	}
	if len(records) == 0 {
		return Record{}, ErrNoRecord
	}
	record := records[0]
	record.raw = append([]byte(nil), output...)
	return record, nil
}

// RawJSON returns the raw exiftool JSON payload.
func (r Record) RawJSON() []byte {
	return append([]byte(nil), r.raw...)
}
