package preflight

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"goprotransfer/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// Requirement defines an external binary goprotransfer relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a binary requirement.
type Status struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Available   bool   `json:"available"`
	Detail      string `json:"detail,omitempty"`
}

// Result converts a binary status into a generic check result. Optional
// binaries always pass.
func (s Status) Result() Result {
	detail := s.Detail
	if s.Available {
		detail = s.Command
	}
	return Result{Name: s.Name, Passed: s.Available || s.Optional, Detail: detail}
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := lookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Command = resolved
		status.Available = true
		results = append(results, status)
	}
	return results
}

// CheckSystemDeps evaluates the external binaries needed for a run.
func CheckSystemDeps(_ context.Context, cfg *config.Config) []Status {
	binary := "exiftool"
	if cfg != nil {
		binary = cfg.ExiftoolBinary()
	}
	return CheckBinaries([]Requirement{
		{
			Name:        "ExifTool",
			Command:     binary,
			Description: "Required for reading camera metadata",
		},
	})
}

// RunAll executes every preflight check for a run from inputDir to outputDir.
// Either directory may be empty, in which case it is not checked.
func RunAll(ctx context.Context, cfg *config.Config, inputDir, outputDir string) []Result {
	var results []Result
	for _, status := range CheckSystemDeps(ctx, cfg) {
		results = append(results, status.Result())
	}
	if cfg != nil && strings.TrimSpace(cfg.Paths.StateDir) != "" {
		results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir))
	}
	if inputDir != "" {
		results = append(results, CheckDirectoryAccess("Input directory", inputDir))
	}
	if outputDir != "" {
		results = append(results, CheckOutputParent("Output directory", outputDir))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
