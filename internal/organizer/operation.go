package organizer

import (
	"errors"
	"os"
	"syscall"
)

// Operation selects how kept files reach their destination.
type Operation string

const (
	// OperationMove renames files, copying across filesystems when needed.
	OperationMove Operation = "move"
	// OperationCopy copies files and keeps their permission bits and times.
	OperationCopy Operation = "copy"
)

// Supported reports whether op transfers files. Any other value leaves every
// file in place without error.
func (op Operation) Supported() bool {
	return op == OperationMove || op == OperationCopy
}

func (op Operation) doneStatus() TransferStatus {
	if op == OperationMove {
		return StatusMoved
	}
	return StatusCopied
}

// outputUnavailableErrors lists syscall errors that indicate the output
// volume went away.
var outputUnavailableErrors = []error{
	syscall.ENODEV,
	syscall.ENOTCONN,
	syscall.EHOSTDOWN,
	syscall.EHOSTUNREACH,
	syscall.ETIMEDOUT,
	syscall.EIO,
	syscall.ESTALE,
}

// transferErrorHint picks an operator hint for a failed transfer.
func transferErrorHint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, syscall.ENOSPC):
		return "free space on the output volume"
	case errors.Is(err, os.ErrPermission):
		return "check permissions on the input and output folders"
	case errors.Is(err, os.ErrNotExist):
		return "the source file disappeared during the run"
	}
	for _, target := range outputUnavailableErrors {
		if errors.Is(err, target) {
			return "check that the output volume is mounted and reachable"
		}
	}
	return "check logs for details"
}
