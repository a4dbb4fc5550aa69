package cmd

import "errors"

// Process exit codes, mapped by main from the error returned by Execute.
const (
	exitUsage      = 1
	exitIO         = 2
	exitUnexpected = 3
)

// usageError marks an incorrect argument count, reported before any I/O.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ioError marks a failure to open, read, or decode an input file, or to
// create directories/write the output file.
type ioError struct{ err error }

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

// ExitCode translates an error from Execute into a process exit code:
// 1 for usage errors, 2 for file I/O errors, 3 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return exitUsage
	}
	var ioe *ioError
	if errors.As(err, &ioe) {
		return exitIO
	}
	return exitUnexpected
}
