// Package errs defines the sentinel and structured error values returned by
// brs's reader and writer pipeline.
//
// Parameterless failures are plain sentinel errors, matched with errors.Is.
// Failures that carry the offending value (a version number, a format byte)
// are small struct types implementing error, matched with errors.As.
package errs

import "fmt"

var (
	// ErrInvalidMagic is returned when a file does not start with the "BRS" magic bytes.
	ErrInvalidMagic = fmt.Errorf("brs: invalid magic bytes")

	// ErrInvalidCompressedSection is returned when a compressed section's
	// declared sizes are inconsistent with its payload, or decompression fails.
	ErrInvalidCompressedSection = fmt.Errorf("brs: invalid compressed section")

	// ErrInvalidString is returned when a string's length prefix or encoding is malformed.
	ErrInvalidString = fmt.Errorf("brs: invalid string")

	// ErrInvalidInput is returned for data that fails validation: values a
	// caller asks to write (out-of-range indices, oversized payloads) and
	// negative counts or lengths read from a file.
	ErrInvalidInput = fmt.Errorf("brs: invalid input")

	// ErrSectionTooLarge is returned when a compressed section declares an
	// uncompressed size larger than the configured ceiling (see WithMaxSectionSize).
	ErrSectionTooLarge = fmt.Errorf("brs: compressed section exceeds maximum size")

	// ErrWrongStage is returned when a staged Reader method is called against
	// a stage it does not apply to. The exported API enforces staging at
	// compile time, and no code path in this module currently returns it.
	ErrWrongStage = fmt.Errorf("brs: reader called out of stage")
)

// VersionTooOldError is returned when a file declares a version older than
// the oldest version this package can read.
type VersionTooOldError struct {
	Version uint16
}

func (e VersionTooOldError) Error() string {
	return fmt.Sprintf("brs: version %d is older than the minimum supported version", e.Version)
}

// VersionTooNewError is returned when a file declares a version newer than
// the newest version this package knows about.
type VersionTooNewError struct {
	Version uint16
}

func (e VersionTooNewError) Error() string {
	return fmt.Sprintf("brs: version %d is newer than the maximum supported version", e.Version)
}

// VersionUnknownError is returned when a file declares a version that falls
// within the supported numeric range but does not correspond to any known
// version constant.
type VersionUnknownError struct {
	Version uint16
}

func (e VersionUnknownError) Error() string {
	return fmt.Sprintf("brs: version %d is not a recognized version", e.Version)
}

// UnknownScreenshotFormatError is returned when a screenshot frame declares
// a format byte this package does not recognize.
type UnknownScreenshotFormatError struct {
	Format byte
}

func (e UnknownScreenshotFormatError) Error() string {
	return fmt.Sprintf("brs: unknown screenshot format 0x%02x", e.Format)
}
