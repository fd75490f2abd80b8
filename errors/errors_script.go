package errors

import "fmt"

// ScriptNotFoundError is returned when the CLI is pointed at a script
// file that does not exist.
type ScriptNotFoundError struct {
	URI string
}

func (err ScriptNotFoundError) Error() string {
	return fmt.Sprintf("shparse: No script found at %q", err.URI)
}

func (err ScriptNotFoundError) Code() int {
	return CodeScriptNotFound
}

// ScriptReadError is returned when a script file exists but cannot be
// read.
type ScriptReadError struct {
	URI string
	Err error
}

func (err ScriptReadError) Error() string {
	return fmt.Sprintf("shparse: Failed to read %s:\n%v", err.URI, err.Err)
}

func (err ScriptReadError) Code() int {
	return CodeScriptRead
}

func (err ScriptReadError) Unwrap() error {
	return err.Err
}

// UnknownFormatError is returned when the CLI is asked for an output
// format it does not implement. DidYouMean carries the closest valid
// format name, if one is close enough to suggest.
type UnknownFormatError struct {
	Format     string
	DidYouMean string
}

func (err UnknownFormatError) Error() string {
	if err.DidYouMean != "" {
		return fmt.Sprintf("shparse: Unknown output format %q. Did you mean %q?", err.Format, err.DidYouMean)
	}
	return fmt.Sprintf("shparse: Unknown output format %q", err.Format)
}

func (err UnknownFormatError) Code() int {
	return CodeUnknownFormat
}
