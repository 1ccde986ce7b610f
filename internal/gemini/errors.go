package gemini

import "fmt"

// GenerationError reports a failed call to the generative backend: the call
// itself errored, returned no usable content, or a finished video job carried
// no retrievable asset. Malformed-but-present text is not a GenerationError;
// parsing degrades to defaults instead.
type GenerationError struct {
	Op  string // "research", "image", "edit" or "animate"
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("gemini %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func generationErr(op string, format string, args ...interface{}) error {
	return &GenerationError{Op: op, Err: fmt.Errorf(format, args...)}
}
