package quickparse

import "errors"

// ErrEmptyInput is the parser's only failure mode: the phrase is empty
// after trimming. Every other irregular input resolves to defaults.
var ErrEmptyInput = errors.New("quickparse: empty input")
