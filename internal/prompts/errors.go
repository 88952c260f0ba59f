package prompts

import "errors"

// ErrUnknownPrompt indicates the requested id is not in the fixed catalog.
var ErrUnknownPrompt = errors.New("unknown prompt id")
