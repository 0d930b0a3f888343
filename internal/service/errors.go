package service

import "errors"

// ErrNotFound is returned when a referenced translation does not exist.
var ErrNotFound = errors.New("translation not found")

// ErrTranslationFailed is returned when the upstream translation service
// is unreachable or reports a non-success status.
var ErrTranslationFailed = errors.New("translation failed")
