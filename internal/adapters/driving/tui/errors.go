package tui

import "errors"

// ErrMissingRunbookService is returned when the runbook service is not provided.
var ErrMissingRunbookService = errors.New("tui: runbook service is required")
