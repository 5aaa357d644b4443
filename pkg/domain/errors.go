package domain

import "errors"

// ErrSourceNotFound is returned when a survey source cannot be found.
var ErrSourceNotFound = errors.New("survey source not found")

// ErrInvalidSurvey is returned when a survey document cannot be decoded or fails validation.
var ErrInvalidSurvey = errors.New("invalid survey")

// ErrInvalidSourceName is returned when a source name escapes the source root.
var ErrInvalidSourceName = errors.New("invalid source name")
