package exiftool

import "errors"

var (
	// ErrNoFile is returned when an operation is requested without a file
	ErrNoFile = errors.New("no file selected")

	// ErrToolNotFound is returned when the tool executable cannot be found
	ErrToolNotFound = errors.New("exiftool executable not found")
)
