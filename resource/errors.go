// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package resource

import "fmt"

// FileError is returned when a resource file can't be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying read error
func (e *FileError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when an image file can't be decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decoder error
func (e *DecodeError) Unwrap() error {
	return e.Err
}
