// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEngineInit = errors.New("sound engine initialization failed")
	ErrSampleLoad = errors.New("sample load failed")
)

type loadError struct {
	name  string
	cause error
}

func (e *loadError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrSampleLoad, e.name, e.cause)
}

func (e *loadError) Is(target error) bool {
	return target == ErrSampleLoad
}

func (e *loadError) Unwrap() error {
	return e.cause
}

// Cause is for github.com/pkg/errors.Cause.
func (e *loadError) Cause() error {
	return e.cause
}
