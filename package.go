package ftracker

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutCode is returned for a code other than SWM, RUN or WLK
	ErrUnknownWorkoutCode = errors.New("unknown workout code")
	// ErrArityMismatch is returned when the number of values does not fit the workout code
	ErrArityMismatch = errors.New("wrong number of values")
)

// Code identifies the kind of training reported by a sensor
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

// Codes lists every supported workout code
var Codes = []Code{CodeSwimming, CodeRunning, CodeWalking}

// ParseCode validates a raw workout code
func ParseCode(s string) (Code, error) {
	switch c := Code(s); c {
	case CodeSwimming, CodeRunning, CodeWalking:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWorkoutCode, s)
}

// Arity returns the number of values expected for the code
func (c Code) Arity() int {
	switch c {
	case CodeSwimming:
		return 5
	case CodeRunning:
		return 3
	case CodeWalking:
		return 4
	}
	return 0
}

// Package is one batch of raw readings as sent by a sensor
type Package struct {
	Code   string    `json:"code" binding:"required"`
	Values []float64 `json:"values" binding:"required"`
}

// ReadPackage builds the training described by the package
func ReadPackage(pkg Package) (Training, error) {
	return Build(pkg.Code, pkg.Values)
}

// Build binds the positional values to the training selected by code.
// Values are ordered action, duration, weight followed by the
// kind specific fields: height for WLK, pool length and pool count for SWM.
func Build(code string, values []float64) (Training, error) {
	c, err := ParseCode(code)
	if err != nil {
		return nil, err
	}
	if n := c.Arity(); len(values) != n {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrArityMismatch, c, n, len(values))
	}
	w := Workout{
		Action:   int(values[0]),
		Duration: values[1],
		Weight:   values[2],
	}
	switch c {
	case CodeSwimming:
		return &Swimming{Workout: w, LengthPool: values[3], CountPool: values[4]}, nil
	case CodeRunning:
		return &Running{Workout: w}, nil
	case CodeWalking:
		return &SportsWalking{Workout: w, Height: values[3]}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWorkoutCode, code)
}
