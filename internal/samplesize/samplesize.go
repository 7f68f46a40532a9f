package samplesize

import (
	"errors"
	"fmt"
	"math"
)

// MaxFactor is the largest factor FindBestSampleSize will return.
const MaxFactor = 1 << 30

var ErrInvalidArgument = errors.New("invalid argument")

type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

type Result struct {
	Factor  int
	Actual  Size
	Desired Size
}

// Scaled returns the dimensions a decoder produces when it keeps every
// Factor-th pixel of the actual image.
func (r Result) Scaled() Size {
	return Size{
		Width:  r.Actual.Width / r.Factor,
		Height: r.Actual.Height / r.Factor,
	}
}

// CalculateScaleValue returns the power-of-two sample factor for an image of
// actualWidth x actualHeight that should be shown within targetWidth x
// targetHeight. A target of 0 leaves that axis unconstrained.
func CalculateScaleValue(targetWidth, targetHeight, actualWidth, actualHeight int) (int, error) {
	r, err := Calculate(
		Size{Width: targetWidth, Height: targetHeight},
		Size{Width: actualWidth, Height: actualHeight},
	)
	if err != nil {
		return 0, err
	}
	return r.Factor, nil
}

func Calculate(target, actual Size) (Result, error) {
	if err := validate(target, actual); err != nil {
		return Result{}, err
	}

	if target.Width == 0 && target.Height == 0 {
		return Result{Factor: 1, Actual: actual, Desired: actual}, nil
	}

	desired := Size{
		Width:  ResizeDimension(target.Width, target.Height, actual.Width, actual.Height),
		Height: ResizeDimension(target.Height, target.Width, actual.Height, actual.Width),
	}

	return Result{
		Factor:  FindBestSampleSize(actual.Width, actual.Height, desired.Width, desired.Height),
		Actual:  actual,
		Desired: desired,
	}, nil
}

func validate(target, actual Size) error {
	if actual.Width <= 0 || actual.Height <= 0 {
		return fmt.Errorf("actual size must be positive, got %s: %w", actual, ErrInvalidArgument)
	}
	if target.Width < 0 || target.Height < 0 {
		return fmt.Errorf("target size must not be negative, got %s: %w", target, ErrInvalidArgument)
	}
	return nil
}

// ResizeDimension fits the primary axis of an image into the given caps while
// keeping its aspect ratio. A cap of 0 means that axis is unconstrained.
func ResizeDimension(maxPrimary, maxSecondary, actualPrimary, actualSecondary int) int {
	if maxPrimary == 0 && maxSecondary == 0 {
		return actualPrimary
	}

	if maxPrimary == 0 {
		ratio := float64(maxSecondary) / float64(actualSecondary)
		return int(float64(actualPrimary) * ratio)
	}

	if maxSecondary == 0 {
		return maxPrimary
	}

	ratio := float64(actualSecondary) / float64(actualPrimary)
	resized := maxPrimary
	if float64(resized)*ratio > float64(maxSecondary) {
		resized = int(float64(maxSecondary) / ratio)
	}
	return resized
}

// FindBestSampleSize returns the largest power of two that does not shrink
// the actual size below the desired size on either axis.
func FindBestSampleSize(actualWidth, actualHeight, desiredWidth, desiredHeight int) int {
	wr := float64(actualWidth) / float64(desiredWidth)
	hr := float64(actualHeight) / float64(desiredHeight)
	ratio := math.Min(wr, hr)

	n := 1
	for n < MaxFactor && float64(n*2) <= ratio {
		n *= 2
	}
	return n
}
