package workflow

import (
	"errors"
	"strings"
)

var (
	// ErrLocationDenied is returned by a Locator when the platform refuses
	// geolocation access. The draft stays non-Ready and the user may retry.
	ErrLocationDenied = errors.New("location access denied")

	// ErrReviewInProgress guards the draft against edits while the
	// read-only review surface is open.
	ErrReviewInProgress = errors.New("review in progress")

	// ErrNotReviewing is returned by Confirm and CancelReview when no
	// review has been requested.
	ErrNotReviewing = errors.New("no review in progress")

	// ErrAnalyzing is returned by RequestReview while image analysis is
	// still in flight.
	ErrAnalyzing = errors.New("image analysis in progress")
)

// ValidationError reports the required submission fields that are still
// missing. It blocks the transition to review and is fully recoverable by
// user input.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Required: " + strings.Join(e.Missing, ", ") + "."
}
