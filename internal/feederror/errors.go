// Package feederror defines the error taxonomy for the feed ingestion pipeline.
// Errors are classified at the fetch boundary into one of three kinds so the
// presentation layer only ever sees a single message string plus a kind tag.
package feederror

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tags an error with its user-facing classification.
type Kind string

const (
	KindTransport  Kind = "transport"
	KindDataFormat Kind = "data_format"
	KindUnexpected Kind = "unexpected"
)

// TransportMessage is shown for any network-level failure. The wording is
// deliberately end-user oriented; the underlying cause is only logged.
const TransportMessage = "Network Error: Could not connect to the data source. " +
	"Please check your internet connection and try again. If the problem persists, " +
	"the data sheet may be private or unavailable."

// UnexpectedMessage is shown for failures that fit neither of the other kinds.
const UnexpectedMessage = "An unknown error occurred while fetching the feed."

// TransportError represents a network-level failure: the request itself failed,
// the response had a non-2xx status, or the body was not CSV content.
type TransportError struct {
	URL    string
	Status int
	Reason string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error fetching %s: %v", e.URL, e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("transport error fetching %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("transport error fetching %s: %s", e.URL, e.Reason)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DataFormatError represents a structurally unusable feed: required columns
// are absent. It is not retryable without fixing the source, and its message
// must reach the end user verbatim, enumerating the missing columns.
type DataFormatError struct {
	MissingColumns []string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("Data Format Error: The spreadsheet is missing the following required columns: %s. Please correct the sheet format.",
		strings.Join(e.MissingColumns, ", "))
}

// Classify maps an arbitrary pipeline error to its kind and the message to
// surface to the user. DataFormatError messages pass through verbatim; all
// other errors collapse to a fixed string for their kind.
func Classify(err error) (Kind, string) {
	var transport *TransportError
	if errors.As(err, &transport) {
		return KindTransport, TransportMessage
	}
	var format *DataFormatError
	if errors.As(err, &format) {
		return KindDataFormat, format.Error()
	}
	return KindUnexpected, UnexpectedMessage
}
