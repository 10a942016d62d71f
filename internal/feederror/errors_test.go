package feederror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *TransportError
		want string
	}{
		{
			name: "wrapped cause",
			err:  &TransportError{URL: "https://example.com/feed", Err: errors.New("connection refused")},
			want: "transport error fetching https://example.com/feed: connection refused",
		},
		{
			name: "http status",
			err:  &TransportError{URL: "https://example.com/feed", Status: 403},
			want: "transport error fetching https://example.com/feed: status 403",
		},
		{
			name: "reason only",
			err:  &TransportError{URL: "https://example.com/feed", Reason: `non-CSV content type "text/html"`},
			want: `transport error fetching https://example.com/feed: non-CSV content type "text/html"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := &TransportError{URL: "https://example.com/feed", Err: cause}

	assert.ErrorIs(t, err, cause)
}

func TestDataFormatErrorEnumeratesColumns(t *testing.T) {
	err := &DataFormatError{MissingColumns: []string{"last date", "category"}}

	assert.Equal(t,
		"Data Format Error: The spreadsheet is missing the following required columns: last date, category. Please correct the sheet format.",
		err.Error())
}

func TestClassify(t *testing.T) {
	formatErr := &DataFormatError{MissingColumns: []string{"job title"}}

	tests := []struct {
		name        string
		err         error
		wantKind    Kind
		wantMessage string
	}{
		{
			name:        "transport",
			err:         &TransportError{URL: "https://example.com/feed", Status: 500},
			wantKind:    KindTransport,
			wantMessage: TransportMessage,
		},
		{
			name:        "wrapped transport",
			err:         fmt.Errorf("refreshing feed: %w", &TransportError{URL: "https://example.com/feed", Status: 404}),
			wantKind:    KindTransport,
			wantMessage: TransportMessage,
		},
		{
			name:        "data format passes through verbatim",
			err:         formatErr,
			wantKind:    KindDataFormat,
			wantMessage: formatErr.Error(),
		},
		{
			name:        "anything else",
			err:         errors.New("slice bounds out of range"),
			wantKind:    KindUnexpected,
			wantMessage: UnexpectedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, message := Classify(tt.err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
