package services

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateReviewInput(t *testing.T) {
	tests := []struct {
		name    string
		rating  float64
		content string
		wantErr error
	}{
		{
			name:    "valid whole rating",
			rating:  4,
			content: "Great show.",
			wantErr: nil,
		},
		{
			name:    "valid fractional rating",
			rating:  3.5,
			content: "Solid.",
			wantErr: nil,
		},
		{
			name:    "zero rating rejected",
			rating:  0,
			content: "Unrated but written.",
			wantErr: ErrInvalidRating,
		},
		{
			name:    "negative rating rejected",
			rating:  -1,
			content: "Bad input.",
			wantErr: ErrInvalidRating,
		},
		{
			name:    "rating above five rejected",
			rating:  5.5,
			content: "Too enthusiastic.",
			wantErr: ErrInvalidRating,
		},
		{
			name:    "boundary rating five accepted",
			rating:  5,
			content: "Perfect.",
			wantErr: nil,
		},
		{
			name:    "empty content rejected",
			rating:  4,
			content: "",
			wantErr: ErrEmptyContent,
		},
		{
			name:    "whitespace-only content rejected",
			rating:  4,
			content: "   \n\t",
			wantErr: ErrEmptyContent,
		},
		{
			name:    "content at limit accepted",
			rating:  4,
			content: strings.Repeat("a", MaxReviewContentLength),
			wantErr: nil,
		},
		{
			name:    "content over limit rejected",
			rating:  4,
			content: strings.Repeat("a", MaxReviewContentLength+1),
			wantErr: ErrContentTooLong,
		},
		{
			name:    "multibyte content at limit accepted",
			rating:  4,
			content: strings.Repeat("é", MaxReviewContentLength),
			wantErr: nil,
		},
		{
			name:    "multibyte content over limit rejected",
			rating:  4,
			content: strings.Repeat("é", MaxReviewContentLength+1),
			wantErr: ErrContentTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReviewInput(tt.rating, tt.content)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateReviewInput(%v, ...) = %v, want %v", tt.rating, err, tt.wantErr)
			}
		})
	}
}
