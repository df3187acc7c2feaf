package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple id", "TRACK_1", false},
		{"with dots", "zone.west", false},
		{"empty", "", true},
		{"path traversal", "../etc", true},
		{"path separator", "a/b", true},
		{"backslash", "a\\b", true},
		{"control character", "a\x01b", true},
		{"null byte", "a\x00b", true},
		{"too long", strings.Repeat("x", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidNode) {
				t.Errorf("ValidateNodeID(%q) code = %v, want %v", tt.id, GetCode(err), ErrCodeInvalidNode)
			}
		})
	}
}

func TestValidateSignalDistance(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		wantErr  bool
	}{
		{"default", 500, false},
		{"small positive", 0.5, false},
		{"zero", 0, true},
		{"negative", -100, true},
		{"nan", math.NaN(), true},
		{"absurdly large", 1e9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSignalDistance(tt.distance)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSignalDistance(%g) error = %v, wantErr %v", tt.distance, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"dot", "svg", "png", "json", "SVG"} {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("ValidateFormat(%q) error = %v, want nil", format, err)
		}
	}

	for _, format := range []string{"", "gif", "pdf"} {
		err := ValidateFormat(format)
		if err == nil {
			t.Errorf("ValidateFormat(%q) = nil, want error", format)
		}
		if !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want %v", format, GetCode(err), ErrCodeInvalidFormat)
		}
	}
}

func TestValidateStationName(t *testing.T) {
	if err := ValidateStationName("Central Station"); err != nil {
		t.Errorf("ValidateStationName() error = %v, want nil", err)
	}
	if err := ValidateStationName(""); err == nil {
		t.Error("ValidateStationName(\"\") = nil, want error")
	}
}
