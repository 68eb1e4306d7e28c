package loader

import (
	"testing"

	"github.com/etnz/analytics/date"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    date.Date
		wantErr bool
	}{
		{in: "2025-08-31", want: date.New(2025, 8, 31)},
		{in: "2025-8-1", want: date.New(2025, 8, 1)},
		{in: "2025-03-26 00:00:00", want: date.New(2025, 3, 26)},
		{in: "2025-T2", want: date.New(2025, 6, 30)},
		{in: "2024-T4", want: date.New(2024, 12, 31)},
		{in: "2024-02", want: date.New(2024, 2, 29)},
		{in: "2025-T5", wantErr: true},
		{in: "2025-13", wantErr: true},
		{in: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
