package analytics

import (
	"testing"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    Window
		wantErr bool
	}{
		{in: "", want: WindowAll},
		{in: "full", want: WindowAll},
		{in: "Daily", want: WindowDay},
		{in: "month", want: WindowMonth},
		{in: "YEAR", want: WindowYear},
		{in: "week", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWindow(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWindow(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseWindow(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWindowApply(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = float64(i)
	}
	s := series(values...)
	asOf := s.Day(34)

	tests := []struct {
		w         Window
		wantLen   int
		wantFirst float64
	}{
		{w: WindowAll, wantLen: 35, wantFirst: 0},
		{w: WindowDay, wantLen: 1, wantFirst: 34},
		{w: WindowMonth, wantLen: 30, wantFirst: 5},
		{w: WindowYear, wantLen: 35, wantFirst: 0},
	}
	for _, tt := range tests {
		t.Run(tt.w.String(), func(t *testing.T) {
			got := tt.w.Apply(s, asOf)
			if got.Len() != tt.wantLen {
				t.Fatalf("Apply() Len = %d, want %d", got.Len(), tt.wantLen)
			}
			if _, first := got.First(); first != tt.wantFirst {
				t.Errorf("Apply() first = %v, want %v", first, tt.wantFirst)
			}
			if last, _ := got.Latest(); last != asOf {
				t.Errorf("Apply() last date = %v, want %v", last, asOf)
			}
		})
	}
}

func TestLookback(t *testing.T) {
	values := make([]float64, 800)
	s := series(values...)
	if got := Lookback(s, 1).Len(); got != 366 {
		t.Errorf("Lookback(1) Len = %d, want 366", got)
	}
	if got := Lookback(s, 0).Len(); got != 800 {
		t.Errorf("Lookback(0) Len = %d, want 800", got)
	}
}
