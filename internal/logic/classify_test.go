package logic

import (
	"testing"
	"time"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     Kind
	}{
		{1 * time.Millisecond, KindShort},
		{1499 * time.Millisecond, KindShort},
		{1500 * time.Millisecond, KindMedium},
		{2500 * time.Millisecond, KindMedium},
		{3999 * time.Millisecond, KindMedium},
		{4000 * time.Millisecond, KindLong},
		{4001 * time.Millisecond, KindLong},
		{10 * time.Second, KindLong},
	}

	for _, tt := range tests {
		if got := Classify(tt.duration); got != tt.want {
			t.Errorf("Classify(%v): got %s, want %s", tt.duration, got, tt.want)
		}
	}
}

func TestBlinkPeriodBuckets(t *testing.T) {
	tests := []struct {
		count int
		want  time.Duration
	}{
		{1, 1000 * time.Millisecond},
		{2, 2000 * time.Millisecond},
		{3, 3000 * time.Millisecond},
		{5, 3000 * time.Millisecond},
		{100, 3000 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := BlinkPeriod(tt.count); got != tt.want {
			t.Errorf("BlinkPeriod(%d): got %v, want %v", tt.count, got, tt.want)
		}
	}
}
