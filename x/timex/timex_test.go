package timex

import (
	"context"
	"testing"
	"time"
)

func TestPeriodFromHz(t *testing.T) {
	if got := PeriodFromHz(1000); got != 1_000_000 {
		t.Fatalf("1kHz period = %d", got)
	}
	if got := PeriodFromHz(0); got != uint64(time.Second) {
		t.Fatalf("0Hz period = %d", got)
	}
}

func TestSleepHonoursContext(t *testing.T) {
	if !Sleep(context.Background(), time.Millisecond) {
		t.Fatal("live context should complete the sleep")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	if Sleep(ctx, time.Second) {
		t.Fatal("cancelled context should abort the sleep")
	}
	if time.Since(start) > 200*time.Millisecond {
		t.Fatal("cancelled sleep did not return promptly")
	}
	if Sleep(ctx, 0) {
		t.Fatal("zero sleep on cancelled context should report false")
	}
}
