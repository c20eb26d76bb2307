package handlers

import (
	"testing"
	"time"
)

func TestRevenueDateKey(t *testing.T) {
	day := time.Date(2024, time.March, 7, 23, 59, 0, 0, time.Local)
	if got := revenueDateKey(day); got != "2024-03-07" {
		t.Fatalf("expected 2024-03-07, got %q", got)
	}
}

func TestRevenueDateKeySameDayCollapses(t *testing.T) {
	morning := time.Date(2024, time.March, 7, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, time.March, 7, 20, 30, 0, 0, time.Local)
	if revenueDateKey(morning) != revenueDateKey(evening) {
		t.Fatal("orders on the same calendar day must share one ledger key")
	}

	nextDay := time.Date(2024, time.March, 8, 0, 1, 0, 0, time.Local)
	if revenueDateKey(evening) == revenueDateKey(nextDay) {
		t.Fatal("a new calendar day must use a new ledger key")
	}
}
