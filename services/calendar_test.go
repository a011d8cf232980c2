package services

import (
	"errors"
	"testing"
	"time"
)

func TestStayDates_HalfOpenRange(t *testing.T) {
	dates, err := StayDates(day("2025-06-01"), day("2025-06-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("expected 2 stay dates, got %d", len(dates))
	}
	if !dates[0].Equal(day("2025-06-01")) || !dates[1].Equal(day("2025-06-02")) {
		t.Errorf("expected [2025-06-01 2025-06-02], got %v", dates)
	}
}

func TestStayDates_SingleNight(t *testing.T) {
	dates, err := StayDates(day("2025-06-01"), day("2025-06-02"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 1 || !dates[0].Equal(day("2025-06-01")) {
		t.Errorf("expected one date 2025-06-01, got %v", dates)
	}
}

func TestStayDates_RejectsEqualDates(t *testing.T) {
	_, err := StayDates(day("2025-06-01"), day("2025-06-01"))
	if !errors.Is(err, ErrInvalidStayRange) {
		t.Errorf("expected ErrInvalidStayRange, got %v", err)
	}
}

func TestStayDates_RejectsInvertedRange(t *testing.T) {
	_, err := StayDates(day("2025-06-03"), day("2025-06-01"))
	if !errors.Is(err, ErrInvalidStayRange) {
		t.Errorf("expected ErrInvalidStayRange, got %v", err)
	}
}

func TestStayDates_IgnoresTimeComponent(t *testing.T) {
	in := day("2025-06-01").Add(15 * time.Hour)  // 15:00 check-in
	out := day("2025-06-02").Add(11 * time.Hour) // 11:00 check-out
	dates, err := StayDates(in, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dates) != 1 || !dates[0].Equal(day("2025-06-01")) {
		t.Errorf("expected one date 2025-06-01, got %v", dates)
	}
}
