package ledger

import (
	"strings"
	"testing"
	"time"

	"example.com/budget-tracker/backend/internal/models"
)

// TestBuildCalendarExportMonthly проверяет событие с месячным повторением.
func TestBuildCalendarExportMonthly(t *testing.T) {
	sub := subscription("Streaming", 1500, "2024-04-01", models.FrequencyMonthly)

	event := BuildCalendarExport(sub)
	if event.Title != "Streaming" {
		t.Fatalf("expected title Streaming, got %s", event.Title)
	}
	if event.Recurrence != "RRULE:FREQ=MONTHLY" {
		t.Fatalf("expected monthly recurrence, got %s", event.Recurrence)
	}
	if event.End.Sub(event.Start) != time.Hour {
		t.Fatalf("expected one hour duration, got %s", event.End.Sub(event.Start))
	}
}

// TestBuildCalendarExportYearlyFallback проверяет, что любая частота,
// кроме monthly, дает годовое повторение.
func TestBuildCalendarExportYearlyFallback(t *testing.T) {
	sub := subscription("Hosting", 500, "2024-04-15", models.FrequencyYearly)
	if event := BuildCalendarExport(sub); event.Recurrence != "RRULE:FREQ=YEARLY" {
		t.Fatalf("expected yearly recurrence, got %s", event.Recurrence)
	}

	sub.Frequency = "weekly"
	if event := BuildCalendarExport(sub); event.Recurrence != "RRULE:FREQ=YEARLY" {
		t.Fatalf("expected yearly fallback, got %s", event.Recurrence)
	}
}

// TestCalendarEventRenderURL проверяет сборку ссылки на внешний календарь.
func TestCalendarEventRenderURL(t *testing.T) {
	sub := subscription("Music Plan", 999, "2024-04-01", models.FrequencyMonthly)

	rendered := BuildCalendarExport(sub).RenderURL()
	if !strings.HasPrefix(rendered, "https://calendar.google.com/calendar/render?") {
		t.Fatalf("unexpected url prefix: %s", rendered)
	}
	if !strings.Contains(rendered, "text=Music+Plan") {
		t.Fatalf("expected encoded title in url: %s", rendered)
	}
	if !strings.Contains(rendered, "dates=20240401T000000Z%2F20240401T010000Z") {
		t.Fatalf("expected one hour window in url: %s", rendered)
	}
	if !strings.Contains(rendered, "recur=RRULE%3AFREQ%3DMONTHLY") {
		t.Fatalf("expected recurrence rule in url: %s", rendered)
	}
}
