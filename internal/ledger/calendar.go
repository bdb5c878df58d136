package ledger

import (
	"net/url"
	"time"

	"example.com/budget-tracker/backend/internal/models"
)

const (
	recurrenceMonthly = "RRULE:FREQ=MONTHLY"
	recurrenceYearly  = "RRULE:FREQ=YEARLY"

	calendarRenderURL = "https://calendar.google.com/calendar/render"
	calendarTimeStamp = "20060102T150405Z"
)

// CalendarEvent — платеж подписки как событие внешнего календаря.
// Сборка события — чистое преобразование; отправкой во внешний сервис
// занимается клиент по полученной ссылке.
type CalendarEvent struct {
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Recurrence string    `json:"recurrence"`
}

// BuildCalendarExport собирает событие длительностью один час, начиная
// с даты платежа. Правило повторения выбирается по частоте: monthly —
// каждый месяц, любое другое значение — раз в год.
func BuildCalendarExport(sub models.Subscription) CalendarEvent {
	start := sub.EntryDate.UTC()

	recurrence := recurrenceYearly
	if sub.Frequency == models.FrequencyMonthly {
		recurrence = recurrenceMonthly
	}

	return CalendarEvent{
		Title:      sub.Description,
		Start:      start,
		End:        start.Add(time.Hour),
		Recurrence: recurrence,
	}
}

// RenderURL возвращает событие в виде ссылки на форму внешнего календаря.
func (e CalendarEvent) RenderURL() string {
	query := url.Values{}
	query.Set("action", "TEMPLATE")
	query.Set("text", e.Title)
	query.Set("dates", e.Start.Format(calendarTimeStamp)+"/"+e.End.Format(calendarTimeStamp))
	query.Set("recur", e.Recurrence)

	return calendarRenderURL + "?" + query.Encode()
}
