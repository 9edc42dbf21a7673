package get_available_slots

import (
	"time"

	"github.com/beautyline/salon-service/internal/domain"
)

// busyIntervals собирает занятые интервалы активных записей мастера
// Пересекающиеся/смежные интервалы склеиваются: инвариант непересечения
// поддерживается на записи, но чтение не должно падать при его нарушении
func busyIntervals(appointments []*domain.Appointment) []domain.TimeInterval {
	intervals := make([]domain.TimeInterval, 0, len(appointments))
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		intervals = append(intervals, appt.Interval())
	}
	return domain.MergeIntervals(intervals)
}

// generateSlots перечисляет времена начала слотов внутри свободных окон
//
// Кандидаты идут с шагом granularity от начала окна; слот допустим, если
// [start, start+duration) целиком помещается в одно окно (слоты никогда
// не перешагивают перерыв) и start строго позже minStart
func generateSlots(free []domain.TimeInterval, duration time.Duration, granularity time.Duration, minStart time.Time) []time.Time {
	slots := make([]time.Time, 0)

	for _, window := range free {
		for candidate := window.Start; ; candidate = candidate.Add(granularity) {
			// Последний допустимый слот заканчивается ровно в window.End
			if candidate.Add(duration).After(window.End) {
				break
			}
			if candidate.After(minStart) {
				slots = append(slots, candidate)
			}
		}
	}

	return slots
}

// dayBounds возвращает границы календарного дня date в зоне loc
func dayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// beyondHorizon проверяет, что дата дальше горизонта бронирования
// advanceBookingDays == 0 означает отсутствие ограничения
func beyondHorizon(date, now time.Time, advanceBookingDays int) bool {
	if advanceBookingDays == 0 {
		return false
	}
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.After(maxDate)
}

// scheduleMisconfigured отличает заполненный, но некорректный день
// от честного выходного: битый день деградирует до выходного, но логируется
func scheduleMisconfigured(day domain.DaySchedule) bool {
	if day.IsWorkable() || day.Closed {
		return false
	}
	return !day.Open.IsZero() || !day.Close.IsZero()
}
