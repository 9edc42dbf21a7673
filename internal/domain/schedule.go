package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/beautyline/salon-service/pkg/types"
)

// DaySchedule расписание работы на один день недели
// Поддерживается ровно один рабочий интервал в день (либо выходной)
type DaySchedule struct {
	Closed bool             `json:"closed,omitempty"`
	Open   types.TimeString `json:"open,omitempty"`
	Close  types.TimeString `json:"close,omitempty"`
}

// IsWorkable проверяет, что день пригоден для расчета слотов
// Некорректные записи (нет open/close, open >= close) считаются выходным,
// а не ошибкой: одна битая строка не должна ломать расчет остальных дней
func (d DaySchedule) IsWorkable() bool {
	if d.Closed || d.Open.IsZero() || d.Close.IsZero() {
		return false
	}
	if d.Open.Validate() != nil || d.Close.Validate() != nil {
		return false
	}
	return d.Open.IsBefore(d.Close)
}

// Validate проверяет корректность дня на пути записи
// В отличие от IsWorkable возвращает детальную ошибку
func (d DaySchedule) Validate() error {
	if d.Closed {
		return nil
	}
	if d.Open.IsZero() && d.Close.IsZero() {
		// День без записи эквивалентен выходному
		return nil
	}
	if err := d.Open.Validate(); err != nil {
		return fmt.Errorf("open: %w", err)
	}
	if err := d.Close.Validate(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if !d.Open.IsBefore(d.Close) {
		return fmt.Errorf("open %s must be before close %s", d.Open, d.Close)
	}
	return nil
}

// OpenIntervalOn возвращает рабочий интервал дня абсолютными моментами
// для даты date в зоне loc. Для выходного/битого дня возвращает ok=false
func (d DaySchedule) OpenIntervalOn(date time.Time, loc *time.Location) (TimeInterval, bool) {
	if !d.IsWorkable() {
		return TimeInterval{}, false
	}

	start, err := d.Open.On(date, loc)
	if err != nil {
		return TimeInterval{}, false
	}
	end, err := d.Close.On(date, loc)
	if err != nil {
		return TimeInterval{}, false
	}

	return TimeInterval{Start: start, End: end}, true
}

// WeekSchedule недельное расписание работы
// Хранится jsonb-колонкой working_hours у салона и (опционально) у мастера
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// ForWeekday возвращает расписание на указанный день недели
func (w WeekSchedule) ForWeekday(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DaySchedule{Closed: true}
	}
}

// Validate проверяет корректность всех дней недели
// Возвращает ошибку с именем первого некорректного дня
func (w WeekSchedule) Validate() error {
	days := []struct {
		name string
		day  DaySchedule
	}{
		{"monday", w.Monday},
		{"tuesday", w.Tuesday},
		{"wednesday", w.Wednesday},
		{"thursday", w.Thursday},
		{"friday", w.Friday},
		{"saturday", w.Saturday},
		{"sunday", w.Sunday},
	}

	for _, d := range days {
		if err := d.day.Validate(); err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
	}
	return nil
}

// Value реализует driver.Valuer для записи jsonb
func (w WeekSchedule) Value() (driver.Value, error) {
	return json.Marshal(w)
}

// Scan реализует sql.Scanner для чтения jsonb
func (w *WeekSchedule) Scan(src interface{}) error {
	if src == nil {
		*w = WeekSchedule{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("schedule: unsupported source type %T", src)
	}

	return json.Unmarshal(data, w)
}

// ResolveDaySchedule возвращает расписание мастера на день недели
// Приоритет: персональное расписание мастера -> расписание салона
func ResolveDaySchedule(override *WeekSchedule, salonHours WeekSchedule, weekday time.Weekday) DaySchedule {
	if override != nil {
		return override.ForWeekday(weekday)
	}
	return salonHours.ForWeekday(weekday)
}
