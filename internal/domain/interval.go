package domain

import (
	"sort"
	"time"
)

// TimeInterval полуоткрытый интервал времени [Start, End)
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// IsValid проверяет, что End строго позже Start
func (i TimeInterval) IsValid() bool {
	return i.End.After(i.Start)
}

// Duration возвращает длительность интервала
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps проверяет реальное пересечение с other
// Граничные интервалы (конец одного == начало другого) пересечением не считаются
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains проверяет, что other целиком лежит внутри интервала
func (i TimeInterval) Contains(other TimeInterval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// MergeIntervals склеивает пересекающиеся и смежные интервалы
// Вход не обязан быть отсортированным, некорректные интервалы отбрасываются.
// Результат отсортирован по возрастанию Start и не содержит пересечений
func MergeIntervals(intervals []TimeInterval) []TimeInterval {
	valid := make([]TimeInterval, 0, len(intervals))
	for _, i := range intervals {
		if i.IsValid() {
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return []TimeInterval{}
	}

	sort.Slice(valid, func(a, b int) bool {
		return valid[a].Start.Before(valid[b].Start)
	})

	merged := []TimeInterval{valid[0]}
	for _, cur := range valid[1:] {
		last := &merged[len(merged)-1]
		// Смежные интервалы (cur.Start == last.End) тоже склеиваем
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}

	return merged
}

// SubtractIntervals вычитает busy из open и возвращает свободные окна
// Оба входа должны быть упорядочены; busy предварительно склеивается.
// Результат отсортирован и не содержит пересечений
func SubtractIntervals(open, busy []TimeInterval) []TimeInterval {
	busy = MergeIntervals(busy)

	free := make([]TimeInterval, 0, len(open))
	for _, window := range open {
		if !window.IsValid() {
			continue
		}

		cursor := window.Start
		for _, b := range busy {
			if !b.Overlaps(TimeInterval{Start: cursor, End: window.End}) {
				continue
			}
			if b.Start.After(cursor) {
				free = append(free, TimeInterval{Start: cursor, End: b.Start})
			}
			if b.End.After(cursor) {
				cursor = b.End
			}
		}

		if cursor.Before(window.End) {
			free = append(free, TimeInterval{Start: cursor, End: window.End})
		}
	}

	return free
}
