package domain

import "time"

// Interval полуоткрытый временной интервал [Start, End)
// Полуоткрытость позволяет стыковать заказы впритык:
// возврат одного в момент выдачи другого конфликтом не считается
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval is non-empty (End strictly after Start)
func (i Interval) IsValid() bool {
	return i.End.After(i.Start)
}

// Overlaps reports whether two half-open intervals share at least one instant
// [a,b) и [c,d) пересекаются тогда и только тогда, когда a < d && c < b
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// HasConflict проверяет, пересекается ли кандидат хотя бы с одним
// активным заказом; завершенные и отмененные заказы слот не занимают
func HasConflict(candidate Interval, orders []*Order) bool {
	for _, o := range orders {
		if !o.IsActive() {
			continue
		}
		if candidate.Overlaps(o.Interval()) {
			return true
		}
	}
	return false
}
