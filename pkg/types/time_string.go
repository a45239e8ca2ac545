package types

import (
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// TimeString время суток в формате HH:MM с точностью до минуты.
// Хранится как строка, чтобы совпадать с wire-форматом и схемой БД.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString парсит строку HH:MM и возвращает TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if _, err := ts.Minutes(); err != nil {
		return "", err
	}
	return ts, nil
}

// Minutes возвращает количество минут с начала суток.
// Допускает значения от 00:00 до 24:00 включительно (24:00 — верхняя граница сетки).
func (t TimeString) Minutes() (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("invalid time string %q: %v", string(t), err)
	}
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("invalid time string %q: want HH:MM", string(t))
	}
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time string %q: out of range", string(t))
	}
	total := hour*60 + minute
	if total > MinutesPerDay {
		return 0, fmt.Errorf("invalid time string %q: beyond 24:00", string(t))
	}
	return total, nil
}

// IsValid проверяет, что значение парсится как HH:MM
func (t TimeString) IsValid() bool {
	_, err := t.Minutes()
	return err == nil
}

// IsBefore строгое сравнение: t < other
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter строгое сравнение: t > other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

// AddMinutes возвращает время, сдвинутое на m минут вперед
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total > MinutesPerDay {
		return "", fmt.Errorf("time %q + %d minutes is out of day bounds", string(t), m)
	}
	return FromMinutes(total), nil
}

// FromMinutes строит TimeString из количества минут с начала суток
func FromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

func (t TimeString) String() string {
	return string(t)
}
