// utils/fechas.go - date parsing shared by handlers
package utils

import (
	"fmt"
	"time"
)

// ParseFecha accepts the two formats clients actually send: a bare day
// ("2025-09-01") or a full RFC3339 timestamp.
func ParseFecha(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q (se espera YYYY-MM-DD o RFC3339)", s)
}

// RangoDia returns the inclusive bounds of the day containing t, from
// 00:00:00.000 to 23:59:59.999.
func RangoDia(t time.Time) (time.Time, time.Time) {
	inicio := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	fin := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
	return inicio, fin
}
