// utils/fechas_test.go
package utils

import (
	"testing"
	"time"
)

func TestParseFecha(t *testing.T) {
	dia, err := ParseFecha("2025-09-01")
	if err != nil {
		t.Fatalf("ParseFecha: %v", err)
	}
	if dia.Year() != 2025 || dia.Month() != time.September || dia.Day() != 1 {
		t.Errorf("got %v", dia)
	}
	if dia.Hour() != 0 || dia.Minute() != 0 {
		t.Errorf("bare day should start at midnight, got %v", dia)
	}

	instante, err := ParseFecha("2025-09-01T18:30:00Z")
	if err != nil {
		t.Fatalf("ParseFecha RFC3339: %v", err)
	}
	if instante.Hour() != 18 || instante.Minute() != 30 {
		t.Errorf("got %v", instante)
	}

	for _, s := range []string{"", "01/09/2025", "2025-13-40", "ayer"} {
		if _, err := ParseFecha(s); err == nil {
			t.Errorf("ParseFecha(%q): expected an error", s)
		}
	}
}

func TestRangoDia(t *testing.T) {
	instante := time.Date(2025, time.September, 1, 18, 30, 45, 0, time.UTC)
	inicio, fin := RangoDia(instante)

	if !inicio.Equal(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("inicio = %v", inicio)
	}
	if !fin.Equal(time.Date(2025, time.September, 1, 23, 59, 59, 999000000, time.UTC)) {
		t.Errorf("fin = %v", fin)
	}
	if !instante.After(inicio) || !instante.Before(fin) {
		t.Errorf("instant outside its own day: %v not in [%v, %v]", instante, inicio, fin)
	}
}
