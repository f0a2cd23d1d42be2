package service

import (
	"math"
	"strconv"
	"strings"
)

const tracerPrefix = "github.com/noah-isme/school-fees/internal/service/"

func parseAmount(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrSyntax
	}
	return value, nil
}

// parseID accepts plain decimal digits only. Signs such as "+2" are rejected.
func parseID(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
