package main

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/d3vpratap/zeotap/contracts"
)

var decimalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber parses a display value as a decimal number.
// Values that are not plain decimals are not numbers; aggregates skip them.
// A numeric prefix is not enough: "12abc" and " 3 apples" are text.
func ParseNumber(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if !decimalRegex.MatchString(value) {
		return 0, false
	}

	number, err := strconv.ParseFloat(value, 64)
	return number, err == nil
}

const (
	exponentFormatMin = 1e-6
	exponentFormatMax = 1e21
)

// FormatNumber prints the shortest decimal that round-trips. Magnitudes of
// 1e21 and above or below 1e-6 use exponent form ("1e+21", "1.5e-7").
func FormatNumber(number float64) string {
	magnitude := math.Abs(number)
	if magnitude == 0 || (magnitude >= exponentFormatMin && magnitude < exponentFormatMax) {
		return strconv.FormatFloat(number, 'f', -1, 64)
	}

	text := strconv.FormatFloat(number, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(text, "e")
	sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

func numericValues(cells []contracts.Cell) []float64 {
	numbers := make([]float64, 0, len(cells))
	for _, cell := range cells {
		if number, ok := ParseNumber(cell.Value); ok {
			numbers = append(numbers, number)
		}
	}
	return numbers
}

func calculateSum(cells []contracts.Cell) string {
	sum := 0.0
	for _, number := range numericValues(cells) {
		sum += number
	}
	return FormatNumber(sum)
}

func calculateAverage(cells []contracts.Cell) string {
	numbers := numericValues(cells)
	if len(numbers) == 0 {
		return contracts.ErrorDiv0
	}

	sum := 0.0
	for _, number := range numbers {
		sum += number
	}
	return FormatNumber(sum / float64(len(numbers)))
}

func calculateMax(cells []contracts.Cell) string {
	numbers := numericValues(cells)
	if len(numbers) == 0 {
		return contracts.ErrorNA
	}

	maxValue := numbers[0]
	for _, number := range numbers[1:] {
		maxValue = max(maxValue, number)
	}
	return FormatNumber(maxValue)
}

func calculateMin(cells []contracts.Cell) string {
	numbers := numericValues(cells)
	if len(numbers) == 0 {
		return contracts.ErrorNA
	}

	minValue := numbers[0]
	for _, number := range numbers[1:] {
		minValue = min(minValue, number)
	}
	return FormatNumber(minValue)
}

func calculateCount(cells []contracts.Cell) string {
	return strconv.Itoa(len(numericValues(cells)))
}

func trimText(cell contracts.Cell) string {
	return strings.TrimSpace(cell.Value)
}

func upperText(cell contracts.Cell) string {
	return strings.ToUpper(cell.Value)
}

func lowerText(cell contracts.Cell) string {
	return strings.ToLower(cell.Value)
}
