package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/d3vpratap/zeotap/contracts"
)

// a column run longer than this overflows any grid the engine can hold
const maxColumnLetters = 12

var addressRegex = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// IsAddressShape reports whether already-uppercased text looks like A1
func IsAddressShape(text string) bool {
	return addressRegex.MatchString(text)
}

// EncodeAddress renders zero-based coordinates as A1 text
func EncodeAddress(row int, col int) string {
	return ColumnLetters(col) + strconv.Itoa(row+1)
}

// DecodeAddress parses A1 text (case-insensitive) into zero-based coordinates.
// Bounds are not checked here: the result may lie outside any grid.
func DecodeAddress(text string) (contracts.Address, error) {
	matches := addressRegex.FindStringSubmatch(strings.ToUpper(text))
	if matches == nil || len(matches[1]) > maxColumnLetters {
		return contracts.Address{}, fmt.Errorf("%s: %w", text, contracts.AddressNotFoundError)
	}

	rowNumber, err := strconv.Atoi(matches[2])
	if err != nil {
		return contracts.Address{}, fmt.Errorf("%s: %w", text, contracts.AddressNotFoundError)
	}

	return contracts.Address{
		Row: rowNumber - 1,
		Col: ColumnIndex(matches[1]),
	}, nil
}

// ColumnLetters maps 0 -> A, 25 -> Z, 26 -> AA (bijective base-26)
func ColumnLetters(col int) string {
	if col < 0 {
		return ""
	}

	var letters []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		letters = append(letters, byte('A'+(n-1)%26))
	}

	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	return string(letters)
}

// ColumnIndex is the inverse of ColumnLetters for uppercase letters
func ColumnIndex(letters string) int {
	index := 0
	for _, char := range letters {
		index = index*26 + int(char-'A'+1)
	}

	return index - 1
}
