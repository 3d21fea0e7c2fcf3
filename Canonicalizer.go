package main

import (
	"strings"
)

// Canonicalizer turns user supplied identifiers into the keys used for
// storage and webhook subscriptions
type Canonicalizer struct {
	sheetIdReplacer *strings.Replacer
}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{
		sheetIdReplacer: strings.NewReplacer(" ", "", "\t", "", "\n", ""),
	}
}

// CanonicalizeSheetId makes sheet ids case insensitive
func (c *Canonicalizer) CanonicalizeSheetId(sheetId string) string {
	return c.sheetIdReplacer.Replace(strings.ToLower(sheetId))
}

// CanonicalizeCellId rewrites any accepted spelling of an address ("b2", " B2 ")
// as its upper case form
func (c *Canonicalizer) CanonicalizeCellId(cellId string) (string, error) {
	address, err := DecodeAddress(strings.TrimSpace(cellId))
	if err != nil {
		return "", err
	}
	return EncodeAddress(address.Row, address.Col), nil
}
