// Package domain contains the core data types of the dashboard gateway.
// Types here describe what the upstream backend owns (condominiums,
// maintenances, activities) plus the local submission ledger. Input types
// carry their own validation so every layer sees the same rules.
package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// cnpjLength is the number of digits in a Brazilian company registry number.
const cnpjLength = 14

// Condominium is a managed property as returned by the upstream backend.
// The maintenance amounts are computed upstream.
type Condominium struct {
	ID                       int64
	Name                     string
	CNPJ                     string
	Address                  string
	Phone                    string
	Units                    int
	PendingMaintenanceAmount int
	OverdueMaintenanceAmount int
}

// NewCondominium is the input for registering a condominium.
type NewCondominium struct {
	Name    string `json:"name" validate:"required"`
	CNPJ    string `json:"cnpj" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone"`
	Units   int    `json:"units" validate:"gte=1"`

	// IdempotencyKey overrides the derived key when the caller already
	// computed one. Empty means derive it from Name and CNPJ.
	IdempotencyKey string `json:"-"`
}

// Normalize returns a copy with surrounding whitespace removed from every
// text field.
func (n NewCondominium) Normalize() NewCondominium {
	n.Name = strings.TrimSpace(n.Name)
	n.CNPJ = strings.TrimSpace(n.CNPJ)
	n.Address = strings.TrimSpace(n.Address)
	n.Phone = strings.TrimSpace(n.Phone)
	return n
}

// Validate checks required fields, the unit count, and that the CNPJ has
// exactly 14 digits once punctuation is stripped.
func (n NewCondominium) Validate() error {
	if err := validateStruct(n.Normalize()); err != nil {
		return err
	}
	if d := CNPJDigits(n.CNPJ); len(d) != cnpjLength {
		return fmt.Errorf("%w: cnpj must have %d digits", ErrValidation, cnpjLength)
	}
	return nil
}

// CNPJDigits strips everything but digits from s, so "12.345.678/0001-95"
// and "12345678000195" compare equal.
func CNPJDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
