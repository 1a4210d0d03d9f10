package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

type (
	EntryType string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// EntryDraft carries the caller-supplied fields accepted by add and
	// update. Identity and the edited flag are owned by the ledger.
	EntryDraft struct {
		Description string
		Amount      Money
		Type        EntryType
		Category    string
		OccurredOn  Date
	}

	// Entry is one recorded income or expense event. Amount is always a
	// non-negative magnitude; direction is carried by Type alone.
	Entry struct {
		ID          string
		Description string
		Amount      Money
		Type        EntryType
		Category    string
		OccurredOn  Date
		Edited      bool // display only, never aggregated
	}
)

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid entry type")
	ErrInvalidCategory  = errors.New("invalid category")
)

// DefaultCategories mirrors the fixed category set offered by the entry form.
var DefaultCategories = []string{"General", "Food", "Bills", "Salary"}

func (t EntryType) Valid() bool {
	return t == Income || t == Expense
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (d EntryDraft) Validate() error {
	if len(strings.TrimSpace(d.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(d.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	if !d.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(d.Category) == "" {
		return ErrInvalidCategory
	}
	return nil
}

// NewDate creates a Date from year, month, day at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ToDate truncates an instant to its calendar date.
func ToDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month, 1-12.
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

// ISO renders the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Time.Format("2006-01-02")
}

// EntryAmountFromSigned converts a signed-cents amount, where the sign
// itself encodes direction, into the canonical magnitude+type pair. This is
// a lossy import path for legacy data only; canonical entries never carry
// direction in the amount.
func EntryAmountFromSigned(cents int64) (Money, EntryType) {
	if cents < 0 {
		return Money{Cents: -cents}, Expense
	}
	return Money{Cents: cents}, Income
}
