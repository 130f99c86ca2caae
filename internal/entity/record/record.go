package record

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"max.ks1230/daily-calculator/internal/model/customerr"
)

const (
	dateLayout  = "02.01.2006"
	datePattern = "DD.MM.YYYY"
)

// Record is a single dated amount. The date never carries a time of day.
type Record struct {
	amount  decimal.Decimal
	comment string
	date    time.Time
}

// Day returns the calendar date of t as seen in t's own location,
// as midnight UTC. Two days compare equal regardless of the zones they came from.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// New creates a record dated today.
func New(amount decimal.Decimal, comment string) Record {
	return NewWithDate(amount, comment, time.Now())
}

// NewWithDate keeps only the calendar date of date.
func NewWithDate(amount decimal.Decimal, comment string, date time.Time) Record {
	return Record{
		amount:  amount,
		comment: comment,
		date:    Day(date),
	}
}

// NewWithDateString expects date in DD.MM.YYYY form.
func NewWithDateString(amount decimal.Decimal, comment string, date string) (Record, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return Record{}, &customerr.FormatError{Layout: datePattern, Input: date}
	}
	return NewWithDate(amount, comment, parsed), nil
}

func (r Record) Amount() decimal.Decimal {
	return r.amount
}

func (r Record) Comment() string {
	return r.comment
}

// Date is midnight UTC of the record's calendar date.
func (r Record) Date() time.Time {
	return r.date
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s: %s", r.date.Format(dateLayout), r.comment, r.amount)
}
