package calculator

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/daily-calculator/internal/entity/record"
	"max.ks1230/daily-calculator/internal/logger"
)

const weekDays = 7

type Option func(c *Calculator)

// WithClock replaces the wall clock used to determine today.
func WithClock(clock func() time.Time) Option {
	return func(c *Calculator) {
		c.clock = clock
	}
}

// Calculator sums records against a daily limit.
type Calculator struct {
	limit   decimal.Decimal
	records []record.Record
	clock   func() time.Time
}

func New(limit decimal.Decimal, opts ...Option) *Calculator {
	c := &Calculator{
		limit: limit,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) Limit() decimal.Decimal {
	return c.limit
}

func (c *Calculator) AddRecord(rec record.Record) {
	c.records = append(c.records, rec)
	observeRecordAdded()
	logger.Debug("record added",
		zap.String("comment", rec.Comment()),
		zap.String("amount", rec.Amount().String()),
		zap.Time("date", rec.Date()),
	)
}

// Records returns a copy of the records in insertion order.
func (c *Calculator) Records() []record.Record {
	res := make([]record.Record, len(c.records))
	copy(res, c.records)
	return res
}

// StatsForPeriod sums amounts dated within [from, to], both days inclusive.
// Each bound counts as the calendar date it has in its own location.
func (c *Calculator) StatsForPeriod(from, to time.Time) decimal.Decimal {
	return c.statsForPeriod(record.Day(from), record.Day(to))
}

func (c *Calculator) statsForPeriod(from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range c.records {
		date := rec.Date()
		if !date.Before(from) && !date.After(to) {
			total = total.Add(rec.Amount())
		}
	}
	return total
}

// today is the clock's calendar date in the clock's location.
func (c *Calculator) today() time.Time {
	return record.Day(c.clock())
}

func (c *Calculator) todayStats() decimal.Decimal {
	today := c.today()
	return c.statsForPeriod(today, today)
}

func (c *Calculator) remained() decimal.Decimal {
	return c.limit.Sub(c.todayStats())
}

func (c *Calculator) TodayStats() decimal.Decimal {
	observeQuery(queryToday)
	return c.todayStats()
}

// WeekStats covers today and the seven days before it.
func (c *Calculator) WeekStats() decimal.Decimal {
	observeQuery(queryWeek)
	today := c.today()
	return c.statsForPeriod(today.AddDate(0, 0, -weekDays), today)
}

// MonthStats covers the current calendar month up to and including today.
func (c *Calculator) MonthStats() decimal.Decimal {
	observeQuery(queryMonth)
	today := c.today()
	return c.statsForPeriod(now.With(today).BeginningOfMonth(), today)
}

// TodayRemained is negative when the limit is overspent.
func (c *Calculator) TodayRemained() decimal.Decimal {
	observeQuery(queryRemained)
	return c.remained()
}
