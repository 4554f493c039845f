package models

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var priceFormatter = message.NewPrinter(language.English)

// ProgramOffering is a fixed study/travel package shown as a program card
type ProgramOffering struct {
	Slug          string   `yaml:"slug" json:"slug"`
	Title         string   `yaml:"title" json:"title"`
	Tagline       string   `yaml:"tagline" json:"tagline"`
	Icon          string   `yaml:"icon" json:"icon"`
	DurationDays  int      `yaml:"duration_days" json:"duration_days"`
	GroupLabel    string   `yaml:"group_label" json:"group_label"`
	GroupSizeMin  int      `yaml:"group_size_min" json:"group_size_min"`
	GroupSizeMax  int      `yaml:"group_size_max" json:"group_size_max"`
	PriceAmount   int64    `yaml:"price_amount" json:"price_amount"`
	PriceCurrency string   `yaml:"price_currency" json:"price_currency"`
	PriceNote     string   `yaml:"price_note" json:"price_note"`
	ImageRef      string   `yaml:"image" json:"image"`
	ImageAlt      string   `yaml:"image_alt" json:"image_alt"`
	Highlights    []string `yaml:"highlights" json:"highlights"`

	// Departures is an RFC 5545 RRULE (without DTSTART) describing when groups leave
	Departures string `yaml:"departures,omitempty" json:"departures,omitempty"`
}

// DurationLabel renders e.g. "21 Days"
func (p ProgramOffering) DurationLabel() string {
	if p.DurationDays == 1 {
		return "1 Day"
	}
	return fmt.Sprintf("%d Days", p.DurationDays)
}

// GroupSizeLabel renders e.g. "Small Groups (15-20)"
func (p ProgramOffering) GroupSizeLabel() string {
	label := p.GroupLabel
	if label == "" {
		label = "Groups"
	}
	return fmt.Sprintf("%s (%d-%d)", label, p.GroupSizeMin, p.GroupSizeMax)
}

// PriceLabel renders the price with thousands grouping, e.g. "5,300 CAD"
func (p ProgramOffering) PriceLabel() string {
	return priceFormatter.Sprintf("%d %s", p.PriceAmount, p.PriceCurrency)
}

// NextDepartures returns up to n departure dates on or after the given time.
// Programs without a schedule, or with an unparsable one, have none.
func (p ProgramOffering) NextDepartures(after time.Time, n int) []time.Time {
	if p.Departures == "" || n <= 0 {
		return nil
	}

	rule, err := rrule.StrToRRule(p.Departures)
	if err != nil {
		return nil
	}
	// Anchor the rule at midnight so occurrences land on calendar days
	start := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, time.UTC)
	rule.DTStart(start)

	var departures []time.Time
	next := rule.After(start, true)
	for !next.IsZero() && len(departures) < n {
		departures = append(departures, next)
		next = rule.After(next, false)
	}
	return departures
}

// ValidateDepartures reports whether the departure rule parses
func (p ProgramOffering) ValidateDepartures() error {
	if p.Departures == "" {
		return nil
	}
	if _, err := rrule.StrToRRule(p.Departures); err != nil {
		return fmt.Errorf("program %q: invalid departures rule: %w", p.Slug, err)
	}
	return nil
}
