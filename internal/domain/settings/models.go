package settings

import (
	"fmt"

	"github.com/shopspring/decimal"

	"rosterd/internal/domain/pay"
)

const (
	KeySleepoverDefault = "sleepover_default"
	KeySleepoverSchads  = "sleepover_schads"
)

// Settings is the persisted rate configuration: a pay mode plus the flat
// rate map the API exposes. The map carries the six hourly categories and
// the two sleepover constants under their own keys.
type Settings struct {
	PayMode string                     `json:"payMode"`
	Rates   map[string]decimal.Decimal `json:"rates"`
}

// RateTable converts the stored settings into the engine's rate snapshot.
func (s Settings) RateTable() pay.RateTable {
	table := pay.RateTable{
		Mode:   pay.Mode(s.PayMode),
		Hourly: make(map[pay.Category]decimal.Decimal, len(s.Rates)),
	}
	for key, rate := range s.Rates {
		switch key {
		case KeySleepoverDefault:
			table.SleepoverDefault = rate
		case KeySleepoverSchads:
			table.SleepoverSchads = rate
		default:
			table.Hourly[pay.Category(key)] = rate
		}
	}
	return table
}

// Validate rejects incomplete tables before they are stored, so a later
// calculation never has to substitute a default.
func (s Settings) Validate() error {
	for _, key := range []string{KeySleepoverDefault, KeySleepoverSchads} {
		if _, ok := s.Rates[key]; !ok {
			return fmt.Errorf("rate %q is required", key)
		}
	}
	return s.RateTable().Validate()
}
