package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fitloop/internal/domain"
	"github.com/spf13/pflag"
)

// changedFloat returns the flag's value when it was set on the command line.
func changedFloat(fs *pflag.FlagSet, name string) (*float64, error) {
	if !fs.Changed(name) {
		return nil, nil
	}
	v, err := fs.GetFloat64(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// changedInt returns the flag's value when it was set on the command line.
func changedInt(fs *pflag.FlagSet, name string) (*int, error) {
	if !fs.Changed(name) {
		return nil, nil
	}
	v, err := fs.GetInt(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// changedString returns the flag's value when it was set on the command line.
func changedString(fs *pflag.FlagSet, name string) (*string, error) {
	if !fs.Changed(name) {
		return nil, nil
	}
	v, err := fs.GetString(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseDay parses a YYYY-MM-DD flag value, or the shortcuts "today" and
// "yesterday". Empty means today.
func parseDay(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return domain.Day(now), nil
	case "yesterday":
		return domain.Day(now).AddDate(0, 0, -1), nil
	}
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

// addDaysFlag registers the shared --days look-back flag.
func addDaysFlag(fs *pflag.FlagSet, days *int, def int) {
	fs.IntVarP(days, "days", "d", def, "Number of days to look back")
}

// addYesFlag registers the shared --yes flag that skips confirmation.
func addYesFlag(fs *pflag.FlagSet, yes *bool) {
	fs.BoolVarP(yes, "yes", "y", false, "Skip the confirmation prompt")
}
