package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value holding a calendar date in YYYY-MM-DD form.
type dateValue struct {
	t *time.Time
}

func (d *dateValue) Set(s string) error {
	parsed, err := parseDate(s)
	if err != nil {
		return err
	}
	*d.t = parsed
	return nil
}

func (d *dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(domain.DateLayout)
}

func (d *dateValue) Type() string { return "date" }

// dateVar registers a YYYY-MM-DD flag bound to p.
func dateVar(fs *pflag.FlagSet, p *time.Time, name, usage string) {
	fs.Var(&dateValue{t: p}, name, usage)
}

// asOfVar registers the shared --date flag that overrides today.
func asOfVar(fs *pflag.FlagSet, p *time.Time) {
	dateVar(fs, p, "date", "Evaluate as of this date (YYYY-MM-DD, default today)")
}

// orToday returns t, or today when t is unset.
func orToday(app *App, t time.Time) time.Time {
	if t.IsZero() {
		return app.today()
	}
	return domain.DateOf(t)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
