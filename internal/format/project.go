package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/raphi011/spm/internal/project"
)

// TableHeaders are the column headers matching [TableRow].
var TableHeaders = []string{"NAME", "PATH", "TAGS", "BARE", "ADDED"}

// Tags joins tags with ", ".
func Tags(tags []string) string {
	return strings.Join(tags, ", ")
}

// ProjectLine renders p as "name (bare) - path [t1, t2]".
func ProjectLine(p project.Project) string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.IsBareRepo {
		b.WriteString(" (bare)")
	}
	b.WriteString(" - ")
	b.WriteString(p.Path)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, " [%s]", Tags(p.Tags))
	}
	return b.String()
}

// ProjectDetail renders the prompt detail for p: its path, a bare marker
// and its tags.
func ProjectDetail(p project.Project) string {
	detail := p.Path
	if p.IsBareRepo {
		detail += " (bare)"
	}
	if len(p.Tags) > 0 {
		detail += " [" + Tags(p.Tags) + "]"
	}
	return detail
}

// TableRow renders p as a row under [TableHeaders].
func TableRow(p project.Project, now time.Time) []string {
	bare := ""
	if p.IsBareRepo {
		bare = "yes"
	}
	return []string{p.Name, p.Path, Tags(p.Tags), bare, RelativeTime(p.AddedAt, now)}
}

// RelativeTime renders t relative to now, e.g. "3 days ago".
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	case d < 365*24*time.Hour:
		return plural(int(d/(30*24*time.Hour)), "month")
	default:
		return plural(int(d/(365*24*time.Hour)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
