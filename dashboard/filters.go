package dashboard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type Tab string

const (
	TabAll      Tab = "all"
	TabTop      Tab = "top"
	TabApproved Tab = "approved"
	TabRejected Tab = "rejected"
)

// topRealtorLimit caps the "top" tab before pagination.
const topRealtorLimit = 50

// Filters is the full set of recognized dashboard filters. Stages are
// independent; Apply runs them in a fixed order, each narrowing the previous
// result.
type Filters struct {
	MinAmount *float64
	MaxAmount *float64
	Status    string // Active or Inactive, empty for no filter
	NameQuery string // token filter over name+email
	DateFrom  string // inclusive, "2006-01-02"
	DateTo    string // inclusive, "2006-01-02"
	Tab       Tab
	Search    string // id/name/email substring
}

// Apply runs the filter pipeline over the derived rows. The input slice is
// not modified.
func (f Filters) Apply(rows []RealtorRow) ([]RealtorRow, error) {
	out := make([]RealtorRow, len(rows))
	copy(out, rows)

	if f.MinAmount != nil || f.MaxAmount != nil {
		out = keep(out, func(r RealtorRow) bool {
			amount := ParseAmount(r.ApprovedAmountDisplay)
			if f.MinAmount != nil && amount < *f.MinAmount {
				return false
			}
			if f.MaxAmount != nil && amount > *f.MaxAmount {
				return false
			}
			return true
		})
	}

	if f.Status != "" {
		out = keep(out, func(r RealtorRow) bool {
			return r.Status == f.Status
		})
	}

	if query := strings.TrimSpace(f.NameQuery); query != "" {
		out = keep(out, func(r RealtorRow) bool {
			return MatchesTokens(query, r.Name+" "+r.Email)
		})
	}

	if f.DateFrom != "" || f.DateTo != "" {
		start, end, err := dayBounds(f.DateFrom, f.DateTo)
		if err != nil {
			return nil, err
		}
		out = keep(out, func(r RealtorRow) bool {
			if start != nil && r.RegisteredAt.Before(*start) {
				return false
			}
			if end != nil && r.RegisteredAt.After(*end) {
				return false
			}
			return true
		})
	}

	switch f.Tab {
	case TabTop:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ApprovedCount > out[j].ApprovedCount
		})
		if len(out) > topRealtorLimit {
			out = out[:topRealtorLimit]
		}
	case TabApproved:
		out = keep(out, func(r RealtorRow) bool { return r.ApprovedCount > 0 })
	case TabRejected:
		out = keep(out, func(r RealtorRow) bool { return r.RejectedCount > 0 })
	case TabAll, "":
	default:
		return nil, fmt.Errorf("unknown tab %q", f.Tab)
	}

	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		out = keep(out, func(r RealtorRow) bool {
			return strings.Contains(strconv.FormatUint(uint64(r.ID), 10), search) ||
				strings.Contains(strings.ToLower(r.Name), search) ||
				strings.Contains(strings.ToLower(r.Email), search)
		})
	}

	return out, nil
}

func keep(rows []RealtorRow, pred func(RealtorRow) bool) []RealtorRow {
	kept := rows[:0]
	for _, r := range rows {
		if pred(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// dayBounds converts plain date strings to an inclusive [day-start, day-end]
// window. Either side may be empty.
func dayBounds(from, to string) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid from date %q", from)
		}
		start = &t
	}

	if to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid to date %q", to)
		}
		e := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		end = &e
	}

	return start, end, nil
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics and collapses runs of whitespace.
func Normalize(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// MatchesTokens reports whether every whitespace-separated token of query
// appears as a substring of haystack. Matching is case-, accent- and
// order-insensitive.
func MatchesTokens(query, haystack string) bool {
	hay := Normalize(haystack)
	for _, token := range strings.Fields(Normalize(query)) {
		if !strings.Contains(hay, token) {
			return false
		}
	}
	return true
}
