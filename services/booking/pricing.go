package booking

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"glamvan/models"
)

// sameDaySurcharge is the multiplier applied to bookings made for the
// current calendar day.
const sameDaySurcharge = 1.10

// weddingNoticeDays is the minimum advance notice for wedding-related
// services.
const weddingNoticeDays = 30

// weddingKeywords identify wedding-related services by title substring.
var weddingKeywords = []string{"bridal", "wedding", "bridesmaid", "mother"}

var priceExpr = regexp.MustCompile(`\d[\d,]*`)

// Quote is the priced result of a set of selected services on a date.
// Total is kept unrounded; rounding happens only at display time.
type Quote struct {
	Total            float64  `json:"total"`
	SurchargeApplied bool     `json:"surchargeApplied"`
	WeddingNotice    bool     `json:"weddingNotice"`
	Misses           []string `json:"misses,omitempty"`
}

// DisplayTotal rounds the total to the nearest whole currency unit.
func (q Quote) DisplayTotal() int {
	return int(math.Round(q.Total))
}

// ParsePrice extracts the base numeric amount from a catalog price
// expression: the first run of digits, with thousands separators ignored.
// It returns false when the expression carries no digits.
func ParsePrice(expr string) (float64, bool) {
	m := priceExpr.FindString(expr)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

// ComputeQuote prices the selected service titles against the catalog.
// Titles with no catalog match (or an unparseable price) contribute zero
// and are reported in Misses. When date falls on the current calendar day
// the same-day surcharge is applied to the running total.
func ComputeQuote(services []string, date *time.Time, catalog map[string]models.Service, now time.Time) Quote {
	var q Quote
	for _, title := range services {
		svc, ok := catalog[title]
		if !ok {
			q.Misses = append(q.Misses, title)
			continue
		}
		base, ok := ParsePrice(svc.Price)
		if !ok {
			q.Misses = append(q.Misses, title)
			continue
		}
		q.Total += base
	}

	if date != nil {
		if sameCalendarDay(*date, now) {
			q.Total *= sameDaySurcharge
			q.SurchargeApplied = true
		}
		q.WeddingNotice = WeddingNoticeViolated(services, *date, now)
	}
	return q
}

// WeddingNoticeViolated reports whether any selected service is
// wedding-related and the chosen date is less than 30 days away. The
// violation is advisory: it never blocks the wizard.
func WeddingNoticeViolated(services []string, date, now time.Time) bool {
	if !IsWeddingSelection(services) {
		return false
	}
	return date.Before(now.AddDate(0, 0, weddingNoticeDays))
}

// IsWeddingSelection reports whether any selected title matches a
// wedding-related keyword.
func IsWeddingSelection(services []string) bool {
	for _, title := range services {
		lower := strings.ToLower(title)
		for _, kw := range weddingKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// bookingLocation anchors calendar-day comparisons to the service area, so
// a UTC-parsed client date and the server clock agree on what "today" is.
var bookingLocation = func() *time.Location {
	loc, err := time.LoadLocation("Africa/Cairo")
	if err != nil {
		return time.FixedZone("EET", 2*60*60)
	}
	return loc
}()

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(bookingLocation).Date()
	by, bm, bd := b.In(bookingLocation).Date()
	return ay == by && am == bm && ad == bd
}
