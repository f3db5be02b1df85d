// Package service provides business logic for FJP IRMS.
//
// Services receive *ent.Client (in-transaction or not) and never manage
// transactions themselves.
package service

import "time"

// UrgentThresholdMonths is the idle duration at which a resource is
// flagged urgent.
const UrgentThresholdMonths = 2

// MonthsBetween returns the number of whole calendar months between from
// and now. Day-of-month is ignored: crossing a month boundary counts as a
// full month. The result is negative when from is after now.
func MonthsBetween(from, now time.Time) int {
	from = from.UTC()
	now = now.UTC()
	return (now.Year()-from.Year())*12 + int(now.Month()) - int(from.Month())
}

// DeriveIdle recomputes the idle duration and urgency flag for a resource
// from its idle-from timestamp. It must run on every persist so the derived
// fields never drift from idleFrom.
func DeriveIdle(idleFrom, now time.Time) (months int, urgent bool) {
	months = MonthsBetween(idleFrom, now)
	return months, months >= UrgentThresholdMonths
}
