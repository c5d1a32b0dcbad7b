package domain

import "time"

// daysInMonth is a fixed non-leap-year table. February is always 28;
// leap years are intentionally not handled.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// BirthdayInWindow reports whether a recurring annual date (the month and
// day of birth, year ignored) falls within the next n days of today.
//
// A date matches when it lands in the current month between today and
// today+n inclusive, or when the window spills into the following month
// (December wraps to January) and the day fits into the spilled-over part
// of the window. The function is pure and total: any day value 1-31 is
// accepted even when the calendar month is shorter.
func BirthdayInWindow(birth, today time.Time, n int) bool {
	bMonth, bDay := int(birth.Month()), birth.Day()
	tMonth, tDay := int(today.Month()), today.Day()

	if bMonth == tMonth {
		return bDay >= tDay && bDay <= tDay+n
	}

	nextMonth := tMonth%12 + 1
	if bMonth == nextMonth {
		return bDay <= tDay-daysInMonth[tMonth]+n
	}

	return false
}
