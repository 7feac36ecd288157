package mrms

const (
	secondsPerDay  = 86400
	secondsPerYear = 365 * secondsPerDay
)

// daysInMonth is indexed by month-1. February is patched to 29 in leap years.
var daysInMonth = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isLeap reports whether year gets a 29th of February. Only divisibility by four
// is tested: 1900 and 2100 count as leap years here, matching the files' producers.
func isLeap(year int64) bool { return year%4 == 0 }

// EpochSeconds converts the literal header time fields to seconds since
// 1970-01-01T00:00:00Z without consulting the host calendar. Fields are not
// validated; out-of-range months contribute whole preceding months only.
func EpochSeconds(year, month, day, hour, minute, second int32) int64 {
	y := int64(year)

	var t int64
	for i := int64(1970); i < y; i++ {
		t += secondsPerYear
		if isLeap(i) {
			t += secondsPerDay
		}
	}

	months := daysInMonth
	if isLeap(y) {
		months[1] = 29
	}
	for m := 1; m < int(month) && m <= len(months); m++ {
		t += months[m-1] * secondsPerDay
	}
	if day > 1 {
		t += int64(day-1) * secondsPerDay
	}
	if hour > 0 {
		t += int64(hour) * 3600
	}
	if minute > 0 {
		t += int64(minute) * 60
	}
	if second > 0 {
		t += int64(second)
	}
	return t
}
