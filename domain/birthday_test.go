package domain

import (
	"testing"
	"time"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestBirthdayInWindow(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		today time.Time
		n     int
		want  bool
	}{
		{
			name:  "same month inside window",
			birth: date(1990, 6, 17),
			today: date(2024, 6, 10),
			n:     7,
			want:  true,
		},
		{
			name:  "same month just past window boundary",
			birth: date(1990, 6, 18),
			today: date(2024, 6, 10),
			n:     7,
			want:  false,
		},
		{
			name:  "same month boundary is inclusive",
			birth: date(1990, 6, 10),
			today: date(2024, 6, 10),
			n:     7,
			want:  true,
		},
		{
			name:  "same month earlier day does not match",
			birth: date(1990, 6, 9),
			today: date(2024, 6, 10),
			n:     7,
			want:  false,
		},
		{
			name:  "rollover into next month matches",
			birth: date(1995, 2, 2),
			today: date(2024, 1, 28),
			n:     7,
			want:  true,
		},
		{
			name:  "rollover into next month past spilled window",
			birth: date(1995, 2, 5),
			today: date(2024, 1, 28),
			n:     7,
			want:  false,
		},
		{
			name:  "rollover boundary is inclusive",
			birth: date(1995, 2, 4),
			today: date(2024, 1, 28),
			n:     7,
			want:  true,
		},
		{
			name:  "december wraps around to january",
			birth: date(1988, 1, 3),
			today: date(2023, 12, 28),
			n:     7,
			want:  true,
		},
		{
			name:  "december wrap past spilled window",
			birth: date(1988, 1, 7),
			today: date(2023, 12, 28),
			n:     7,
			want:  false,
		},
		{
			name:  "february treated as 28 days",
			birth: date(2000, 3, 4),
			today: date(2024, 2, 25),
			n:     7,
			want:  true,
		},
		{
			name:  "unrelated month never matches",
			birth: date(1990, 9, 15),
			today: date(2024, 6, 10),
			n:     7,
			want:  false,
		},
		{
			name:  "two months ahead not matched even when close in days",
			birth: date(1990, 8, 1),
			today: date(2024, 6, 30),
			n:     7,
			want:  false,
		},
		{
			name:  "nonexistent calendar date still handled",
			birth: date(1990, 3, 31),
			today: date(2024, 2, 26),
			n:     7,
			want:  false,
		},
		{
			name:  "zero window only matches today",
			birth: date(1990, 6, 10),
			today: date(2024, 6, 10),
			n:     0,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BirthdayInWindow(tt.birth, tt.today, tt.n)
			if got != tt.want {
				t.Errorf("BirthdayInWindow(%v, %v, %d) = %v, want %v",
					tt.birth.Format("01-02"), tt.today.Format("2006-01-02"), tt.n, got, tt.want)
			}
		})
	}
}
