package timesheet

import (
	"fmt"
	"math"
	"time"

	"github.com/shiftops/workforce-backend-go/internal/domain/timesheet"
)

// ResolveRate decides whether a shift is paid at the normal or the doubled
// rate. A public holiday always doubles. A weekend doubles only when both
// the client and the location are flagged for double pay.
func ResolveRate(date time.Time, isPublicHoliday bool, clientRate, locationRate string) string {
	if isPublicHoliday {
		return timesheet.RateDouble
	}

	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		if clientRate == timesheet.RateDouble && locationRate == timesheet.RateDouble {
			return timesheet.RateDouble
		}
	}

	return timesheet.RateNormal
}

// EffectiveRate applies the rate label to the hourly wage.
func EffectiveRate(ratePerHour float64, rate string) float64 {
	if rate == timesheet.RateDouble {
		return ratePerHour * 2
	}
	return ratePerHour
}

// EndTime adds a duration in hours to a zero-padded "HH:MM" start time.
// Whole hours and the fractional remainder wrap independently, so a shift
// can roll past midnight.
func EndTime(startTime string, hours float64) (string, error) {
	var startHour, startMinute int
	if _, err := fmt.Sscanf(startTime, "%d:%d", &startHour, &startMinute); err != nil {
		return "", fmt.Errorf("invalid start time %q: %w", startTime, err)
	}

	wholeHours := int(math.Floor(hours))
	extraMinutes := int(math.Round((hours - math.Floor(hours)) * 60))

	endHour := (startHour + wholeHours) % 24
	endMinute := (startMinute + extraMinutes) % 60

	return fmt.Sprintf("%02d:%02d", endHour, endMinute), nil
}

// derive fills the computed columns of an entry from its inputs. The stored
// rate per hour is the resolved one, so a double-rate shift carries the
// doubled wage in both the row and its cost.
func derive(e *timesheet.Entry, isPublicHoliday bool, clientRate, locationRate string) error {
	e.Rate = ResolveRate(e.Date, isPublicHoliday, clientRate, locationRate)
	e.RatePerHour = EffectiveRate(e.RatePerHour, e.Rate)
	e.Cost = round2(e.Hours * e.RatePerHour)

	endTime, err := EndTime(e.StartTime, e.Hours)
	if err != nil {
		return err
	}
	e.EndTime = endTime

	e.Year = e.Date.Year()
	e.Month = e.Date.Format("Jan")
	_, e.ISOWeek = e.Date.ISOWeek()

	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
