package rds

import (
	"math"
	"time"
)

// decodeMJD converts a Modified Julian Day plus UTC hour/minute and a
// signed half-hour local offset into an absolute time, using the calendar
// conversion of IEC 62106 Annex G (spec.md §4.7). The returned time carries
// a fixed-offset Location equal to the station-supplied GMT offset.
func decodeMJD(mjd uint32, utcHour, utcMinute, utcOffset uint8) time.Time {
	localMJD := float64(mjd)

	y := math.Floor((localMJD - 15078.2) / 365.25)
	m := math.Floor((localMJD - 14956.1 - math.Floor(y*365.25)) / 30.6001)
	day := int(localMJD - 14956 - math.Floor(y*365.25) - math.Floor(m*30.6001))

	k := 0
	if int(m) == 14 || int(m) == 15 {
		k = 1
	}
	year := int(y) + k + 1900
	month := int(m) - 1 - 12*k // 1-based, 1=January

	utc := time.Date(year, time.Month(month), day, int(utcHour), int(utcMinute), 0, 0, time.UTC)

	halfHours := int(utcOffset & 0x1f)
	offsetSeconds := halfHours * 30 * 60
	if utcOffset&0x20 != 0 {
		offsetSeconds = -offsetSeconds
	}

	return utc.In(time.FixedZone("RDS", offsetSeconds))
}
