package domain

import "time"

// Report is a 24-bucket hourly series for one page. Points carry the
// hour-of-day of their bucket; Start and End disambiguate across days.
type Report struct {
	Page   string
	Start  time.Time
	End    time.Time
	Points []ReportPoint
}

type ReportPoint struct {
	Hour  int
	Views int64
}
