package utils

import "time"

// ParseDate interpreta datas no formato yyyy-mm-dd
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}
