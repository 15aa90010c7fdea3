package store

import (
	"math"
	"strconv"
	"time"
)

func today() string {
	return time.Now().Format("2006-01-02")
}

// PricePerArea derives the rounded price-per-square-meter figure. A zero area
// yields 0 rather than a division error.
func PricePerArea(price, area float64) int {
	if area == 0 {
		return 0
	}
	return int(math.Round(price / area))
}

// nextID issues a timestamp-derived id that is strictly greater than *last,
// so ids stay unique even when two creations land on the same millisecond.
func nextID(last *int64) string {
	id := time.Now().UnixMilli()
	if id <= *last {
		id = *last + 1
	}
	*last = id
	return strconv.FormatInt(id, 10)
}

// maxNumericID scans loaded ids so freshly issued ones never collide with
// persisted records.
func maxNumericID(ids []string) int64 {
	var max int64
	for _, id := range ids {
		n, err := strconv.ParseInt(id, 10, 64)
		if err == nil && n > max {
			max = n
		}
	}
	return max
}
