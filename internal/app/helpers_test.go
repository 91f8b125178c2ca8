package app

import (
	"fmt"
	"strconv"
)

func twoDigits(v int) string {
	return fmt.Sprintf("%02d", v)
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
