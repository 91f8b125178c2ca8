package ledger

import (
	"fmt"
	"strings"
)

// TimePattern builds a LIKE pattern over "YYYY-MM-DD..." time strings.
// Components after the last supplied one are dropped so the match widens;
// omitted components before it become single-character wildcards.
//
//	2026, 3, nil   -> "2026-03%"
//	nil, 3, nil    -> "____-03%"
//	nil, nil, nil  -> "%"
func TimePattern(year, month, day *int) string {
	parts := []string{"____", "__", "__"}
	last := -1

	if v, ok := component(year); ok {
		parts[0] = fmt.Sprintf("%04d", v)
		last = 0
	}
	if v, ok := component(month); ok {
		parts[1] = fmt.Sprintf("%02d", v)
		last = 1
	}
	if v, ok := component(day); ok {
		parts[2] = fmt.Sprintf("%02d", v)
		last = 2
	}

	if last < 0 {
		return "%"
	}
	return strings.Join(parts[:last+1], "-") + "%"
}

func component(value *int) (int, bool) {
	if value == nil || *value <= 0 {
		return 0, false
	}
	return *value, true
}
