package holidays

import "errors"

var (
	// ErrInvalidTimeRange возвращается, когда конец периода раньше начала
	ErrInvalidTimeRange = errors.New("holidays: invalid time range")
)
