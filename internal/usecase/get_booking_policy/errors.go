package get_booking_policy

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("get_booking_policy: internal error")
