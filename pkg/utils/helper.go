package utils

import (
	"fmt"
	"strconv"
)

// ParseID converts a path parameter into a positive entity id
func ParseID(value string) (int64, error) {
	if value == "" {
		return 0, Invalid("id is required", nil)
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, Invalid(fmt.Sprintf("invalid id %q", value), err)
	}

	if id < 1 {
		return 0, Invalid(fmt.Sprintf("invalid id %q", value), nil)
	}

	return id, nil
}
