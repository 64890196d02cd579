package globals

import (
	"strconv"
	"strings"

	"github.com/agentstation/citylib/pkg/errors"
)

// ParseID parses a positional book or member id.
func ParseID(field, arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.NewValidationError(field, arg, "must be a number")
	}
	return id, nil
}
