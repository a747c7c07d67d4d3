package processor

import (
	"fmt"
	"strconv"
)

// IntParam reads a numeric param that may come from YAML, JSON or a query string.
func IntParam(params map[string]interface{}, name string) (value int, found bool, err error) {
	raw, found := params[name]
	if !found || raw == nil {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case float64:
		return int(v), true, nil
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, true, fmt.Errorf("%w: %s=%q", ErrInvalidParam, name, v)
		}
		return parsed, true, nil
	}

	return 0, true, fmt.Errorf("%w: %s has unsupported type %T", ErrInvalidParam, name, raw)
}

func StringParam(params map[string]interface{}, name string) string {
	raw, found := params[name]
	if !found || raw == nil {
		return ""
	}

	return fmt.Sprint(raw)
}

func BoolParam(params map[string]interface{}, name string) bool {
	switch v := params[name].(type) {
	case bool:
		return v
	case string:
		parsed, _ := strconv.ParseBool(v)
		return parsed
	}

	return false
}
