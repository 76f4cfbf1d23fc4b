package venue

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a venue identifier. The catalog stores it either as a JSON number
// or as a string; both decode to the same textual form.
type ID string

// UnmarshalJSON accepts numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case float64:
		*id = ID(strconv.FormatFloat(val, 'f', -1, 64))
	case string:
		*id = ID(val)
	case nil:
		*id = ""
	default:
		return fmt.Errorf("venue id: unsupported JSON type %T", raw)
	}
	return nil
}

func (id ID) String() string {
	return string(id)
}
