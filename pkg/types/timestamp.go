package types

import (
	"encoding/json"
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Timestamp is an RFC 3339 instant. Anything else fails to decode with a
// *json.UnmarshalTypeError, so the decoder reports the field it sits in.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &json.UnmarshalTypeError{Value: "non-string", Type: timeType}
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string " + s, Type: timeType}
	}

	t.Time = parsed
	return nil
}
