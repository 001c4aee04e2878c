package event

import (
	"encoding/json"
	"errors"
)

var errNilPayload = errors.New("nil event payload")

// DecodePayload returns the payload as T. In-process publishers hand over the
// typed struct; anything else is round-tripped through JSON.
func DecodePayload[T any](payload any) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return out, errNilPayload
	case nil:
		return out, errNilPayload
	case json.RawMessage:
		return out, json.Unmarshal(v, &out)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	return out, json.Unmarshal(raw, &out)
}
