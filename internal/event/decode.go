package event

import "encoding/json"

// DecodePayload converts an event payload into T. In-process events already
// carry the typed struct; payloads that went through JSON arrive as maps and
// are converted with a marshal round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(data, &result)
	return result, err
}
