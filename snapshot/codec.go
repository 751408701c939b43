package snapshot

import "encoding/json"

// Codec encodes and decodes model payloads.
// Implementations must be safe for concurrent use.
//
// The codec name is stored in the snapshot header so files stay
// self-describing: loading selects the codec by name, not by
// configuration.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// JSON is the default payload codec, backed by encoding/json.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the stable codec name stored in snapshot headers.
func (JSON) Name() string { return "json" }

// DefaultCodec is the codec used when none is configured.
var DefaultCodec Codec = JSON{}

// codecByName returns a built-in codec by its stable name.
func codecByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	default:
		return nil, false
	}
}
