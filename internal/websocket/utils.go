// internal/websocket/utils.go
package websocket

import "encoding/json"

// mapToStruct decodes a message payload into target. An empty payload
// leaves target unchanged.
func mapToStruct(data json.RawMessage, target interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}
