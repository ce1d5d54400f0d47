package rop

import (
	"encoding/json"

	"github.com/ib-77/railway/pkg/rop/fault"
)

// ToJSON returns {"success": true, "value": v} for a success and
// {"success": false, "error": {"name": n, "message": m}} for a failure.
// It is meant for logs and transport; there is no way back to a Result.
func (r Result[T]) ToJSON() map[string]any {
	if r.isSuccess {
		return map[string]any{
			"success": true,
			"value":   r.value,
		}
	}
	return map[string]any{
		"success": false,
		"error":   fault.ToResponse(r.err),
	}
}

// MarshalJSON implements json.Marshaler using the ToJSON shape.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToJSON())
}
