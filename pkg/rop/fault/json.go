package fault

import "encoding/json"

// Response is the serialized form of an error: {"name": ..., "message": ...}.
// The cause chain is not included.
type Response struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ToResponse converts any error. Faults report their kind name and own
// message; other errors are named "Error". An empty message becomes
// "Unknown error".
func ToResponse(err error) Response {
	r := Response{Name: "Error"}
	if err == nil {
		r.Message = "Unknown error"
		return r
	}

	if f, ok := err.(*Fault); ok {
		if f == nil {
			r.Message = "Unknown error"
			return r
		}
		r.Name = f.Name()
		r.Message = f.message
	} else {
		r.Message = err.Error()
	}

	if r.Message == "" {
		r.Message = "Unknown error"
	}
	return r
}

// MarshalJSON implements json.Marshaler.
func (f *Fault) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToResponse(f))
}
