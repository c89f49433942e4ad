package validation

import (
	"encoding/json"

	validation "github.com/jellydator/validation"
)

// JSONObject validates that a string is a JSON object.
var JSONObject = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_json_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	var object map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &object); err != nil || object == nil {
		return validation.NewError("validation_json_object", "must be a JSON object")
	}
	return nil
})
