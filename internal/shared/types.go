package shared

import "encoding/json"

// OptionalString distinguishes a JSON key that is absent from one that is
// present with null or with a value. Update payloads need the distinction
// for the nullable photo fields: {"photo": null} clears the photo while an
// omitted key leaves it untouched.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON only runs when the key is present in the payload, which is
// exactly the presence signal we need.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
