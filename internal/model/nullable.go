package model

import "encoding/json"

// Nullable records whether a string key was present in a JSON body,
// distinguishing an absent key from an explicit null.
type Nullable struct {
	Set   bool
	Value *string
}

func (n *Nullable) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n Nullable) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
