package types

import (
	"bytes"
	"encoding/json"
)

// Ref is a polymorphic reference to another entity. The backend returns
// either a bare id string or an embedded object depending on whether the
// field was populated; both decode into the same value.
type Ref struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// NewRef builds a bare-id reference.
func NewRef(id string) Ref { return Ref{ID: id} }

// IsZero reports whether the reference is empty.
func (r Ref) IsZero() bool { return r.ID == "" }

// UnmarshalJSON accepts either "abc123" or {"id": "abc123", ...}.
// Embedded objects may name the entity via "name" or "username" and carry
// an avatar path.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	var obj struct {
		ID       string `json:"id"`
		AltID    string `json:"_id"`
		Name     string `json:"name"`
		Username string `json:"username"`
		Avatar   string `json:"avatar"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	r.ID = obj.ID
	if r.ID == "" {
		r.ID = obj.AltID
	}
	r.Name = obj.Name
	if r.Name == "" {
		r.Name = obj.Username
	}
	r.Avatar = obj.Avatar
	return nil
}

// MarshalJSON emits the bare id, which is what write endpoints expect.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}
