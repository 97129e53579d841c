// Package dto holds the request bodies accepted by the API. Every field is a
// pointer so an omitted field can be told apart from a zero value: on create
// it reaches the store as NULL, on update it leaves the column unchanged.
package dto

import (
	"bytes"
	"encoding/json"
)

// ID is a foreign key as sent by a client. Form front ends post an unselected
// reference as "" or false, so those decode to the zero ID alongside 0.
type ID uint

// Ref wraps a stored id for use in a request body.
func Ref(id uint) *ID {
	v := ID(id)
	return &v
}

func (id *ID) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "null", `""`, "false", "0":
		*id = 0
		return nil
	}
	var v uint
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*id = ID(v)
	return nil
}

// nullableID maps an omitted or falsy reference to NULL.
func nullableID(id *ID) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	v := uint(*id)
	return &v
}
