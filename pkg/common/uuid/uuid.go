package uuid

import (
	gofrs "github.com/gofrs/uuid/v5"
)

// UUID 统一对外的 uuid 类型，底层使用 gofrs/uuid
type UUID = gofrs.UUID

var Nil = gofrs.Nil

func NewV4() UUID {
	return gofrs.Must(gofrs.NewV4())
}

func FromString(s string) (UUID, error) {
	return gofrs.FromString(s)
}
