package service

import "github.com/google/uuid"

// IDGenerator allocates opaque, globally unique entity IDs.
type IDGenerator interface {
	Next() string
}

// UUIDGenerator issues random (v4) UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) Next() string {
	return uuid.New().String()
}

func idGeneratorOrDefault(ids IDGenerator) IDGenerator {
	if ids == nil {
		return UUIDGenerator{}
	}
	return ids
}
