package utils

import "github.com/google/uuid"

// MealIDPrefix is prepended to every generated meal identifier.
const MealIDPrefix = "meal-"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// MealID returns a new "meal-<uuidv7>" identifier. Version 7 ids sort by
// creation time, so listings ordered by id follow insertion order.
func (g *UUIDGenerator) MealID() string {
	return MealIDPrefix + g.Generate()
}
