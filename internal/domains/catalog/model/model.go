package model

import (
	"errors"
	"slotbook/shared/timeofday"
)

const (
	EntityName = "resource"
)

var ErrUnknownResource = errors.New("unknown resource")

// TimeSlot is a priced sub-interval of a day.
type TimeSlot struct {
	Range        timeofday.Range
	PricePerHour float64
}

// Resource is a bookable facility with its slots in catalog order.
type Resource struct {
	Name  string
	Slots []TimeSlot
}
