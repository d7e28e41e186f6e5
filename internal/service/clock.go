package service

import (
	"time"

	"github.com/lionsacademy/register-backend/internal/model"
)

// Clock tells the services what calendar day it is in the academy's zone.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// NewClock returns a wall clock for loc. A nil loc means time.Local.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Now: time.Now, Location: loc}
}

// Today is the current calendar date in the clock's location.
func (c Clock) Today() model.Date {
	return model.DateOf(c.Now().In(c.Location))
}
