package domain

import "strings"

type Venue struct {
	VenueID  int64
	Name     string
	City     string
	Capacity int

	// Derived on reads.
	EventCount int
}

func NewVenue(name, city string, capacity int) (*Venue, error) {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)

	if name == "" || len(name) > 200 {
		return nil, ErrValidation("name is required and must be <= 200 chars")
	}
	if city == "" || len(city) > 80 {
		return nil, ErrValidation("city is required and must be <= 80 chars")
	}
	if capacity < 0 {
		return nil, ErrValidation("capacity must be >= 0")
	}

	return &Venue{Name: name, City: city, Capacity: capacity}, nil
}

func (v *Venue) ApplyUpdate(name, city string, capacity int) error {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)

	if name == "" || len(name) > 200 {
		return ErrValidation("name is required and must be <= 200 chars")
	}
	if city == "" || len(city) > 80 {
		return ErrValidation("city is required and must be <= 80 chars")
	}
	if capacity < 0 {
		return ErrValidation("capacity must be >= 0")
	}

	v.Name = name
	v.City = city
	v.Capacity = capacity
	return nil
}
