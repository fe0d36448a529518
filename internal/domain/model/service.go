package model

import "time"

// Service is a priced unit of work offered by the shop.
type Service struct {
	ID       string
	Name     string
	Price    int64
	Duration int
}

// DurationTime returns service duration as time.Duration.
func (s Service) DurationTime() time.Duration {
	return time.Duration(s.Duration) * time.Minute
}

// Client is a shop customer together with the car they bring in.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CarModel  string
	CarNumber string
	CreatedAt time.Time
}
