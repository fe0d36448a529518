package dto

import "time"

// ClientResponse describes a shop client.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CarModel  string    `json:"carModel"`
	CarNumber string    `json:"carNumber"`
	CreatedAt time.Time `json:"createdAt"`
}

type StatusResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
