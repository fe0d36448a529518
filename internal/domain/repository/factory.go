package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Appointments() AppointmentRepository
	HealthCheck(ctx context.Context) error
	Close()
}
