package seed

import (
	"fmt"
	"time"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

var catalogServices = []model.Service{
	{ID: "1", Name: "Oil change", Price: 2500, Duration: 60},
	{ID: "2", Name: "Engine diagnostics", Price: 1500, Duration: 90},
	{ID: "3", Name: "Brake pad replacement", Price: 4500, Duration: 120},
	{ID: "4", Name: "Wheel alignment", Price: 2000, Duration: 60},
	{ID: "5", Name: "Spark plug replacement", Price: 1800, Duration: 45},
	{ID: "6", Name: "Air filter replacement", Price: 800, Duration: 30},
	{ID: "7", Name: "Cabin filter replacement", Price: 700, Duration: 30},
	{ID: "8", Name: "Valve adjustment", Price: 3500, Duration: 150},
	{ID: "9", Name: "Timing belt replacement", Price: 8500, Duration: 180},
	{ID: "10", Name: "Computer diagnostics", Price: 1000, Duration: 45},
}

var generatedCarModels = []string{"Lada Vesta", "Hyundai Solaris", "Kia Rio", "Volkswagen Polo", "Skoda Octavia"}

const generatedClients = 20

// Reference is the immutable lookup table of services and clients.
type Reference struct {
	services []model.Service
	clients  []model.Client
	byID     map[string]model.Service
	clientBy map[string]model.Client
}

// NewReference builds reference data with client timestamps relative to now.
func NewReference(now time.Time) *Reference {
	clients := []model.Client{
		{ID: "1", Name: "Ivan Ivanov", Phone: "+7 (999) 123-45-67", Email: "ivanov@mail.ru", CarModel: "Toyota Camry", CarNumber: "A123BV777", CreatedAt: now.AddDate(0, 0, -30)},
		{ID: "2", Name: "Petr Petrov", Phone: "+7 (999) 234-56-78", Email: "petrov@mail.ru", CarModel: "BMW X5", CarNumber: "B456GD199", CreatedAt: now.AddDate(0, 0, -25)},
		{ID: "3", Name: "Sidor Sidorov", Phone: "+7 (999) 345-67-89", Email: "sidorov@mail.ru", CarModel: "Mercedes-Benz E-Class", CarNumber: "C789EZ777", CreatedAt: now.AddDate(0, 0, -20)},
	}
	for i := 0; i < generatedClients; i++ {
		n := i + 4
		clients = append(clients, model.Client{
			ID:        fmt.Sprint(n),
			Name:      fmt.Sprintf("Client %d", n),
			Phone:     fmt.Sprintf("+7 (999) %03d-%02d-%02d", i, i+10, i+20),
			Email:     fmt.Sprintf("client%d@mail.ru", n),
			CarModel:  generatedCarModels[i%len(generatedCarModels)],
			CarNumber: plate(i),
			CreatedAt: now.AddDate(0, 0, -(15 - i)),
		})
	}
	return newReference(append([]model.Service(nil), catalogServices...), clients)
}

func newReference(services []model.Service, clients []model.Client) *Reference {
	r := &Reference{
		services: services,
		clients:  clients,
		byID:     make(map[string]model.Service, len(services)),
		clientBy: make(map[string]model.Client, len(clients)),
	}
	for _, s := range services {
		r.byID[s.ID] = s
	}
	for _, c := range clients {
		r.clientBy[c.ID] = c
	}
	return r
}

func plate(i int) string {
	letter := func(k int) byte { return byte('A' + k%26) }
	return fmt.Sprintf("%c%03d%c%c%02d", letter(i), i, letter(i+1), letter(i+2), i%200)
}

// Services returns a copy of the service catalog.
func (r *Reference) Services() []model.Service {
	return append([]model.Service(nil), r.services...)
}

// Clients returns a copy of the client list.
func (r *Reference) Clients() []model.Client {
	return append([]model.Client(nil), r.clients...)
}

// Service looks up a service by id.
func (r *Reference) Service(id string) (model.Service, bool) {
	s, ok := r.byID[id]
	return s, ok
}

// Client looks up a client by id.
func (r *Reference) Client(id string) (model.Client, bool) {
	c, ok := r.clientBy[id]
	return c, ok
}
