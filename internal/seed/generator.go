package seed

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/polkiloo/autoservice/internal/domain/model"
)

const (
	historyDays      = 60
	calendarDays     = 7
	orderPoolForApts = 100
	followUpNote     = "Additional diagnostics required"
)

// Dataset is the initial state handed to the containers.
type Dataset struct {
	Orders       []model.Order
	Appointments []model.CalendarAppointment
}

// Generator produces synthetic orders and appointments from reference data.
type Generator struct {
	ref *Reference
	rng *rand.Rand
	loc *time.Location
}

// NewGenerator creates generator with deterministic randomness.
func NewGenerator(ref *Reference, seed uint64, loc *time.Location) *Generator {
	if loc == nil {
		loc = time.Local
	}
	return &Generator{ref: ref, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), loc: loc}
}

// Generate builds count orders over the last 60 days and a week of appointments from now.
func (g *Generator) Generate(now time.Time, count int) Dataset {
	orders := g.orders(now, count)
	return Dataset{Orders: orders, Appointments: g.appointments(now, orders)}
}

func (g *Generator) pickServices(upTo int) []model.Service {
	services := g.ref.services
	n := g.rng.IntN(upTo) + 1
	picked := make([]model.Service, n)
	for i := range picked {
		picked[i] = services[g.rng.IntN(len(services))]
	}
	return picked
}

func (g *Generator) orders(now time.Time, count int) []model.Order {
	clients := g.ref.clients
	orders := make([]model.Order, 0, count)
	for i := 0; i < count; i++ {
		client := clients[i%len(clients)]
		services := g.pickServices(3)
		scheduled := now.AddDate(0, 0, -g.rng.IntN(historyDays))

		order := model.Order{
			ID:            model.FormatOrderID(i + 1),
			ClientID:      client.ID,
			ClientName:    client.Name,
			ClientPhone:   client.Phone,
			CarModel:      client.CarModel,
			CarNumber:     client.CarNumber,
			Services:      services,
			TotalPrice:    model.TotalPrice(services),
			Status:        model.OrderStatuses[g.rng.IntN(len(model.OrderStatuses))],
			ScheduledDate: scheduled,
			CreatedAt:     scheduled,
		}
		if i%5 == 0 {
			order.Notes = followUpNote
		}
		orders = append(orders, order)
	}

	slices.SortStableFunc(orders, func(a, b model.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return orders
}

func (g *Generator) appointments(now time.Time, orders []model.Order) []model.CalendarAppointment {
	clients := g.ref.clients
	today := now.In(g.loc)
	y, m, d := today.Date()

	var out []model.CalendarAppointment
	for day := 0; day < calendarDays; day++ {
		perDay := g.rng.IntN(8) + 5
		for i := 0; i < perDay; i++ {
			hour := 9 + g.rng.IntN(8)
			client := clients[g.rng.IntN(len(clients))]
			services := g.pickServices(2)

			names := make([]string, len(services))
			for k, s := range services {
				names[k] = s.Name
			}
			hours := (model.TotalDuration(services) + time.Hour - 1) / time.Hour

			start := time.Date(y, m, d+day, hour, i*15, 0, 0, g.loc)
			status := model.OrderStatusPending
			if day == 0 {
				status = model.OrderStatusInProgress
			}

			var orderID string
			if len(orders) > 0 {
				orderID = orders[g.rng.IntN(min(orderPoolForApts, len(orders)))].ID
			}

			out = append(out, model.CalendarAppointment{
				ID:         fmt.Sprintf("APT-%d-%d", day, i),
				OrderID:    orderID,
				ClientName: client.Name,
				CarModel:   client.CarModel,
				Services:   names,
				StartTime:  start,
				EndTime:    start.Add(hours * time.Hour),
				Status:     status,
			})
		}
	}

	slices.SortStableFunc(out, func(a, b model.CalendarAppointment) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return out
}
