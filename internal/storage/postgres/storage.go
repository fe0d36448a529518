package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type appointmentRepository struct {
	storage *Storage
}

// serviceRecord is the jsonb shape of an order line.
type serviceRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Duration int    `json:"duration"`
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Appointments() repository.AppointmentRepository {
	return &appointmentRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            client_id TEXT NOT NULL,
            client_name TEXT NOT NULL,
            client_phone TEXT NOT NULL DEFAULT '',
            car_model TEXT NOT NULL,
            car_number TEXT NOT NULL,
            services JSONB NOT NULL DEFAULT '[]',
            total_price BIGINT NOT NULL,
            status TEXT NOT NULL,
            scheduled_date TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL,
            notes TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS appointments (
            id TEXT PRIMARY KEY,
            order_id TEXT NOT NULL DEFAULT '',
            client_name TEXT NOT NULL,
            car_model TEXT NOT NULL,
            services JSONB NOT NULL DEFAULT '[]',
            start_time TIMESTAMPTZ NOT NULL,
            end_time TIMESTAMPTZ NOT NULL,
            status TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_appointments_start ON appointments(start_time)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// execer is satisfied by both the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// --- OrderRepository implementation ---

const upsertOrder = `INSERT INTO orders (id, client_id, client_name, client_phone, car_model, car_number,
                         services, total_price, status, scheduled_date, created_at, notes)
                     VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
                     ON CONFLICT (id) DO UPDATE SET
                         client_id = EXCLUDED.client_id,
                         client_name = EXCLUDED.client_name,
                         client_phone = EXCLUDED.client_phone,
                         car_model = EXCLUDED.car_model,
                         car_number = EXCLUDED.car_number,
                         services = EXCLUDED.services,
                         total_price = EXCLUDED.total_price,
                         status = EXCLUDED.status,
                         scheduled_date = EXCLUDED.scheduled_date,
                         created_at = EXCLUDED.created_at,
                         notes = EXCLUDED.notes`

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT id, client_id, client_name, client_phone, car_model, car_number,
                          services, total_price, status, scheduled_date, created_at, notes
                   FROM orders ORDER BY created_at DESC, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var (
			o         model.Order
			services  []byte
			status    string
			scheduled *time.Time
		)
		if err := rows.Scan(&o.ID, &o.ClientID, &o.ClientName, &o.ClientPhone, &o.CarModel, &o.CarNumber,
			&services, &o.TotalPrice, &status, &scheduled, &o.CreatedAt, &o.Notes); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if o.Services, err = decodeServices(services); err != nil {
			return nil, fmt.Errorf("decode order %s services: %w", o.ID, err)
		}
		o.Status = model.OrderStatus(status)
		if scheduled != nil {
			o.ScheduledDate = *scheduled
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Save(ctx context.Context, order model.Order) error {
	return saveOrder(ctx, r.storage.pool, order)
}

func (r *orderRepository) SaveAll(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, o := range orders {
			if err := saveOrder(ctx, tx, o); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	return nil
}

func saveOrder(ctx context.Context, db execer, o model.Order) error {
	services, err := encodeServices(o.Services)
	if err != nil {
		return fmt.Errorf("encode order %s services: %w", o.ID, err)
	}
	_, err = db.Exec(ctx, upsertOrder, o.ID, o.ClientID, o.ClientName, o.ClientPhone, o.CarModel, o.CarNumber,
		services, o.TotalPrice, string(o.Status), nullableTime(o.ScheduledDate), o.CreatedAt, o.Notes)
	if err != nil {
		return fmt.Errorf("save order %s: %w", o.ID, mapError(err))
	}
	return nil
}

// --- AppointmentRepository implementation ---

const upsertAppointment = `INSERT INTO appointments (id, order_id, client_name, car_model, services, start_time, end_time, status)
                           VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                           ON CONFLICT (id) DO UPDATE SET
                               order_id = EXCLUDED.order_id,
                               client_name = EXCLUDED.client_name,
                               car_model = EXCLUDED.car_model,
                               services = EXCLUDED.services,
                               start_time = EXCLUDED.start_time,
                               end_time = EXCLUDED.end_time,
                               status = EXCLUDED.status`

func (r *appointmentRepository) List(ctx context.Context) ([]model.CalendarAppointment, error) {
	const query = `SELECT id, order_id, client_name, car_model, services, start_time, end_time, status
                   FROM appointments ORDER BY start_time, id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var result []model.CalendarAppointment
	for rows.Next() {
		var (
			a        model.CalendarAppointment
			services []byte
			status   string
		)
		if err := rows.Scan(&a.ID, &a.OrderID, &a.ClientName, &a.CarModel, &services, &a.StartTime, &a.EndTime, &status); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		if err := json.Unmarshal(services, &a.Services); err != nil {
			return nil, fmt.Errorf("decode appointment %s services: %w", a.ID, err)
		}
		a.Status = model.OrderStatus(status)
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *appointmentRepository) Save(ctx context.Context, appointment model.CalendarAppointment) error {
	return saveAppointment(ctx, r.storage.pool, appointment)
}

func (r *appointmentRepository) SaveAll(ctx context.Context, appointments []model.CalendarAppointment) error {
	if len(appointments) == 0 {
		return nil
	}
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, a := range appointments {
			if err := saveAppointment(ctx, tx, a); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.storage.pool.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete appointment %s: %w", id, err)
	}
	return nil
}

func saveAppointment(ctx context.Context, db execer, a model.CalendarAppointment) error {
	names := a.Services
	if names == nil {
		names = []string{}
	}
	services, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode appointment %s services: %w", a.ID, err)
	}
	_, err = db.Exec(ctx, upsertAppointment, a.ID, a.OrderID, a.ClientName, a.CarModel,
		string(services), a.StartTime, a.EndTime, string(a.Status))
	if err != nil {
		return fmt.Errorf("save appointment %s: %w", a.ID, mapError(err))
	}
	return nil
}

func encodeServices(services []model.Service) (string, error) {
	records := make([]serviceRecord, len(services))
	for i, s := range services {
		records[i] = serviceRecord(s)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeServices(raw []byte) ([]model.Service, error) {
	var records []serviceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	services := make([]model.Service, len(records))
	for i, rec := range records {
		services[i] = model.Service(rec)
	}
	return services, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
