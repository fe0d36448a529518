package dynamo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/domain/model"
	"github.com/polkiloo/autoservice/internal/domain/repository"
)

const (
	ordersTable       = "orders"
	appointmentsTable = "appointments"

	// batchLimit is the BatchWriteItem request cap.
	batchLimit         = 25
	maxBatchRetries    = 5
	healthCheckTimeout = 2 * time.Second
)

// Storage keeps orders and appointments in two DynamoDB tables keyed by id.
type Storage struct {
	client       Client
	logger       *slog.Logger
	orders       string
	appointments string
}

type orderRepository struct {
	storage *Storage
}

type appointmentRepository struct {
	storage *Storage
}

// New creates storage and makes sure both tables exist.
func New(ctx context.Context, client Client, tablePrefix string, logger *slog.Logger) (*Storage, error) {
	s := &Storage{
		client:       client,
		logger:       logger,
		orders:       tablePrefix + ordersTable,
		appointments: tablePrefix + appointmentsTable,
	}
	for _, table := range []string{s.orders, s.appointments} {
		if err := s.ensureTable(ctx, table); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Appointments() repository.AppointmentRepository {
	return &appointmentRepository{storage: s}
}

// HealthCheck describes the orders table.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.orders)})
	return err
}

// Close is a no-op, the SDK client holds no releasable resources.
func (s *Storage) Close() {}

func (s *Storage) ensureTable(ctx context.Context, table string) error {
	_, err := s.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return fmt.Errorf("create table %s: %w", table, err)
	}
	s.logger.Info("dynamodb table created", slog.String("table", table))
	return nil
}

func (s *Storage) put(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return mapError(err)
}

func (s *Storage) delete(ctx context.Context, table, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return mapError(err)
}

// writeBatch stores items in chunks, resubmitting unprocessed ones.
func (s *Storage) writeBatch(ctx context.Context, table string, items []map[string]types.AttributeValue) error {
	for chunk := range slices.Chunk(items, batchLimit) {
		requests := make([]types.WriteRequest, len(chunk))
		for i, item := range chunk {
			requests[i] = types.WriteRequest{PutRequest: &types.PutRequest{Item: item}}
		}

		pending := map[string][]types.WriteRequest{table: requests}
		for attempt := 0; len(pending[table]) > 0; attempt++ {
			if attempt == maxBatchRetries {
				return fmt.Errorf("batch write %s: %d items unprocessed", table, len(pending[table]))
			}
			out, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return fmt.Errorf("batch write %s: %w", table, mapError(err))
			}
			pending = out.UnprocessedItems
		}
	}
	return nil
}

func (s *Storage) scan(ctx context.Context, table string, fn func(map[string]types.AttributeValue) error) error {
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{TableName: aws.String(table)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		for _, item := range page.Items {
			if err := fn(item); err != nil {
				return err
			}
		}
	}
	return nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return fmt.Errorf("%w: %v", domainErrors.ErrAlreadyExists, err)
	}
	return err
}

// --- OrderRepository implementation ---

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	var result []model.Order
	err := r.storage.scan(ctx, r.storage.orders, func(av map[string]types.AttributeValue) error {
		var it orderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return fmt.Errorf("unmarshal order: %w", err)
		}
		o, err := fromOrderItem(it)
		if err != nil {
			return err
		}
		result = append(result, o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(result, func(a, b model.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *orderRepository) Save(ctx context.Context, order model.Order) error {
	if err := r.storage.put(ctx, r.storage.orders, toOrderItem(order)); err != nil {
		return fmt.Errorf("save order %s: %w", order.ID, err)
	}
	return nil
}

func (r *orderRepository) SaveAll(ctx context.Context, orders []model.Order) error {
	items := make([]map[string]types.AttributeValue, 0, len(orders))
	for _, o := range orders {
		av, err := attributevalue.MarshalMap(toOrderItem(o))
		if err != nil {
			return fmt.Errorf("marshal order %s: %w", o.ID, err)
		}
		items = append(items, av)
	}
	return r.storage.writeBatch(ctx, r.storage.orders, items)
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	if err := r.storage.delete(ctx, r.storage.orders, id); err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	return nil
}

// --- AppointmentRepository implementation ---

func (r *appointmentRepository) List(ctx context.Context) ([]model.CalendarAppointment, error) {
	var result []model.CalendarAppointment
	err := r.storage.scan(ctx, r.storage.appointments, func(av map[string]types.AttributeValue) error {
		var it appointmentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return fmt.Errorf("unmarshal appointment: %w", err)
		}
		a, err := fromAppointmentItem(it)
		if err != nil {
			return err
		}
		result = append(result, a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(result, func(a, b model.CalendarAppointment) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *appointmentRepository) Save(ctx context.Context, appointment model.CalendarAppointment) error {
	if err := r.storage.put(ctx, r.storage.appointments, toAppointmentItem(appointment)); err != nil {
		return fmt.Errorf("save appointment %s: %w", appointment.ID, err)
	}
	return nil
}

func (r *appointmentRepository) SaveAll(ctx context.Context, appointments []model.CalendarAppointment) error {
	items := make([]map[string]types.AttributeValue, 0, len(appointments))
	for _, a := range appointments {
		av, err := attributevalue.MarshalMap(toAppointmentItem(a))
		if err != nil {
			return fmt.Errorf("marshal appointment %s: %w", a.ID, err)
		}
		items = append(items, av)
	}
	return r.storage.writeBatch(ctx, r.storage.appointments, items)
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	if err := r.storage.delete(ctx, r.storage.appointments, id); err != nil {
		return fmt.Errorf("delete appointment %s: %w", id, err)
	}
	return nil
}
