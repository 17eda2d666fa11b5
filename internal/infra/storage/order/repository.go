package order

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/pkg/dbmetrics"
	"github.com/vrmarket/VRM-RentalService/pkg/psqlbuilder"
)

// orderColumns полный набор колонок таблицы orders
var orderColumns = []string{
	"id",
	"client_id",
	"vehicle_id",
	"pickup_datetime",
	"return_datetime",
	"actual_return_datetime",
	"pickup_location",
	"dropoff_location",
	"otp",
	"rental_amount",
	"security_deposit",
	"late_fee",
	"payment_status",
	"order_status",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заказами аренды
// Единственная точка записи в таблицу orders: никакой другой код
// не выполняет запросы к хранилищу заказов напрямую
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый заказ
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Создание заказа с проверкой занятости слота ОБЯЗАНО выполняться в
// сериализуемой транзакции вместе с GetByVehicleWithFilter (FOR UPDATE),
// иначе два конкурентных запроса могут оба пройти проверку и создать
// пересекающиеся заказы
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"id",
			"client_id",
			"vehicle_id",
			"pickup_datetime",
			"return_datetime",
			"pickup_location",
			"dropoff_location",
			"otp",
			"rental_amount",
			"security_deposit",
			"late_fee",
			"payment_status",
			"order_status",
			"notes",
		).
		Values(
			order.ID,
			order.ClientID,
			order.VehicleID,
			order.PickupDatetime,
			order.ReturnDatetime,
			order.PickupLocation,
			order.DropoffLocation,
			order.OTP,
			order.RentalAmount,
			order.SecurityDeposit,
			order.LateFee,
			order.PaymentStatus,
			order.OrderStatus,
			order.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return order, nil
}

// GetByID получает заказ по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	order, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	return order, nil
}

// GetByClientID получает заказы пользователя, сначала свежие
// Опционально фильтрует по статусу
func (r *Repository) GetByClientID(ctx context.Context, clientID uuid.UUID, status *domain.OrderStatus) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("created_at DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"order_status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// GetByVehicleWithFilter получает заказы автомобиля с фильтрацией
// Поддерживает:
// - ActiveOnly - только upcoming/ongoing (участвуют в проверке конфликтов)
// - RangeStart/RangeEnd - заказы, чей интервал пересекает диапазон
//
// Внутри транзакции при ActiveOnly добавляется FOR UPDATE: активные
// заказы автомобиля блокируются на время check-then-insert
func (r *Repository) GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleOrdersFilter) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"vehicle_id": filter.VehicleID}).
		OrderBy("pickup_datetime ASC")

	if filter.ActiveOnly {
		activeStatusStrings := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			activeStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"order_status": activeStatusStrings})
	}

	// Пересечение полуоткрытого интервала заказа [pickup, return)
	// с закрытым диапазоном [RangeStart, RangeEnd]
	if filter.RangeEnd != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"pickup_datetime": *filter.RangeEnd})
	}
	if filter.RangeStart != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"return_datetime": *filter.RangeStart})
	}

	if dbmetrics.IsInTransaction(ctx) && filter.ActiveOnly {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVehicleWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOrders(rows)
}

// UpdateStatus обновляет статус заказа
// Валидность перехода проверяет вызывающий слой (domain.CanTransition)
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("order_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Complete завершает заказ: статус, фактическое время возврата и штраф
func (r *Repository) Complete(ctx context.Context, id uuid.UUID, actualReturn time.Time, lateFee float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("order_status", domain.StatusCompleted).
		Set("actual_return_datetime", actualReturn).
		Set("late_fee", lateFee).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Complete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Complete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// UpdatePaymentStatus обновляет статус оплаты заказа
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// scanOrder сканирует одну строку в заказ
func scanOrder(scan func(dest ...interface{}) error) (*domain.Order, error) {
	var order domain.Order
	var actualReturn sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&order.ID,
		&order.ClientID,
		&order.VehicleID,
		&order.PickupDatetime,
		&order.ReturnDatetime,
		&actualReturn,
		&order.PickupLocation,
		&order.DropoffLocation,
		&order.OTP,
		&order.RentalAmount,
		&order.SecurityDeposit,
		&order.LateFee,
		&order.PaymentStatus,
		&order.OrderStatus,
		&order.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if actualReturn.Valid {
		order.ActualReturnDatetime = &actualReturn.Time
	}
	order.CreatedAt = createdAt.Time
	order.UpdatedAt = updatedAt.Time

	return &order, nil
}

// scanOrders сканирует результаты запроса в слайс заказов
func (r *Repository) scanOrders(rows *sql.Rows) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)

	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanOrders - scan row: %v", ErrScanRow, err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOrders - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}
