package vehiclecache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/pkg/dbmetrics"
	"github.com/vrmarket/VRM-RentalService/pkg/psqlbuilder"
)

// Entry запись витринного кэша статуса автомобиля
type Entry struct {
	VehicleID     uuid.UUID
	CurrentStatus string
	UpdatedAt     time.Time
}

// Repository репозиторий денормализованного кэша current_status
// Кэш - подсказка для витрины; проверка конфликтов всегда
// пересчитывается из заказов и кэш не читает
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория кэша статусов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert записывает актуальный статус автомобиля
func (r *Repository) Upsert(ctx context.Context, vehicleID uuid.UUID, status string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicle_status_cache").
		Columns("vehicle_id", "current_status", "updated_at").
		Values(vehicleID, status, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (vehicle_id) DO UPDATE SET current_status = EXCLUDED.current_status, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Get читает закэшированный статус автомобиля
func (r *Repository) Get(ctx context.Context, vehicleID uuid.UUID) (*Entry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("vehicle_id", "current_status", "updated_at").
		From("vehicle_status_cache").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var entry Entry
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.VehicleID,
		&entry.CurrentStatus,
		&entry.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan entry: %v", ErrScanRow, err)
	}

	return &entry, nil
}
