package vehiclecache

import "errors"

var (
	// ErrNotCached возвращается, когда для автомобиля нет записи в кэше
	ErrNotCached = errors.New("vehiclecache.repository: status not cached")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("vehiclecache.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("vehiclecache.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("vehiclecache.repository: failed to scan row")
)
