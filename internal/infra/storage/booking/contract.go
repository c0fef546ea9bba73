package booking

import (
	"github.com/m04kA/BRB-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
// Репозиторию все равно, обернуто ли соединение сборщиком метрик.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
