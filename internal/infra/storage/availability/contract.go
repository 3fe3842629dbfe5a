package availability

import "github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов (sql.DB, sql.Tx или обёртка с метриками)
type DBExecutor = dbmetrics.DBExecutor
