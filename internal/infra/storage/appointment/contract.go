package appointment

import "github.com/salonworks/booking-service/pkg/dbmetrics"

// The repository reuses the executor interfaces from dbmetrics so the
// same methods run against the pool or an in-flight transaction.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
