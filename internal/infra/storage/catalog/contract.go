package catalog

import "github.com/salonworks/booking-service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
