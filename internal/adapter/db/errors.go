package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers this adapter cares about.
const (
	mysqlErrDuplicateEntry      = 1062
	mysqlErrForeignKeyViolation = 1452
)

func isDuplicateEntry(err error) bool {
	return isMySQLError(err, mysqlErrDuplicateEntry)
}

func isForeignKeyViolation(err error) bool {
	return isMySQLError(err, mysqlErrForeignKeyViolation)
}

func isMySQLError(err error, number uint16) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == number
}
