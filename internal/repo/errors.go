package repo

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrorNotFound    = errors.New("not found")
	ErrorDuplicate   = errors.New("duplicate")
	ErrorQuery       = errors.New("query failed")
	ErrorUnavailable = errors.New("store unavailable")
)

// mapError переводит ошибки драйвера в ошибки уровня репозитория.
// Ошибка *mysql.MySQLError означает, что сервер ответил - это ошибка запроса;
// все остальное (dial, таймаут, оборванное соединение) - недоступность базы.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrorNotFound
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		if myErr.Number == 1062 { // duplicate entry
			return ErrorDuplicate
		}
		return fmt.Errorf("%w: %v", ErrorQuery, err)
	}
	return fmt.Errorf("%w: %v", ErrorUnavailable, err)
}
