package repo

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Схема, которую ожидают обработчики. Создание идемпотентно, поэтому
// выполняется при каждом старте и в тестовой обвязке.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'pending',
		user_id INT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_tasks_user_id (user_id),
		CONSTRAINT fk_tasks_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8`,
}

func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return mapError(err)
		}
	}
	return nil
}
