package tests

import (
	"context"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/nkraeva/task-tracker-api/internal/repo"
)

// SetupTestDB поднимает MySQL в контейнере и накатывает схему.
// Без работающего Docker сьют пропускается, а не падает.
func SetupTestDB(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	// mysqld пишет "ready for connections" дважды: сначала временный
	// сервер инициализации, потом рабочий. Ждем второго.
	container, err := mysql.Run(ctx,
		"mysql:8.0",
		mysql.WithDatabase("task_manager"),
		mysql.WithUsername("testuser"),
		mysql.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("ready for connections").
				WithOccurrence(2).
				WithStartupTimeout(120*time.Second),
		),
	)
	if err != nil {
		if container != nil {
			_ = container.Terminate(ctx)
		}
		t.Skipf("Skipping: failed to start mysql container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx, "parseTime=true", "charset=utf8")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	db, err := sqlx.Open("mysql", connStr)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	// Контейнер уже слушает порт, но серверу нужно время на инициализацию.
	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	for {
		if err = db.PingContext(pingCtx); err == nil {
			break
		}
		select {
		case <-pingCtx.Done():
			t.Fatalf("Failed to ping database: %v", err)
		case <-time.After(500 * time.Millisecond):
		}
	}

	if err := repo.EnsureSchema(ctx, db); err != nil {
		t.Fatalf("Failed to bootstrap schema: %v", err)
	}

	cleanup := func() {
		db.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("Failed to terminate container: %v", err)
		}
	}

	return db, cleanup
}

// TruncateTables очищает обе таблицы между сценариями.
func TruncateTables(t *testing.T, db *sqlx.DB) {
	t.Helper()
	ctx := context.Background()

	stmts := []string{
		"SET FOREIGN_KEY_CHECKS = 0",
		"TRUNCATE TABLE tasks",
		"TRUNCATE TABLE users",
		"SET FOREIGN_KEY_CHECKS = 1",
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("Failed to truncate tables: %v", err)
		}
	}
}

// SeedTask вставляет задачу с заданной отметкой времени - через API ее
// задать нельзя, а проверке сортировки нужны разные значения.
func SeedTask(t *testing.T, db *sqlx.DB, title string, userID int64, createdAt time.Time) int64 {
	t.Helper()

	res, err := db.Exec(
		"INSERT INTO tasks (title, status, user_id, created_at) VALUES (?, 'pending', ?, ?)",
		title, userID, createdAt)
	if err != nil {
		t.Fatalf("Failed to seed task: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read inserted id: %v", err)
	}
	return id
}
