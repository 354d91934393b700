package migrator

import (
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-PickupService/migrator/postgres"
	"github.com/m04kA/SMC-PickupService/migrator/sqlite"
)

// Migrate применяет встроенные миграции для указанного драйвера
func Migrate(db *sql.DB, driver string) error {
	switch driver {
	case "postgres":
		return postgres.Migrate(db)
	case "sqlite3":
		return sqlite.Migrate(db)
	default:
		return fmt.Errorf("migrator: unsupported driver %q", driver)
	}
}
