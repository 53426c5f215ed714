package native

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Host-side database natives. Connections live in a host table keyed by an
// int64 handle; the handle is the only thing that crosses the boundary.
// Execution is single-threaded, so the table needs no locking.
var (
	dbConnections = map[int64]*sql.DB{}
	nextDBHandle  int64
)

// RegisterDB installs db_connect, db_exec, db_query_int and db_close. The
// sqlite3, mysql and postgres drivers are linked in; the driver name passed
// to db_connect selects among them.
func RegisterDB(r *Registry) error {
	if err := r.Register("db_connect", 2, func(args ...any) (any, error) {
		driver, err := stringArg(args, 0)
		if err != nil {
			return nil, err
		}
		dsn, err := stringArg(args, 1)
		if err != nil {
			return nil, err
		}

		db, err := sql.Open(driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open connection: %v", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %v", err)
		}

		nextDBHandle++
		dbConnections[nextDBHandle] = db
		return nextDBHandle, nil
	}); err != nil {
		return err
	}

	if err := r.Register("db_exec", 2, func(args ...any) (any, error) {
		db, err := connectionArg(args, 0)
		if err != nil {
			return nil, err
		}
		query, err := stringArg(args, 1)
		if err != nil {
			return nil, err
		}

		result, err := db.Exec(query)
		if err != nil {
			return nil, fmt.Errorf("exec failed: %v", err)
		}
		affected, _ := result.RowsAffected()
		return affected, nil
	}); err != nil {
		return err
	}

	if err := r.Register("db_query_int", 2, func(args ...any) (any, error) {
		db, err := connectionArg(args, 0)
		if err != nil {
			return nil, err
		}
		query, err := stringArg(args, 1)
		if err != nil {
			return nil, err
		}

		var value int64
		if err := db.QueryRow(query).Scan(&value); err != nil {
			return nil, fmt.Errorf("query failed: %v", err)
		}
		return value, nil
	}); err != nil {
		return err
	}

	if err := r.Register("db_close", 1, func(args ...any) (any, error) {
		id, err := int64Arg(args, 0)
		if err != nil {
			return nil, err
		}
		db, ok := dbConnections[id]
		if !ok {
			return nil, fmt.Errorf("invalid connection handle %d", id)
		}
		delete(dbConnections, id)
		if err := db.Close(); err != nil {
			return nil, fmt.Errorf("close failed: %v", err)
		}
		return nil, nil
	}); err != nil {
		return err
	}

	return nil
}

func connectionArg(args []any, i int) (*sql.DB, error) {
	id, err := int64Arg(args, i)
	if err != nil {
		return nil, err
	}
	db, ok := dbConnections[id]
	if !ok {
		return nil, fmt.Errorf("invalid connection handle %d", id)
	}
	return db, nil
}
