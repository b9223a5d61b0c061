package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"simples/internal/simples/model"
	"simples/internal/simples/util"
)

const findSystemQuery = "SELECT s.* FROM `system` s " +
	"INNER JOIN `map` m ON m.id = s.mapId " +
	"WHERE m.mapId = ? AND s.systemId = ?"

type MySQLRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewMySQLRepository wraps an open pool. timeout bounds connection
// acquisition plus query execution for every call.
func NewMySQLRepository(db *sql.DB, timeout time.Duration) *MySQLRepository {
	return &MySQLRepository{db: db, timeout: timeout}
}

func (r *MySQLRepository) FindSystem(ctx context.Context, mapID, systemID string) (*model.SystemRecord, error) {
	// A client going away must not abort a query already in flight.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, findSystemQuery, mapID, systemID)
	if err != nil {
		return nil, fmt.Errorf("query system: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("read system rows: %w", err)
		}
		return nil, ErrNotFound
	}

	return scanRecord(rows)
}

func (r *MySQLRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.db.PingContext(ctx)
}

func (r *MySQLRepository) Close() error {
	return r.db.Close()
}

func scanRecord(rows *sql.Rows) (*model.SystemRecord, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("read column types: %w", err)
	}

	names := make([]string, len(types))
	values := make([]any, len(types))
	ptrs := make([]any, len(types))
	for i, ct := range types {
		names[i] = ct.Name()
		ptrs[i] = &values[i]
	}

	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("scan system row: %w", err)
	}

	for i, ct := range types {
		values[i] = convertValue(ct.DatabaseTypeName(), values[i])
	}
	return model.NewSystemRecord(names, values)
}

// convertValue maps a raw driver value onto what the JSON body carries.
// The driver hands out []byte for character, decimal and JSON columns.
func convertValue(dbType string, v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		switch dbType {
		case "JSON":
			if json.Valid(x) {
				return json.RawMessage(append([]byte(nil), x...))
			}
			return string(x)
		case "BINARY", "VARBINARY", "BLOB", "TINYBLOB", "MEDIUMBLOB", "LONGBLOB", "BIT", "GEOMETRY":
			return append([]byte(nil), x...)
		default:
			return string(x)
		}
	case time.Time:
		return util.Timestamp(x)
	default:
		return v
	}
}
