package iocache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/schema"
)

// runsTable is the table holding one row per activity fetch.
const runsTable = "litterlog_fetch_runs"

// RunsStoreImpl implements the RunsStore interface.
type RunsStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.RunsStore = &RunsStoreImpl{} // Compile-time check

// NewRunsStore creates a new RunsStore with the specified backend and brings
// its schema up to date via the embedded migrations.
func NewRunsStore(backend schema.DatabaseBackend, connStr string) (contract.RunsStore, error) {
	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetRunsDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled tracking
		return &RunsStoreImpl{db: nil, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w. Verify the database server is running and accessible", backend, err)
	}

	if err := MigrateRuns(backend, connStr, -1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate runs schema: %w", err)
	}

	return &RunsStoreImpl{db: db, backend: backend, driverName: driverName}, nil
}

// BeginRun creates a new fetch-run record and returns its unique ID.
func (rs *RunsStoreImpl) BeginRun(startTime time.Time, robotSerial, source string) (int64, error) {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return 0, nil
	}

	quotedTableName := quoteTableName(runsTable, rs.backend)

	var runID int64
	var err error
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (start_time, robot_serial, source) VALUES ($1, $2, $3) RETURNING run_id`, quotedTableName)
		err = rs.db.QueryRow(query, startTime, robotSerial, source).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (start_time, robot_serial, source) VALUES (?, ?, ?)`, quotedTableName)
		var result sql.Result
		result, err = rs.db.Exec(query, formatTime(startTime, rs.backend), robotSerial, source)
		if err != nil {
			return 0, err
		}
		runID, err = result.LastInsertId()
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert fetch run: %w", err)
	}
	return runID, nil
}

// EndRun updates the fetch-run record with completion data.
func (rs *RunsStoreImpl) EndRun(runID int64, endTime time.Time, eventCount int) error {
	// Skip for NoneBackend
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(runsTable, rs.backend)
	var query string
	var args []any
	switch rs.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`UPDATE %s SET end_time = $1, event_count = $2 WHERE run_id = $3`, quotedTableName)
		args = []any{endTime, eventCount, runID}
	default: // SQLite and MySQL
		query = fmt.Sprintf(`UPDATE %s SET end_time = ?, event_count = ? WHERE run_id = ?`, quotedTableName)
		args = []any{formatTime(endTime, rs.backend), eventCount, runID}
	}

	if _, err := rs.db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to finalize fetch run %d: %w", runID, err)
	}
	return nil
}

// GetStatus returns status information about the runs store.
func (rs *RunsStoreImpl) GetStatus() (schema.RunsStatus, error) {
	status := schema.RunsStatus{
		Backend:   string(rs.backend),
		Connected: rs.db != nil,
	}
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(runsTable, rs.backend)

	row := rs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName))
	if err := row.Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}
	if status.TotalRuns == 0 {
		return status, nil
	}

	row = rs.db.QueryRow(fmt.Sprintf("SELECT run_id, start_time FROM %s ORDER BY run_id DESC LIMIT 1", quotedTableName))
	var lastStart storedTime
	if err := row.Scan(&status.LastRunID, &lastStart); err != nil {
		return status, fmt.Errorf("failed to get last run: %w", err)
	}
	status.LastRunTime = lastStart.Time

	row = rs.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", quotedTableName))
	var oldestStart storedTime
	if err := row.Scan(&oldestStart); err != nil {
		return status, fmt.Errorf("failed to get oldest run: %w", err)
	}
	status.OldestRunTime = oldestStart.Time

	row = rs.db.QueryRow(fmt.Sprintf("SELECT COALESCE(SUM(event_count), 0) FROM %s", quotedTableName))
	if err := row.Scan(&status.TotalEventsFetched); err != nil {
		return status, fmt.Errorf("failed to sum fetched events: %w", err)
	}

	return status, nil
}

// formatTime renders a timestamp the way the backend's column type expects.
func formatTime(t time.Time, backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return t.UTC().Format("2006-01-02 15:04:05.000000")
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// storedTime scans timestamps regardless of whether the driver hands back
// native time values (pgx, mysql with parseTime) or RFC3339 text (sqlite).
type storedTime struct {
	Time time.Time
}

func (st *storedTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		st.Time = v
		return nil
	case []byte:
		return st.parse(string(v))
	case string:
		return st.parse(v)
	case nil:
		st.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into storedTime", src)
	}
}

func (st *storedTime) parse(s string) error {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			st.Time = t
			return nil
		}
	}
	return fmt.Errorf("unparseable stored time: %q", s)
}

// Close closes the underlying connection.
func (rs *RunsStoreImpl) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}
