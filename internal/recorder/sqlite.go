package recorder

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLite writes session history to a local SQLite database. Every row is
// stamped with a per-process session ID so multiple runs share one file.
type SQLite struct {
	conn    *sqlx.DB
	session string
}

// OpenSQLite opens or creates the history database at path.
func OpenSQLite(path string) (*SQLite, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	r := &SQLite{conn: conn, session: uuid.NewString()}
	if err := r.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Info("history recorder opened", "path", path, "session", r.session)
	return r, nil
}

func (r *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS daily_summaries (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id        TEXT NOT NULL,
		recorded_at       INTEGER NOT NULL,
		day               INTEGER NOT NULL,
		visits            INTEGER NOT NULL,
		conversion_rate   REAL NOT NULL,
		potential_orders  INTEGER NOT NULL,
		accepted_orders   INTEGER NOT NULL,
		processed_orders  INTEGER NOT NULL,
		lost_to_stock     INTEGER NOT NULL,
		lost_to_capacity  INTEGER NOT NULL,
		overflow_created  INTEGER NOT NULL,
		revenue           REAL NOT NULL,
		costs             REAL NOT NULL,
		interest          REAL NOT NULL,
		net               REAL NOT NULL,
		employee_worked   INTEGER NOT NULL,
		employee_salary   REAL NOT NULL,
		reputation_impact REAL NOT NULL,
		event_id          TEXT,
		viral_occurred    INTEGER NOT NULL,
		cash              REAL NOT NULL,
		debt              REAL NOT NULL,
		stock             INTEGER NOT NULL,
		reputation_score  REAL NOT NULL,
		reputation_tier   TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS player_actions (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id  TEXT NOT NULL,
		recorded_at INTEGER NOT NULL,
		day         INTEGER NOT NULL,
		action      TEXT NOT NULL,
		success     INTEGER NOT NULL,
		message     TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_summaries_session ON daily_summaries(session_id, day);
	CREATE INDEX IF NOT EXISTS idx_actions_session ON player_actions(session_id, day);
	`
	_, err := r.conn.Exec(schema)
	return err
}

// RecordDay appends one resolved day.
func (r *SQLite) RecordDay(rec *DayRecord) error {
	s := rec.Summary
	_, err := r.conn.Exec(`INSERT INTO daily_summaries
		(session_id, recorded_at, day, visits, conversion_rate,
		 potential_orders, accepted_orders, processed_orders,
		 lost_to_stock, lost_to_capacity, overflow_created,
		 revenue, costs, interest, net,
		 employee_worked, employee_salary, reputation_impact,
		 event_id, viral_occurred,
		 cash, debt, stock, reputation_score, reputation_tier)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		r.session, time.Now().Unix(), s.Day, s.Visits, s.ConversionRate,
		s.PotentialOrders, s.StockLimitedOrders, s.ProcessedOrders,
		s.LostToStock, s.LostToCapacity, s.OverflowCreated,
		s.Revenue, s.Costs, s.Interest, s.Net,
		boolToInt(s.EmployeeWorked), s.EmployeeSalary, s.ReputationImpact,
		s.EventID, boolToInt(s.ViralOccurred),
		rec.Cash, rec.Debt, rec.Stock, rec.ReputationScore, rec.ReputationTier,
	)
	if err != nil {
		return fmt.Errorf("insert daily summary: %w", err)
	}
	return nil
}

// RecordAction appends one player action.
func (r *SQLite) RecordAction(rec *ActionRecord) error {
	_, err := r.conn.Exec(`INSERT INTO player_actions
		(session_id, recorded_at, day, action, success, message)
		VALUES (?,?,?,?,?,?)`,
		r.session, time.Now().Unix(), rec.Day, rec.Action, boolToInt(rec.Success), rec.Message,
	)
	if err != nil {
		return fmt.Errorf("insert action: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (r *SQLite) Close() error {
	return r.conn.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
