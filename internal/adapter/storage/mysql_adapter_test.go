package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"github.com/lqhuy182/art-registry/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/artregistry?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	return db
}

func TestRecordEvent_Transfer(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	// Cleanup old test rows
	db.ExecContext(ctx, `DELETE FROM transfer_events WHERE item_id = 777001`)
	db.ExecContext(ctx, `DELETE FROM item_owners WHERE item_id = 777001`)

	event := domain.NewTransferEvent("registry", "alice", 777001)

	if err := adapter.RecordEvent(ctx, event); err != nil {
		t.Fatalf("RecordEvent failed: %v", err)
	}

	// Verify the audit row landed
	var count int
	db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM transfer_events
		WHERE item_id = 777001 AND from_account = 'registry' AND to_account = 'alice'`,
	).Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 transfer row, got %d", count)
	}

	// Verify the projection follows
	owner, err := adapter.CurrentOwner(ctx, 777001)
	if err != nil {
		t.Fatalf("CurrentOwner failed: %v", err)
	}
	if owner != "alice" {
		t.Errorf("expected projected owner alice, got %q", owner)
	}

	// Cleanup
	db.ExecContext(ctx, `DELETE FROM transfer_events WHERE item_id = 777001`)
	db.ExecContext(ctx, `DELETE FROM item_owners WHERE item_id = 777001`)
}

func TestRecordEvent_TransferUpsertsProjection(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	// Cleanup old test rows
	db.ExecContext(ctx, `DELETE FROM transfer_events WHERE item_id = 777002`)
	db.ExecContext(ctx, `DELETE FROM item_owners WHERE item_id = 777002`)

	if err := adapter.RecordEvent(ctx, domain.NewTransferEvent("registry", "alice", 777002)); err != nil {
		t.Fatalf("first RecordEvent failed: %v", err)
	}
	if err := adapter.RecordEvent(ctx, domain.NewTransferEvent("alice", "bob", 777002)); err != nil {
		t.Fatalf("second RecordEvent failed: %v", err)
	}

	// Two audit rows, one projection row pointing at the latest owner.
	var count int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transfer_events WHERE item_id = 777002`).Scan(&count)
	if count != 2 {
		t.Errorf("expected 2 transfer rows, got %d", count)
	}

	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM item_owners WHERE item_id = 777002`).Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 projection row, got %d", count)
	}

	owner, err := adapter.CurrentOwner(ctx, 777002)
	if err != nil {
		t.Fatalf("CurrentOwner failed: %v", err)
	}
	if owner != "bob" {
		t.Errorf("expected projected owner bob, got %q", owner)
	}

	// Cleanup
	db.ExecContext(ctx, `DELETE FROM transfer_events WHERE item_id = 777002`)
	db.ExecContext(ctx, `DELETE FROM item_owners WHERE item_id = 777002`)
}

func TestRecordEvent_Approval(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	db.ExecContext(ctx, `DELETE FROM approval_events WHERE item_id = 777003`)

	event := domain.NewApprovalEvent("alice", "carol", 777003)

	if err := adapter.RecordEvent(ctx, event); err != nil {
		t.Fatalf("RecordEvent failed: %v", err)
	}

	var count int
	db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM approval_events
		WHERE item_id = 777003 AND owner_account = 'alice' AND delegate_account = 'carol'`,
	).Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 approval row, got %d", count)
	}

	db.ExecContext(ctx, `DELETE FROM approval_events WHERE item_id = 777003`)
}

func TestRecordEvent_Operator(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	db.ExecContext(ctx, `DELETE FROM operator_events WHERE owner_account = 'op-test-owner'`)

	event := domain.NewOperatorEvent("op-test-owner", "op-test-operator", true)

	if err := adapter.RecordEvent(ctx, event); err != nil {
		t.Fatalf("RecordEvent failed: %v", err)
	}

	var approved bool
	err := db.QueryRowContext(ctx, `
		SELECT approved FROM operator_events
		WHERE owner_account = 'op-test-owner' AND operator_account = 'op-test-operator'`,
	).Scan(&approved)
	if err != nil {
		t.Fatalf("operator row not found: %v", err)
	}
	if !approved {
		t.Error("expected approved flag to be true")
	}

	db.ExecContext(ctx, `DELETE FROM operator_events WHERE owner_account = 'op-test-owner'`)
}

func TestCurrentOwner_NeverTransferred(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	db.ExecContext(ctx, `DELETE FROM item_owners WHERE item_id = 777004`)

	owner, err := adapter.CurrentOwner(ctx, 777004)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !owner.IsNull() {
		t.Errorf("expected null owner for untransferred item, got %q", owner)
	}
}
