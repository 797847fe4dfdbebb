package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/lqhuy182/art-registry/internal/core/domain"
)

// MySQLAdapter is the audit trail: every notification lands in an
// append-only per-kind table. Transfers additionally maintain the
// item_owners projection so reporting queries never replay the log.
type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) RecordEvent(ctx context.Context, event domain.Event) error {
	switch event.Kind {
	case domain.EventTransfer:
		return m.recordTransfer(ctx, event)
	case domain.EventApproval:
		_, err := m.db.ExecContext(ctx, `
			INSERT INTO approval_events (id, item_id, owner_account, delegate_account, occurred_at)
			VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), uint64(event.ItemID), string(event.Owner), string(event.Delegate), event.At,
		)
		if err != nil {
			return fmt.Errorf("insert approval event: %w", err)
		}
		return nil
	case domain.EventOperator:
		_, err := m.db.ExecContext(ctx, `
			INSERT INTO operator_events (id, owner_account, operator_account, approved, occurred_at)
			VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), string(event.Owner), string(event.Operator), event.Approved, event.At,
		)
		if err != nil {
			return fmt.Errorf("insert operator event: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown event kind %q", event.Kind)
	}
}

func (m *MySQLAdapter) recordTransfer(ctx context.Context, event domain.Event) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transfer_events (id, item_id, from_account, to_account, occurred_at)
		VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), uint64(event.ItemID), string(event.From), string(event.To), event.At,
	)
	if err != nil {
		return fmt.Errorf("insert transfer event: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO item_owners (item_id, owner_account, updated_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE owner_account = VALUES(owner_account), updated_at = VALUES(updated_at)`,
		uint64(event.ItemID), string(event.To), event.At,
	)
	if err != nil {
		return fmt.Errorf("update owner projection: %w", err)
	}

	return tx.Commit()
}

// CurrentOwner reads the owner projection. A missing row returns the
// null account with no error: the item has never been transferred.
func (m *MySQLAdapter) CurrentOwner(ctx context.Context, itemID domain.ItemID) (domain.Account, error) {
	var owner string
	err := m.db.QueryRowContext(ctx, `
		SELECT owner_account FROM item_owners WHERE item_id = ?`, uint64(itemID),
	).Scan(&owner)
	if err == sql.ErrNoRows {
		return domain.NullAccount, nil
	}
	if err != nil {
		return domain.NullAccount, fmt.Errorf("query owner projection: %w", err)
	}
	return domain.Account(owner), nil
}
