// internal/content/store.go
//
// Persistence for the content_customizations table.
//
// One row per overridden element, keyed by the unique tuple
// (entity_id, entity_type, component, element_id).  Writes are a single
// upsert on that tuple, so concurrent saves of the same element settle on
// last-write-wins without a read-modify-write race.
//
// Context
//   - All funcs are package-level and take *sqlx.DB or *sqlx.Tx, matching
//     the repository shape used across internal/.
package content

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Customization is one stored override for a single editable element.
type Customization struct {
	ID            string    `db:"id"             json:"id"`
	EntityID      string    `db:"entity_id"      json:"entity_id"`
	EntityType    string    `db:"entity_type"    json:"entity_type"`
	Component     string    `db:"component"      json:"component"`
	ElementType   string    `db:"element_type"   json:"element_type"`
	ElementID     string    `db:"element_id"     json:"element_id"`
	OriginalValue string    `db:"original_value" json:"original_value"`
	CustomValue   string    `db:"custom_value"   json:"custom_value"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"     json:"updated_at"`
}

// ByEntity returns every stored override for one entity, oldest first.
func ByEntity(ctx context.Context, db *sqlx.DB, entityID string, entityType EntityType) ([]Customization, error) {
	const q = `
		SELECT id, entity_id, entity_type, component, element_type,
		       element_id, original_value, custom_value,
		       created_at, updated_at
		  FROM content_customizations
		 WHERE entity_id = ? AND entity_type = ?
		 ORDER BY created_at`

	var rows []Customization
	if err := db.SelectContext(ctx, &rows, q, entityID, string(entityType)); err != nil {
		return nil, err
	}
	return rows, nil
}

// ByEntityComponent returns the stored overrides for one component of an
// entity.  Used by the admin editor to show current values side by side
// with the defaults.
func ByEntityComponent(ctx context.Context, db *sqlx.DB, entityID string, entityType EntityType, component string) ([]Customization, error) {
	const q = `
		SELECT id, entity_id, entity_type, component, element_type,
		       element_id, original_value, custom_value,
		       created_at, updated_at
		  FROM content_customizations
		 WHERE entity_id = ? AND entity_type = ? AND component = ?
		 ORDER BY element_id`

	var rows []Customization
	if err := db.SelectContext(ctx, &rows, q, entityID, string(entityType), component); err != nil {
		return nil, err
	}
	return rows, nil
}

const upsertSQL = `
	INSERT INTO content_customizations
	       (id, entity_id, entity_type, component, element_type,
	        element_id, original_value, custom_value)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
	       custom_value = VALUES(custom_value),
	       element_type = VALUES(element_type)`

const deleteSQL = `
	DELETE FROM content_customizations
	 WHERE entity_id = ? AND entity_type = ?
	   AND component = ? AND element_id = ?`

// upsertTx inserts or updates one override inside a transaction.
func upsertTx(ctx context.Context, tx *sqlx.Tx, c Customization) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := tx.ExecContext(ctx, upsertSQL,
		c.ID, c.EntityID, c.EntityType, c.Component,
		c.ElementType, c.ElementID, c.OriginalValue, c.CustomValue)
	return err
}

// deleteTx removes one override inside a transaction.  Deleting a row that
// does not exist is not an error.
func deleteTx(ctx context.Context, tx *sqlx.Tx, entityID string, entityType EntityType, component, elementID string) error {
	_, err := tx.ExecContext(ctx, deleteSQL,
		entityID, string(entityType), component, elementID)
	return err
}

// DeleteByEntity removes every override for an entity.  Called when the
// entity itself is deleted.
func DeleteByEntity(ctx context.Context, db *sqlx.DB, entityID string, entityType EntityType) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM content_customizations WHERE entity_id = ? AND entity_type = ?`,
		entityID, string(entityType))
	return err
}
