// internal/content/writer.go
//
// Write-path content updates.
//
// Saves arrive from the admin editor either as a single element change or
// as a whole-component batch.  A value equal to the registry default means
// "reset": the override row is deleted instead of stored, so the table only
// ever holds true deviations.  HTML elements pass through the sanitizer
// before comparison and storage.
//
// Every successful save flushes the resolver cache, so the next read
// re-resolves against the database.
package content

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.UGCPolicy().
	AllowAttrs("class", "style").Globally()

// Change is one element update submitted by the editor.
type Change struct {
	ElementID string `json:"element_id" validate:"required"`
	Value     string `json:"value"`
}

// Writer applies content changes and keeps the resolver cache coherent.
type Writer struct {
	db       *sqlx.DB
	resolver *Resolver
}

// NewWriter wires a writer over db, invalidating through resolver.
func NewWriter(db *sqlx.DB, resolver *Resolver) *Writer {
	return &Writer{db: db, resolver: resolver}
}

// SaveComponent applies a batch of element changes for one component of an
// entity inside a single transaction.  Elements not present in the batch
// are left untouched.  Returns the number of rows written or removed.
func (w *Writer) SaveComponent(ctx context.Context, entityID string, entity EntityType, component string, changes []Change) (int, error) {
	schema := Components()
	if entity == EntityProduct {
		schema = ProductComponents()
	}

	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	applied := 0
	for _, ch := range changes {
		elemType := string(ElementText)
		if el, ok := ElementByID(schema, component, ch.ElementID); ok {
			elemType = string(el.Type)
		}

		value := ch.Value
		if elemType == string(ElementHTML) {
			value = htmlPolicy.Sanitize(value)
		}

		def, hasDefault := DefaultValue(entity, component, ch.ElementID)
		if hasDefault && value == def {
			if err := deleteTx(ctx, tx, entityID, entity, component, ch.ElementID); err != nil {
				return 0, err
			}
			applied++
			continue
		}

		c := Customization{
			EntityID:      entityID,
			EntityType:    string(entity),
			Component:     component,
			ElementType:   elemType,
			ElementID:     ch.ElementID,
			OriginalValue: def,
			CustomValue:   value,
		}
		if err := upsertTx(ctx, tx, c); err != nil {
			return 0, err
		}
		applied++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	w.invalidate(ctx, entityID, entity)
	return applied, nil
}

// SaveElement applies a single element change.
func (w *Writer) SaveElement(ctx context.Context, entityID string, entity EntityType, component string, change Change) error {
	_, err := w.SaveComponent(ctx, entityID, entity, component, []Change{change})
	return err
}

// DeleteEntity purges every override of an entity whose row was just
// removed from the catalog, so orphaned customizations never accumulate.
func (w *Writer) DeleteEntity(ctx context.Context, entityID string, entity EntityType) error {
	if err := DeleteByEntity(ctx, w.db, entityID, entity); err != nil {
		return err
	}
	w.invalidate(ctx, entityID, entity)
	return nil
}

// ResetComponent removes every override for one component of an entity.
func (w *Writer) ResetComponent(ctx context.Context, entityID string, entity EntityType, component string) error {
	_, err := w.db.ExecContext(ctx,
		`DELETE FROM content_customizations
		  WHERE entity_id = ? AND entity_type = ? AND component = ?`,
		entityID, string(entity), component)
	if err != nil {
		return err
	}
	w.invalidate(ctx, entityID, entity)
	return nil
}

// invalidate drops every cache entry that could include this entity.  The
// cache is keyed by slug while writes are keyed by id, and one page can be
// cached under several locales, so the whole cache is flushed.  Entries are
// few (one per page or product) and rebuild on the next read.
func (w *Writer) invalidate(_ context.Context, _ string, _ EntityType) {
	if w.resolver != nil {
		w.resolver.Cache().InvalidateAll()
	}
}
