package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/arpgcore/internal/game/affix"
	"github.com/udisondev/arpgcore/internal/model"
)

// Errors.
var (
	ErrItemNotFound    = errors.New("item not found")
	ErrUnknownBase     = errors.New("unknown item base")
	ErrUnknownTemplate = errors.New("unknown affix template")
)

// BaseLookup resolves item bases by ID.
type BaseLookup interface {
	Get(id string) *model.Base
}

// ItemRepository управляет сгенерированными предметами в БД.
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository создаёт новый ItemRepository.
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// Save inserts item with its affixes in one transaction, assigns the new
// database ID to the item and returns it.
func (r *ItemRepository) Save(ctx context.Context, item *model.Item) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "base", item.Base().ID, "error", err)
		}
	}()

	id, err := r.SaveTx(ctx, tx, item)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	item.SetID(id)
	return id, nil
}

// SaveTx inserts item within an existing transaction. The item's ID is not updated.
func (r *ItemRepository) SaveTx(ctx context.Context, tx pgx.Tx, item *model.Item) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO items (base_id, slot, item_level, rarity)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		item.Base().ID, item.Slot().String(), item.Level(), item.Rarity().String(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting item %q: %w", item.Base().ID, err)
	}

	affixes := item.Affixes()
	if len(affixes) == 0 {
		return id, nil
	}

	// Вставляем аффиксы через COPY
	rows := make([][]any, 0, len(affixes))
	for i, a := range affixes {
		rows = append(rows, []any{id, i, a.Template.ID, a.Template.Tier, a.Template.Stat.String(), a.Value})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"item_affixes"},
		[]string{"item_id", "position", "template_id", "tier", "stat", "value"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting affixes for item %d: %w", id, err)
	}
	return id, nil
}

// Load rebuilds item id. Bases and templates are resolved against the given
// authored data, so archived items follow data changes to their templates.
func (r *ItemRepository) Load(ctx context.Context, id int64, bases BaseLookup, pool *affix.Pool) (*model.Item, error) {
	var (
		baseID, rarityName string
		level              int
	)
	err := r.db.QueryRow(ctx,
		`SELECT base_id, item_level, rarity FROM items WHERE id = $1`, id,
	).Scan(&baseID, &level, &rarityName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", id, ErrItemNotFound)
		}
		return nil, fmt.Errorf("querying item %d: %w", id, err)
	}

	base := bases.Get(baseID)
	if base == nil {
		return nil, fmt.Errorf("item %d base %q: %w", id, baseID, ErrUnknownBase)
	}
	rarity, err := affix.ParseRarity(rarityName)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", id, err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT template_id, value FROM item_affixes WHERE item_id = $1 ORDER BY position`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("querying affixes for item %d: %w", id, err)
	}
	defer rows.Close()

	affixes := make([]*affix.Instance, 0, 4)
	for rows.Next() {
		var templateID string
		var value float64
		if err := rows.Scan(&templateID, &value); err != nil {
			return nil, fmt.Errorf("scanning affix row: %w", err)
		}
		tmpl := pool.Template(templateID)
		if tmpl == nil {
			return nil, fmt.Errorf("item %d affix %q: %w", id, templateID, ErrUnknownTemplate)
		}
		affixes = append(affixes, &affix.Instance{Template: tmpl, Value: value})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating affix rows: %w", err)
	}

	item, err := model.NewItem(base, level, rarity, affixes)
	if err != nil {
		return nil, fmt.Errorf("creating item model: %w", err)
	}
	item.SetID(id)
	return item, nil
}

// Delete removes item id and its affixes. Returns ErrItemNotFound if absent.
func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %d: %w", id, ErrItemNotFound)
	}
	return nil
}

// CountByRarity returns how many archived items exist per rarity.
func (r *ItemRepository) CountByRarity(ctx context.Context) (map[affix.Rarity]int, error) {
	rows, err := r.db.Query(ctx, `SELECT rarity, count(*) FROM items GROUP BY rarity`)
	if err != nil {
		return nil, fmt.Errorf("counting items: %w", err)
	}
	defer rows.Close()

	counts := make(map[affix.Rarity]int, 3)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scanning count row: %w", err)
		}
		rarity, err := affix.ParseRarity(name)
		if err != nil {
			return nil, err
		}
		counts[rarity] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating count rows: %w", err)
	}
	return counts, nil
}
