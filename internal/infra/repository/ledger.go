package repository

import (
	"context"

	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/infra"
	"ticketqueen/internal/infra/repository/converter"
	sqlc "ticketqueen/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type LedgerWriteQueries interface {
	AppendLedgerEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.AppendLedgerEntryParams) (int64, error)
	InsertLedgerLineItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLedgerLineItemParams) error
	LatestLedgerSeq(ctx context.Context, db sqlc.DBTX) (int64, error)
	CommittedLinesAfter(ctx context.Context, db sqlc.DBTX, seq int64) ([]sqlc.CommittedLinesAfterRow, error)
	ListPendingIssuance(ctx context.Context, db sqlc.DBTX) ([]sqlc.LedgerEntries, error)
	ListLedgerLineItems(ctx context.Context, db sqlc.DBTX, entrySeq int64) ([]sqlc.LedgerLineItems, error)
	ListCheckpoints(ctx context.Context, db sqlc.DBTX) ([]sqlc.LedgerCheckpoints, error)
	UpsertCheckpoint(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCheckpointParams) error
}

type LedgerRepository struct {
	queries LedgerWriteQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerWriteQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		db:      db,
	}
}

// Append writes the entry and its lines. A second committed entry for the same
// request id violates ledger_entries_committed_request_uq and comes back as DUPLICATE_KEY.
func (r *LedgerRepository) Append(ctx context.Context, entry *purchase.LedgerEntry) (int64, error) {
	seq, err := r.queries.AppendLedgerEntry(ctx, r.db, converter.LedgerEntryToAppendParams(entry))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to append ledger entry", err)
	}
	for i, line := range entry.Lines {
		if err := r.queries.InsertLedgerLineItem(ctx, r.db, converter.LineToInsertParams(seq, i, line)); err != nil {
			return 0, infra.WrapRepoErr("failed to append ledger line", err)
		}
	}
	return seq, nil
}

func (r *LedgerRepository) LatestSeq(ctx context.Context) (int64, error) {
	seq, err := r.queries.LatestLedgerSeq(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read latest ledger seq", err)
	}
	return seq, nil
}

func (r *LedgerRepository) CommittedLinesAfter(ctx context.Context, afterSeq int64) ([]purchase.CommittedLine, error) {
	rows, err := r.queries.CommittedLinesAfter(ctx, r.db, afterSeq)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read committed ledger lines", err)
	}
	out := make([]purchase.CommittedLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, purchase.CommittedLine{Seq: row.Seq, EventID: row.EventID, Quantity: int(row.Requested)})
	}
	return out, nil
}

func (r *LedgerRepository) PendingIssuance(ctx context.Context) ([]*purchase.LedgerEntry, error) {
	rows, err := r.queries.ListPendingIssuance(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending issuance", err)
	}
	out := make([]*purchase.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		lines, err := r.queries.ListLedgerLineItems(ctx, r.db, row.Seq)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to read ledger lines", err)
		}
		out = append(out, converter.LedgerEntryFromRows(row, lines))
	}
	return out, nil
}

func (r *LedgerRepository) Checkpoints(ctx context.Context) (map[uuid.UUID]purchase.Checkpoint, error) {
	rows, err := r.queries.ListCheckpoints(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list checkpoints", err)
	}
	out := make(map[uuid.UUID]purchase.Checkpoint, len(rows))
	for _, row := range rows {
		out[row.EventID] = converter.CheckpointFromRow(row)
	}
	return out, nil
}

func (r *LedgerRepository) SaveCheckpoint(ctx context.Context, cp purchase.Checkpoint) error {
	if err := r.queries.UpsertCheckpoint(ctx, r.db, converter.CheckpointToUpsertParams(cp)); err != nil {
		return infra.WrapRepoErr("failed to save checkpoint", err)
	}
	return nil
}
