package converter

import (
	"ticketqueen/internal/domain/purchase"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/pkg/pgconv"
)

func LedgerEntryToAppendParams(e *purchase.LedgerEntry) sqlc.AppendLedgerEntryParams {
	return sqlc.AppendLedgerEntryParams{
		RequestID:   e.RequestID,
		BuyerID:     e.BuyerID,
		Outcome:     string(e.Outcome),
		RequestHash: e.RequestHash,
		CreatedAt:   pgconv.TimeToPgtype(e.CreatedAt),
	}
}

func LineToInsertParams(seq int64, lineNo int, l purchase.LineResult) sqlc.InsertLedgerLineItemParams {
	return sqlc.InsertLedgerLineItemParams{
		EntrySeq:  seq,
		LineNo:    pgconv.IntToInt32(lineNo),
		EventID:   l.EventID,
		Requested: pgconv.IntToInt32(l.Requested),
		Available: pgconv.IntToInt32(l.Available),
		Accepted:  l.Accepted,
	}
}

func LedgerEntryFromRows(row sqlc.LedgerEntries, lines []sqlc.LedgerLineItems) *purchase.LedgerEntry {
	e := &purchase.LedgerEntry{
		Seq:         row.Seq,
		RequestID:   row.RequestID,
		BuyerID:     row.BuyerID,
		Outcome:     purchase.Status(row.Outcome),
		RequestHash: row.RequestHash,
		Lines:       make([]purchase.LineResult, 0, len(lines)),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
	for _, l := range lines {
		e.Lines = append(e.Lines, purchase.LineResult{
			EventID:   l.EventID,
			Requested: int(l.Requested),
			Available: int(l.Available),
			Accepted:  l.Accepted,
		})
	}
	return e
}

func CheckpointToUpsertParams(cp purchase.Checkpoint) sqlc.UpsertCheckpointParams {
	return sqlc.UpsertCheckpointParams{
		EventID:   cp.EventID,
		Reserved:  pgconv.IntToInt32(cp.Reserved),
		LedgerSeq: cp.LedgerSeq,
		CreatedAt: pgconv.TimeToPgtype(cp.CreatedAt),
	}
}

func CheckpointFromRow(row sqlc.LedgerCheckpoints) purchase.Checkpoint {
	return purchase.Checkpoint{
		EventID:   row.EventID,
		Reserved:  int(row.Reserved),
		LedgerSeq: row.LedgerSeq,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
