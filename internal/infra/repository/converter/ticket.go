package converter

import (
	"ticketqueen/internal/domain/ticket"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/pkg/pgconv"
)

func TicketToInsertParams(t *ticket.Ticket) sqlc.InsertTicketIfAbsentParams {
	return sqlc.InsertTicketIfAbsentParams{
		ID:        t.ID(),
		RequestID: t.RequestID(),
		EventID:   t.EventID(),
		BuyerID:   t.BuyerID(),
		Seq:       pgconv.IntToInt32(t.Seq()),
		Used:      t.Used(),
		UsedAt:    pgconv.TimePtrToPgtype(t.UsedAt()),
		CreatedAt: pgconv.TimeToPgtype(t.CreatedAt()),
	}
}

func TicketFromRow(row sqlc.Tickets) *ticket.Ticket {
	return ticket.Reconstruct(
		row.ID,
		row.RequestID,
		row.EventID,
		row.BuyerID,
		int(row.Seq),
		row.Used,
		pgconv.TimePtrFromPgtype(row.UsedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
