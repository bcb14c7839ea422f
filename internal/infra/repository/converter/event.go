package converter

import (
	"ticketqueen/internal/domain/event"
	sqlc "ticketqueen/internal/infra/sqlc/generated"
	"ticketqueen/internal/pkg/pgconv"
)

func EventToCreateParams(ev *event.Event) sqlc.CreateEventParams {
	return sqlc.CreateEventParams{
		ID:         ev.ID(),
		Name:       ev.Name(),
		EventDate:  pgconv.TimeToPgtype(ev.Date()),
		Venue:      ev.Venue(),
		PriceCents: ev.Price().Cents(),
		Total:      pgconv.IntToInt32(ev.Total()),
		Reserved:   pgconv.IntToInt32(ev.Reserved()),
		CreatedAt:  pgconv.TimeToPgtype(ev.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(ev.UpdatedAt()),
	}
}

func EventToReservedParams(ev *event.Event) sqlc.UpdateEventReservedParams {
	return sqlc.UpdateEventReservedParams{
		ID:        ev.ID(),
		Reserved:  pgconv.IntToInt32(ev.Reserved()),
		UpdatedAt: pgconv.TimeToPgtype(ev.UpdatedAt()),
	}
}

func EventFromRow(row sqlc.Events) (*event.Event, error) {
	return event.Reconstruct(
		row.ID,
		row.Name,
		pgconv.TimeFromPgtype(row.EventDate),
		row.Venue,
		row.PriceCents,
		int(row.Total),
		int(row.Reserved),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
