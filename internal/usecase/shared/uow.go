package shared

import (
	"context"
	"time"

	"ticketqueen/internal/domain/event"
	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/domain/ticket"
	"ticketqueen/internal/domain/user"

	"github.com/google/uuid"
)

// UnitOfWork is implemented by the Postgres store and the in-memory store.
// Repository errors are infra.RepositoryError values in both.
type UnitOfWork interface {
	// Within: Full transaction for write operations; a non-nil error from fn rolls everything back
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Events() EventRepository
	Ledger() LedgerRepository
	Tickets() TicketRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	// CommittedEntry returns the committed ledger entry for a request id, or a NOT_FOUND error.
	CommittedEntry(ctx context.Context, requestID uuid.UUID) (*purchase.LedgerEntry, error)
	UserByEmail(ctx context.Context, email string) (*UserCredentials, error)
}

type EventRepository interface {
	Create(ctx context.Context, ev *event.Event) error
	// LockForUpdate loads and row-locks the events in ascending id order. Missing ids are NOT_FOUND.
	LockForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*event.Event, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdateReserved(ctx context.Context, ev *event.Event) error
}

type LedgerRepository interface {
	// Append assigns the entry's sequence number. A second committed entry for one request id is DUPLICATE_KEY.
	Append(ctx context.Context, entry *purchase.LedgerEntry) (int64, error)
	LatestSeq(ctx context.Context) (int64, error)
	CommittedLinesAfter(ctx context.Context, afterSeq int64) ([]purchase.CommittedLine, error)
	// PendingIssuance lists committed entries that have fewer tickets than units.
	PendingIssuance(ctx context.Context) ([]*purchase.LedgerEntry, error)
	Checkpoints(ctx context.Context) (map[uuid.UUID]purchase.Checkpoint, error)
	SaveCheckpoint(ctx context.Context, cp purchase.Checkpoint) error
}

type TicketRepository interface {
	// InsertIfAbsent is a no-op when (request id, event id, seq) already exists.
	InsertIfAbsent(ctx context.Context, t *ticket.Ticket) error
	ListByRequestAndEvent(ctx context.Context, requestID, eventID uuid.UUID) ([]*ticket.Ticket, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	// MarkUsed flips used only if it is still false and reports whether it did.
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}
