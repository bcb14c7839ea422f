package purchase

import (
	"slices"
	"time"

	"ticketqueen/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidLedgerEntry = errs.New("invalid ledger entry")

// LineResult records how one line of a request was decided.
type LineResult struct {
	EventID   uuid.UUID
	Requested int
	Available int
	Accepted  bool
}

// LedgerEntry is the append-only record of one decided request. Seq is assigned on append.
type LedgerEntry struct {
	Seq         int64
	RequestID   uuid.UUID
	BuyerID     uuid.UUID
	Outcome     Status
	RequestHash string
	Lines       []LineResult
	CreatedAt   time.Time
}

func NewLedgerEntry(req *Request, outcome Status, lines []LineResult, now time.Time) (*LedgerEntry, error) {
	if !outcome.Valid() {
		return nil, errs.Wrapf(ErrInvalidLedgerEntry, "unknown outcome %q", outcome)
	}
	if len(lines) != len(req.items) {
		return nil, errs.Wrapf(ErrInvalidLedgerEntry, "%d lines for %d items", len(lines), len(req.items))
	}
	if outcome == StatusCommitted {
		for _, l := range lines {
			if !l.Accepted {
				return nil, errs.Wrap(ErrInvalidLedgerEntry, "committed entry with rejected line")
			}
		}
	}
	return &LedgerEntry{
		RequestID:   req.id,
		BuyerID:     req.buyerID,
		Outcome:     outcome,
		RequestHash: req.Fingerprint(),
		Lines:       slices.Clone(lines),
		CreatedAt:   now,
	}, nil
}

func (e *LedgerEntry) IsCommitted() bool {
	return e.Outcome == StatusCommitted
}

// QuantityFor is what this entry contributes to an event's reserved count.
func (e *LedgerEntry) QuantityFor(eventID uuid.UUID) int {
	if !e.IsCommitted() {
		return 0
	}
	n := 0
	for _, l := range e.Lines {
		if l.EventID == eventID {
			n += l.Requested
		}
	}
	return n
}

func (e *LedgerEntry) TotalQuantity() int {
	n := 0
	for _, l := range e.Lines {
		n += l.Requested
	}
	return n
}

func (e *LedgerEntry) EventIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(e.Lines))
	for _, l := range e.Lines {
		ids = append(ids, l.EventID)
	}
	SortIDs(ids)
	return slices.Compact(ids)
}

// Rejections lists the lines that did not fit at decision time.
func (e *LedgerEntry) Rejections() []Rejection {
	var out []Rejection
	for _, l := range e.Lines {
		if l.Requested > l.Available {
			out = append(out, Rejection{EventID: l.EventID, Requested: l.Requested, Available: l.Available})
		}
	}
	return out
}

// Checkpoint pins an event's reserved count at a ledger position.
type Checkpoint struct {
	EventID   uuid.UUID
	Reserved  int
	LedgerSeq int64
	CreatedAt time.Time
}

// CommittedLine is one line of a committed entry, flattened for replay.
type CommittedLine struct {
	Seq      int64
	EventID  uuid.UUID
	Quantity int
}

// MinSeq is the oldest position replay has to start from. Events without a checkpoint replay from 0.
func MinSeq(eventIDs []uuid.UUID, checkpoints map[uuid.UUID]Checkpoint) int64 {
	var low int64 = -1
	for _, id := range eventIDs {
		cp, ok := checkpoints[id]
		if !ok {
			return 0
		}
		if low < 0 || cp.LedgerSeq < low {
			low = cp.LedgerSeq
		}
	}
	if low < 0 {
		return 0
	}
	return low
}

// ReplayReserved derives reserved = checkpoint.reserved + sum of committed quantity after the checkpoint.
func ReplayReserved(eventIDs []uuid.UUID, checkpoints map[uuid.UUID]Checkpoint, lines []CommittedLine) map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(eventIDs))
	for _, id := range eventIDs {
		out[id] = checkpoints[id].Reserved
	}
	for _, l := range lines {
		if _, tracked := out[l.EventID]; !tracked {
			continue
		}
		if cp, ok := checkpoints[l.EventID]; ok && l.Seq <= cp.LedgerSeq {
			continue
		}
		out[l.EventID] += l.Quantity
	}
	return out
}
