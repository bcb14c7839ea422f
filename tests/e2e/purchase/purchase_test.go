//go:build e2e

package purchase_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"ticketqueen/internal/domain/purchase"
	"ticketqueen/internal/handler/dto/response"
	"ticketqueen/tests/common/builder"
	"ticketqueen/tests/common/dbtest"
	"ticketqueen/tests/common/httptest"
	"ticketqueen/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	purchaseURL      = "/api/purchase"
	eventsURL        = "/api/events"
	buyerTicketsURL  = "/api/users/%s/tickets"
	useTicketURL     = "/api/tickets/%s/use"
	reconcileCartURL = "/api/cart/reconcile"
)

type PurchaseSuite struct {
	e2e.SharedSuite
}

func (s *PurchaseSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestPurchaseSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PurchaseSuite))
}

func (s *PurchaseSuite) availability(eventID uuid.UUID) int {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, eventsURL+"/"+eventID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var ev response.EventResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &ev))
	return ev.Available
}

// =============================================================================
// TestSubmitPurchase - all-or-nothing checkout
// =============================================================================

func (s *PurchaseSuite) TestSubmitPurchase() {
	s.Run("Normal case: purchase reserves inventory and mints one ticket per unit", func() {
		t := s.T()
		eventID := dbtest.CreateTestEvent(t, s.DB, "Spring Concert", 5000, 5)
		b := builder.NewPurchaseBuilder().WithItems(purchase.LineItem{EventID: eventID, Quantity: 2})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, b.BuildRequestDTO())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.PurchaseCommittedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Len(t, res.TicketIDs, 2)
		require.Equal(t, 2, dbtest.EventReserved(t, s.DB, eventID))
		require.Equal(t, 2, dbtest.CountTickets(t, s.DB, b.RequestID))
		require.Equal(t, 3, s.availability(eventID))
	})

	s.Run("Normal case: retry with the same request id returns the same tickets", func() {
		t := s.T()
		eventID := dbtest.CreateTestEvent(t, s.DB, "Spring Concert", 5000, 5)
		reqBody := builder.NewPurchaseBuilder().
			WithItems(purchase.LineItem{EventID: eventID, Quantity: 2}).
			BuildRequestDTO()

		var first, second response.PurchaseCommittedResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, reqBody)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &first))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, reqBody)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &second))

		require.ElementsMatch(t, first.TicketIDs, second.TicketIDs)
		require.Equal(t, 2, dbtest.EventReserved(t, s.DB, eventID))
		require.Equal(t, 1, dbtest.CountLedgerEntries(t, s.DB, reqBody.RequestID, "committed"))
	})

	s.Run("Normal case: duplicate lines for one event are merged", func() {
		t := s.T()
		eventID := dbtest.CreateTestEvent(t, s.DB, "Spring Concert", 5000, 5)
		b := builder.NewPurchaseBuilder().WithItems(
			purchase.LineItem{EventID: eventID, Quantity: 1},
			purchase.LineItem{EventID: eventID, Quantity: 2},
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, b.BuildRequestDTO())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 3, dbtest.EventReserved(t, s.DB, eventID))
		require.Equal(t, 3, dbtest.CountTickets(t, s.DB, b.RequestID))
	})

	s.Run("Error case: insufficient line rejects the whole request", func() {
		t := s.T()
		scarce := dbtest.CreateTestEvent(t, s.DB, "Scarce", 5000, 1)
		plenty := dbtest.CreateTestEvent(t, s.DB, "Plenty", 2500, 10)
		b := builder.NewPurchaseBuilder().WithItems(
			purchase.LineItem{EventID: plenty, Quantity: 3},
			purchase.LineItem{EventID: scarce, Quantity: 2},
		)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, b.BuildRequestDTO())

		httptest.AssertRejectedLines(t, w, []response.RejectedLineResponse{
			{EventID: scarce, RequestedQuantity: 2, Available: 1},
		})
		require.Equal(t, 0, dbtest.EventReserved(t, s.DB, plenty))
		require.Equal(t, 0, dbtest.EventReserved(t, s.DB, scarce))
		require.Equal(t, 0, dbtest.CountTickets(t, s.DB, b.RequestID))
		require.Equal(t, 1, dbtest.CountLedgerEntries(t, s.DB, b.RequestID, "rejected"))
	})

	s.Run("Error case: reusing a request id for another purchase is 422", func() {
		t := s.T()
		eventID := dbtest.CreateTestEvent(t, s.DB, "Spring Concert", 5000, 5)
		b := builder.NewPurchaseBuilder().WithItems(purchase.LineItem{EventID: eventID, Quantity: 1})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, b.BuildRequestDTO())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		b.WithItems(purchase.LineItem{EventID: eventID, Quantity: 3})
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, b.BuildRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Request id already used")
		require.Equal(t, 1, dbtest.EventReserved(t, s.DB, eventID))
	})

	s.Run("Error case: unknown event is 404 and nothing is recorded", func() {
		t := s.T()
		b := builder.NewPurchaseBuilder()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, b.BuildRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Event not found")
		require.Equal(t, 0, dbtest.CountLedgerEntries(t, s.DB, b.RequestID, "rejected"))
	})

	s.Run("Error case: non-positive quantity is 400", func() {
		t := s.T()
		eventID := dbtest.CreateTestEvent(t, s.DB, "Spring Concert", 5000, 5)
		b := builder.NewPurchaseBuilder().WithItems(purchase.LineItem{EventID: eventID, Quantity: 0})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, b.BuildRequestDTO())
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		require.Equal(t, 0, dbtest.EventReserved(t, s.DB, eventID))
	})
}

// =============================================================================
// TestConcurrentPurchases - the last tickets go to exactly as many buyers as fit
// =============================================================================

func (s *PurchaseSuite) TestConcurrentPurchases() {
	s.Run("Normal case: concurrent buyers never oversell", func() {
		t := s.T()
		const capacity, buyers = 10, 25
		eventID := dbtest.CreateTestEvent(t, s.DB, "Hot Show", 9000, capacity)

		bodies := make([][]byte, buyers)
		for i := range bodies {
			body, err := json.Marshal(builder.NewPurchaseBuilder().
				WithItems(purchase.LineItem{EventID: eventID, Quantity: 1}).
				BuildRequestDTO())
			require.NoError(t, err)
			bodies[i] = body
		}

		codes := make([]int, buyers)
		var wg sync.WaitGroup
		for i := range buyers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, bodies[i])
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		counts := map[int]int{}
		for _, c := range codes {
			counts[c]++
		}
		require.Equal(t, capacity, counts[http.StatusOK], "codes: %v", counts)
		require.Equal(t, buyers-capacity, counts[http.StatusConflict], "codes: %v", counts)
		require.Equal(t, capacity, dbtest.EventReserved(t, s.DB, eventID))
		require.Equal(t, 0, s.availability(eventID))

		minted := dbtest.TicketIDsForEvent(t, s.DB, eventID)
		require.Len(t, minted, capacity)
		seen := make(map[uuid.UUID]struct{}, len(minted))
		for _, id := range minted {
			seen[id] = struct{}{}
		}
		require.Len(t, seen, capacity)
	})
}

// =============================================================================
// TestTickets - buyer ticket listing and single use
// =============================================================================

func (s *PurchaseSuite) TestTickets() {
	s.Run("Normal case: buyer lists purchased tickets and uses one exactly once", func() {
		t := s.T()
		eventID := dbtest.CreateTestEvent(t, s.DB, "Spring Concert", 5000, 5)
		b := builder.NewPurchaseBuilder().WithItems(purchase.LineItem{EventID: eventID, Quantity: 2})
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, b.BuildRequestDTO())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(buyerTicketsURL, b.BuyerID)+"?limit=1", nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var page response.TicketListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Tickets, 1)
		require.NotEmpty(t, page.NextCursor)
		require.Equal(t, "50.00", page.Tickets[0].Price)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(buyerTicketsURL, b.BuyerID)+"?limit=1&after="+page.NextCursor, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var rest response.TicketListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rest))
		require.Len(t, rest.Tickets, 1)
		require.Empty(t, rest.NextCursor)
		require.NotEqual(t, page.Tickets[0].ID, rest.Tickets[0].ID)

		ticketID := page.Tickets[0].ID
		useURL := fmt.Sprintf(useTicketURL, ticketID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, useURL, map[string]any{"buyerId": uuid.New()})
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "another buyer")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, useURL, map[string]any{"buyerId": b.BuyerID})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, useURL, map[string]any{"buyerId": b.BuyerID})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already used")
	})

	s.Run("Error case: unknown ticket is 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(useTicketURL, uuid.New()),
			map[string]any{"buyerId": uuid.New()})
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Ticket not found")
	})
}

// =============================================================================
// TestReconcileAfterRejection - a rejected cart is clamped and then succeeds
// =============================================================================

func (s *PurchaseSuite) TestReconcileAfterRejection() {
	s.Run("Normal case: reconciled cart can be purchased", func() {
		t := s.T()
		eventID := dbtest.CreateTestEvent(t, s.DB, "Spring Concert", 5000, 3)
		b := builder.NewPurchaseBuilder().WithItems(purchase.LineItem{EventID: eventID, Quantity: 5})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, b.BuildRequestDTO())
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		var rejected response.PurchaseRejectedResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rejected))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reconcileCartURL, map[string]any{
			"items":    []map[string]any{{"eventId": eventID, "quantity": 5}},
			"rejected": rejected.Rejected,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cart response.CartResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cart))
		require.Equal(t, []response.CartLineItemResponse{{EventID: eventID, Quantity: 3}}, cart.Items)

		b.WithRequestID(uuid.New()).WithItems(purchase.LineItem{EventID: eventID, Quantity: cart.Items[0].Quantity})
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, purchaseURL, b.BuildRequestDTO())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 3, dbtest.EventReserved(t, s.DB, eventID))
	})
}
