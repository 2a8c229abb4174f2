//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"space-booking/internal/domain/reservation"
	"space-booking/internal/handler/dto/response"
	"space-booking/tests/common/builder"
	"space-booking/tests/common/httptest"
	"space-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	usersURL        = "/api/users"
	spacesURL       = "/api/spaces"
	itemsURL        = "/api/items"
	reservationsURL = "/api/reservations"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// ----------------------------------------------------------------------------
// seeding through the public API
// ----------------------------------------------------------------------------

func (s *BookingSuite) registerUser(contact string) int64 {
	t := s.T()
	reqBody := builder.NewUserBuilder().WithContact(contact).BuildRegisterRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, reqBody, nil)
	require.Equal(t, http.StatusCreated, w.Code, "Failed to register user: %s", w.Body.String())

	var created response.CreatedResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	return created.ID
}

func (s *BookingSuite) createSpace(mutate func(*builder.SpaceBuilder)) int64 {
	t := s.T()
	b := builder.NewSpaceBuilder()
	if mutate != nil {
		b.With(mutate)
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, spacesURL, b.BuildCreateRequestDTO(), nil)
	require.Equal(t, http.StatusCreated, w.Code, "Failed to create space: %s", w.Body.String())

	var created response.CreatedResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	return created.ID
}

func (s *BookingSuite) addItem(mutate func(*builder.ItemBuilder)) int64 {
	t := s.T()
	b := builder.NewItemBuilder()
	if mutate != nil {
		b.With(mutate)
	}

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, b.BuildAddRequestDTO(), nil)
	require.Equal(t, http.StatusCreated, w.Code, "Failed to add item: %s", w.Body.String())

	var created response.CreatedResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	return created.ID
}

func (s *BookingSuite) getSpace(id int64) response.SpaceResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%d", spacesURL, id), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sp response.SpaceResponse
	httptest.DecodeResponseBody(t, w.Body, &sp)
	return sp
}

func (s *BookingSuite) getItemStock(id int64) int {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL+"?all=true", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []response.ItemResponse
	httptest.DecodeResponseBody(t, w.Body, &items)
	for _, it := range items {
		if it.ID == id {
			return it.Stock
		}
	}
	t.Fatalf("item %d not found in listing", id)
	return 0
}

func (s *BookingSuite) reserve(userID, spaceID, itemID int64, quantity int, key string) *nethttptest.ResponseRecorder {
	t := s.T()
	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.UserID = userID
		b.Space.ID = spaceID
	})
	if quantity > 0 {
		b.WithItems(reservation.ItemRequest{ItemID: itemID, Quantity: quantity})
	} else {
		b.WithItems()
	}

	headers := map[string]string{"Idempotency-Key": key}
	return httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, b.BuildCreateRequestDTO(), headers)
}

// ----------------------------------------------------------------------------
// TestReservationFlow
// ----------------------------------------------------------------------------

func (s *BookingSuite) TestReservationFlow() {
	s.Run("booking a space with items snapshots prices and consumes inventory", func() {
		t := s.T()

		userID := s.registerUser("booker@example.com")
		spaceID := s.createSpace(nil)
		itemID := s.addItem(nil)

		w := s.reserve(userID, spaceID, itemID, 3, uuid.NewString())
		require.Equal(t, http.StatusCreated, w.Code, "Failed to create reservation: %s", w.Body.String())

		var created response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, int64(5600), created.TotalCents)
		require.Equal(t, "active", created.Status)

		// counters moved
		require.Equal(t, 1, s.getSpace(spaceID).Occupied)
		require.Equal(t, 17, s.getItemStock(itemID))

		// read model agrees with the write-side response
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%d", reservationsURL, created.ID), nil, nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var fetched response.ReservationResponse
		httptest.DecodeResponseBody(t, dw.Body, &fetched)
		diff := cmp.Diff(created, fetched,
			cmpopts.IgnoreFields(response.ReservationResponse{}, "UserName", "CreatedAt", "UpdatedAt"))
		require.Empty(t, diff, "write and read models disagree")
		require.Equal(t, "Alice Example", fetched.UserName)
	})

	s.Run("replaying the same idempotency key returns the original reservation", func() {
		t := s.T()

		userID := s.registerUser("replayer@example.com")
		spaceID := s.createSpace(nil)
		itemID := s.addItem(nil)
		key := uuid.NewString()

		first := s.reserve(userID, spaceID, itemID, 3, key)
		require.Equal(t, http.StatusCreated, first.Code)
		var original response.ReservationResponse
		httptest.DecodeResponseBody(t, first.Body, &original)

		second := s.reserve(userID, spaceID, itemID, 3, key)
		require.Equal(t, http.StatusOK, second.Code, "replay should not create again: %s", second.Body.String())
		var replayed response.ReservationResponse
		httptest.DecodeResponseBody(t, second.Body, &replayed)
		require.Equal(t, original.ID, replayed.ID)

		// no double consumption
		require.Equal(t, 1, s.getSpace(spaceID).Occupied)
		require.Equal(t, 17, s.getItemStock(itemID))
	})

	s.Run("same key with different parameters is rejected", func() {
		t := s.T()

		userID := s.registerUser("changer@example.com")
		spaceID := s.createSpace(nil)
		itemID := s.addItem(nil)
		key := uuid.NewString()

		first := s.reserve(userID, spaceID, itemID, 3, key)
		require.Equal(t, http.StatusCreated, first.Code)

		second := s.reserve(userID, spaceID, itemID, 2, key)
		require.Equal(t, http.StatusConflict, second.Code)
	})

	s.Run("capacity-shared space rejects bookings past its capacity", func() {
		t := s.T()

		userID := s.registerUser("crowd@example.com")
		spaceID := s.createSpace(func(b *builder.SpaceBuilder) { b.WithCapacity(2) })

		for range 2 {
			w := s.reserve(userID, spaceID, 0, 0, uuid.NewString())
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := s.reserve(userID, spaceID, 0, 0, uuid.NewString())
		require.Equal(t, http.StatusConflict, w.Code, "third booking should exceed capacity")
		require.Equal(t, 2, s.getSpace(spaceID).Occupied)
	})

	s.Run("slot-exclusive space rejects a second booking of the same slot", func() {
		t := s.T()

		userID := s.registerUser("exclusive@example.com")
		spaceID := s.createSpace(func(b *builder.SpaceBuilder) {
			b.WithPolicy("slot_exclusive")
		})

		first := s.reserve(userID, spaceID, 0, 0, uuid.NewString())
		require.Equal(t, http.StatusCreated, first.Code)

		second := s.reserve(userID, spaceID, 0, 0, uuid.NewString())
		require.Equal(t, http.StatusConflict, second.Code)
	})

	s.Run("insufficient stock rolls the whole booking back", func() {
		t := s.T()

		userID := s.registerUser("greedy@example.com")
		spaceID := s.createSpace(nil)
		itemID := s.addItem(func(b *builder.ItemBuilder) { b.WithStock(2) })

		w := s.reserve(userID, spaceID, itemID, 3, uuid.NewString())
		require.Equal(t, http.StatusConflict, w.Code)

		// nothing was consumed
		require.Equal(t, 0, s.getSpace(spaceID).Occupied)
		require.Equal(t, 2, s.getItemStock(itemID))
	})

	s.Run("unknown user or space yields 404", func() {
		t := s.T()

		userID := s.registerUser("lonely@example.com")
		spaceID := s.createSpace(nil)

		w := s.reserve(9999, spaceID, 0, 0, uuid.NewString())
		require.Equal(t, http.StatusNotFound, w.Code)

		w = s.reserve(userID, 9999, 0, 0, uuid.NewString())
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// ----------------------------------------------------------------------------
// TestCancellation
// ----------------------------------------------------------------------------

func (s *BookingSuite) TestCancellation() {
	s.Run("cancelling restores occupancy and stock", func() {
		t := s.T()

		userID := s.registerUser("canceller@example.com")
		spaceID := s.createSpace(nil)
		itemID := s.addItem(nil)

		w := s.reserve(userID, spaceID, itemID, 3, uuid.NewString())
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%d/cancel", reservationsURL, created.ID), nil, nil)
		require.Equal(t, http.StatusNoContent, cw.Code)

		require.Equal(t, 0, s.getSpace(spaceID).Occupied)
		require.Equal(t, 20, s.getItemStock(itemID))

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%d", reservationsURL, created.ID), nil, nil)
		require.Equal(t, http.StatusOK, gw.Code)
		var fetched response.ReservationResponse
		httptest.DecodeResponseBody(t, gw.Body, &fetched)
		require.Equal(t, "cancelled", fetched.Status)
	})

	s.Run("repeat cancellation does not restore twice", func() {
		t := s.T()

		userID := s.registerUser("repeater@example.com")
		spaceID := s.createSpace(nil)
		itemID := s.addItem(nil)

		w := s.reserve(userID, spaceID, itemID, 3, uuid.NewString())
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &created)

		url := fmt.Sprintf("%s/%d/cancel", reservationsURL, created.ID)
		for range 2 {
			cw := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, nil)
			require.Equal(t, http.StatusNoContent, cw.Code)
		}

		require.Equal(t, 0, s.getSpace(spaceID).Occupied)
		require.Equal(t, 20, s.getItemStock(itemID))
	})

	s.Run("cancelled slot can be booked again on a slot-exclusive space", func() {
		t := s.T()

		userID := s.registerUser("rebooker@example.com")
		spaceID := s.createSpace(func(b *builder.SpaceBuilder) {
			b.WithPolicy("slot_exclusive")
		})

		first := s.reserve(userID, spaceID, 0, 0, uuid.NewString())
		require.Equal(t, http.StatusCreated, first.Code)
		var created response.ReservationResponse
		httptest.DecodeResponseBody(t, first.Body, &created)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%d/cancel", reservationsURL, created.ID), nil, nil)
		require.Equal(t, http.StatusNoContent, cw.Code)

		second := s.reserve(userID, spaceID, 0, 0, uuid.NewString())
		require.Equal(t, http.StatusCreated, second.Code, "slot should be free after cancellation")
	})

	s.Run("cancelling a missing reservation yields 404", func() {
		t := s.T()

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/9999/cancel", nil, nil)
		require.Equal(t, http.StatusNotFound, cw.Code)
	})
}

// ----------------------------------------------------------------------------
// TestReportsAndListings
// ----------------------------------------------------------------------------

func (s *BookingSuite) TestReportsAndListings() {
	s.Run("listing returns reservations in insertion order including cancelled", func() {
		t := s.T()

		userID := s.registerUser("lister@example.com")
		spaceID := s.createSpace(nil)

		var ids []int64
		for range 3 {
			w := s.reserve(userID, spaceID, 0, 0, uuid.NewString())
			require.Equal(t, http.StatusCreated, w.Code)
			var created response.ReservationResponse
			httptest.DecodeResponseBody(t, w.Body, &created)
			ids = append(ids, created.ID)
		}

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%d/cancel", reservationsURL, ids[1]), nil, nil)
		require.Equal(t, http.StatusNoContent, cw.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, nil)
		require.Equal(t, http.StatusOK, lw.Code)

		var listed []response.ReservationResponse
		httptest.DecodeResponseBody(t, lw.Body, &listed)
		require.Len(t, listed, 3)
		for i, id := range ids {
			require.Equal(t, id, listed[i].ID)
		}
		require.Equal(t, "cancelled", listed[1].Status)
	})

	s.Run("user totals include cancelled reservations", func() {
		t := s.T()

		userID := s.registerUser("reporter@example.com")
		spaceID := s.createSpace(nil)
		itemID := s.addItem(nil)

		first := s.reserve(userID, spaceID, itemID, 3, uuid.NewString())
		require.Equal(t, http.StatusCreated, first.Code)
		var created response.ReservationResponse
		httptest.DecodeResponseBody(t, first.Body, &created)

		second := s.reserve(userID, spaceID, 0, 0, uuid.NewString())
		require.Equal(t, http.StatusCreated, second.Code)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%d/cancel", reservationsURL, created.ID), nil, nil)
		require.Equal(t, http.StatusNoContent, cw.Code)

		tw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%d/reservations", usersURL, userID), nil, nil)
		require.Equal(t, http.StatusOK, tw.Code)

		var totals response.UserTotalsResponse
		httptest.DecodeResponseBody(t, tw.Body, &totals)
		require.Len(t, totals.Reservations, 2)
		// 5600 (cancelled, still counted) + 5000
		require.Equal(t, int64(10600), totals.GrandTotalCents)
	})

	s.Run("deactivated space disappears from listings and rejects bookings", func() {
		t := s.T()

		userID := s.registerUser("lastminute@example.com")
		spaceID := s.createSpace(nil)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%d", spacesURL, spaceID), nil, nil)
		require.Equal(t, http.StatusNoContent, dw.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, spacesURL, nil, nil)
		require.Equal(t, http.StatusOK, lw.Code)
		var spaces []response.SpaceResponse
		httptest.DecodeResponseBody(t, lw.Body, &spaces)
		require.Empty(t, spaces)

		w := s.reserve(userID, spaceID, 0, 0, uuid.NewString())
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("restock makes an exhausted item available again", func() {
		t := s.T()

		userID := s.registerUser("restocker@example.com")
		spaceID := s.createSpace(nil)
		itemID := s.addItem(func(b *builder.ItemBuilder) { b.WithStock(3) })

		w := s.reserve(userID, spaceID, itemID, 3, uuid.NewString())
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, 0, s.getItemStock(itemID))

		// exhausted items drop out of the available listing
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, itemsURL, nil, nil)
		require.Equal(t, http.StatusOK, aw.Code)
		var available []response.ItemResponse
		httptest.DecodeResponseBody(t, aw.Body, &available)
		require.Empty(t, available)

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%d/restock", itemsURL, itemID), map[string]int{"quantity": 5}, nil)
		require.Equal(t, http.StatusNoContent, rw.Code)
		require.Equal(t, 5, s.getItemStock(itemID))
	})

	s.Run("duplicate contact registration is rejected", func() {
		t := s.T()

		s.registerUser("twin@example.com")

		reqBody := builder.NewUserBuilder().WithContact("twin@example.com").BuildRegisterRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, reqBody, nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}
