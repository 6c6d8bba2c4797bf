package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libbook/seat-reservation/internal/model"
)

func TestReplaceLayout(t *testing.T) {
	t.Run("store becomes exactly the supplied layout", func(t *testing.T) {
		store := newFakeSeatStore(
			model.Seat{ID: "a", Label: "A"},
			model.Seat{ID: "b", Label: "B"},
			model.Seat{ID: "c", Label: "C"},
		)
		h := NewSeatHandler(store)

		body := `[{"id":"b","label":"B2"},{"id":"c","label":"C"},{"id":"d","label":"D"}]`
		c, rec := newTestContext(t, http.MethodPost, "/api/seats", body)
		require.NoError(t, h.ReplaceLayout(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)

		assert.Len(t, store.seats, 3)
		assert.NotContains(t, store.seats, "a", "seat absent from the payload must be deleted")
		assert.Equal(t, "B2", store.seats["b"].Label, "existing seat must be updated in place")
		assert.Contains(t, store.seats, "d")
	})

	t.Run("empty layout clears all seats", func(t *testing.T) {
		store := newFakeSeatStore(model.Seat{ID: "a"}, model.Seat{ID: "b"})
		h := NewSeatHandler(store)

		c, rec := newTestContext(t, http.MethodPost, "/api/seats", `[]`)
		require.NoError(t, h.ReplaceLayout(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, store.seats)
	})

	t.Run("store failure surfaces as 500", func(t *testing.T) {
		store := newFakeSeatStore()
		store.err = assert.AnError
		h := NewSeatHandler(store)

		c, rec := newTestContext(t, http.MethodPost, "/api/seats", `[{"id":"a"}]`)
		require.NoError(t, h.ReplaceLayout(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestToggleMaintenance(t *testing.T) {
	t.Run("toggling twice restores the original value", func(t *testing.T) {
		store := newFakeSeatStore(model.Seat{ID: "s1", Label: "L1"})
		h := NewSeatHandler(store)

		toggle := func() model.Seat {
			c, rec := newTestContext(t, http.MethodPost, "/api/seats/toggle-maintenance/s1", "")
			c.SetParamNames("id")
			c.SetParamValues("s1")
			require.NoError(t, h.ToggleMaintenance(c))
			require.Equal(t, http.StatusOK, rec.Code)
			var got model.Seat
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			return got
		}

		assert.True(t, toggle().IsMaintenance)
		assert.False(t, toggle().IsMaintenance)
	})

	t.Run("unknown id responds 404", func(t *testing.T) {
		h := NewSeatHandler(newFakeSeatStore())
		c, rec := newTestContext(t, http.MethodPost, "/api/seats/toggle-maintenance/nope", "")
		c.SetParamNames("id")
		c.SetParamValues("nope")
		require.NoError(t, h.ToggleMaintenance(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Seat not found")
	})
}

func TestListSeats(t *testing.T) {
	store := newFakeSeatStore(model.Seat{ID: "s1", Label: "L1", Type: model.SeatTypeStandard})
	h := NewSeatHandler(store)

	c, rec := newTestContext(t, http.MethodGet, "/api/seats", "")
	require.NoError(t, h.ListSeats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.Seat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)

	// empty store must render [] not null
	h = NewSeatHandler(newFakeSeatStore())
	c, rec = newTestContext(t, http.MethodGet, "/api/seats", "")
	require.NoError(t, h.ListSeats(c))
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
