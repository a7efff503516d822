package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestClient_String(t *testing.T) {
	t.Run("all fields set", func(t *testing.T) {
		client := &Client{
			UserID:      7,
			UserName:    "Ivan",
			Address:     strPtr("Moscow, Lenina 1"),
			PhoneNumber: strPtr("+7 900 000-00-00"),
		}
		assert.Equal(t, "Ivan: Moscow, Lenina 1, +7 900 000-00-00", client.String())
	})

	t.Run("nil address and phone render empty", func(t *testing.T) {
		client := &Client{UserID: 7, UserName: "Ivan"}
		assert.Equal(t, "Ivan: , ", client.String())
	})
}

func TestStorage_String(t *testing.T) {
	storage := &Storage{ID: 3, Number: 12, Address: "Pushkina 10"}
	assert.Equal(t, "12 Pushkina 10", storage.String())
}

func TestBox_String(t *testing.T) {
	t.Run("fractional dimensions", func(t *testing.T) {
		box := &Box{Name: "A-1", Length: 1.5, Width: 2.25, Height: 2.5}
		assert.Equal(t, "A-1(1.5x2.25x2.5 м)", box.String())
	})

	t.Run("whole dimensions render without trailing zeros", func(t *testing.T) {
		box := &Box{Name: "B-2", Length: 2, Width: 2, Height: 3}
		assert.Equal(t, "B-2(2x2x3 м)", box.String())
	})
}

func TestOrderInfo_String(t *testing.T) {
	client := &Client{UserName: "Ivan", Address: strPtr("Moscow"), PhoneNumber: strPtr("+7 900")}
	storage := &Storage{Number: 12, Address: "Pushkina 10"}
	box := &Box{Name: "A-1", Length: 1.5, Width: 2, Height: 2.5}

	t.Run("full order", func(t *testing.T) {
		info := &OrderInfo{
			Order:   Order{ID: 42},
			Client:  client,
			Storage: storage,
			Box:     box,
		}
		assert.Equal(t, "#42 Ivan: Moscow, +7 900 12 Pushkina 10 A-1(1.5x2x2.5 м)", info.String())
	})

	t.Run("order without box does not panic", func(t *testing.T) {
		info := &OrderInfo{
			Order:  Order{ID: 42},
			Client: client,
		}
		assert.NotPanics(t, func() {
			assert.Equal(t, "#42 Ivan: Moscow, +7 900  ", info.String())
		})
	})
}
