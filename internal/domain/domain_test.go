package domain

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSlotKey(t *testing.T) {
	assert.Equal(t, "dunkstore-cart", SlotKey("", SlotKeyCart))
	assert.Equal(t, "abc:dunkstore-user", SlotKey("abc", SlotKeyUser))
}

func TestProductDiscount(t *testing.T) {
	assert.Equal(t, 25, Product{Price: 899.99, OriginalPrice: ptr(1199.99)}.Discount())
	assert.Equal(t, 0, Product{Price: 999.99}.Discount())
	assert.Equal(t, 0, Product{Price: 10, OriginalPrice: ptr(5.0)}.Discount())
}

func TestProfileUpdateApplyMergesOnlySetFields(t *testing.T) {
	u := User{ID: "1", Name: "João Silva", Email: "a@b.com", Phone: ptr("(11) 99999-9999")}

	got := ProfileUpdate{Name: ptr("Maria"), Address: &Address{City: "Recife"}}.Apply(u)

	assert.Equal(t, "1", got.ID)
	assert.Equal(t, "Maria", got.Name)
	assert.Equal(t, "a@b.com", got.Email)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "(11) 99999-9999", *got.Phone)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Recife", got.Address.City)
}

func TestUserCloneIsDeep(t *testing.T) {
	u := User{
		ID:      "1",
		Gender:  ptr("masculino"),
		Address: &Address{Street: "Rua das Flores", Complement: ptr("Apto 45")},
	}

	c := u.Clone()
	c.Address.Street = "Rua Augusta"
	*c.Address.Complement = "Casa"
	*c.Gender = "feminino"

	assert.Equal(t, "Rua das Flores", u.Address.Street)
	assert.Equal(t, "Apto 45", *u.Address.Complement)
	assert.Equal(t, "masculino", *u.Gender)
	assert.Nil(t, c.Phone)
}

func TestOrderStatusText(t *testing.T) {
	assert.Equal(t, "Entregue", OrderStatusDelivered.Text())
	assert.Equal(t, "Aguardando Pagamento", OrderStatusPending.Text())
	assert.Equal(t, "returned", OrderStatus("returned").Text())
}

func TestCartLineJSONIsFlat(t *testing.T) {
	line := CartLine{
		Product:       Product{ID: 1, Name: "Nike Dunk Low", Price: 899.99},
		Quantity:      2,
		SelectedSize:  "42",
		SelectedColor: "Branco/Preto",
	}
	raw, err := json.Marshal(line)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, float64(1), fields["id"])
	assert.Equal(t, "42", fields["selectedSize"])
	assert.NotContains(t, fields, "Product")
	assert.Equal(t, CartLineKey{ProductID: 1, Size: "42", Color: "Branco/Preto"}, line.Key())
}

func TestFavoritesContains(t *testing.T) {
	s := FavoritesState{Items: []Product{{ID: 2}}, Count: 1}
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))
}
