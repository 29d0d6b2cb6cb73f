package domain

// CartLineKey identifies a cart line. Two lines for the same product with a
// different size or color are distinct.
type CartLineKey struct {
	ProductID int
	Size      string
	Color     string
}

// CartLine is a product snapshot plus the shopper's selection.
// The product fields are flattened in JSON.
type CartLine struct {
	Product
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

func (l CartLine) Key() CartLineKey {
	return CartLineKey{ProductID: l.ID, Size: l.SelectedSize, Color: l.SelectedColor}
}

// CartState holds the lines in insertion order. Total and ItemCount are
// derived from Items and are never set independently.
type CartState struct {
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

func EmptyCart() CartState {
	return CartState{Items: []CartLine{}}
}

type CartActionType string

const (
	ActionAddToCart      CartActionType = "ADD_TO_CART"
	ActionRemoveFromCart CartActionType = "REMOVE_FROM_CART"
	ActionUpdateQuantity CartActionType = "UPDATE_QUANTITY"
	ActionClearCart      CartActionType = "CLEAR_CART"
	ActionLoadCart       CartActionType = "LOAD_CART"
)

// CartAction carries the payload for one cart transition. Only the fields
// relevant to Type are read.
type CartAction struct {
	Type     CartActionType
	Product  Product
	Key      CartLineKey
	Quantity int
	Snapshot CartState
}

func AddToCart(p Product, size, color string, quantity int) CartAction {
	return CartAction{
		Type:     ActionAddToCart,
		Product:  p,
		Key:      CartLineKey{ProductID: p.ID, Size: size, Color: color},
		Quantity: quantity,
	}
}

func RemoveFromCart(key CartLineKey) CartAction {
	return CartAction{Type: ActionRemoveFromCart, Key: key}
}

func UpdateQuantity(key CartLineKey, quantity int) CartAction {
	return CartAction{Type: ActionUpdateQuantity, Key: key, Quantity: quantity}
}

func ClearCart() CartAction {
	return CartAction{Type: ActionClearCart}
}

func LoadCart(snapshot CartState) CartAction {
	return CartAction{Type: ActionLoadCart, Snapshot: snapshot}
}
