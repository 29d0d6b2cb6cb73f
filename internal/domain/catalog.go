package domain

type FAQItem struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

type Review struct {
	ID        int     `json:"id"`
	ProductID int     `json:"productId"`
	UserName  string  `json:"userName"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	Date      string  `json:"date"`
	Verified  *bool   `json:"verified,omitempty"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderStatusText = map[OrderStatus]string{
	OrderStatusPending:   "Aguardando Pagamento",
	OrderStatusConfirmed: "Pagamento Confirmado",
	OrderStatusShipped:   "Enviado",
	OrderStatusDelivered: "Entregue",
	OrderStatusCancelled: "Cancelado",
}

// Text returns the storefront label for the status.
func (s OrderStatus) Text() string {
	if t, ok := orderStatusText[s]; ok {
		return t
	}
	return string(s)
}

type OrderItem struct {
	ProductID    int     `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Size         string  `json:"size"`
	Color        string  `json:"color"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type Order struct {
	ID                string      `json:"id"`
	Date              string      `json:"date"`
	Status            OrderStatus `json:"status"`
	StatusText        string      `json:"statusText"`
	Items             []OrderItem `json:"items"`
	Total             float64     `json:"total"`
	ShippingAddress   Address     `json:"shippingAddress"`
	TrackingCode      *string     `json:"trackingCode,omitempty"`
	EstimatedDelivery *string     `json:"estimatedDelivery,omitempty"`
}
