package builders

import (
	"builder/models"

	"github.com/google/uuid"
)

// OrderBuilder giúp tạo order theo từng bước
type OrderBuilder struct {
	order *models.Order
}

// NewOrderBuilder tạo instance mới của OrderBuilder
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		order: &models.Order{
			Code: uuid.NewString(),
		},
	}
}

// WithCompany gắn order vào company
func (b *OrderBuilder) WithCompany(companyID uint) *OrderBuilder {
	b.order.CompanyID = companyID
	return b
}

// WithCustomer thêm thông tin khách hàng
func (b *OrderBuilder) WithCustomer(customerID *uint) *OrderBuilder {
	b.order.CustomerID = customerID
	return b
}

// WithGuestInfo thêm thông tin khách vãng lai
func (b *OrderBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *OrderBuilder {
	b.order.GuestName = guestName
	b.order.GuestPhone = guestPhone
	b.order.GuestEmail = guestEmail
	return b
}

// WithShipping thêm địa chỉ giao hàng và phí ship
func (b *OrderBuilder) WithShipping(addr string, fee float64) *OrderBuilder {
	b.order.ShippingAddr = addr
	b.order.ShippingFee = fee
	return b
}

// WithNote thêm ghi chú
func (b *OrderBuilder) WithNote(note string) *OrderBuilder {
	b.order.Note = note
	return b
}

// WithStatus thêm trạng thái
func (b *OrderBuilder) WithStatus(status int) *OrderBuilder {
	b.order.Status = status
	return b
}

// WithItems thêm danh sách sản phẩm và tính tiền
func (b *OrderBuilder) WithItems(items []models.OrderItem) *OrderBuilder {
	b.order.Items = items

	var subTotal float64
	for _, item := range items {
		subTotal += float64(item.Price * item.Quantity)
	}
	b.order.SubTotal = subTotal
	b.order.TotalPrice = subTotal + b.order.ShippingFee - b.order.DiscountPrice
	return b
}

// WithDiscount thêm giảm giá và tính lại tổng tiền
func (b *OrderBuilder) WithDiscount(discount float64) *OrderBuilder {
	b.order.DiscountPrice = discount
	b.order.TotalPrice = b.order.SubTotal + b.order.ShippingFee - discount
	return b
}

// Build tạo order hoàn chỉnh
func (b *OrderBuilder) Build() *models.Order {
	return b.order
}
