package models

import "errors"

// OrderState định nghĩa interface cho các trạng thái order
type OrderState interface {
	Confirm(order *Order) error
	Cancel(order *Order) error
	Complete(order *Order) error
}

// PendingOrderState trạng thái chờ xác nhận
type PendingOrderState struct{}

func (s *PendingOrderState) Confirm(order *Order) error {
	order.Status = OrderStatusConfirmed
	return nil
}

func (s *PendingOrderState) Cancel(order *Order) error {
	order.Status = OrderStatusCancelled
	return nil
}

func (s *PendingOrderState) Complete(order *Order) error {
	return errors.New("cannot complete pending order")
}

// ConfirmedOrderState trạng thái đã xác nhận
type ConfirmedOrderState struct{}

func (s *ConfirmedOrderState) Confirm(order *Order) error {
	return errors.New("order already confirmed")
}

func (s *ConfirmedOrderState) Cancel(order *Order) error {
	order.Status = OrderStatusCancelled
	return nil
}

func (s *ConfirmedOrderState) Complete(order *Order) error {
	order.Status = OrderStatusCompleted
	return nil
}

// CompletedOrderState trạng thái hoàn thành
type CompletedOrderState struct{}

func (s *CompletedOrderState) Confirm(order *Order) error {
	return errors.New("order already completed")
}

func (s *CompletedOrderState) Cancel(order *Order) error {
	return errors.New("cannot cancel completed order")
}

func (s *CompletedOrderState) Complete(order *Order) error {
	return errors.New("order already completed")
}

// CancelledOrderState trạng thái đã hủy
type CancelledOrderState struct{}

func (s *CancelledOrderState) Confirm(order *Order) error {
	return errors.New("cannot confirm cancelled order")
}

func (s *CancelledOrderState) Cancel(order *Order) error {
	return errors.New("order already cancelled")
}

func (s *CancelledOrderState) Complete(order *Order) error {
	return errors.New("cannot complete cancelled order")
}

// GetOrderState trả về state tương ứng với trạng thái order
func GetOrderState(status int) OrderState {
	switch status {
	case OrderStatusPending:
		return &PendingOrderState{}
	case OrderStatusConfirmed:
		return &ConfirmedOrderState{}
	case OrderStatusCompleted:
		return &CompletedOrderState{}
	case OrderStatusCancelled:
		return &CancelledOrderState{}
	default:
		return &PendingOrderState{}
	}
}
