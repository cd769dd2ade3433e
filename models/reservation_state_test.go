package models

import "testing"

func TestReservationStateTransitions(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		action     func(ReservationState, *Reservation) error
		wantStatus string
		wantErr    bool
	}{
		{"pending confirm", "pending", ReservationState.Confirm, "confirmed", false},
		{"pending cancel", "pending", ReservationState.Cancel, "cancelled", false},
		{"pending check in bị chặn", "pending", ReservationState.CheckIn, "pending", true},
		{"pending check out bị chặn", "pending", ReservationState.CheckOut, "pending", true},

		{"confirmed check in", "confirmed", ReservationState.CheckIn, "checked_in", false},
		{"confirmed cancel", "confirmed", ReservationState.Cancel, "cancelled", false},
		{"confirmed confirm lại bị chặn", "confirmed", ReservationState.Confirm, "confirmed", true},
		{"confirmed check out trước check in bị chặn", "confirmed", ReservationState.CheckOut, "confirmed", true},

		{"checked_in check out", "checked_in", ReservationState.CheckOut, "checked_out", false},
		{"checked_in cancel bị chặn", "checked_in", ReservationState.Cancel, "checked_in", true},
		{"checked_in check in lại bị chặn", "checked_in", ReservationState.CheckIn, "checked_in", true},

		{"checked_out là trạng thái cuối", "checked_out", ReservationState.Confirm, "checked_out", true},
		{"checked_out cancel bị chặn", "checked_out", ReservationState.Cancel, "checked_out", true},

		{"cancelled là trạng thái cuối", "cancelled", ReservationState.Confirm, "cancelled", true},
		{"cancelled check in bị chặn", "cancelled", ReservationState.CheckIn, "cancelled", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := &Reservation{Status: tt.from}
			state := GetReservationState(reservation.Status)
			err := tt.action(state, reservation)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if reservation.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", reservation.Status, tt.wantStatus)
			}
		})
	}
}

func TestGetReservationStateUnknownDefaultsPending(t *testing.T) {
	reservation := &Reservation{Status: "trạng thái lạ"}
	state := GetReservationState(reservation.Status)
	if err := state.Confirm(reservation); err != nil {
		t.Fatalf("trạng thái lạ phải xử lý như pending: %v", err)
	}
	if reservation.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", reservation.Status)
	}
}

func TestOrderStateTransitions(t *testing.T) {
	tests := []struct {
		name       string
		from       int
		action     func(OrderState, *Order) error
		wantStatus int
		wantErr    bool
	}{
		{"pending confirm", OrderStatusPending, OrderState.Confirm, OrderStatusConfirmed, false},
		{"pending cancel", OrderStatusPending, OrderState.Cancel, OrderStatusCancelled, false},
		{"pending complete bị chặn", OrderStatusPending, OrderState.Complete, OrderStatusPending, true},

		{"confirmed complete", OrderStatusConfirmed, OrderState.Complete, OrderStatusCompleted, false},
		{"confirmed cancel", OrderStatusConfirmed, OrderState.Cancel, OrderStatusCancelled, false},
		{"confirmed confirm lại bị chặn", OrderStatusConfirmed, OrderState.Confirm, OrderStatusConfirmed, true},

		{"completed là trạng thái cuối", OrderStatusCompleted, OrderState.Cancel, OrderStatusCompleted, true},
		{"cancelled là trạng thái cuối", OrderStatusCancelled, OrderState.Confirm, OrderStatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &Order{Status: tt.from}
			state := GetOrderState(order.Status)
			err := tt.action(state, order)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if order.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", order.Status, tt.wantStatus)
			}
		})
	}
}
