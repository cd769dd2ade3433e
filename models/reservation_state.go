package models

import "errors"

// ReservationState định nghĩa interface cho các trạng thái reservation
type ReservationState interface {
	Confirm(reservation *Reservation) error
	CheckIn(reservation *Reservation) error
	CheckOut(reservation *Reservation) error
	Cancel(reservation *Reservation) error
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(reservation *Reservation) error {
	reservation.Status = "confirmed"
	return nil
}

func (s *PendingState) CheckIn(reservation *Reservation) error {
	return errors.New("cannot check in pending reservation")
}

func (s *PendingState) CheckOut(reservation *Reservation) error {
	return errors.New("cannot check out pending reservation")
}

func (s *PendingState) Cancel(reservation *Reservation) error {
	reservation.Status = "cancelled"
	return nil
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(reservation *Reservation) error {
	return errors.New("reservation already confirmed")
}

func (s *ConfirmedState) CheckIn(reservation *Reservation) error {
	reservation.Status = "checked_in"
	return nil
}

func (s *ConfirmedState) CheckOut(reservation *Reservation) error {
	return errors.New("cannot check out before check in")
}

func (s *ConfirmedState) Cancel(reservation *Reservation) error {
	reservation.Status = "cancelled"
	return nil
}

// CheckedInState trạng thái khách đang ở
type CheckedInState struct{}

func (s *CheckedInState) Confirm(reservation *Reservation) error {
	return errors.New("reservation already checked in")
}

func (s *CheckedInState) CheckIn(reservation *Reservation) error {
	return errors.New("reservation already checked in")
}

func (s *CheckedInState) CheckOut(reservation *Reservation) error {
	reservation.Status = "checked_out"
	return nil
}

func (s *CheckedInState) Cancel(reservation *Reservation) error {
	return errors.New("cannot cancel checked in reservation")
}

// CheckedOutState trạng thái khách đã trả phòng
type CheckedOutState struct{}

func (s *CheckedOutState) Confirm(reservation *Reservation) error {
	return errors.New("reservation already checked out")
}

func (s *CheckedOutState) CheckIn(reservation *Reservation) error {
	return errors.New("reservation already checked out")
}

func (s *CheckedOutState) CheckOut(reservation *Reservation) error {
	return errors.New("reservation already checked out")
}

func (s *CheckedOutState) Cancel(reservation *Reservation) error {
	return errors.New("cannot cancel checked out reservation")
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Confirm(reservation *Reservation) error {
	return errors.New("cannot confirm cancelled reservation")
}

func (s *CancelledState) CheckIn(reservation *Reservation) error {
	return errors.New("cannot check in cancelled reservation")
}

func (s *CancelledState) CheckOut(reservation *Reservation) error {
	return errors.New("cannot check out cancelled reservation")
}

func (s *CancelledState) Cancel(reservation *Reservation) error {
	return errors.New("reservation already cancelled")
}

// GetReservationState trả về state tương ứng với trạng thái reservation
func GetReservationState(status string) ReservationState {
	switch status {
	case "pending":
		return &PendingState{}
	case "confirmed":
		return &ConfirmedState{}
	case "checked_in":
		return &CheckedInState{}
	case "checked_out":
		return &CheckedOutState{}
	case "cancelled":
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
