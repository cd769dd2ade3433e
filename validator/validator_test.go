package validator

import (
	"encoding/json"
	"testing"

	"builder/dto"
	"builder/errors"
)

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.RuleRequest
		wantErr bool
	}{
		{"min_nights hợp lệ", dto.RuleRequest{RuleType: "min_nights", Params: json.RawMessage(`{"minNights":2}`)}, false},
		{"min_nights bằng 0", dto.RuleRequest{RuleType: "min_nights", Params: json.RawMessage(`{"minNights":0}`)}, true},
		{"min_nights params hỏng", dto.RuleRequest{RuleType: "min_nights", Params: json.RawMessage(`hỏng`)}, true},

		{"no_checkin_days hợp lệ", dto.RuleRequest{RuleType: "no_checkin_days", Params: json.RawMessage(`{"days":[0,6]}`)}, false},
		{"no_checkin_days rỗng", dto.RuleRequest{RuleType: "no_checkin_days", Params: json.RawMessage(`{"days":[]}`)}, true},
		{"no_checkin_days ngoài 0-6", dto.RuleRequest{RuleType: "no_checkin_days", Params: json.RawMessage(`{"days":[7]}`)}, true},

		{"advance_booking hợp lệ", dto.RuleRequest{RuleType: "advance_booking", Params: json.RawMessage(`{"maxDays":30}`)}, false},
		{"advance_booking bằng 0", dto.RuleRequest{RuleType: "advance_booking", Params: json.RawMessage(`{"maxDays":0}`)}, true},

		{"loại rule lạ", dto.RuleRequest{RuleType: "khác", Params: json.RawMessage(`{}`)}, true},

		{"cửa sổ hiệu lệ hợp lệ", dto.RuleRequest{
			RuleType: "min_nights", Params: json.RawMessage(`{"minNights":2}`),
			ValidFrom: "01/06/2026", ValidTo: "30/06/2026",
		}, false},
		{"cửa sổ hiệu lực ngược", dto.RuleRequest{
			RuleType: "min_nights", Params: json.RawMessage(`{"minNights":2}`),
			ValidFrom: "30/06/2026", ValidTo: "01/06/2026",
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRule(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRule() err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	from, to, err := ValidateDateRange("01/03/2026", "15/03/2026")
	if err != nil {
		t.Fatalf("khoảng ngày hợp lệ bị từ chối: %v", err)
	}
	if from.After(to) {
		t.Errorf("from phải trước to")
	}

	if _, _, err := ValidateDateRange("15/03/2026", "01/03/2026"); err == nil {
		t.Errorf("khoảng ngày ngược phải bị từ chối")
	}
	if _, _, err := ValidateDateRange("2026-03-01", "15/03/2026"); err == nil {
		t.Errorf("định dạng ISO phải bị từ chối")
	}

	// Cùng một ngày thì hợp lệ
	if _, _, err := ValidateDateRange("01/03/2026", "01/03/2026"); err != nil {
		t.Errorf("cùng ngày phải hợp lệ: %v", err)
	}
}

func TestValidateReservation(t *testing.T) {
	customerID := uint(5)

	tests := []struct {
		name     string
		req      dto.ReservationRequest
		wantErr  bool
		wantCode errors.ErrorCode
	}{
		{"khách vãng lai đủ thông tin", dto.ReservationRequest{
			RoomID: 1, CheckInDate: "10/03/2026", CheckOutDate: "12/03/2026", GuestName: "Nguyen Van An",
		}, false, ""},
		{"thiếu phòng", dto.ReservationRequest{
			CheckInDate: "10/03/2026", CheckOutDate: "12/03/2026", GuestName: "An",
		}, true, errors.ErrCodeRequiredField},
		{"ngày trả trước ngày nhận", dto.ReservationRequest{
			RoomID: 1, CheckInDate: "12/03/2026", CheckOutDate: "10/03/2026", GuestName: "An",
		}, true, errors.ErrCodeInvalidDateRange},
		{"nhận và trả cùng ngày", dto.ReservationRequest{
			RoomID: 1, CheckInDate: "10/03/2026", CheckOutDate: "10/03/2026", GuestName: "An",
		}, true, errors.ErrCodeInvalidDateRange},
		{"khách vãng lai thiếu tên", dto.ReservationRequest{
			RoomID: 1, CheckInDate: "10/03/2026", CheckOutDate: "12/03/2026",
		}, true, errors.ErrCodeRequiredField},
		{"có customer thì không cần tên khách", dto.ReservationRequest{
			RoomID: 1, CustomerID: &customerID, CheckInDate: "10/03/2026", CheckOutDate: "12/03/2026",
		}, false, ""},
		{"số điện thoại khách không hợp lệ", dto.ReservationRequest{
			RoomID: 1, CheckInDate: "10/03/2026", CheckOutDate: "12/03/2026",
			GuestName: "An", GuestPhone: "123",
		}, true, errors.ErrCodeInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn, checkOut, err := ValidateReservation(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tt.wantErr)
			}
			if err == nil && !checkOut.After(checkIn) {
				t.Errorf("checkOut phải sau checkIn")
			}
			if tt.wantCode != "" {
				appErr := errors.GetAppError(err)
				if appErr == nil || appErr.Code != tt.wantCode {
					t.Errorf("mã lỗi = %v, want %v", err, tt.wantCode)
				}
			}
		})
	}
}

func TestValidatePage(t *testing.T) {
	if err := ValidatePage(&dto.PageRequest{Title: "Trang chủ", Slug: "trang-chu"}); err != nil {
		t.Errorf("trang hợp lệ bị từ chối: %v", err)
	}
	if err := ValidatePage(&dto.PageRequest{Slug: "trang-chu"}); err == nil {
		t.Errorf("thiếu tiêu đề phải bị từ chối")
	}
	if err := ValidatePage(&dto.PageRequest{Title: "Trang chủ", Slug: "Trang Chủ"}); err == nil {
		t.Errorf("slug có hoa và dấu cách phải bị từ chối")
	}
	if err := ValidatePage(&dto.PageRequest{Title: "Trang chủ", Slug: "-trang-"}); err == nil {
		t.Errorf("slug bắt đầu hoặc kết thúc bằng gạch ngang phải bị từ chối")
	}
}
