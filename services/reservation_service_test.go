package services

import (
	"testing"
	"time"

	"builder/models"
)

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aIn, aOut, bIn, bOut   time.Time
		want                   bool
	}{
		{
			"hai khoảng tách rời",
			mkDate(2026, 3, 1), mkDate(2026, 3, 5),
			mkDate(2026, 3, 10), mkDate(2026, 3, 12),
			false,
		},
		{
			"trả phòng trùng ngày nhận phòng không tính là trùng lịch",
			mkDate(2026, 3, 1), mkDate(2026, 3, 5),
			mkDate(2026, 3, 5), mkDate(2026, 3, 8),
			false,
		},
		{
			"lệch một ngày thì trùng",
			mkDate(2026, 3, 1), mkDate(2026, 3, 6),
			mkDate(2026, 3, 5), mkDate(2026, 3, 8),
			true,
		},
		{
			"khoảng nằm trọn trong khoảng kia",
			mkDate(2026, 3, 1), mkDate(2026, 3, 10),
			mkDate(2026, 3, 3), mkDate(2026, 3, 5),
			true,
		},
		{
			"hai khoảng trùng hoàn toàn",
			mkDate(2026, 3, 1), mkDate(2026, 3, 5),
			mkDate(2026, 3, 1), mkDate(2026, 3, 5),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangesOverlap(tt.aIn, tt.aOut, tt.bIn, tt.bOut); got != tt.want {
				t.Errorf("RangesOverlap = %v, want %v", got, tt.want)
			}
			// Giao hoán: đổi chỗ hai khoảng kết quả không đổi
			if got := RangesOverlap(tt.bIn, tt.bOut, tt.aIn, tt.aOut); got != tt.want {
				t.Errorf("RangesOverlap đảo chiều = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckStayFromDataPricing(t *testing.T) {
	room := models.Room{RoomId: 1, Price: 100000}

	// 3 đêm giá gốc, đêm 11/03 có override giá 150000
	overrides := []models.RoomAvailability{{
		RoomID:      1,
		Date:        mkDate(2026, 3, 11),
		IsAvailable: true,
		CustomPrice: intPtr(150000),
	}}

	result := CheckStayFromData(room, nil, nil, overrides, mkDate(2026, 3, 10), mkDate(2026, 3, 13), nil)
	if !result.IsAvailable {
		t.Fatalf("phòng trống phải khả dụng: %+v", result)
	}
	if result.Nights != 3 {
		t.Errorf("Nights = %d, want 3", result.Nights)
	}
	if result.TotalPrice != 350000 {
		t.Errorf("TotalPrice = %v, want 350000 (100000 + 150000 + 100000)", result.TotalPrice)
	}
}

func TestCheckStayFromDataUnavailableDays(t *testing.T) {
	room := models.Room{RoomId: 1, Price: 100000}

	reservations := []models.Reservation{{
		ID:           9,
		RoomID:       1,
		Status:       "confirmed",
		CheckInDate:  mkDate(2026, 4, 2),
		CheckOutDate: mkDate(2026, 4, 3),
	}}
	blocks := []models.RoomBlockPeriod{{
		RoomID:   uintPtr(1),
		FromDate: mkDate(2026, 4, 4),
		ToDate:   mkDate(2026, 4, 4),
		Reason:   "sơn lại phòng",
		IsActive: true,
	}}

	result := CheckStayFromData(room, reservations, blocks, nil, mkDate(2026, 4, 1), mkDate(2026, 4, 5), nil)
	if result.IsAvailable {
		t.Fatalf("có ngày bận thì không khả dụng: %+v", result)
	}
	if len(result.UnavailableDates) != 2 {
		t.Errorf("số ngày bận = %d, want 2: %v", len(result.UnavailableDates), result.UnavailableDates)
	}
	if result.Reason != "Phòng đã có khách đặt" {
		t.Errorf("Reason phải theo ngày bận đầu tiên, got %q", result.Reason)
	}
	if result.TotalPrice != 0 {
		t.Errorf("không khả dụng thì tổng giá phải về 0, got %v", result.TotalPrice)
	}
}

func TestCheckStayFromDataExcludesOwnReservation(t *testing.T) {
	room := models.Room{RoomId: 1, Price: 100000}
	ownID := uint(7)

	// Reservation 7 đang ở 01-05/01, các override giữ chỗ của chính nó đánh dấu 4 ngày đó bận
	reservations := []models.Reservation{{
		ID:           ownID,
		RoomID:       1,
		Status:       "confirmed",
		CheckInDate:  mkDate(2026, 1, 1),
		CheckOutDate: mkDate(2026, 1, 5),
	}}
	var overrides []models.RoomAvailability
	for d := 1; d <= 4; d++ {
		overrides = append(overrides, models.RoomAvailability{
			RoomID:        1,
			Date:          mkDate(2026, 1, d),
			IsAvailable:   false,
			ReservationID: &ownID,
		})
	}

	// Gia hạn thêm một đêm: khoảng mới chồng lên khoảng cũ nhưng phải tính là trống
	result := CheckStayFromData(room, reservations, nil, overrides, mkDate(2026, 1, 1), mkDate(2026, 1, 6), &ownID)
	if !result.IsAvailable {
		t.Fatalf("khoảng mới chồng lên chính reservation đang sửa phải khả dụng: %+v", result)
	}
	if result.TotalPrice != 500000 {
		t.Errorf("tổng giá sau gia hạn = %v, want 500000 (5 đêm giá gốc)", result.TotalPrice)
	}

	// Không loại trừ thì các override giữ chỗ vẫn chặn như khách khác
	result = CheckStayFromData(room, reservations, nil, overrides, mkDate(2026, 1, 1), mkDate(2026, 1, 6), nil)
	if result.IsAvailable || result.TotalPrice != 0 {
		t.Errorf("không loại trừ thì khoảng chồng lịch phải bị chặn: %+v", result)
	}
}

func TestConvertDateToISOFormat(t *testing.T) {
	got, err := ConvertDateToISOFormat("15/03/2026")
	if err != nil {
		t.Fatalf("lỗi parse ngày hợp lệ: %v", err)
	}
	if got.Day() != 15 || got.Month() != time.March || got.Year() != 2026 {
		t.Errorf("parse ra %v, want 15/03/2026", got)
	}

	if _, err := ConvertDateToISOFormat("2026-03-15"); err == nil {
		t.Errorf("định dạng ISO phải bị từ chối")
	}
	if _, err := ConvertDateToISOFormat("31/02/2026"); err == nil {
		t.Errorf("ngày không tồn tại phải bị từ chối")
	}
}
