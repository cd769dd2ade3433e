package services

import (
	"testing"
	"time"

	"builder/models"
)

func mkDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

func TestIsReservationOccupying(t *testing.T) {
	checkIn := mkDate(2026, 3, 10)
	checkOut := mkDate(2026, 3, 12)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"ngày trước check-in", mkDate(2026, 3, 9), false},
		{"ngày check-in", mkDate(2026, 3, 10), true},
		{"ngày giữa", mkDate(2026, 3, 11), true},
		{"ngày check-out không tính là ngày ở", mkDate(2026, 3, 12), false},
		{"ngày sau check-out", mkDate(2026, 3, 13), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReservationOccupying(tt.date, checkIn, checkOut); got != tt.want {
				t.Errorf("IsReservationOccupying(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestBuildGridFromDataCheckOutDayIsFree(t *testing.T) {
	rooms := []models.Room{{RoomId: 1, RoomCode: "101", Price: 500000, Status: 1}}
	reservations := []models.Reservation{{
		ID:           7,
		RoomID:       1,
		Status:       "confirmed",
		GuestName:    "Nguyen Van An",
		CheckInDate:  mkDate(2026, 3, 10),
		CheckOutDate: mkDate(2026, 3, 12),
	}}

	grid := BuildGridFromData(rooms, nil, nil, reservations, mkDate(2026, 3, 9), mkDate(2026, 3, 13), mkDate(2026, 3, 9))

	if len(grid.Rooms) != 1 {
		t.Fatalf("số phòng trong lưới = %d, want 1", len(grid.Rooms))
	}
	days := grid.Rooms[0].Days
	if len(days) != 5 {
		t.Fatalf("số ngày trong lưới = %d, want 5", len(days))
	}

	// 09/03 trống, 10-11/03 có khách, 12/03 là ngày trả phòng nên trống cho khách mới
	if !days[0].IsAvailable {
		t.Errorf("ngày trước check-in phải trống")
	}
	if !days[1].HasReservation || !days[1].IsCheckInDay {
		t.Errorf("ngày check-in phải có reservation và gắn cờ IsCheckInDay")
	}
	if !days[2].HasReservation {
		t.Errorf("ngày giữa phải có reservation")
	}
	if days[3].HasReservation {
		t.Errorf("ngày check-out không được tính là có khách")
	}
	if !days[3].IsAvailable || !days[3].IsCheckOutDay {
		t.Errorf("ngày check-out phải trống và gắn cờ IsCheckOutDay, got available=%v checkout=%v",
			days[3].IsAvailable, days[3].IsCheckOutDay)
	}
	if days[1].GuestInitials != "NVA" {
		t.Errorf("GuestInitials = %q, want %q", days[1].GuestInitials, "NVA")
	}
}

func TestBuildGridFromDataPrecedence(t *testing.T) {
	rooms := []models.Room{{RoomId: 1, RoomCode: "101", Price: 500000, Status: 1}}
	date := mkDate(2026, 4, 1)

	overrides := []models.RoomAvailability{{
		RoomID:      1,
		Date:        date,
		IsAvailable: false,
		CustomPrice: intPtr(800000),
		BlockReason: "giá lễ",
	}}
	blocks := []models.RoomBlockPeriod{{
		RoomID:   uintPtr(1),
		FromDate: date,
		ToDate:   date,
		Reason:   "sửa chữa",
		IsActive: true,
	}}
	reservations := []models.Reservation{{
		ID:           3,
		RoomID:       1,
		Status:       "Confirmed",
		CheckInDate:  date,
		CheckOutDate: date.AddDate(0, 0, 1),
	}}

	// Reservation thắng block và override
	grid := BuildGridFromData(rooms, overrides, blocks, reservations, date, date, date)
	day := grid.Rooms[0].Days[0]
	if !day.HasReservation || day.IsBlocked {
		t.Errorf("reservation phải thắng block, got hasReservation=%v isBlocked=%v", day.HasReservation, day.IsBlocked)
	}

	// Không có reservation thì block thắng override
	grid = BuildGridFromData(rooms, overrides, blocks, nil, date, date, date)
	day = grid.Rooms[0].Days[0]
	if !day.IsBlocked || day.BlockReason != "sửa chữa" {
		t.Errorf("block theo phòng phải thắng override, got reason=%q", day.BlockReason)
	}
	if day.Price != 800000 {
		t.Errorf("giá override vẫn phải được áp, got %d", day.Price)
	}

	// Chỉ còn override thì dùng override
	grid = BuildGridFromData(rooms, overrides, nil, nil, date, date, date)
	day = grid.Rooms[0].Days[0]
	if !day.IsBlocked || day.BlockReason != "giá lễ" {
		t.Errorf("override phải chặn ngày, got blocked=%v reason=%q", day.IsBlocked, day.BlockReason)
	}

	// Không có gì thì dùng giá gốc
	grid = BuildGridFromData(rooms, nil, nil, nil, date, date, date)
	day = grid.Rooms[0].Days[0]
	if !day.IsAvailable || day.Price != 500000 {
		t.Errorf("ngày không có dữ liệu phải trống với giá gốc, got available=%v price=%d", day.IsAvailable, day.Price)
	}
}

func TestBuildGridFromDataGlobalBlock(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, RoomCode: "101", Price: 100},
		{RoomId: 2, RoomCode: "102", Price: 200},
	}
	blocks := []models.RoomBlockPeriod{{
		FromDate: mkDate(2026, 5, 1),
		ToDate:   mkDate(2026, 5, 2),
		Reason:   "bảo trì toàn bộ",
		IsActive: true,
	}}

	grid := BuildGridFromData(rooms, nil, blocks, nil, mkDate(2026, 5, 1), mkDate(2026, 5, 3), mkDate(2026, 5, 1))

	for _, room := range grid.Rooms {
		if !room.Days[0].IsBlocked || !room.Days[1].IsBlocked {
			t.Errorf("phòng %d phải bị chặn trong khoảng block toàn bộ", room.RoomID)
		}
		if room.Days[2].IsBlocked {
			t.Errorf("phòng %d không được chặn ngoài khoảng block", room.RoomID)
		}
	}
}

func TestBuildGridFromDataIgnoresInactiveAndNonConfirmed(t *testing.T) {
	rooms := []models.Room{{RoomId: 1, RoomCode: "101", Price: 100}}
	date := mkDate(2026, 6, 1)

	blocks := []models.RoomBlockPeriod{{
		RoomID:   uintPtr(1),
		FromDate: date,
		ToDate:   date,
		IsActive: false,
	}}
	reservations := []models.Reservation{{
		RoomID:       1,
		Status:       "cancelled",
		CheckInDate:  date,
		CheckOutDate: date.AddDate(0, 0, 2),
	}}

	grid := BuildGridFromData(rooms, nil, blocks, reservations, date, date, date)
	day := grid.Rooms[0].Days[0]
	if !day.IsAvailable {
		t.Errorf("block đã gỡ và reservation đã hủy không được chặn ngày")
	}
}

func TestBuildGridFromDataIdempotent(t *testing.T) {
	rooms := []models.Room{{RoomId: 1, RoomCode: "101", Price: 100}}
	reservations := []models.Reservation{{
		RoomID:       1,
		Status:       "confirmed",
		CheckInDate:  mkDate(2026, 7, 1),
		CheckOutDate: mkDate(2026, 7, 3),
	}}

	first := BuildGridFromData(rooms, nil, nil, reservations, mkDate(2026, 7, 1), mkDate(2026, 7, 4), mkDate(2026, 7, 1))
	second := BuildGridFromData(rooms, nil, nil, reservations, mkDate(2026, 7, 1), mkDate(2026, 7, 4), mkDate(2026, 7, 1))

	if len(first.Rooms[0].Days) != len(second.Rooms[0].Days) {
		t.Fatalf("hai lần dựng lưới phải cho cùng số ngày")
	}
	for i := range first.Rooms[0].Days {
		if first.Rooms[0].Days[i] != second.Rooms[0].Days[i] {
			t.Errorf("ngày %d khác nhau giữa hai lần dựng: %+v vs %+v", i, first.Rooms[0].Days[i], second.Rooms[0].Days[i])
		}
	}
}

func TestBuildGridFromDataEmptyAndInvertedRange(t *testing.T) {
	grid := BuildGridFromData(nil, nil, nil, nil, mkDate(2026, 1, 1), mkDate(2026, 1, 5), mkDate(2026, 1, 1))
	if len(grid.Rooms) != 0 {
		t.Errorf("không có phòng thì lưới phải rỗng")
	}

	rooms := []models.Room{{RoomId: 1, Price: 100}}
	grid = BuildGridFromData(rooms, nil, nil, nil, mkDate(2026, 1, 5), mkDate(2026, 1, 1), mkDate(2026, 1, 1))
	if len(grid.Rooms) != 0 {
		t.Errorf("khoảng ngày ngược phải trả về lưới rỗng")
	}
}

func TestGuestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Nguyen Van An", "NVA"},
		{"an", "A"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := GuestInitials(tt.name); got != tt.want {
			t.Errorf("GuestInitials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
