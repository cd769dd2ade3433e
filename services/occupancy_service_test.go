package services

import (
	"math"
	"testing"

	"builder/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeOccupancyStatsBasicRate(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, Type: 1, Price: 100},
		{RoomId: 2, Type: 1, Price: 100},
	}
	// 1 đêm ở trên 2 phòng x 2 ngày => 25%
	reservations := []models.Reservation{{
		RoomID:       1,
		Status:       "confirmed",
		CheckInDate:  mkDate(2026, 3, 10),
		CheckOutDate: mkDate(2026, 3, 11),
		TotalPrice:   400000,
	}}

	stats := ComputeOccupancyStats(rooms, reservations, nil, mkDate(2026, 3, 10), mkDate(2026, 3, 11), mkDate(2026, 3, 10))

	if !almostEqual(stats.OccupancyRate, 25) {
		t.Errorf("OccupancyRate = %v, want 25", stats.OccupancyRate)
	}
	if stats.TotalRooms != 2 {
		t.Errorf("TotalRooms = %d, want 2", stats.TotalRooms)
	}
	if len(stats.Daily) != 2 {
		t.Fatalf("số ngày = %d, want 2", len(stats.Daily))
	}
	if stats.Daily[0].OccupiedRooms != 1 || stats.Daily[0].AvailableRooms != 1 {
		t.Errorf("ngày đầu: occupied=%d available=%d, want 1/1",
			stats.Daily[0].OccupiedRooms, stats.Daily[0].AvailableRooms)
	}
	if stats.Daily[1].OccupiedRooms != 0 || stats.Daily[1].AvailableRooms != 2 {
		t.Errorf("ngày check-out không tính là ngày ở: occupied=%d available=%d",
			stats.Daily[1].OccupiedRooms, stats.Daily[1].AvailableRooms)
	}
}

func TestComputeOccupancyStatsRevenuePerNight(t *testing.T) {
	rooms := []models.Room{{RoomId: 1, Type: 2, Price: 100}}
	// 2 đêm, tổng 600000 => 300000 mỗi đêm
	reservations := []models.Reservation{{
		RoomID:       1,
		Status:       "checked_in",
		CheckInDate:  mkDate(2026, 4, 1),
		CheckOutDate: mkDate(2026, 4, 3),
		TotalPrice:   600000,
	}}

	stats := ComputeOccupancyStats(rooms, reservations, nil, mkDate(2026, 4, 1), mkDate(2026, 4, 2), mkDate(2026, 4, 1))

	if !almostEqual(stats.Daily[0].Revenue, 300000) {
		t.Errorf("doanh thu ngày đầu = %v, want 300000", stats.Daily[0].Revenue)
	}
	if !almostEqual(stats.TotalRevenue, 600000) {
		t.Errorf("TotalRevenue = %v, want 600000", stats.TotalRevenue)
	}
	if !almostEqual(stats.AverageRevenue, 300000) {
		t.Errorf("AverageRevenue = %v, want 300000", stats.AverageRevenue)
	}
}

func TestComputeOccupancyStatsBlockedRooms(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, Type: 1},
		{RoomId: 2, Type: 1},
	}
	blocks := []models.RoomBlockPeriod{{
		RoomID:   uintPtr(2),
		FromDate: mkDate(2026, 5, 1),
		ToDate:   mkDate(2026, 5, 1),
		IsActive: true,
	}}

	stats := ComputeOccupancyStats(rooms, nil, blocks, mkDate(2026, 5, 1), mkDate(2026, 5, 1), mkDate(2026, 5, 1))

	day := stats.Daily[0]
	if day.BlockedRooms != 1 || day.AvailableRooms != 1 || day.OccupiedRooms != 0 {
		t.Errorf("blocked=%d available=%d occupied=%d, want 1/1/0",
			day.BlockedRooms, day.AvailableRooms, day.OccupiedRooms)
	}
	// Phòng bị chặn không tính là occupied nên rate vẫn 0
	if !almostEqual(stats.OccupancyRate, 0) {
		t.Errorf("OccupancyRate = %v, want 0", stats.OccupancyRate)
	}
}

func TestComputeOccupancyStatsTodayCheckInsOuts(t *testing.T) {
	rooms := []models.Room{{RoomId: 1, Type: 1}, {RoomId: 2, Type: 1}}
	today := mkDate(2026, 6, 15)
	reservations := []models.Reservation{
		{RoomID: 1, Status: "confirmed", CheckInDate: today, CheckOutDate: today.AddDate(0, 0, 2)},
		{RoomID: 2, Status: "checked_out", CheckInDate: today.AddDate(0, 0, -2), CheckOutDate: today},
		{RoomID: 1, Status: "cancelled", CheckInDate: today, CheckOutDate: today.AddDate(0, 0, 1)},
	}

	stats := ComputeOccupancyStats(rooms, reservations, nil, today, today.AddDate(0, 0, 1), today)

	if stats.TodayCheckIns != 1 {
		t.Errorf("TodayCheckIns = %d, want 1 (không tính reservation đã hủy)", stats.TodayCheckIns)
	}
	if stats.TodayCheckOuts != 1 {
		t.Errorf("TodayCheckOuts = %d, want 1", stats.TodayCheckOuts)
	}
}

func TestComputeOccupancyStatsByRoomType(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, Type: 1},
		{RoomId: 2, Type: 1},
		{RoomId: 3, Type: 2},
	}
	reservations := []models.Reservation{{
		RoomID:       3,
		Status:       "confirmed",
		CheckInDate:  mkDate(2026, 7, 1),
		CheckOutDate: mkDate(2026, 7, 2),
	}}

	stats := ComputeOccupancyStats(rooms, reservations, nil, mkDate(2026, 7, 1), mkDate(2026, 7, 1), mkDate(2026, 7, 1))

	if len(stats.ByRoomType) != 2 {
		t.Fatalf("số loại phòng = %d, want 2", len(stats.ByRoomType))
	}
	for _, ts := range stats.ByRoomType {
		switch ts.Type {
		case 1:
			if ts.RoomCount != 2 || ts.OccupiedCount != 0 || !almostEqual(ts.OccupancyRate, 0) {
				t.Errorf("loại 1: %+v", ts)
			}
		case 2:
			if ts.RoomCount != 1 || ts.OccupiedCount != 1 || !almostEqual(ts.OccupancyRate, 100) {
				t.Errorf("loại 2: %+v", ts)
			}
		default:
			t.Errorf("loại phòng lạ: %d", ts.Type)
		}
	}
}

func TestComputeOccupancyStatsGuards(t *testing.T) {
	stats := ComputeOccupancyStats(nil, nil, nil, mkDate(2026, 1, 1), mkDate(2026, 1, 5), mkDate(2026, 1, 1))
	if stats.TotalRooms != 0 || len(stats.Daily) != 0 || !almostEqual(stats.OccupancyRate, 0) {
		t.Errorf("không có phòng thì thống kê phải rỗng: %+v", stats)
	}

	rooms := []models.Room{{RoomId: 1, Type: 1}}
	stats = ComputeOccupancyStats(rooms, nil, nil, mkDate(2026, 1, 5), mkDate(2026, 1, 1), mkDate(2026, 1, 1))
	if len(stats.Daily) != 0 {
		t.Errorf("khoảng ngày ngược phải trả về thống kê rỗng")
	}
}
