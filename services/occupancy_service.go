package services

import (
	"strings"
	"time"

	"builder/constants"
	"builder/dto"
	"builder/models"
	"builder/services/logger"

	"gorm.io/gorm"
)

// OccupancyService tính thống kê công suất phòng theo khoảng ngày
type OccupancyService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewOccupancyService(db *gorm.DB) *OccupancyService {
	return &OccupancyService{
		db:     db,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// ComputeOccupancyStats tính thống kê từ dữ liệu đã load sẵn,
// duyệt ngày x phòng trong bộ nhớ thay vì query theo từng cặp
func ComputeOccupancyStats(
	rooms []models.Room,
	reservations []models.Reservation,
	blocks []models.RoomBlockPeriod,
	fromDate, toDate, today time.Time,
) dto.OccupancyStatsResponse {
	fromDate = NormalizeDate(fromDate)
	toDate = NormalizeDate(toDate)
	today = NormalizeDate(today)

	stats := dto.OccupancyStatsResponse{
		FromDate:   fromDate.Format("02/01/2006"),
		ToDate:     toDate.Format("02/01/2006"),
		TotalRooms: len(rooms),
		Daily:      []dto.DailyOccupancy{},
		ByRoomType: []dto.RoomTypeOccupancy{},
	}
	if toDate.Before(fromDate) || len(rooms) == 0 {
		return stats
	}

	confirmed := make(map[uint][]models.Reservation)
	for _, r := range reservations {
		if strings.EqualFold(r.Status, constants.ReservationStatusConfirmed) ||
			strings.EqualFold(r.Status, constants.ReservationStatusCheckedIn) ||
			strings.EqualFold(r.Status, constants.ReservationStatusCheckedOut) {
			confirmed[r.RoomID] = append(confirmed[r.RoomID], r)
		}
	}

	roomBlocks := make(map[uint][]models.RoomBlockPeriod)
	var globalBlocks []models.RoomBlockPeriod
	for _, b := range blocks {
		if !b.IsActive {
			continue
		}
		if b.RoomID != nil {
			roomBlocks[*b.RoomID] = append(roomBlocks[*b.RoomID], b)
		} else {
			globalBlocks = append(globalBlocks, b)
		}
	}

	typeRooms := make(map[uint]int)
	typeOccupied := make(map[uint]int)
	for _, room := range rooms {
		typeRooms[room.Type]++
	}

	totalOccupiedNights := 0
	dayCount := 0

	for date := fromDate; !date.After(toDate); date = date.AddDate(0, 0, 1) {
		dayCount++
		daily := dto.DailyOccupancy{Date: date.Format("02/01/2006")}

		for _, room := range rooms {
			occupied := false
			for _, res := range confirmed[room.RoomId] {
				if IsReservationOccupying(date, NormalizeDate(res.CheckInDate), NormalizeDate(res.CheckOutDate)) {
					occupied = true
					nights := res.Nights()
					if nights > 0 {
						daily.Revenue += res.TotalPrice / float64(nights)
					}
					break
				}
			}

			if occupied {
				daily.OccupiedRooms++
				totalOccupiedNights++
				typeOccupied[room.Type]++
				continue
			}

			blocked := false
			for _, b := range roomBlocks[room.RoomId] {
				if blockCovers(b, date) {
					blocked = true
					break
				}
			}
			if !blocked {
				for _, b := range globalBlocks {
					if blockCovers(b, date) {
						blocked = true
						break
					}
				}
			}
			if blocked {
				daily.BlockedRooms++
			} else {
				daily.AvailableRooms++
			}
		}

		if len(rooms) > 0 {
			daily.OccupancyRate = float64(daily.OccupiedRooms) / float64(len(rooms)) * 100
		}
		stats.TotalRevenue += daily.Revenue
		stats.Daily = append(stats.Daily, daily)
	}

	roomNights := len(rooms) * dayCount
	if roomNights > 0 {
		stats.OccupancyRate = float64(totalOccupiedNights) / float64(roomNights) * 100
	}
	if dayCount > 0 {
		stats.AverageRevenue = stats.TotalRevenue / float64(dayCount)
	}

	// Check-in / check-out trong ngày hôm nay
	for _, resList := range confirmed {
		for _, res := range resList {
			if NormalizeDate(res.CheckInDate).Equal(today) {
				stats.TodayCheckIns++
			}
			if NormalizeDate(res.CheckOutDate).Equal(today) {
				stats.TodayCheckOuts++
			}
		}
	}

	for roomType, count := range typeRooms {
		typeStat := dto.RoomTypeOccupancy{
			Type:          roomType,
			RoomCount:     count,
			OccupiedCount: typeOccupied[roomType],
		}
		if count*dayCount > 0 {
			typeStat.OccupancyRate = float64(typeOccupied[roomType]) / float64(count*dayCount) * 100
		}
		stats.ByRoomType = append(stats.ByRoomType, typeStat)
	}

	return stats
}

// GetOccupancyStats load dữ liệu một lần rồi tính thống kê trong bộ nhớ.
// Lỗi trong lúc tính trả về thống kê rỗng thay vì ném lỗi.
func (s *OccupancyService) GetOccupancyStats(companyID uint, fromDate, toDate time.Time) dto.OccupancyStatsResponse {
	fromDate = NormalizeDate(fromDate)
	toDate = NormalizeDate(toDate)

	empty := dto.OccupancyStatsResponse{
		FromDate:   fromDate.Format("02/01/2006"),
		ToDate:     toDate.Format("02/01/2006"),
		Daily:      []dto.DailyOccupancy{},
		ByRoomType: []dto.RoomTypeOccupancy{},
	}

	var rooms []models.Room
	if err := s.db.Where("company_id = ? AND status = ?", companyID, constants.RoomStatusActive).Find(&rooms).Error; err != nil {
		s.logger.Error("Lỗi khi load phòng cho thống kê công suất: %v", err)
		return empty
	}

	var reservations []models.Reservation
	if err := s.db.Where("company_id = ? AND LOWER(status) IN (?) AND check_in_date <= ? AND check_out_date >= ?",
		companyID,
		[]string{constants.ReservationStatusConfirmed, constants.ReservationStatusCheckedIn, constants.ReservationStatusCheckedOut},
		toDate, fromDate).Find(&reservations).Error; err != nil {
		s.logger.Error("Lỗi khi load reservation cho thống kê công suất: %v", err)
		return empty
	}

	var blocks []models.RoomBlockPeriod
	if err := s.db.Where("company_id = ? AND is_active = true AND from_date <= ? AND to_date >= ?",
		companyID, toDate, fromDate).Find(&blocks).Error; err != nil {
		s.logger.Error("Lỗi khi load block period cho thống kê công suất: %v", err)
		return empty
	}

	return ComputeOccupancyStats(rooms, reservations, blocks, fromDate, toDate, TodayUTC())
}
