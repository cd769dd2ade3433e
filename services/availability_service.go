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

// AvailabilityService dựng lưới availability theo từng (phòng, ngày)
type AvailabilityService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{
		db:     db,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// NormalizeDate chuẩn hóa thời gian về 0h UTC để tránh lệch múi giờ khi so sánh ngày
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TodayUTC trả về ngày hiện tại theo UTC
func TodayUTC() time.Time {
	return NormalizeDate(time.Now().UTC())
}

// GuestInitials lấy chữ cái đầu của từng từ trong tên khách
func GuestInitials(name string) string {
	var initials strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		if len(r) > 0 {
			initials.WriteString(strings.ToUpper(string(r[0])))
		}
	}
	return initials.String()
}

// IsReservationOccupying kiểm tra ngày có nằm trong khoảng [checkIn, checkOut) không,
// ngày check-out không tính là ngày ở nên phòng trống cho khách mới
func IsReservationOccupying(date, checkIn, checkOut time.Time) bool {
	return !date.Before(checkIn) && date.Before(checkOut)
}

// blockCovers kiểm tra block period có phủ ngày này không, ToDate tính cả ngày cuối
func blockCovers(b models.RoomBlockPeriod, date time.Time) bool {
	return !date.Before(NormalizeDate(b.FromDate)) && !date.After(NormalizeDate(b.ToDate))
}

// BuildGridFromData dựng lưới availability từ dữ liệu đã load sẵn.
// Ưu tiên: reservation > block theo phòng > block toàn bộ > override > giá gốc.
func BuildGridFromData(
	rooms []models.Room,
	overrides []models.RoomAvailability,
	blocks []models.RoomBlockPeriod,
	reservations []models.Reservation,
	fromDate, toDate, today time.Time,
) dto.AvailabilityGridResponse {
	fromDate = NormalizeDate(fromDate)
	toDate = NormalizeDate(toDate)
	today = NormalizeDate(today)

	grid := dto.AvailabilityGridResponse{
		FromDate: fromDate.Format("02/01/2006"),
		ToDate:   toDate.Format("02/01/2006"),
		Rooms:    []dto.GridRoom{},
	}
	if toDate.Before(fromDate) {
		return grid
	}

	// Gom override và reservation theo phòng để tra nhanh
	overrideMap := make(map[uint]map[time.Time]models.RoomAvailability)
	for _, ov := range overrides {
		key := NormalizeDate(ov.Date)
		if overrideMap[ov.RoomID] == nil {
			overrideMap[ov.RoomID] = make(map[time.Time]models.RoomAvailability)
		}
		overrideMap[ov.RoomID][key] = ov
	}

	reservationMap := make(map[uint][]models.Reservation)
	for _, r := range reservations {
		if !strings.EqualFold(r.Status, constants.ReservationStatusConfirmed) {
			continue
		}
		reservationMap[r.RoomID] = append(reservationMap[r.RoomID], r)
	}

	var roomBlocks = make(map[uint][]models.RoomBlockPeriod)
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

	for _, room := range rooms {
		gridRoom := dto.GridRoom{
			RoomID:   room.RoomId,
			RoomCode: room.RoomCode,
			RoomName: room.RoomName,
			Type:     room.Type,
			Price:    room.Price,
		}

		for date := fromDate; !date.After(toDate); date = date.AddDate(0, 0, 1) {
			day := dto.DayAvailability{
				RoomID:      room.RoomId,
				Date:        date.Format("02/01/2006"),
				IsAvailable: true,
				IsToday:     date.Equal(today),
				Price:       room.Price,
			}

			// Reservation chiếm ngày này
			for _, res := range reservationMap[room.RoomId] {
				checkIn := NormalizeDate(res.CheckInDate)
				checkOut := NormalizeDate(res.CheckOutDate)
				if IsReservationOccupying(date, checkIn, checkOut) {
					day.HasReservation = true
					day.ReservationID = res.ID
					day.GuestName = res.GuestName
					day.GuestInitials = GuestInitials(res.GuestName)
					day.IsCheckInDay = date.Equal(checkIn)
				}
				if date.Equal(checkOut) {
					day.IsCheckOutDay = true
				}
			}

			if !day.HasReservation {
				// Block theo phòng ưu tiên hơn block toàn bộ
				for _, b := range roomBlocks[room.RoomId] {
					if blockCovers(b, date) {
						day.IsBlocked = true
						day.BlockReason = b.Reason
						break
					}
				}
				if !day.IsBlocked {
					for _, b := range globalBlocks {
						if blockCovers(b, date) {
							day.IsBlocked = true
							day.BlockReason = b.Reason
							break
						}
					}
				}

				if ov, ok := overrideMap[room.RoomId][date]; ok {
					if ov.CustomPrice != nil {
						day.Price = *ov.CustomPrice
					}
					if ov.MinNights != nil {
						day.MinNights = *ov.MinNights
					}
					if !day.IsBlocked && !ov.IsAvailable {
						day.IsBlocked = true
						day.BlockReason = ov.BlockReason
					}
				}
			}

			day.IsAvailable = !day.HasReservation && !day.IsBlocked
			gridRoom.Days = append(gridRoom.Days, day)
		}

		grid.Rooms = append(grid.Rooms, gridRoom)
	}

	return grid
}

// BuildAvailabilityGrid dựng lưới availability cho một company trong khoảng [fromDate, toDate].
// Mọi lỗi trong lúc dựng lưới đều trả về lưới rỗng thay vì ném lỗi để dashboard không bị 500.
func (s *AvailabilityService) BuildAvailabilityGrid(companyID uint, fromDate, toDate time.Time, roomIDs []uint) dto.AvailabilityGridResponse {
	fromDate = NormalizeDate(fromDate)
	toDate = NormalizeDate(toDate)

	empty := dto.AvailabilityGridResponse{
		FromDate: fromDate.Format("02/01/2006"),
		ToDate:   toDate.Format("02/01/2006"),
		Rooms:    []dto.GridRoom{},
	}

	var rooms []models.Room
	roomTx := s.db.Where("company_id = ? AND status = ?", companyID, constants.RoomStatusActive)
	if len(roomIDs) > 0 {
		roomTx = roomTx.Where("room_id IN (?)", roomIDs)
	}
	if err := roomTx.Find(&rooms).Error; err != nil {
		s.logger.Error("Lỗi khi load danh sách phòng cho lưới availability: %v", err)
		return empty
	}
	if len(rooms) == 0 {
		return empty
	}

	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.RoomId)
	}

	var overrides []models.RoomAvailability
	if err := s.db.Where("company_id = ? AND room_id IN (?) AND date >= ? AND date <= ?",
		companyID, ids, fromDate, toDate).Find(&overrides).Error; err != nil {
		s.logger.Error("Lỗi khi load override availability: %v", err)
		return empty
	}

	var blocks []models.RoomBlockPeriod
	if err := s.db.Where("company_id = ? AND is_active = true AND from_date <= ? AND to_date >= ?",
		companyID, toDate, fromDate).Find(&blocks).Error; err != nil {
		s.logger.Error("Lỗi khi load block period: %v", err)
		return empty
	}

	var reservations []models.Reservation
	if err := s.db.Where("company_id = ? AND room_id IN (?) AND LOWER(status) = ? AND check_in_date <= ? AND check_out_date >= ?",
		companyID, ids, constants.ReservationStatusConfirmed, toDate, fromDate).Find(&reservations).Error; err != nil {
		s.logger.Error("Lỗi khi load reservation cho lưới availability: %v", err)
		return empty
	}

	return BuildGridFromData(rooms, overrides, blocks, reservations, fromDate, toDate, TodayUTC())
}
