package services

import (
	"fmt"
	"time"

	"builder/constants"
	"builder/dto"
	"builder/errors"
	"builder/models"
	"builder/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationService xử lý logic đặt phòng và kiểm tra trùng lịch
type ReservationService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{
		db:     db,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// RangesOverlap kiểm tra hai khoảng nửa mở [aIn, aOut) và [bIn, bOut) có giao nhau không.
// So sánh chặt ở hai biên để ngày trả phòng trùng ngày nhận phòng không tính là trùng lịch.
func RangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// IsRoomFree kiểm tra phòng có trống trong khoảng [checkIn, checkOut) không.
// excludeReservationID dùng khi đổi ngày để bỏ qua chính reservation đang sửa.
func (s *ReservationService) IsRoomFree(companyID, roomID uint, checkIn, checkOut time.Time, excludeReservationID *uint) (bool, error) {
	checkIn = NormalizeDate(checkIn)
	checkOut = NormalizeDate(checkOut)
	if !checkOut.After(checkIn) {
		return false, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	tx := s.db.Model(&models.Reservation{}).
		Where("company_id = ? AND room_id = ? AND LOWER(status) <> ?", companyID, roomID, constants.ReservationStatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeReservationID != nil {
		tx = tx.Where("id <> ?", *excludeReservationID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// CheckRoomAvailability kiểm tra phòng trống và trả về chi tiết các ngày bận,
// kèm tổng giá tính theo giá từng ngày (override nếu có, không thì giá gốc)
func (s *ReservationService) CheckRoomAvailability(companyID, roomID uint, checkIn, checkOut time.Time, excludeReservationID *uint) (dto.CheckAvailabilityResponse, error) {
	checkIn = NormalizeDate(checkIn)
	checkOut = NormalizeDate(checkOut)

	result := dto.CheckAvailabilityResponse{
		RoomID:      roomID,
		IsAvailable: true,
	}

	if !checkOut.After(checkIn) {
		return result, errors.NewAppError(errors.ErrCodeInvalidDateRange, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	result.Nights = int(checkOut.Sub(checkIn).Hours() / 24)

	var room models.Room
	if err := s.db.Where("company_id = ?", companyID).First(&room, roomID).Error; err != nil {
		return result, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
	}

	var reservations []models.Reservation
	tx := s.db.Where("company_id = ? AND room_id = ? AND LOWER(status) <> ?", companyID, roomID, constants.ReservationStatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeReservationID != nil {
		tx = tx.Where("id <> ?", *excludeReservationID)
	}
	if err := tx.Find(&reservations).Error; err != nil {
		return result, err
	}

	var blocks []models.RoomBlockPeriod
	if err := s.db.Where("company_id = ? AND is_active = true AND (room_id = ? OR room_id IS NULL) AND from_date < ? AND to_date >= ?",
		companyID, roomID, checkOut, checkIn).Find(&blocks).Error; err != nil {
		return result, err
	}

	// Các override do chính reservation đang sửa giữ chỗ không được tính là ngày bận,
	// nếu không thì đổi ngày chồng lên khoảng cũ sẽ luôn bị báo hết phòng
	overrideTx := s.db.Where("company_id = ? AND room_id = ? AND date >= ? AND date < ?",
		companyID, roomID, checkIn, checkOut)
	if excludeReservationID != nil {
		overrideTx = overrideTx.Where("(reservation_id IS NULL OR reservation_id <> ?)", *excludeReservationID)
	}
	var overrides []models.RoomAvailability
	if err := overrideTx.Find(&overrides).Error; err != nil {
		return result, err
	}

	return CheckStayFromData(room, reservations, blocks, overrides, checkIn, checkOut, excludeReservationID), nil
}

// CheckStayFromData phân loại từng ngày của một lượt ở từ dữ liệu đã load sẵn,
// tính tổng giá theo giá hiệu lực từng ngày (override nếu có, không thì giá gốc).
// excludeReservationID bỏ qua reservation và các override giữ chỗ của chính nó.
func CheckStayFromData(
	room models.Room,
	reservations []models.Reservation,
	blocks []models.RoomBlockPeriod,
	overrides []models.RoomAvailability,
	checkIn, checkOut time.Time,
	excludeReservationID *uint,
) dto.CheckAvailabilityResponse {
	checkIn = NormalizeDate(checkIn)
	checkOut = NormalizeDate(checkOut)

	result := dto.CheckAvailabilityResponse{
		RoomID:      room.RoomId,
		IsAvailable: true,
	}
	if !checkOut.After(checkIn) {
		return result
	}
	result.Nights = int(checkOut.Sub(checkIn).Hours() / 24)

	overrideMap := make(map[time.Time]models.RoomAvailability)
	for _, ov := range overrides {
		if excludeReservationID != nil && ov.ReservationID != nil && *ov.ReservationID == *excludeReservationID {
			continue
		}
		overrideMap[NormalizeDate(ov.Date)] = ov
	}

	for date := checkIn; date.Before(checkOut); date = date.AddDate(0, 0, 1) {
		dayPrice := room.Price
		unavailable := false
		reason := ""

		for _, res := range reservations {
			if excludeReservationID != nil && res.ID == *excludeReservationID {
				continue
			}
			if IsReservationOccupying(date, NormalizeDate(res.CheckInDate), NormalizeDate(res.CheckOutDate)) {
				unavailable = true
				reason = "Phòng đã có khách đặt"
				break
			}
		}
		if !unavailable {
			for _, b := range blocks {
				if blockCovers(b, date) {
					unavailable = true
					if b.Reason != "" {
						reason = b.Reason
					} else {
						reason = "Phòng bị chặn"
					}
					break
				}
			}
		}
		if ov, ok := overrideMap[date]; ok {
			if ov.CustomPrice != nil {
				dayPrice = *ov.CustomPrice
			}
			if !unavailable && !ov.IsAvailable {
				unavailable = true
				if ov.BlockReason != "" {
					reason = ov.BlockReason
				} else {
					reason = "Phòng không mở bán ngày này"
				}
			}
		}

		if unavailable {
			result.IsAvailable = false
			result.UnavailableDates = append(result.UnavailableDates, date.Format("02/01/2006"))
			if result.Reason == "" {
				result.Reason = reason
			}
		} else {
			result.TotalPrice += float64(dayPrice)
		}
	}

	if !result.IsAvailable {
		result.TotalPrice = 0
	}
	return result
}

// CreateReservation tạo đặt phòng mới sau khi kiểm tra trùng lịch và rule.
// Lưu ý: kiểm tra và insert không nằm trong cùng transaction serializable,
// ràng buộc cuối cùng dựa vào tầng lưu trữ.
func (s *ReservationService) CreateReservation(companyID uint, req dto.ReservationRequest, ruleService *RuleService) (*models.Reservation, error) {
	checkIn, err := ConvertDateToISOFormat(req.CheckInDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err := ConvertDateToISOFormat(req.CheckOutDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}
	checkIn = NormalizeDate(checkIn)
	checkOut = NormalizeDate(checkOut)

	check, err := s.CheckRoomAvailability(companyID, req.RoomID, checkIn, checkOut, nil)
	if err != nil {
		return nil, err
	}
	if !check.IsAvailable {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotAvailable, "Phòng đã được đặt hoặc không khả dụng trong khoảng thời gian này", nil)
	}

	ruleResult := ruleService.EvaluateBookingRules(companyID, req.RoomID, checkIn, checkOut)
	if !ruleResult.Passed {
		return nil, errors.NewAppError(errors.ErrCodeRuleViolation, ruleResult.FailReason, nil)
	}

	var room models.Room
	if err := s.db.Where("company_id = ?", companyID).First(&room, req.RoomID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
	}

	reservation := &models.Reservation{
		CompanyID:    companyID,
		RoomID:       req.RoomID,
		CustomerID:   req.CustomerID,
		Code:         uuid.NewString(),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       constants.ReservationStatusPending,
		Rate:         room.Price,
		TotalPrice:   check.TotalPrice,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		GuestPhone:   req.GuestPhone,
		Note:         req.Note,
	}

	if err := s.db.Create(reservation).Error; err != nil {
		return nil, err
	}

	// Đánh dấu các ngày ở bằng override liên kết với reservation
	for date := checkIn; date.Before(checkOut); date = date.AddDate(0, 0, 1) {
		availability := models.RoomAvailability{
			CompanyID:     companyID,
			RoomID:        req.RoomID,
			Date:          date,
			IsAvailable:   false,
			ReservationID: &reservation.ID,
		}
		if err := s.db.Create(&availability).Error; err != nil {
			s.logger.Error("Lỗi khi tạo availability cho reservation %d ngày %s: %v",
				reservation.ID, date.Format("02/01/2006"), err)
		}
	}

	return reservation, nil
}

// UpdateReservationDates đổi ngày của reservation, bỏ qua chính nó khi quét trùng lịch
func (s *ReservationService) UpdateReservationDates(companyID, reservationID uint, checkIn, checkOut time.Time) (*models.Reservation, error) {
	checkIn = NormalizeDate(checkIn)
	checkOut = NormalizeDate(checkOut)

	var reservation models.Reservation
	if err := s.db.Where("company_id = ?", companyID).First(&reservation, reservationID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeReservationNotFound, "Không tìm thấy đặt phòng", err)
	}

	free, err := s.IsRoomFree(companyID, reservation.RoomID, checkIn, checkOut, &reservation.ID)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotAvailable, "Phòng đã được đặt trong khoảng thời gian mới", nil)
	}

	check, err := s.CheckRoomAvailability(companyID, reservation.RoomID, checkIn, checkOut, &reservation.ID)
	if err != nil {
		return nil, err
	}

	// Dời các override cũ sang khoảng ngày mới
	if err := s.db.Where("company_id = ? AND reservation_id = ?", companyID, reservation.ID).
		Delete(&models.RoomAvailability{}).Error; err != nil {
		s.logger.Error("Lỗi khi xóa availability cũ của reservation %d: %v", reservation.ID, err)
	}
	for date := checkIn; date.Before(checkOut); date = date.AddDate(0, 0, 1) {
		availability := models.RoomAvailability{
			CompanyID:     companyID,
			RoomID:        reservation.RoomID,
			Date:          date,
			IsAvailable:   false,
			ReservationID: &reservation.ID,
		}
		if err := s.db.Create(&availability).Error; err != nil {
			s.logger.Error("Lỗi khi tạo availability mới của reservation %d: %v", reservation.ID, err)
		}
	}

	reservation.CheckInDate = checkIn
	reservation.CheckOutDate = checkOut
	reservation.TotalPrice = check.TotalPrice
	if err := s.db.Save(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ChangeReservationStatus chuyển trạng thái theo state machine
func (s *ReservationService) ChangeReservationStatus(companyID, reservationID uint, action string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.Where("company_id = ?", companyID).First(&reservation, reservationID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeReservationNotFound, "Không tìm thấy đặt phòng", err)
	}

	state := models.GetReservationState(reservation.Status)
	var err error
	switch action {
	case "confirm":
		err = state.Confirm(&reservation)
	case "check_in":
		err = state.CheckIn(&reservation)
	case "check_out":
		err = state.CheckOut(&reservation)
	case "cancel":
		err = state.Cancel(&reservation)
	default:
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, fmt.Sprintf("Hành động không hợp lệ: %s", action), nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Không thể chuyển trạng thái", err)
	}

	if err := s.db.Save(&reservation).Error; err != nil {
		return nil, err
	}

	// Hủy thì trả lại các ngày đã giữ
	if reservation.Status == constants.ReservationStatusCancelled {
		if err := s.db.Where("company_id = ? AND reservation_id = ?", companyID, reservation.ID).
			Delete(&models.RoomAvailability{}).Error; err != nil {
			s.logger.Error("Lỗi khi trả lại availability của reservation %d: %v", reservation.ID, err)
		}
	}

	return &reservation, nil
}

// ConvertDateToISOFormat chuyển chuỗi ngày dạng dd/mm/yyyy thành time.Time
func ConvertDateToISOFormat(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse("02/01/2006", dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return parsedDate, nil
}
