package controllers

import (
	"strconv"
	"strings"

	"builder/config"
	"builder/constants"
	"builder/dto"
	"builder/errors"
	"builder/models"
	"builder/response"
	"builder/services"
	"builder/validator"

	"github.com/gin-gonic/gin"
)

func toReservationResponse(reservation *models.Reservation, room *models.Room) dto.ReservationResponse {
	resp := dto.ReservationResponse{
		ID:           reservation.ID,
		Code:         reservation.Code,
		CheckInDate:  reservation.CheckInDate.Format("02/01/2006"),
		CheckOutDate: reservation.CheckOutDate.Format("02/01/2006"),
		Status:       reservation.Status,
		Rate:         reservation.Rate,
		TotalPrice:   reservation.TotalPrice,
		Nights:       reservation.Nights(),
		GuestName:    reservation.GuestName,
		GuestEmail:   reservation.GuestEmail,
		GuestPhone:   reservation.GuestPhone,
		Note:         reservation.Note,
		CreatedAt:    reservation.CreatedAt,
		UpdatedAt:    reservation.UpdatedAt,
	}
	if room != nil {
		resp.Room = dto.ReservationRoomResponse{
			ID:       room.RoomId,
			RoomCode: room.RoomCode,
			RoomName: room.RoomName,
			Price:    room.Price,
		}
	}
	return resp
}

// respondAppError trả về lỗi theo mã AppError, lỗi khác trả về lỗi server
func respondAppError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		response.ErrorWithCode(c, string(appErr.Code), appErr.Message)
		return
	}
	response.ServerError(c)
}

// GetReservations trả về danh sách đặt phòng, lọc theo trạng thái, khoảng ngày và tên khách
func GetReservations(c *gin.Context) {
	companyID := getCompanyID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := strings.ToLower(c.Query("status"))
	name := c.Query("name")
	fromStr := c.Query("fromDate")
	toStr := c.Query("toDate")

	query := config.DB.Model(&models.Reservation{}).Where("company_id = ?", companyID)
	if status != "" {
		query = query.Where("LOWER(status) = ?", status)
	}
	if name != "" {
		query = query.Where("guest_name ILIKE ?", "%"+name+"%")
	}
	if fromStr != "" && toStr != "" {
		fromDate, toDate, err := validator.ValidateDateRange(fromStr, toStr)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		query = query.Where("check_in_date < ? AND check_out_date > ?", toDate.AddDate(0, 0, 1), fromDate)
	}

	var total int64
	query.Count(&total)

	var reservations []models.Reservation
	if err := query.Preload("Room").Order("check_in_date DESC").
		Offset(page * limit).Limit(limit).Find(&reservations).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		result = append(result, toReservationResponse(&reservations[i], &reservations[i].Room))
	}

	response.SuccessWithPagination(c, result, page, limit, int(total))
}

// GetReservationDetail trả về chi tiết một đặt phòng
func GetReservationDetail(c *gin.Context) {
	companyID := getCompanyID(c)

	reservationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var reservation models.Reservation
	if err := config.DB.Preload("Room").Where("company_id = ?", companyID).
		First(&reservation, reservationID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toReservationResponse(&reservation, &reservation.Room))
}

// CreateReservation tạo đặt phòng mới, kiểm tra trùng lịch và rule trước khi ghi
func CreateReservation(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, _, err := validator.ValidateReservation(&req); err != nil {
		respondAppError(c, err)
		return
	}

	reservationService := services.NewReservationService(config.DB)
	ruleService := services.NewRuleService(config.DB)

	reservation, err := reservationService.CreateReservation(companyID, req, ruleService)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateAvailabilityCache(companyID)

	var room models.Room
	config.DB.Where("company_id = ?", companyID).First(&room, reservation.RoomID)

	response.Success(c, toReservationResponse(reservation, &room))
}

// UpdateReservationDates đổi ngày nhận và trả phòng của một đặt phòng
func UpdateReservationDates(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.UpdateReservationDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, checkOut, err := validator.ValidateDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !checkOut.After(checkIn) {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}

	reservationService := services.NewReservationService(config.DB)
	reservation, err := reservationService.UpdateReservationDates(companyID, req.ReservationID, checkIn, checkOut)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateAvailabilityCache(companyID)
	response.Success(c, toReservationResponse(reservation, nil))
}

// ChangeReservationStatus chuyển trạng thái đặt phòng theo state machine.
// Khi xác nhận thành công thì gửi thông báo WhatsApp cho khách.
func ChangeReservationStatus(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.ChangeReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	reservationService := services.NewReservationService(config.DB)
	reservation, err := reservationService.ChangeReservationStatus(companyID, req.ReservationID, req.Action)
	if err != nil {
		respondAppError(c, err)
		return
	}

	invalidateAvailabilityCache(companyID)

	if reservation.Status == constants.ReservationStatusConfirmed {
		whatsappService := services.NewWhatsAppService(config.DB)
		go whatsappService.SendReservationConfirmation(reservation)
	}

	response.Success(c, toReservationResponse(reservation, nil))
}
