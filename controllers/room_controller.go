package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"builder/config"
	"builder/dto"
	"builder/models"
	"builder/response"
	"builder/services"
	"builder/validator"

	"github.com/gin-gonic/gin"
)

func toRoomResponse(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		RoomId:      room.RoomId,
		RoomCode:    room.RoomCode,
		RoomName:    room.RoomName,
		Type:        room.Type,
		Price:       room.Price,
		People:      room.People,
		Floor:       room.Floor,
		Description: room.Description,
		Status:      room.Status,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}

// invalidateAvailabilityCache xóa cache lưới availability của company khi dữ liệu thay đổi
func invalidateAvailabilityCache(companyID uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("không thể kết nối Redis: %v", err)
		return
	}
	pattern := fmt.Sprintf("availability:grid:%d:*", companyID)
	if err := services.DeleteByPattern(config.Ctx, rdb, pattern); err != nil {
		log.Printf("Lỗi khi xóa cache availability: %v", err)
	}
}

// GetRooms trả về danh sách phòng của company, có phân trang
func GetRooms(c *gin.Context) {
	companyID := getCompanyID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	statusStr := c.Query("status")

	query := config.DB.Model(&models.Room{}).Where("company_id = ?", companyID)
	if statusStr != "" {
		status, err := strconv.Atoi(statusStr)
		if err != nil {
			response.BadRequest(c, "Trạng thái không hợp lệ")
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var rooms []models.Room
	if err := query.Order("room_code ASC").Offset(page * limit).Limit(limit).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		roomResponses = append(roomResponses, toRoomResponse(&rooms[i]))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, int(total))
}

// CreateRoom tạo phòng mới
func CreateRoom(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRoom(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room := models.Room{
		CompanyID:   companyID,
		RoomCode:    req.RoomCode,
		RoomName:    req.RoomName,
		Type:        req.Type,
		Price:       req.Price,
		People:      req.People,
		Floor:       req.Floor,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache(companyID)
	response.Success(c, toRoomResponse(&room))
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRoom(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ? AND company_id = ?", req.RoomId, companyID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.RoomCode = req.RoomCode
	room.RoomName = req.RoomName
	room.Type = req.Type
	room.Price = req.Price
	room.People = req.People
	room.Floor = req.Floor
	room.Description = req.Description
	room.Status = req.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái phòng không hợp lệ")
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache(companyID)
	response.Success(c, toRoomResponse(&room))
}

// GetAvailabilityGrid trả về lưới availability của tất cả phòng trong khoảng ngày.
// Kết quả được cache trong Redis, lỗi đọc dữ liệu trả về lưới rỗng thay vì báo lỗi.
func GetAvailabilityGrid(c *gin.Context) {
	companyID := getCompanyID(c)

	fromStr := c.DefaultQuery("fromDate", "")
	toStr := c.DefaultQuery("toDate", "")
	if fromStr == "" || toStr == "" {
		response.BadRequest(c, "fromDate và toDate là bắt buộc")
		return
	}

	fromDate, toDate, err := validator.ValidateDateRange(fromStr, toStr)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var roomIDs []uint
	for _, idStr := range c.QueryArray("roomId") {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			response.BadRequest(c, "roomId không hợp lệ")
			return
		}
		roomIDs = append(roomIDs, uint(id))
	}

	cacheKey := fmt.Sprintf("availability:grid:%d:%s:%s", companyID, fromDate.Format("2006-01-02"), toDate.Format("2006-01-02"))

	// Chỉ cache lưới đầy đủ, không cache khi lọc theo phòng
	var cached dto.AvailabilityGridResponse
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil && len(roomIDs) == 0 {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && len(cached.Rooms) > 0 {
			response.Success(c, cached)
			return
		}
	}

	availabilityService := services.NewAvailabilityService(config.DB)
	grid := availabilityService.BuildAvailabilityGrid(companyID, fromDate, toDate, roomIDs)

	if redisErr == nil && len(roomIDs) == 0 && len(grid.Rooms) > 0 {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, grid, 5*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu cache availability: %v", err)
		}
	}

	response.Success(c, grid)
}

// CheckAvailability kiểm tra một phòng có trống trong khoảng ngày không
func CheckAvailability(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.CheckAvailabilityRequest
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
	result, err := reservationService.CheckRoomAvailability(companyID, req.RoomID, checkIn, checkOut, nil)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, result)
}

// CreateBlockPeriod chặn một khoảng ngày của một phòng hoặc toàn bộ phòng
func CreateBlockPeriod(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.BlockPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	fromDate, toDate, err := validator.ValidateDateRange(req.FromDate, req.ToDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.RoomID != nil {
		var count int64
		config.DB.Model(&models.Room{}).Where("room_id = ? AND company_id = ?", *req.RoomID, companyID).Count(&count)
		if count == 0 {
			response.NotFound(c)
			return
		}
	}

	block := models.RoomBlockPeriod{
		CompanyID: companyID,
		RoomID:    req.RoomID,
		FromDate:  fromDate,
		ToDate:    toDate,
		Reason:    req.Reason,
		IsActive:  true,
	}
	if err := config.DB.Create(&block).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache(companyID)
	response.Success(c, block)
}

// DeleteBlockPeriod gỡ block, các ngày trong khoảng trở lại trạng thái trống
func DeleteBlockPeriod(c *gin.Context) {
	companyID := getCompanyID(c)

	blockID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var block models.RoomBlockPeriod
	if err := config.DB.Where("id = ? AND company_id = ?", blockID, companyID).First(&block).Error; err != nil {
		response.NotFound(c)
		return
	}

	block.IsActive = false
	if err := config.DB.Save(&block).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache(companyID)
	response.Success(c, nil)
}

// GetBlockPeriods trả về danh sách block đang hoạt động
func GetBlockPeriods(c *gin.Context) {
	companyID := getCompanyID(c)

	var blocks []models.RoomBlockPeriod
	if err := config.DB.Where("company_id = ? AND is_active = ?", companyID, true).
		Order("from_date ASC").Find(&blocks).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, blocks, len(blocks))
}

// UpsertOverride cập nhật override của một (phòng, ngày): giá riêng, chặn ngày, số đêm tối thiểu
func UpsertOverride(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := time.Parse("02/01/2006", req.Date)
	if err != nil {
		response.BadRequest(c, "Ngày không hợp lệ, vui lòng sử dụng định dạng dd/mm/yyyy")
		return
	}
	date = services.NormalizeDate(date)

	var room models.Room
	if err := config.DB.Where("room_id = ? AND company_id = ?", req.RoomID, companyID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Chỉ upsert bản ghi override thủ công, không đụng vào bản ghi của đặt phòng
	var override models.RoomAvailability
	err = config.DB.Where("company_id = ? AND room_id = ? AND date = ? AND reservation_id IS NULL",
		companyID, req.RoomID, date).First(&override).Error
	if err != nil {
		override = models.RoomAvailability{
			CompanyID:   companyID,
			RoomID:      req.RoomID,
			Date:        date,
			IsAvailable: true,
		}
	}

	if req.IsAvailable != nil {
		override.IsAvailable = *req.IsAvailable
	}
	override.CustomPrice = req.CustomPrice
	override.MinNights = req.MinNights
	override.BlockReason = req.BlockReason

	if err := config.DB.Save(&override).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateAvailabilityCache(companyID)
	response.Success(c, override)
}

// DeleteOverride xóa override, ngày trở về giá và trạng thái mặc định của phòng
func DeleteOverride(c *gin.Context) {
	companyID := getCompanyID(c)

	overrideID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	result := config.DB.Where("id = ? AND company_id = ? AND reservation_id IS NULL", overrideID, companyID).
		Delete(&models.RoomAvailability{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateAvailabilityCache(companyID)
	response.Success(c, nil)
}
