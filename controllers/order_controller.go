package controllers

import (
	"strconv"

	"builder/builders"
	"builder/commands"
	"builder/config"
	"builder/constants"
	"builder/dto"
	"builder/models"
	"builder/response"
	"builder/services"

	"github.com/gin-gonic/gin"
)

func toOrderResponse(order *models.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return dto.OrderResponse{
		ID:            order.ID,
		Code:          order.Code,
		Status:        order.Status,
		GuestName:     order.GuestName,
		GuestEmail:    order.GuestEmail,
		GuestPhone:    order.GuestPhone,
		ShippingAddr:  order.ShippingAddr,
		Note:          order.Note,
		SubTotal:      order.SubTotal,
		ShippingFee:   order.ShippingFee,
		DiscountPrice: order.DiscountPrice,
		TotalPrice:    order.TotalPrice,
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

// GetOrders trả về danh sách đơn hàng, có phân trang và lọc theo trạng thái
func GetOrders(c *gin.Context) {
	companyID := getCompanyID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	statusStr := c.Query("status")

	query := config.DB.Model(&models.Order{}).Where("company_id = ?", companyID)
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

	var orders []models.Order
	if err := query.Preload("Items").Preload("Items.Product").Order("created_at DESC").
		Offset(page * limit).Limit(limit).Find(&orders).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toOrderResponse(&orders[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, int(total))
}

// GetOrderDetail trả về chi tiết một đơn hàng
func GetOrderDetail(c *gin.Context) {
	companyID := getCompanyID(c)

	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").Preload("Items.Product").
		Where("company_id = ?", companyID).First(&order, orderID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toOrderResponse(&order))
}

// CreateOrder tạo đơn hàng mới, trừ tồn kho trong cùng transaction
func CreateOrder(c *gin.Context) {
	companyID := getCompanyID(c)

	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if len(req.Items) == 0 {
		response.BadRequest(c, "Đơn hàng phải có ít nhất một sản phẩm")
		return
	}

	// Lấy giá hiện tại của từng sản phẩm, ưu tiên giá khuyến mãi
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		if itemReq.Quantity <= 0 {
			response.BadRequest(c, "Số lượng sản phẩm phải lớn hơn 0")
			return
		}

		var product models.Product
		if err := config.DB.Where("id = ? AND company_id = ? AND status = ?",
			itemReq.ProductID, companyID, 1).First(&product).Error; err != nil {
			response.BadRequest(c, "Sản phẩm không tồn tại hoặc đã ngừng bán")
			return
		}

		price := product.Price
		if product.SalePrice != nil && *product.SalePrice > 0 && *product.SalePrice < price {
			price = *product.SalePrice
		}

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  itemReq.Quantity,
			Price:     price,
		})
	}

	order := builders.NewOrderBuilder().
		WithCompany(companyID).
		WithCustomer(req.CustomerID).
		WithGuestInfo(req.GuestName, req.GuestPhone, req.GuestEmail).
		WithShipping(req.ShippingAddr, 0).
		WithNote(req.Note).
		WithStatus(constants.OrderStatusPending).
		WithItems(items).
		Build()

	createCmd := commands.NewCreateOrderCommand(order, config.DB)
	if err := createCmd.Execute(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	whatsappService := services.NewWhatsAppService(config.DB)
	go whatsappService.SendOrderCreated(order)

	config.DB.Preload("Items").Preload("Items.Product").First(order, order.ID)
	response.Success(c, toOrderResponse(order))
}

// ChangeOrderStatus chuyển trạng thái đơn hàng theo state machine.
// Hủy đơn thì hoàn lại tồn kho.
func ChangeOrderStatus(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.ChangeOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").Where("company_id = ?", companyID).
		First(&order, req.OrderID).Error; err != nil {
		response.NotFound(c)
		return
	}

	state := models.GetOrderState(order.Status)
	var err error
	switch req.Action {
	case "confirm":
		err = state.Confirm(&order)
	case "complete":
		err = state.Complete(&order)
	case "cancel":
		err = state.Cancel(&order)
	default:
		response.BadRequest(c, "Hành động không hợp lệ: "+req.Action)
		return
	}
	if err != nil {
		response.BadRequest(c, "Không thể chuyển trạng thái đơn hàng")
		return
	}

	var cmd commands.OrderCommand
	if order.Status == constants.OrderStatusCancelled {
		cmd = commands.NewCancelOrderCommand(&order, config.DB)
	} else {
		cmd = commands.NewUpdateOrderCommand(&order, config.DB)
	}
	if err := cmd.Execute(); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toOrderResponse(&order))
}
