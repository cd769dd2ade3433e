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
	"builder/utils"

	"github.com/gin-gonic/gin"
)

func toProductResponse(product *models.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Price:       product.Price,
		SalePrice:   product.SalePrice,
		Stock:       product.Stock,
		Description: product.Description,
		Img:         product.Img,
		Status:      product.Status,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.Category != nil {
		resp.Category = &dto.CategoryShort{
			ID:   product.Category.ID,
			Name: product.Category.Name,
		}
	}
	return resp
}

func invalidateProductCache(companyID uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Printf("không thể kết nối Redis: %v", err)
		return
	}
	pattern := fmt.Sprintf("products:%d:*", companyID)
	if err := services.DeleteByPattern(config.Ctx, rdb, pattern); err != nil {
		log.Printf("Lỗi khi xóa cache sản phẩm: %v", err)
	}
}

// GetProducts trả về danh sách sản phẩm, có phân trang và lọc.
// Bộ lọc cuối cùng của session được lưu trong Redis để gộp với lần tìm sau.
func GetProducts(c *gin.Context) {
	companyID := getCompanyID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filters := &dto.SearchFilters{Keyword: c.Query("keyword")}
	if categoryStr := c.Query("categoryId"); categoryStr != "" {
		id, err := strconv.Atoi(categoryStr)
		if err != nil {
			response.BadRequest(c, "categoryId không hợp lệ")
			return
		}
		categoryID := uint(id)
		filters.CategoryID = &categoryID
	}
	if minStr := c.Query("minPrice"); minStr != "" {
		v, err := strconv.Atoi(minStr)
		if err != nil {
			response.BadRequest(c, "minPrice không hợp lệ")
			return
		}
		filters.MinPrice = &v
	}
	if maxStr := c.Query("maxPrice"); maxStr != "" {
		v, err := strconv.Atoi(maxStr)
		if err != nil {
			response.BadRequest(c, "maxPrice không hợp lệ")
			return
		}
		filters.MaxPrice = &v
	}
	if statusStr := c.Query("status"); statusStr != "" {
		v, err := strconv.Atoi(statusStr)
		if err != nil {
			response.BadRequest(c, "status không hợp lệ")
			return
		}
		filters.Status = &v
	}

	// Gộp với bộ lọc trước đó của cùng session
	if sessionID, ok := c.Get("sessionId"); ok {
		if rdb, err := config.ConnectRedis(); err == nil {
			key := fmt.Sprintf("%d:%v", companyID, sessionID)
			if prev, err := services.GetLastFilters(config.Ctx, rdb, key); err == nil && prev != nil && c.Query("merge") == "true" {
				filters = services.MergeFilters(prev, filters)
			}
			if err := services.SaveLastFilters(config.Ctx, rdb, key, filters); err != nil {
				log.Printf("Lỗi khi lưu bộ lọc: %v", err)
			}
		}
	}

	query := config.DB.Model(&models.Product{}).Where("company_id = ?", companyID)
	if filters.Keyword != "" {
		query = query.Where("name ILIKE ?", "%"+filters.Keyword+"%")
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	var total int64
	query.Count(&total)

	var products []models.Product
	if err := query.Preload("Category").Order("created_at DESC").
		Offset(page * limit).Limit(limit).Find(&products).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, int(total))
}

// SearchProducts tìm sản phẩm theo tên, khớp mờ không phân biệt dấu.
// Không có kết quả thì gợi ý các tên gần giống.
func SearchProducts(c *gin.Context) {
	companyID := getCompanyID(c)

	keyword := c.Query("keyword")
	if keyword == "" {
		response.BadRequest(c, "keyword là bắt buộc")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	searchService := services.NewSearchService(config.DB)
	result, err := searchService.SearchProducts(companyID, keyword, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, result)
}

// CreateProduct tạo sản phẩm mới
func CreateProduct(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	product := models.Product{
		CompanyID:   companyID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        slug,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		Stock:       req.Stock,
		Description: req.Description,
		Img:         req.Img,
		Status:      req.Status,
	}
	if err := product.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái sản phẩm không hợp lệ")
		return
	}

	if err := config.DB.Create(&product).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateProductCache(companyID)
	response.Success(c, toProductResponse(&product))
}

// UpdateProduct cập nhật sản phẩm
func UpdateProduct(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("id = ? AND company_id = ?", req.ID, companyID).First(&product).Error; err != nil {
		response.NotFound(c)
		return
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	if req.Slug != "" {
		product.Slug = req.Slug
	}
	product.Price = req.Price
	product.SalePrice = req.SalePrice
	product.Stock = req.Stock
	product.Description = req.Description
	if req.Img != nil {
		product.Img = req.Img
	}
	product.Status = req.Status
	if err := product.ValidateStatus(); err != nil {
		response.BadRequest(c, "Trạng thái sản phẩm không hợp lệ")
		return
	}

	if err := config.DB.Save(&product).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateProductCache(companyID)
	response.Success(c, toProductResponse(&product))
}

// DeleteProduct xóa sản phẩm theo ID
func DeleteProduct(c *gin.Context) {
	companyID := getCompanyID(c)

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	result := config.DB.Where("id = ? AND company_id = ?", productID, companyID).Delete(&models.Product{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	invalidateProductCache(companyID)
	response.Success(c, nil)
}

// GetCategories trả về danh mục sản phẩm, cache trong Redis
func GetCategories(c *gin.Context) {
	companyID := getCompanyID(c)

	cacheKey := fmt.Sprintf("products:%d:categories", companyID)

	var categories []models.ProductCategory
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &categories); err == nil && len(categories) > 0 {
			response.SuccessWithTotal(c, categories, len(categories))
			return
		}
	}

	if err := config.DB.Where("company_id = ?", companyID).
		Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		response.ServerError(c)
		return
	}

	if redisErr == nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, categories, 60*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu cache danh mục: %v", err)
		}
	}

	response.SuccessWithTotal(c, categories, len(categories))
}

// CreateCategory tạo danh mục sản phẩm mới
func CreateCategory(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	category := models.ProductCategory{
		CompanyID: companyID,
		Name:      req.Name,
		Slug:      slug,
		SortOrder: req.SortOrder,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateProductCache(companyID)
	response.Success(c, category)
}
