package controllers

import (
	"strconv"

	"builder/constants"
	"builder/dto"
	"builder/models"
	"builder/response"
	"builder/services"
	"builder/utils"
	"builder/validator"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EditorController giữ một HistoryService duy nhất cho cả process,
// con trỏ undo/redo nằm trong service nên không được tạo lại theo từng request
type EditorController struct {
	DB      *gorm.DB
	Melody  *melody.Melody
	History *services.HistoryService
}

func NewEditorController(db *gorm.DB, m *melody.Melody) EditorController {
	return EditorController{
		DB:      db,
		Melody:  m,
		History: services.NewHistoryService(db),
	}
}

func (e EditorController) broadcast(c *gin.Context, event, entityType string, entityID uint, version int) {
	sessionID, _ := c.Get("sessionId")
	sessionStr, _ := sessionID.(string)
	services.BroadcastEditorEvent(e.Melody, getCompanyID(c), dto.EditorEvent{
		Event:      event,
		EntityType: entityType,
		EntityID:   entityID,
		Version:    version,
		SessionID:  sessionStr,
	})
}

func toSectionResponse(section *models.Section) dto.SectionResponse {
	return dto.SectionResponse{
		ID:        section.ID,
		Type:      section.Type,
		Content:   []byte(section.Content),
		SortOrder: section.SortOrder,
	}
}

func toPageResponse(page *models.Page) dto.PageResponse {
	sections := make([]dto.SectionResponse, 0, len(page.Sections))
	for i := range page.Sections {
		sections = append(sections, toSectionResponse(&page.Sections[i]))
	}
	return dto.PageResponse{
		ID:        page.ID,
		Title:     page.Title,
		Slug:      page.Slug,
		Status:    page.Status,
		IsHome:    page.IsHome,
		SeoTitle:  page.SeoTitle,
		SeoDesc:   page.SeoDesc,
		Sections:  sections,
		CreatedAt: page.CreatedAt,
		UpdatedAt: page.UpdatedAt,
	}
}

// GetPages trả về danh sách trang của company
func (e EditorController) GetPages(c *gin.Context) {
	companyID := getCompanyID(c)

	var pages []models.Page
	if err := e.DB.Where("company_id = ?", companyID).Order("created_at ASC").Find(&pages).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.PageResponse, 0, len(pages))
	for i := range pages {
		result = append(result, toPageResponse(&pages[i]))
	}

	response.SuccessWithTotal(c, result, len(result))
}

// GetPageDetail trả về trang kèm các section theo thứ tự
func (e EditorController) GetPageDetail(c *gin.Context) {
	companyID := getCompanyID(c)

	pageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var page models.Page
	if err := e.DB.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC")
	}).Where("company_id = ?", companyID).First(&page, pageID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toPageResponse(&page))
}

// CreatePage tạo trang mới, slug duy nhất trong company
func (e EditorController) CreatePage(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidatePage(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	var count int64
	e.DB.Model(&models.Page{}).Where("company_id = ? AND slug = ?", companyID, slug).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Slug đã được sử dụng")
		return
	}

	page := models.Page{
		CompanyID: companyID,
		Title:     req.Title,
		Slug:      slug,
		Status:    constants.PageStatusDraft,
		IsHome:    req.IsHome,
		SeoTitle:  req.SeoTitle,
		SeoDesc:   req.SeoDesc,
	}

	err := e.DB.Transaction(func(tx *gorm.DB) error {
		// Mỗi company chỉ có một trang chủ
		if req.IsHome {
			if err := tx.Model(&models.Page{}).Where("company_id = ?", companyID).
				Update("is_home", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&page).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	e.broadcast(c, "page_created", constants.EntityTypePage, page.ID, 0)
	response.Success(c, toPageResponse(&page))
}

// UpdatePage cập nhật thông tin trang
func (e EditorController) UpdatePage(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidatePage(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var page models.Page
	if err := e.DB.Where("id = ? AND company_id = ?", req.ID, companyID).First(&page).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Slug != "" && req.Slug != page.Slug {
		var count int64
		e.DB.Model(&models.Page{}).Where("company_id = ? AND slug = ? AND id <> ?", companyID, req.Slug, page.ID).Count(&count)
		if count > 0 {
			response.BadRequest(c, "Slug đã được sử dụng")
			return
		}
		page.Slug = req.Slug
	}

	page.Title = req.Title
	page.SeoTitle = req.SeoTitle
	page.SeoDesc = req.SeoDesc

	err := e.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsHome && !page.IsHome {
			if err := tx.Model(&models.Page{}).Where("company_id = ?", companyID).
				Update("is_home", false).Error; err != nil {
				return err
			}
			page.IsHome = true
		}
		return tx.Save(&page).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	e.broadcast(c, "page_updated", constants.EntityTypePage, page.ID, 0)
	response.Success(c, toPageResponse(&page))
}

// ChangePageStatus xuất bản, gỡ xuất bản hoặc lưu trữ trang
func (e EditorController) ChangePageStatus(c *gin.Context) {
	companyID := getCompanyID(c)

	var req struct {
		PageID uint `json:"pageId" binding:"required"`
		Status int  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Status < constants.PageStatusDraft || req.Status > constants.PageStatusArchived {
		response.BadRequest(c, "Trạng thái trang không hợp lệ")
		return
	}

	var page models.Page
	if err := e.DB.Where("id = ? AND company_id = ?", req.PageID, companyID).First(&page).Error; err != nil {
		response.NotFound(c)
		return
	}

	page.Status = req.Status
	if err := e.DB.Save(&page).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.broadcast(c, "page_status_changed", constants.EntityTypePage, page.ID, 0)
	response.Success(c, toPageResponse(&page))
}

// DeletePage xóa trang kèm toàn bộ section và lịch sử chỉnh sửa
func (e EditorController) DeletePage(c *gin.Context) {
	companyID := getCompanyID(c)

	pageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var page models.Page
	if err := e.DB.Where("id = ? AND company_id = ?", pageID, companyID).First(&page).Error; err != nil {
		response.NotFound(c)
		return
	}

	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ? AND page_id = ?", companyID, page.ID).
			Delete(&models.Section{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ? AND entity_type = ? AND entity_id = ?",
			companyID, constants.EntityTypePage, page.ID).
			Delete(&models.EditorHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&page).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	e.broadcast(c, "page_deleted", constants.EntityTypePage, page.ID, 0)
	response.Success(c, nil)
}

// CreateSection thêm section vào cuối trang
func (e EditorController) CreateSection(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var page models.Page
	if err := e.DB.Where("id = ? AND company_id = ?", req.PageID, companyID).First(&page).Error; err != nil {
		response.NotFound(c)
		return
	}

	var maxOrder int
	e.DB.Model(&models.Section{}).Where("company_id = ? AND page_id = ?", companyID, page.ID).
		Select("COALESCE(MAX(sort_order), -1)").Scan(&maxOrder)

	section := models.Section{
		CompanyID: companyID,
		PageID:    page.ID,
		Type:      req.Type,
		Content:   datatypes.JSON(req.Content),
		SortOrder: maxOrder + 1,
	}
	if err := e.DB.Create(&section).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.broadcast(c, "section_created", constants.EntityTypeSection, section.ID, 0)
	response.Success(c, toSectionResponse(&section))
}

// UpdateSection cập nhật nội dung section
func (e EditorController) UpdateSection(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var section models.Section
	if err := e.DB.Where("id = ? AND company_id = ?", req.ID, companyID).First(&section).Error; err != nil {
		response.NotFound(c)
		return
	}

	section.Type = req.Type
	if req.Content != nil {
		section.Content = datatypes.JSON(req.Content)
	}

	if err := e.DB.Save(&section).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.broadcast(c, "section_updated", constants.EntityTypeSection, section.ID, 0)
	response.Success(c, toSectionResponse(&section))
}

// DeleteSection xóa section khỏi trang
func (e EditorController) DeleteSection(c *gin.Context) {
	companyID := getCompanyID(c)

	sectionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	result := e.DB.Where("id = ? AND company_id = ?", sectionID, companyID).Delete(&models.Section{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	e.broadcast(c, "section_deleted", constants.EntityTypeSection, uint(sectionID), 0)
	response.Success(c, nil)
}

// ReorderSections sắp xếp lại thứ tự section theo danh sách ID gửi lên
func (e EditorController) ReorderSections(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var count int64
	e.DB.Model(&models.Section{}).Where("company_id = ? AND page_id = ?", companyID, req.PageID).Count(&count)
	if int(count) != len(req.SectionIDs) {
		response.BadRequest(c, "Danh sách section không khớp với trang")
		return
	}

	err := e.DB.Transaction(func(tx *gorm.DB) error {
		for order, sectionID := range req.SectionIDs {
			result := tx.Model(&models.Section{}).
				Where("id = ? AND company_id = ? AND page_id = ?", sectionID, companyID, req.PageID).
				Update("sort_order", order)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		response.BadRequest(c, "Danh sách section không khớp với trang")
		return
	}

	e.broadcast(c, "sections_reordered", constants.EntityTypePage, req.PageID, 0)
	response.Success(c, nil)
}

// GetTheme trả về cấu hình theme của company
func (e EditorController) GetTheme(c *gin.Context) {
	companyID := getCompanyID(c)

	var theme models.ThemeSetting
	if err := e.DB.Where("company_id = ?", companyID).First(&theme).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.ThemeResponse{
		ID:        theme.ID,
		Name:      theme.Name,
		Config:    []byte(theme.Config),
		Status:    theme.Status,
		UpdatedAt: theme.UpdatedAt,
	})
}

// UpdateTheme cập nhật theme, tạo mới nếu company chưa có
func (e EditorController) UpdateTheme(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var theme models.ThemeSetting
	err := e.DB.Where("company_id = ?", companyID).First(&theme).Error
	if err != nil {
		theme = models.ThemeSetting{
			CompanyID: companyID,
			Status:    constants.ThemeStatusDraft,
		}
	}

	if req.Name != "" {
		theme.Name = req.Name
	}
	theme.Config = datatypes.JSON(req.Config)

	if err := e.DB.Save(&theme).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.broadcast(c, "theme_updated", constants.EntityTypeTheme, theme.ID, 0)
	response.Success(c, dto.ThemeResponse{
		ID:        theme.ID,
		Name:      theme.Name,
		Config:    []byte(theme.Config),
		Status:    theme.Status,
		UpdatedAt: theme.UpdatedAt,
	})
}

// SaveHistory lưu một snapshot vào lịch sử chỉnh sửa
func (e EditorController) SaveHistory(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.SaveHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID := uint(0)
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(uint); ok {
			userID = id
		}
	}

	entry, err := e.History.SaveHistory(companyID, userID, req)
	if err != nil {
		respondAppError(c, err)
		return
	}

	e.broadcast(c, "history_saved", entry.EntityType, entry.EntityID, entry.Version)
	response.Success(c, gin.H{
		"id":           entry.ID,
		"version":      entry.Version,
		"isCheckpoint": entry.IsCheckpoint,
	})
}

// GetHistory trả về lịch sử chỉnh sửa của một entity, mới nhất trước
func (e EditorController) GetHistory(c *gin.Context) {
	companyID := getCompanyID(c)

	entityType := c.Query("entityType")
	entityID, err := strconv.Atoi(c.Query("entityId"))
	if entityType == "" || err != nil {
		response.BadRequest(c, "entityType và entityId là bắt buộc")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := e.History.GetHistory(companyID, entityType, uint(entityID), limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, entries, len(entries))
}

// Undo lùi về version trước đó, ở version đầu thì không làm gì
func (e EditorController) Undo(c *gin.Context) {
	e.moveHistory(c, "undo")
}

// Redo tiến tới version kế tiếp, ở version mới nhất thì không làm gì
func (e EditorController) Redo(c *gin.Context) {
	e.moveHistory(c, "redo")
}

func (e EditorController) moveHistory(c *gin.Context, direction string) {
	companyID := getCompanyID(c)

	var req dto.UndoRedoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var result dto.UndoRedoResponse
	var err error
	if direction == "undo" {
		result, err = e.History.Undo(companyID, req.EntityType, req.EntityID)
	} else {
		result, err = e.History.Redo(companyID, req.EntityType, req.EntityID)
	}
	if err != nil {
		respondAppError(c, err)
		return
	}

	if result.Entry != nil {
		e.broadcast(c, direction, req.EntityType, req.EntityID, result.Entry.Version)
	}
	response.Success(c, result)
}

// RestoreVersion khôi phục entity về một version cụ thể trong lịch sử
func (e EditorController) RestoreVersion(c *gin.Context) {
	companyID := getCompanyID(c)

	var req struct {
		EntityType string `json:"entityType" binding:"required"`
		EntityID   uint   `json:"entityId" binding:"required"`
		Version    int    `json:"version" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := e.History.RestoreVersion(companyID, req.EntityType, req.EntityID, req.Version)
	if err != nil {
		respondAppError(c, err)
		return
	}

	e.broadcast(c, "version_restored", req.EntityType, req.EntityID, entry.Version)
	response.Success(c, gin.H{
		"version": entry.Version,
	})
}
