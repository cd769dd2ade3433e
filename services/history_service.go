package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"builder/constants"
	"builder/dto"
	"builder/errors"
	"builder/models"
	"builder/services/logger"

	"gorm.io/gorm"
)

// HistoryService quản lý version log của editor theo (company, entityType, entityId).
// Con trỏ vị trí hiện tại giữ trong bộ nhớ process, không bền qua restart
// và không chia sẻ giữa nhiều instance, caller không được coi vị trí undo/redo là bền.
type HistoryService struct {
	db        *gorm.DB
	logger    logger.Logger
	positions sync.Map // map[string]int
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{
		db:     db,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// HistoryKey tạo key định danh một chuỗi version
func HistoryKey(companyID uint, entityType string, entityID uint) string {
	return fmt.Sprintf("%d:%s:%d", companyID, entityType, entityID)
}

// SelectTrimVictims chọn các bản ghi non-checkpoint cần xóa, giữ lại keep bản mới nhất.
// Checkpoint không bao giờ bị trim. entries phải được sắp theo version giảm dần.
func SelectTrimVictims(entries []models.EditorHistory, keep int) []uint {
	var victims []uint
	kept := 0
	for _, e := range entries {
		if e.IsCheckpoint {
			continue
		}
		if kept < keep {
			kept++
			continue
		}
		victims = append(victims, e.ID)
	}
	return victims
}

// ClampUndo trả về version đích khi undo, 0 nghĩa là đang ở biên không lùi được
func ClampUndo(current int) int {
	if current <= 1 {
		return 0
	}
	return current - 1
}

// ClampRedo trả về version đích khi redo, 0 nghĩa là đang ở biên không tiến được
func ClampRedo(current, max int) int {
	if current >= max {
		return 0
	}
	return current + 1
}

func (s *HistoryService) maxVersion(companyID uint, entityType string, entityID uint) (int, error) {
	var max int
	err := s.db.Model(&models.EditorHistory{}).
		Where("company_id = ? AND entity_type = ? AND entity_id = ?", companyID, entityType, entityID).
		Select("COALESCE(MAX(version), 0)").Scan(&max).Error
	return max, err
}

// SaveHistory lưu một version mới, version = max hiện tại + 1.
// Bản ghi non-checkpoint có hạn 30 ngày, sau khi lưu chạy trim giữ tối đa 50 bản.
func (s *HistoryService) SaveHistory(companyID uint, userID uint, req dto.SaveHistoryRequest) (*models.EditorHistory, error) {
	max, err := s.maxVersion(companyID, req.EntityType, req.EntityID)
	if err != nil {
		return nil, err
	}

	entry := &models.EditorHistory{
		CompanyID:    companyID,
		EntityType:   req.EntityType,
		EntityID:     req.EntityID,
		Version:      max + 1,
		State:        []byte(req.State),
		Description:  req.Description,
		IsCheckpoint: req.IsCheckpoint,
		CreatedBy:    userID,
	}
	if !req.IsCheckpoint {
		expires := time.Now().UTC().AddDate(0, 0, constants.HistoryExpireDays)
		entry.ExpiresAt = &expires
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	// Lưu mới thì con trỏ nhảy về version mới nhất
	s.positions.Store(HistoryKey(companyID, req.EntityType, req.EntityID), entry.Version)

	if err := s.Trim(companyID, req.EntityType, req.EntityID); err != nil {
		s.logger.Error("Lỗi khi trim history %s: %v", HistoryKey(companyID, req.EntityType, req.EntityID), err)
	}

	return entry, nil
}

// Trim giữ lại tối đa HistoryMaxEntries bản ghi non-checkpoint mới nhất của một key
func (s *HistoryService) Trim(companyID uint, entityType string, entityID uint) error {
	var entries []models.EditorHistory
	if err := s.db.Where("company_id = ? AND entity_type = ? AND entity_id = ?", companyID, entityType, entityID).
		Order("version DESC").Find(&entries).Error; err != nil {
		return err
	}

	victims := SelectTrimVictims(entries, constants.HistoryMaxEntries)
	if len(victims) == 0 {
		return nil
	}
	return s.db.Delete(&models.EditorHistory{}, victims).Error
}

// currentPosition lấy vị trí hiện tại của key, mặc định là version mới nhất
func (s *HistoryService) currentPosition(key string, maxVersion int) int {
	if v, ok := s.positions.Load(key); ok {
		return v.(int)
	}
	return maxVersion
}

func (s *HistoryService) entryAt(companyID uint, entityType string, entityID uint, version int) (*models.EditorHistory, error) {
	var entry models.EditorHistory
	err := s.db.Where("company_id = ? AND entity_type = ? AND entity_id = ? AND version = ?",
		companyID, entityType, entityID, version).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Undo lùi con trỏ một version trong [1, max], ở biên thì trả về Entry nil
func (s *HistoryService) Undo(companyID uint, entityType string, entityID uint) (dto.UndoRedoResponse, error) {
	max, err := s.maxVersion(companyID, entityType, entityID)
	if err != nil {
		return dto.UndoRedoResponse{}, err
	}

	key := HistoryKey(companyID, entityType, entityID)
	current := s.currentPosition(key, max)
	result := dto.UndoRedoResponse{CurrentVersion: current, MaxVersion: max}

	target := ClampUndo(current)
	if target == 0 {
		return result, nil
	}

	entry, err := s.entryAt(companyID, entityType, entityID, target)
	if err != nil {
		return result, errors.NewAppError(errors.ErrCodeVersionNotFound, "Không tìm thấy version", err)
	}

	if err := s.restoreState(entry); err != nil {
		return result, err
	}

	s.positions.Store(key, target)
	result.CurrentVersion = target
	result.Entry = toHistoryEntryResponse(entry)
	return result, nil
}

// Redo tiến con trỏ một version trong [1, max], ở biên thì trả về Entry nil
func (s *HistoryService) Redo(companyID uint, entityType string, entityID uint) (dto.UndoRedoResponse, error) {
	max, err := s.maxVersion(companyID, entityType, entityID)
	if err != nil {
		return dto.UndoRedoResponse{}, err
	}

	key := HistoryKey(companyID, entityType, entityID)
	current := s.currentPosition(key, max)
	result := dto.UndoRedoResponse{CurrentVersion: current, MaxVersion: max}

	target := ClampRedo(current, max)
	if target == 0 {
		return result, nil
	}

	entry, err := s.entryAt(companyID, entityType, entityID, target)
	if err != nil {
		return result, errors.NewAppError(errors.ErrCodeVersionNotFound, "Không tìm thấy version", err)
	}

	if err := s.restoreState(entry); err != nil {
		return result, err
	}

	s.positions.Store(key, target)
	result.CurrentVersion = target
	result.Entry = toHistoryEntryResponse(entry)
	return result, nil
}

// RestoreVersion nhảy thẳng con trỏ đến một version cụ thể
func (s *HistoryService) RestoreVersion(companyID uint, entityType string, entityID uint, version int) (*models.EditorHistory, error) {
	max, err := s.maxVersion(companyID, entityType, entityID)
	if err != nil {
		return nil, err
	}
	if version < 1 || version > max {
		return nil, errors.NewAppError(errors.ErrCodeVersionNotFound, "Version nằm ngoài phạm vi", nil)
	}

	entry, err := s.entryAt(companyID, entityType, entityID, version)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeVersionNotFound, "Không tìm thấy version", err)
	}

	if err := s.restoreState(entry); err != nil {
		return nil, err
	}

	s.positions.Store(HistoryKey(companyID, entityType, entityID), version)
	return entry, nil
}

// restoreState áp state JSON của version lên entity tương ứng
func (s *HistoryService) restoreState(entry *models.EditorHistory) error {
	switch entry.EntityType {
	case constants.EntityTypePage:
		var state struct {
			Title    string `json:"title"`
			SeoTitle string `json:"seoTitle"`
			SeoDesc  string `json:"seoDesc"`
		}
		if err := json.Unmarshal(entry.State, &state); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "State của page không hợp lệ", err)
		}
		return s.db.Model(&models.Page{}).
			Where("company_id = ? AND id = ?", entry.CompanyID, entry.EntityID).
			Updates(map[string]interface{}{
				"title":     state.Title,
				"seo_title": state.SeoTitle,
				"seo_desc":  state.SeoDesc,
			}).Error
	case constants.EntityTypeSection:
		return s.db.Model(&models.Section{}).
			Where("company_id = ? AND id = ?", entry.CompanyID, entry.EntityID).
			Update("content", entry.State).Error
	case constants.EntityTypeTheme:
		return s.db.Model(&models.ThemeSetting{}).
			Where("company_id = ? AND id = ?", entry.CompanyID, entry.EntityID).
			Update("config", entry.State).Error
	default:
		return errors.NewAppError(errors.ErrCodeInvalidOperation,
			fmt.Sprintf("Không hỗ trợ restore cho entity type: %s", entry.EntityType), nil)
	}
}

// GetHistory liệt kê version của một entity theo version giảm dần
func (s *HistoryService) GetHistory(companyID uint, entityType string, entityID uint, limit int) ([]dto.HistoryEntryResponse, error) {
	if limit <= 0 {
		limit = constants.HistoryMaxEntries
	}

	var entries []models.EditorHistory
	if err := s.db.Where("company_id = ? AND entity_type = ? AND entity_id = ?", companyID, entityType, entityID).
		Order("version DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}

	responses := make([]dto.HistoryEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *toHistoryEntryResponse(&entries[i]))
	}
	return responses, nil
}

// CleanupExpired xóa các bản ghi non-checkpoint đã quá hạn, chạy định kỳ bằng cron
func (s *HistoryService) CleanupExpired() (int64, error) {
	result := s.db.Where("is_checkpoint = false AND expires_at IS NOT NULL AND expires_at < ?", time.Now().UTC()).
		Delete(&models.EditorHistory{})
	return result.RowsAffected, result.Error
}

func toHistoryEntryResponse(entry *models.EditorHistory) *dto.HistoryEntryResponse {
	return &dto.HistoryEntryResponse{
		ID:           entry.ID,
		EntityType:   entry.EntityType,
		EntityID:     entry.EntityID,
		Version:      entry.Version,
		State:        []byte(entry.State),
		Description:  entry.Description,
		IsCheckpoint: entry.IsCheckpoint,
		ExpiresAt:    entry.ExpiresAt,
		CreatedAt:    entry.CreatedAt,
	}
}
