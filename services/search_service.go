package services

import (
	"sort"
	"strings"

	"builder/dto"
	"builder/models"
	"builder/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// SearchService tìm kiếm mờ sản phẩm theo tên, bỏ dấu trước khi so khớp
type SearchService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{
		db:     db,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// NormalizeKeyword bỏ dấu và chuyển về chữ thường để so khớp
func NormalizeKeyword(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// MatchScore tính độ tương đồng giữa hai chuỗi theo khoảng cách levenshtein,
// 1 là trùng hoàn toàn, 0 là khác hoàn toàn
func MatchScore(a, b string) float64 {
	a = NormalizeKeyword(a)
	b = NormalizeKeyword(b)
	if a == b {
		return 1
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	return 1 - float64(distance)/float64(maxLen)
}

// SearchProducts tìm sản phẩm theo keyword, ưu tiên khớp chứa chuỗi,
// sau đó xếp theo điểm tương đồng, kèm gợi ý tên gần đúng
func (s *SearchService) SearchProducts(companyID uint, keyword string, limit int) (dto.ProductSearchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	result := dto.ProductSearchResult{Products: []dto.ProductResponse{}}

	var products []models.Product
	if err := s.db.Where("company_id = ? AND status = 1", companyID).Find(&products).Error; err != nil {
		return result, err
	}
	if len(products) == 0 {
		return result, nil
	}

	normalized := NormalizeKeyword(keyword)

	type scored struct {
		product models.Product
		score   float64
	}
	var matches []scored
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
		name := NormalizeKeyword(p.Name)
		if normalized == "" || strings.Contains(name, normalized) {
			matches = append(matches, scored{product: p, score: 1})
			continue
		}
		if score := MatchScore(p.Name, keyword); score >= 0.5 {
			matches = append(matches, scored{product: p, score: score})
		}
	}

	// Sắp theo điểm giảm dần, giữ ổn định theo thứ tự load
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	for i, m := range matches {
		if i >= limit {
			break
		}
		result.Products = append(result.Products, dto.ProductResponse{
			ID:          m.product.ID,
			Name:        m.product.Name,
			Slug:        m.product.Slug,
			Price:       m.product.Price,
			SalePrice:   m.product.SalePrice,
			Stock:       m.product.Stock,
			Description: m.product.Description,
			Img:         m.product.Img,
			Status:      m.product.Status,
			CreatedAt:   m.product.CreatedAt,
			UpdatedAt:   m.product.UpdatedAt,
		})
	}

	// Không có kết quả thì trả về gợi ý tên gần nhất
	if len(result.Products) == 0 && normalized != "" {
		bagSizes := []int{2, 3}
		cm := closestmatch.New(names, bagSizes)
		result.Suggestions = cm.ClosestN(keyword, 3)
	}

	return result, nil
}
