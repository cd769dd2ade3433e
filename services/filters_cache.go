package services

import (
	"context"
	"time"

	"builder/dto"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.SearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.SearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.SearchFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// Merge bộ lọc cũ với bộ lọc mới của cùng session
func MergeFilters(old *dto.SearchFilters, new *dto.SearchFilters) *dto.SearchFilters {
	new.Keyword = orString(new.Keyword, old.Keyword)
	new.CategoryID = orUintPointer(new.CategoryID, old.CategoryID)
	new.Status = orIntPointer(new.Status, old.Status)

	// Xử lý case người dùng nhập lại MaxPrice và MinPrice
	if new.MinPrice != nil && old.MaxPrice != nil && *new.MinPrice > *old.MaxPrice {
		new.MaxPrice = nil
	} else {
		new.MaxPrice = orIntPointer(new.MaxPrice, old.MaxPrice)
	}

	if new.MaxPrice != nil && old.MinPrice != nil && *new.MaxPrice < *old.MinPrice {
		new.MinPrice = nil
	} else {
		new.MinPrice = orIntPointer(new.MinPrice, old.MinPrice)
	}
	return new
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

func orUintPointer(newVal, oldVal *uint) *uint {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
