package commands

import (
	"fmt"

	"builder/models"

	"gorm.io/gorm"
)

// OrderCommand định nghĩa interface cho các command
type OrderCommand interface {
	Execute() error
}

// CreateOrderCommand tạo order kèm items và trừ tồn kho trong một transaction
type CreateOrderCommand struct {
	order *models.Order
	db    *gorm.DB
}

func NewCreateOrderCommand(order *models.Order, db *gorm.DB) *CreateOrderCommand {
	return &CreateOrderCommand{
		order: order,
		db:    db,
	}
}

func (c *CreateOrderCommand) Execute() error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range c.order.Items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND company_id = ? AND stock >= ?", item.ProductID, c.order.CompanyID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("sản phẩm %d không đủ tồn kho", item.ProductID)
			}
		}
		return tx.Create(c.order).Error
	})
}

// UpdateOrderCommand command để cập nhật order
type UpdateOrderCommand struct {
	order *models.Order
	db    *gorm.DB
}

func NewUpdateOrderCommand(order *models.Order, db *gorm.DB) *UpdateOrderCommand {
	return &UpdateOrderCommand{
		order: order,
		db:    db,
	}
}

func (c *UpdateOrderCommand) Execute() error {
	return c.db.Save(c.order).Error
}

// CancelOrderCommand hủy order và hoàn lại tồn kho
type CancelOrderCommand struct {
	order *models.Order
	db    *gorm.DB
}

func NewCancelOrderCommand(order *models.Order, db *gorm.DB) *CancelOrderCommand {
	return &CancelOrderCommand{
		order: order,
		db:    db,
	}
}

func (c *CancelOrderCommand) Execute() error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range c.order.Items {
			if err := tx.Model(&models.Product{}).
				Where("id = ? AND company_id = ?", item.ProductID, c.order.CompanyID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}
		return tx.Save(c.order).Error
	})
}
