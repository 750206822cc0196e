package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

// ListFilter narrows the listing to one owner or one assigned crew
// member. Both nil means no ownership restriction (Manager view).
type ListFilter struct {
	OwnerID  *uint
	CrewID   *uint
	Search   string
	Ordering string
	Page     int
	Limit    int
}

var orderOrderings = map[string]string{
	"status": "orders.status",
	"total":  "orders.total",
	"date":   "orders.date",
}

// List pages through orders, matching search against the owner's
// username, the assigned crew's username, or the status.
func (r *OrderRepository) List(f ListFilter) ([]entity.Order, int64, error) {
	page := f.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * f.Limit

	q := r.DB.Model(&entity.Order{}).
		Joins("LEFT JOIN users owner ON owner.id = orders.user_id").
		Joins("LEFT JOIN users crew ON crew.id = orders.delivery_crew_id")

	if f.OwnerID != nil {
		q = q.Where("orders.user_id = ?", *f.OwnerID)
	}
	if f.CrewID != nil {
		q = q.Where("orders.delivery_crew_id = ?", *f.CrewID)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("owner.username LIKE ? OR crew.username LIKE ? OR orders.status LIKE ?",
			like, like, like)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Session(&gorm.Session{}).
		Order(orderClause(f.Ordering, orderOrderings, "-orders.date")).
		Limit(f.Limit).Offset(offset).
		Preload("OrderItems").
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) UpdateFields(tx *gorm.DB, orderID uint, fields map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

// Delete removes the order together with its item snapshots.
func (r *OrderRepository) Delete(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}
