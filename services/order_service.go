package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/permissions"
	"backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, userRepo *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// CreateFromCart turns the caller's cart into an order. Read cart,
// create order, snapshot the lines, clear the cart — all inside one
// transaction so a concurrent second placement sees all or nothing.
func (s *OrderService) CreateFromCart(userID uint) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListByUser(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var total int64
		for _, l := range lines {
			total += l.UnitPrice * int64(l.Quantity)
		}

		order := &entity.Order{
			UserID: userID,
			Status: entity.StatusPlaced,
			Total:  total,
			Date:   time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, oi)
		}

		if err := s.CartRepo.ClearByUser(tx, userID); err != nil {
			return err
		}

		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List scopes visibility by role: Customers see their own orders,
// Delivery Crew the ones assigned to them, Managers everything, anyone
// else nothing. Customer membership wins for multi-role users.
func (s *OrderService) List(userID uint, roles permissions.RoleSet, search, ordering string, page, limit int) ([]entity.Order, int64, error) {
	f := repository.ListFilter{
		Search:   search,
		Ordering: ordering,
		Page:     page,
		Limit:    limit,
	}
	switch {
	case permissions.IsCustomer(roles):
		f.OwnerID = &userID
	case permissions.IsDeliveryCrew(roles):
		f.CrewID = &userID
	case permissions.IsManager(roles):
		// unrestricted
	default:
		return []entity.Order{}, 0, nil
	}
	return s.Repo.List(f)
}

// DetailView carries the role-shaped retrieval result: Managers get the
// whole order, everyone else only the line items.
type DetailView struct {
	Order *entity.Order
	Items []entity.OrderItem
}

func (s *OrderService) Detail(userID uint, roles permissions.RoleSet, orderID uint) (*DetailView, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}

	if permissions.IsCustomer(roles) && order.UserID != userID {
		return nil, ErrForbidden
	}

	items, err := s.Repo.GetOrderItems(order.ID)
	if err != nil {
		return nil, err
	}
	if permissions.IsManager(roles) {
		order.OrderItems = items
		return &DetailView{Order: order, Items: items}, nil
	}
	return &DetailView{Items: items}, nil
}

// ManagerUpdateIn holds the mutable order fields; nil means untouched.
type ManagerUpdateIn struct {
	DeliveryCrewID *uint   `json:"deliveryCrewId"`
	Status         *string `json:"status"`
	Total          *int64  `json:"total"`
}

// ManagerUpdate applies a partial or full update. The status value is
// deliberately not checked against the PLACED/DELIVERED domain.
func (s *OrderService) ManagerUpdate(orderID uint, in *ManagerUpdateIn) (*entity.Order, error) {
	if _, err := s.getOrder(orderID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.DeliveryCrewID != nil {
		if _, err := s.UserRepo.FindByID(*in.DeliveryCrewID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		fields["delivery_crew_id"] = *in.DeliveryCrewID
	}
	if in.Status != nil {
		fields["status"] = *in.Status
	}
	if in.Total != nil {
		fields["total"] = *in.Total
	}

	if len(fields) > 0 {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Repo.UpdateFields(tx, orderID, fields)
		})
		if err != nil {
			return nil, err
		}
	}
	return s.getOrder(orderID)
}

// CrewUpdateStatus is the Delivery Crew path: only the status may
// change. Key-level enforcement happens in the controller, which
// rejects bodies carrying anything but "status".
func (s *OrderService) CrewUpdateStatus(crewID, orderID uint, status string) (*entity.Order, error) {
	if _, err := s.getOrder(orderID); err != nil {
		return nil, err
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateFields(tx, orderID, map[string]any{"status": status})
	})
	if err != nil {
		return nil, err
	}
	return s.getOrder(orderID)
}

func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.getOrder(orderID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, orderID)
	})
}

func (s *OrderService) getOrder(orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}
