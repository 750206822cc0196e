package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/entity"
	"backend/middlewares"
	"backend/permissions"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew, entity.GroupCustomer} {
		require.NoError(t, db.Create(&entity.Group{Name: name}).Error)
	}
	return db
}

// asUser replaces the JWT middleware: it injects an identity and a
// frozen role set straight into the context.
func asUser(userID uint, rs permissions.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("roles", rs)
		c.Next()
	}
}

type fixture struct {
	db       *gorm.DB
	orders   *services.OrderService
	orderID  uint
	ownerID  uint
	crewID   uint
}

func newOrderFixture(t *testing.T) *fixture {
	t.Helper()
	db := setupDB(t)

	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	userRepo := repository.NewUserRepository(db)
	carts := services.NewCartService(db, cartRepo, menuRepo)
	orders := services.NewOrderService(db, repository.NewOrderRepository(db), cartRepo, userRepo)

	owner := &entity.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(owner).Error)
	crew := &entity.User{Username: "dave", Email: "dave@example.com", Password: "x"}
	require.NoError(t, db.Create(crew).Error)

	item := &entity.MenuItem{Title: "Greek Salad", Price: 900}
	require.NoError(t, db.Create(item).Error)

	_, err := carts.Add(owner.ID, item.ID, 2)
	require.NoError(t, err)
	order, err := orders.CreateFromCart(owner.ID)
	require.NoError(t, err)

	return &fixture{db: db, orders: orders, orderID: order.ID, ownerID: owner.ID, crewID: crew.ID}
}

func updateRouter(fx *fixture, userID uint, rs permissions.RoleSet) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewOrderController(fx.orders)
	r.PATCH("/orders/:orderId",
		asUser(userID, rs),
		middlewares.Require(permissions.IsManagerOrDeliveryCrew),
		ctrl.Update,
	)
	return r
}

func doPatch(r *gin.Engine, orderID uint, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/orders/%d", orderID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCrewUpdateStatusOnly(t *testing.T) {
	fx := newOrderFixture(t)
	r := updateRouter(fx, fx.crewID, permissions.NewRoleSet(entity.GroupDeliveryCrew))

	// any field besides status is rejected
	w := doPatch(r, fx.orderID, `{"status":"DELIVERED","total":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "you can only update order status")

	w = doPatch(r, fx.orderID, `{"total":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// a status-only body succeeds and persists
	w = doPatch(r, fx.orderID, `{"status":"DELIVERED"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	order, err := fx.orders.Detail(0, permissions.NewRoleSet(entity.GroupManager), fx.orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, order.Order.Status)
	assert.Equal(t, int64(1800), order.Order.Total)
}

func TestCustomerCannotUpdateOrder(t *testing.T) {
	fx := newOrderFixture(t)
	r := updateRouter(fx, fx.ownerID, permissions.NewRoleSet(entity.GroupCustomer))

	w := doPatch(r, fx.orderID, `{"status":"DELIVERED"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestManagerUpdateAssignsCrew(t *testing.T) {
	fx := newOrderFixture(t)
	r := updateRouter(fx, 0, permissions.NewRoleSet(entity.GroupManager))

	w := doPatch(r, fx.orderID, fmt.Sprintf(`{"deliveryCrewId":%d}`, fx.crewID))
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data entity.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Data.DeliveryCrewID)
	assert.Equal(t, fx.crewID, *body.Data.DeliveryCrewID)

	// unknown assignee maps to 404
	w = doPatch(r, fx.orderID, `{"deliveryCrewId":4242}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
