package postgres

import (
	"context"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// InsertOrder persists the order head only; item lines are inserted one by
// one so each write's row count can be checked.
func (repo *orderRepository) InsertOrder(ctx context.Context, order *entity.Order) (int64, error) {
	orderM := fromOrderDomain(order)
	orderM.Items = nil

	result := repo.db.WithContext(ctx).Create(orderM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return 0, domainerrors.NewDatabaseExecuteError(result.Error, "missing required order column")
		}

		return 0, errors.Wrap(result.Error, "failed to insert order")
	}

	order.ID = orderM.ID

	return result.RowsAffected, nil
}

// InsertOrderItem persists one item line.
func (repo *orderRepository) InsertOrderItem(ctx context.Context, item *entity.OrderItem) (int64, error) {
	itemM := fromOrderItemDomain(item)

	result := repo.db.WithContext(ctx).Create(itemM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return 0, domainerrors.NewDatabaseExecuteError(result.Error, "order item references missing order")
		}

		return 0, errors.Wrap(result.Error, "failed to insert order item")
	}

	item.ID = itemM.ID

	return result.RowsAffected, nil
}

// FindByOwner retrieves the owner's orders, newest first, item lines included.
func (repo *orderRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []*model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ?", ownerID).
		Order("ordered_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for _, orderM := range orderMs {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toOrderItemDomain(&data.Items[i]))
	}

	return &entity.Order{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		RecvName:     data.RecvName,
		RecvPhone:    data.RecvPhone,
		RecvProvince: data.RecvProvince,
		RecvCity:     data.RecvCity,
		RecvArea:     data.RecvArea,
		RecvAddress:  data.RecvAddress,
		TotalPrice:   data.TotalPrice,
		Status:       data.Status,
		OrderedAt:    data.OrderedAt,
		PaidAt:       data.PaidAt,
		Items:        items,
		Audit:        toAuditDomain(data.AuditColumns),
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, *fromOrderItemDomain(&data.Items[i]))
	}

	return &model.OrderModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		RecvName:     data.RecvName,
		RecvPhone:    data.RecvPhone,
		RecvProvince: data.RecvProvince,
		RecvCity:     data.RecvCity,
		RecvArea:     data.RecvArea,
		RecvAddress:  data.RecvAddress,
		TotalPrice:   data.TotalPrice,
		Status:       data.Status,
		OrderedAt:    data.OrderedAt,
		PaidAt:       data.PaidAt,
		Items:        items,
		AuditColumns: fromAuditDomain(data.Audit),
	}
}

func toOrderItemDomain(data *model.OrderItemModel) entity.OrderItem {
	return entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Title:     data.Title,
		Image:     data.Image,
		Price:     data.Price,
		Num:       data.Num,
		Audit:     toAuditDomain(data.AuditColumns),
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:           data.ID,
		OrderID:      data.OrderID,
		ProductID:    data.ProductID,
		Title:        data.Title,
		Image:        data.Image,
		Price:        data.Price,
		Num:          data.Num,
		AuditColumns: fromAuditDomain(data.Audit),
	}
}
