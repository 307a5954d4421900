package impl

import (
	"context"
	"log/slog"
	"time"

	"store/internal/domain/entity"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/repository"
	"store/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. Order creation copies
// the recipient fields off the chosen shipping address so later address
// edits never rewrite order history.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// Create places an order against one of the caller's shipping addresses.
// Address existence and ownership follow the same rules as the address
// usecase; product titles, images and prices are captured at order time.
func (srv *orderService) Create(ctx context.Context, ownerID uuid.UUID, actor string, input *usecase.CreateOrderInput) (*entity.Order, error) {
	var created *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		address, err := addressRepo.FindByID(ctx, input.AddressID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return errors.Wrap(domainerrors.ErrAddressNotFound, "shipping address does not exist")
			}

			return errors.Wrap(err, "failed to find shipping address")
		}
		if address.OwnerID != ownerID {
			return errors.Wrap(domainerrors.ErrAddressAccessDenied, "shipping address belongs to another account")
		}

		now := time.Now()
		order := &entity.Order{
			OwnerID:      ownerID,
			RecvName:     address.Name,
			RecvPhone:    address.Phone,
			RecvProvince: address.ProvinceName,
			RecvCity:     address.CityName,
			RecvArea:     address.AreaName,
			RecvAddress:  address.Detail,
			OrderedAt:    now,
		}
		order.StampCreate(actor, now)

		items := make([]entity.OrderItem, 0, len(input.Items))
		for _, line := range input.Items {
			product, err := productRepo.FindByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return errors.Wrap(domainerrors.ErrProductNotFound, "ordered product does not exist")
				}

				return errors.Wrap(err, "failed to find ordered product")
			}

			item := entity.OrderItem{
				ProductID: product.ID,
				Title:     product.Title,
				Image:     product.Image,
				Price:     product.Price,
				Num:       line.Num,
			}
			item.StampCreate(actor, now)
			items = append(items, item)

			order.TotalPrice += product.Price * int64(line.Num)
		}

		rows, err := orderRepo.InsertOrder(ctx, order)
		if err != nil {
			return errors.Wrap(err, "failed to insert order")
		}
		if rows != 1 {
			return errors.Wrapf(domainerrors.ErrOrderCreateFailed, "order insert affected %d rows", rows)
		}

		for i := range items {
			items[i].OrderID = order.ID

			rows, err := orderRepo.InsertOrderItem(ctx, &items[i])
			if err != nil {
				return errors.Wrap(err, "failed to insert order item")
			}
			if rows != 1 {
				return errors.Wrapf(domainerrors.ErrOrderCreateFailed, "order item insert affected %d rows", rows)
			}
		}
		order.Items = items

		created = order

		return nil
	})

	if err != nil {
		srv.logger.Warn("Create order failed", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create order transaction")
	}

	return created, nil
}

// ListByOwner returns the caller's orders, newest first.
func (srv *orderService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
