package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"lesson-booking/internal/domain/lesson"
	"lesson-booking/internal/domain/order"
	"lesson-booking/internal/infra"
	"lesson-booking/internal/pkg/clock"
	"lesson-booking/internal/pkg/config"
	"lesson-booking/internal/pkg/errs"
	"lesson-booking/internal/usecase/queries"
	"lesson-booking/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
)

type PlaceOrderParams struct {
	CustomerName  string
	CustomerPhone string
	Lines         []order.RawLine
}

type CreateLessonParams struct {
	Topic    string
	Location string
	Price    float64
	Space    int
}

type BookingCommands interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*queries.OrderView, error)
	CreateLesson(ctx context.Context, params CreateLessonParams) (*queries.LessonView, error)
	// SetLessonSpace overwrites remaining capacity without going through reservation.
	SetLessonSpace(ctx context.Context, lessonID string, space int) (*queries.LessonView, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.BookingConfig
}

func NewBookingCommands(uow shared.UnitOfWork, clock clock.Clock, cfg config.Config) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clock,
		cfg:   cfg.Booking,
	}
}

type orderPlacedPayload struct {
	OrderID       string       `json:"orderId"`
	CustomerName  string       `json:"customerName"`
	CustomerPhone string       `json:"customerPhone"`
	Lines         []order.Line `json:"lines"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func (b *bookingCommandsImpl) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*queries.OrderView, error) {
	lines := order.ValidLines(params.Lines)
	request := order.Aggregate(lines)
	if len(request) == 0 {
		return nil, errs.NewValidationError(order.ErrNoValidLines.Error())
	}

	ord, err := order.NewOrder(params.CustomerName, params.CustomerPhone, lines, b.clock.Now())
	if err != nil {
		return nil, errs.NewValidationError(err.Error())
	}

	lessonIDs := request.LessonIDs()

	snapshots, err := b.readLessons(ctx, lessonIDs)
	if err != nil {
		return nil, err
	}

	if err := checkAvailability(request, lessonIDs, snapshots); err != nil {
		return nil, err
	}

	if err := b.reserveAndPersist(ctx, ord, request, lessonIDs); err != nil {
		return nil, err
	}

	slog.Info("order placed", "order_id", ord.ID(), "lessons", len(lessonIDs), "lines", len(lines))

	return toOrderView(ord), nil
}

// readLessons is the only store call that may be retried, and only once.
func (b *bookingCommandsImpl) readLessons(ctx context.Context, ids []string) ([]shared.LessonSnapshot, error) {
	var snapshots []shared.LessonSnapshot
	attempt := 0

	operation := func() error {
		attempt++
		readCtx, cancel := context.WithTimeout(ctx, b.cfg.StoreTimeout)
		defer cancel()

		result, err := b.uow.CommandReads().LessonsByIDs(readCtx, ids)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			slog.Warn("lesson read failed", "attempt", attempt, "error", err.Error())
			return err
		}
		snapshots = result
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(b.cfg.RetryBackoff), uint64(b.cfg.ReadRetries)),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, errs.NewStoreError("read lessons", err)
	}
	return snapshots, nil
}

func checkAvailability(request order.Request, ids []string, snapshots []shared.LessonSnapshot) error {
	byID := make(map[string]shared.LessonSnapshot, len(snapshots))
	for _, s := range snapshots {
		byID[s.ID] = s
	}

	var missing []string
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return errs.NewNotFoundError("lesson", missing...)
	}

	for _, id := range ids {
		if requested, available := request[id], byID[id].Space; requested > available {
			return &errs.CapacityError{LessonID: id, Requested: requested, Available: available}
		}
	}
	return nil
}

// reserveAndPersist re-validates every lesson inside the write itself. The pre-check
// above only short-circuits the common case.
func (b *bookingCommandsImpl) reserveAndPersist(ctx context.Context, ord *order.Order, request order.Request, ids []string) error {
	writeCtx, cancel := context.WithTimeout(ctx, b.cfg.StoreTimeout)
	defer cancel()

	payload, err := json.Marshal(orderPlacedPayload{
		OrderID:       ord.ID(),
		CustomerName:  ord.CustomerName(),
		CustomerPhone: ord.CustomerPhone(),
		Lines:         ord.Lines(),
		CreatedAt:     ord.CreatedAt(),
	})
	if err != nil {
		return errs.NewStoreError("encode notification", err)
	}

	err = b.uow.Within(writeCtx, func(ctx context.Context, tx shared.Tx) error {
		for _, id := range ids {
			qty := request[id]
			ok, err := tx.Lessons().ReserveSpace(ctx, id, qty)
			if err != nil {
				return errs.Wrap(err, "reserve space")
			}
			if !ok {
				return capacityConflict(ctx, tx, id, qty)
			}
		}

		if _, err := tx.Orders().Insert(ctx, ord); err != nil {
			return errs.Wrap(err, "insert order")
		}

		return tx.Notifications().CreateJob(ctx, shared.NotificationKindOrder, shared.NotificationTopicPlaced, payload, ord.CreatedAt())
	})

	if errs.Is(err, shared.ErrCommitOutcomeUnknown) {
		slog.Error("order commit outcome unknown, check the store before retrying",
			"order_id", ord.ID(), "customer", ord.CustomerName(), "error", err.Error())
	}
	return classifyWriteError(err)
}

// capacityConflict runs when the conditional decrement matched no row: either another
// order took the space first or the lesson vanished.
func capacityConflict(ctx context.Context, tx shared.Tx, lessonID string, requested int) error {
	available, err := tx.Lessons().CurrentSpace(ctx, lessonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.NewNotFoundError("lesson", lessonID)
		}
		return errs.Wrap(err, "read current space")
	}

	slog.Warn("capacity conflict during reservation",
		"lesson_id", lessonID, "requested", requested, "available", available)
	// space released by another order after the failed decrement does not count
	available = min(available, requested-1)
	return &errs.CapacityError{LessonID: lessonID, Requested: requested, Available: available}
}

func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	var capErr *errs.CapacityError
	if errors.As(err, &capErr) {
		return capErr
	}
	var nfErr *errs.NotFoundError
	if errors.As(err, &nfErr) {
		return nfErr
	}
	return errs.NewStoreError("place order", err)
}

func (b *bookingCommandsImpl) CreateLesson(ctx context.Context, params CreateLessonParams) (*queries.LessonView, error) {
	l, err := lesson.NewLesson("", params.Topic, params.Location, params.Price, params.Space, b.clock.Now())
	if err != nil {
		return nil, errs.NewValidationError(err.Error())
	}

	writeCtx, cancel := context.WithTimeout(ctx, b.cfg.StoreTimeout)
	defer cancel()

	err = b.uow.Within(writeCtx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Lessons().Create(ctx, l)
	})
	if err != nil {
		return nil, errs.NewStoreError("create lesson", err)
	}

	return &queries.LessonView{
		ID:       l.ID(),
		Topic:    l.Topic(),
		Location: l.Location(),
		Price:    l.Price(),
		Space:    l.Space(),
	}, nil
}

func (b *bookingCommandsImpl) SetLessonSpace(ctx context.Context, lessonID string, space int) (*queries.LessonView, error) {
	if err := lesson.ValidateSpace(space); err != nil {
		return nil, errs.NewValidationError(err.Error())
	}

	writeCtx, cancel := context.WithTimeout(ctx, b.cfg.StoreTimeout)
	defer cancel()

	var updated *shared.LessonSnapshot
	err := b.uow.Within(writeCtx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Lessons().SetSpace(ctx, lessonID, space)
		if err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NewNotFoundError("lesson", lessonID)
		}
		return nil, errs.NewStoreError("set lesson space", err)
	}

	slog.Info("lesson space overridden", "lesson_id", lessonID, "space", space)

	return &queries.LessonView{
		ID:       updated.ID,
		Topic:    updated.Topic,
		Location: updated.Location,
		Price:    updated.Price,
		Space:    updated.Space,
	}, nil
}

func toOrderView(o *order.Order) *queries.OrderView {
	lines := o.Lines()
	views := make([]queries.OrderLineView, len(lines))
	for i, l := range lines {
		views[i] = queries.OrderLineView{LessonID: l.LessonID, Quantity: l.Quantity}
	}
	return &queries.OrderView{
		ID:            o.ID(),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone(),
		Lines:         views,
		CreatedAt:     o.CreatedAt(),
	}
}
