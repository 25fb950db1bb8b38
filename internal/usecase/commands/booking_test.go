//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"lesson-booking/internal/domain/order"
	"lesson-booking/internal/infra/memstore"
	"lesson-booking/internal/pkg/clock"
	"lesson-booking/internal/pkg/config"
	"lesson-booking/internal/pkg/errs"
	"lesson-booking/internal/usecase/commands"
	"lesson-booking/internal/usecase/queries"
	"lesson-booking/internal/usecase/shared"
	"lesson-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store *memstore.Store
	cmds  commands.BookingCommands
}

func newFixture(t *testing.T, lessons ...*builder.LessonBuilder) *fixture {
	t.Helper()
	store := memstore.New()
	for _, b := range lessons {
		store.Seed(b.MustBuildDomain())
	}
	return &fixture{
		store: store,
		cmds:  commands.NewBookingCommands(store, clock.NewSteppingClock(t0, time.Second), config.NewTestConfig()),
	}
}

func (f *fixture) space(t *testing.T, id string) int {
	t.Helper()
	v, err := f.store.FindByID(context.Background(), id)
	require.NoError(t, err)
	return v.Space
}

func (f *fixture) orderCount(t *testing.T) int {
	t.Helper()
	orders, err := f.store.ListNewestFirst(context.Background())
	require.NoError(t, err)
	return len(orders)
}

func lessonWith(id string, space int) *builder.LessonBuilder {
	return builder.NewLessonBuilder().With(func(b *builder.LessonBuilder) {
		b.ID = id
		b.Space = space
	})
}

// =============================================================================
// PlaceOrder
// =============================================================================

func TestPlaceOrder_Success(t *testing.T) {
	f := newFixture(t, lessonWith("x", 5), lessonWith("y", 3))

	params := builder.NewOrderBuilder().WithLine("x", 2).WithLine("y", 1).WithLine("x", 1).BuildParams()
	view, err := f.cmds.PlaceOrder(context.Background(), params)
	require.NoError(t, err)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, t0, view.CreatedAt)
	assert.Len(t, view.Lines, 3, "order keeps the submitted lines")

	assert.Equal(t, 2, f.space(t, "x"))
	assert.Equal(t, 2, f.space(t, "y"))
	assert.Equal(t, 1, f.orderCount(t))
	assert.Equal(t, []string{shared.NotificationStatusQueued}, f.store.JobStatuses())
}

func TestPlaceOrder_ExactCapacityDrainsToZero(t *testing.T) {
	f := newFixture(t, lessonWith("x", 4))

	_, err := f.cmds.PlaceOrder(context.Background(), builder.NewOrderBuilder().WithLine("x", 4).BuildParams())
	require.NoError(t, err)
	assert.Equal(t, 0, f.space(t, "x"))
}

func TestPlaceOrder_DuplicateLinesExceedCapacity(t *testing.T) {
	f := newFixture(t, lessonWith("x", 5))

	params := builder.NewOrderBuilder().WithLine("x", 3).WithLine("x", 3).BuildParams()
	_, err := f.cmds.PlaceOrder(context.Background(), params)

	var capErr *errs.CapacityError
	require.ErrorAs(t, err, &capErr)
	if diff := cmp.Diff(&errs.CapacityError{LessonID: "x", Requested: 6, Available: 5}, capErr); diff != "" {
		t.Errorf("capacity error mismatch (-want +got):\n%s", diff)
	}
	assert.ErrorIs(t, err, errs.ErrCapacity)
	assert.Equal(t, 5, f.space(t, "x"))
	assert.Zero(t, f.orderCount(t))
}

func TestPlaceOrder_AllOrNothingAcrossLessons(t *testing.T) {
	f := newFixture(t, lessonWith("a", 10), lessonWith("b", 1))

	params := builder.NewOrderBuilder().WithLine("a", 4).WithLine("b", 2).BuildParams()
	_, err := f.cmds.PlaceOrder(context.Background(), params)

	assert.ErrorIs(t, err, errs.ErrCapacity)
	assert.Equal(t, 10, f.space(t, "a"))
	assert.Equal(t, 1, f.space(t, "b"))
	assert.Zero(t, f.orderCount(t))
	assert.Empty(t, f.store.JobStatuses())
}

func TestPlaceOrder_NotFound(t *testing.T) {
	f := newFixture(t, lessonWith("x", 5))

	params := builder.NewOrderBuilder().WithLine("x", 1).WithLine("ghost", 1).WithLine("phantom", 1).BuildParams()
	_, err := f.cmds.PlaceOrder(context.Background(), params)

	var nfErr *errs.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, []string{"ghost", "phantom"}, nfErr.IDs)
	assert.Equal(t, 5, f.space(t, "x"))
}

func TestPlaceOrder_Validation(t *testing.T) {
	f := newFixture(t, lessonWith("x", 5))

	testCases := []struct {
		name   string
		params commands.PlaceOrderParams
		msg    string
	}{
		{
			name: "every line invalid",
			params: commands.PlaceOrderParams{
				CustomerName:  "Ada",
				CustomerPhone: "07700900123",
				Lines: []order.RawLine{
					{LessonID: "x", Quantity: 0},
					{LessonID: "x", Quantity: "abc"},
					{LessonID: "", Quantity: 2},
				},
			},
			msg: "no valid line items",
		},
		{
			name:   "no lines at all",
			params: commands.PlaceOrderParams{CustomerName: "Ada", CustomerPhone: "07700900123"},
			msg:    "no valid line items",
		},
		{
			name: "blank customer name",
			params: commands.PlaceOrderParams{
				CustomerName:  " ",
				CustomerPhone: "07700900123",
				Lines:         []order.RawLine{{LessonID: "x", Quantity: 1}},
			},
			msg: order.ErrEmptyCustomerName.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.cmds.PlaceOrder(context.Background(), tc.params)
			require.ErrorIs(t, err, errs.ErrValidation)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Equal(t, 5, f.space(t, "x"))
		})
	}
}

func TestPlaceOrder_InvalidLinesAreDroppedNotFatal(t *testing.T) {
	f := newFixture(t, lessonWith("x", 5))

	params := commands.PlaceOrderParams{
		CustomerName:  "Ada",
		CustomerPhone: "07700900123",
		Lines: []order.RawLine{
			{LessonID: "x", Quantity: -2},
			{LessonID: "x", Quantity: 2.0},
		},
	}
	view, err := f.cmds.PlaceOrder(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, []order.Line{{LessonID: "x", Quantity: 2}}, toLines(view.Lines))
	assert.Equal(t, 3, f.space(t, "x"))
}

// =============================================================================
// Store failures
// =============================================================================

// flakyReads fails the first `failures` batched reads.
type flakyReads struct {
	*memstore.Store
	failures int32
	calls    atomic.Int32
}

func (f *flakyReads) CommandReads() shared.CommandReads { return f }

func (f *flakyReads) LessonsByIDs(ctx context.Context, ids []string) ([]shared.LessonSnapshot, error) {
	if f.calls.Add(1) <= f.failures {
		return nil, errors.New("connection reset")
	}
	return f.Store.LessonsByIDs(ctx, ids)
}

func TestPlaceOrder_ReadRetriedOnce(t *testing.T) {
	t.Run("one transient failure is absorbed", func(t *testing.T) {
		store := memstore.New()
		store.Seed(lessonWith("x", 5).MustBuildDomain())
		uow := &flakyReads{Store: store, failures: 1}
		cmds := commands.NewBookingCommands(uow, clock.NewMockClock(t0), config.NewTestConfig())

		_, err := cmds.PlaceOrder(context.Background(), builder.NewOrderBuilder().WithLine("x", 1).BuildParams())
		require.NoError(t, err)
		assert.Equal(t, int32(2), uow.calls.Load())
	})

	t.Run("two failures surface as a store error", func(t *testing.T) {
		store := memstore.New()
		store.Seed(lessonWith("x", 5).MustBuildDomain())
		uow := &flakyReads{Store: store, failures: 2}
		cmds := commands.NewBookingCommands(uow, clock.NewMockClock(t0), config.NewTestConfig())

		_, err := cmds.PlaceOrder(context.Background(), builder.NewOrderBuilder().WithLine("x", 1).BuildParams())
		require.ErrorIs(t, err, errs.ErrStore)
		assert.Equal(t, int32(2), uow.calls.Load(), "never more than one retry")
	})

	t.Run("retries disabled", func(t *testing.T) {
		store := memstore.New()
		store.Seed(lessonWith("x", 5).MustBuildDomain())
		uow := &flakyReads{Store: store, failures: 1}
		cfg := config.NewTestConfig()
		cfg.Booking.ReadRetries = 0
		cmds := commands.NewBookingCommands(uow, clock.NewMockClock(t0), cfg)

		_, err := cmds.PlaceOrder(context.Background(), builder.NewOrderBuilder().WithLine("x", 1).BuildParams())
		require.ErrorIs(t, err, errs.ErrStore)
		assert.Equal(t, int32(1), uow.calls.Load())
	})
}

// slowWrites blocks inside the unit of work until the deadline passes.
type slowWrites struct {
	*memstore.Store
}

func (s *slowWrites) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.Store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}
		<-ctx.Done()
		return ctx.Err()
	})
}

func TestPlaceOrder_WriteTimeoutRollsBack(t *testing.T) {
	store := memstore.New()
	store.Seed(lessonWith("x", 5).MustBuildDomain())
	cfg := config.NewTestConfig()
	cfg.Booking.StoreTimeout = 20 * time.Millisecond
	cmds := commands.NewBookingCommands(&slowWrites{Store: store}, clock.NewMockClock(t0), cfg)

	_, err := cmds.PlaceOrder(context.Background(), builder.NewOrderBuilder().WithLine("x", 2).BuildParams())

	require.ErrorIs(t, err, errs.ErrStore)
	v, ferr := store.FindByID(context.Background(), "x")
	require.NoError(t, ferr)
	assert.Equal(t, 5, v.Space, "reservation compensated")
	orders, _ := store.ListNewestFirst(context.Background())
	assert.Empty(t, orders)
}

func TestPlaceOrder_CancelledContext(t *testing.T) {
	f := newFixture(t, lessonWith("x", 5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.cmds.PlaceOrder(ctx, builder.NewOrderBuilder().WithLine("x", 1).BuildParams())
	require.ErrorIs(t, err, errs.ErrStore)
	assert.Equal(t, 5, f.space(t, "x"))
}

// staleReads reports more space than the store holds, as if another order landed
// between the read and the write.
type staleReads struct {
	*memstore.Store
	space int
}

func (s *staleReads) CommandReads() shared.CommandReads { return s }

func (s *staleReads) LessonsByIDs(ctx context.Context, ids []string) ([]shared.LessonSnapshot, error) {
	snaps, err := s.Store.LessonsByIDs(ctx, ids)
	for i := range snaps {
		snaps[i].Space = s.space
	}
	return snaps, err
}

func TestPlaceOrder_ConditionalWriteCatchesRace(t *testing.T) {
	store := memstore.New()
	store.Seed(lessonWith("a", 10).MustBuildDomain(), lessonWith("b", 2).MustBuildDomain())
	cmds := commands.NewBookingCommands(&staleReads{Store: store, space: 50}, clock.NewMockClock(t0), config.NewTestConfig())

	_, err := cmds.PlaceOrder(context.Background(), builder.NewOrderBuilder().WithLine("a", 3).WithLine("b", 3).BuildParams())

	var capErr *errs.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, errs.CapacityError{LessonID: "b", Requested: 3, Available: 2}, *capErr)

	a, _ := store.FindByID(context.Background(), "a")
	assert.Equal(t, 10, a.Space, "earlier decrement compensated")
}

// releasedAfterConflict fails every conditional decrement and then reports plenty of
// space, as if a competing order gave its seats back in between.
type releasedAfterConflict struct {
	*memstore.Store
}

func (r *releasedAfterConflict) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return r.Store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, &releasedTx{Tx: tx})
	})
}

type releasedTx struct {
	shared.Tx
}

func (t *releasedTx) Lessons() shared.LessonRepository { return &releasedLessons{LessonRepository: t.Tx.Lessons()} }

type releasedLessons struct {
	shared.LessonRepository
}

func (*releasedLessons) ReserveSpace(context.Context, string, int) (bool, error) { return false, nil }
func (*releasedLessons) CurrentSpace(context.Context, string) (int, error)       { return 9, nil }

func TestPlaceOrder_CapacityErrorNeverReportsEnoughSpace(t *testing.T) {
	store := memstore.New()
	store.Seed(lessonWith("a", 10).MustBuildDomain())
	cmds := commands.NewBookingCommands(&releasedAfterConflict{Store: store}, clock.NewMockClock(t0), config.NewTestConfig())

	_, err := cmds.PlaceOrder(context.Background(), builder.NewOrderBuilder().WithLine("a", 3).BuildParams())

	var capErr *errs.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, errs.CapacityError{LessonID: "a", Requested: 3, Available: 2}, *capErr)
}

// lostCommit applies the writes and then loses the commit reply.
type lostCommit struct {
	*memstore.Store
}

func (l *lostCommit) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := l.Store.Within(ctx, fn); err != nil {
		return err
	}
	return errs.Mark(errors.New("connection reset by peer"), shared.ErrCommitOutcomeUnknown)
}

func TestPlaceOrder_UnknownCommitOutcomeIsStoreError(t *testing.T) {
	store := memstore.New()
	store.Seed(lessonWith("a", 4).MustBuildDomain())
	cmds := commands.NewBookingCommands(&lostCommit{Store: store}, clock.NewMockClock(t0), config.NewTestConfig())

	_, err := cmds.PlaceOrder(context.Background(), builder.NewOrderBuilder().WithLine("a", 1).BuildParams())

	require.ErrorIs(t, err, errs.ErrStore)
	assert.True(t, errs.Is(err, shared.ErrCommitOutcomeUnknown), "caller can tell the order may exist")
}

// failingOutbox breaks the last step of the unit of work.
type failingOutbox struct {
	*memstore.Store
}

func (f *failingOutbox) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return f.Store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, &failingTx{Tx: tx})
	})
}

type failingTx struct {
	shared.Tx
}

func (t *failingTx) Notifications() shared.NotificationRepository { return t }

func (t *failingTx) CreateJob(context.Context, string, string, []byte, time.Time) error {
	return errors.New("disk full")
}

func TestPlaceOrder_LateFailureCompensatesEverything(t *testing.T) {
	store := memstore.New()
	store.Seed(lessonWith("a", 4).MustBuildDomain(), lessonWith("b", 4).MustBuildDomain())
	cmds := commands.NewBookingCommands(&failingOutbox{Store: store}, clock.NewMockClock(t0), config.NewTestConfig())

	_, err := cmds.PlaceOrder(context.Background(), builder.NewOrderBuilder().WithLine("a", 1).WithLine("b", 4).BuildParams())
	require.ErrorIs(t, err, errs.ErrStore)

	for _, id := range []string{"a", "b"} {
		v, ferr := store.FindByID(context.Background(), id)
		require.NoError(t, ferr)
		assert.Equal(t, 4, v.Space, id)
	}
	orders, _ := store.ListNewestFirst(context.Background())
	assert.Empty(t, orders)
}

// =============================================================================
// Concurrency
// =============================================================================

func TestPlaceOrder_ConcurrentOrdersNeverOversell(t *testing.T) {
	defer goleak.VerifyNone(t)

	const (
		space   = 7
		callers = 40
	)
	f := newFixture(t, lessonWith("x", space), lessonWith("y", space*2))

	var succeeded, rejected atomic.Int32
	var g errgroup.Group
	for range callers {
		g.Go(func() error {
			params := builder.NewOrderBuilder().WithLine("y", 1).WithLine("x", 1).BuildParams()
			_, err := f.cmds.PlaceOrder(context.Background(), params)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, errs.ErrCapacity):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(space), succeeded.Load())
	assert.Equal(t, int32(callers-space), rejected.Load())
	assert.Equal(t, 0, f.space(t, "x"))
	assert.Equal(t, space, f.space(t, "y"), "rejected orders leave no partial decrement")
	assert.Equal(t, space, f.orderCount(t))
}

// =============================================================================
// Administrative operations
// =============================================================================

func TestCreateLesson(t *testing.T) {
	f := newFixture(t)

	view, err := f.cmds.CreateLesson(context.Background(), commands.CreateLessonParams{
		Topic: " Chess ", Location: "Barnet", Price: 40, Space: 6,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Chess", view.Topic)
	assert.Equal(t, 6, f.space(t, view.ID))

	_, err = f.cmds.CreateLesson(context.Background(), commands.CreateLessonParams{
		Topic: "Chess", Location: "Barnet", Price: -1, Space: 6,
	})
	assert.ErrorIs(t, err, errs.ErrValidation)

	t.Run("price above the column bound is a validation error", func(t *testing.T) {
		_, err := f.cmds.CreateLesson(context.Background(), commands.CreateLessonParams{
			Topic: "Chess", Location: "Barnet", Price: 1e9, Space: 6,
		})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("price is stored to the cent", func(t *testing.T) {
		view, err := f.cmds.CreateLesson(context.Background(), commands.CreateLessonParams{
			Topic: "Go", Location: "Barnet", Price: 10.555, Space: 6,
		})
		require.NoError(t, err)
		assert.InDelta(t, 10.56, view.Price, 1e-9)

		stored, err := f.store.FindByID(context.Background(), view.ID)
		require.NoError(t, err)
		assert.InDelta(t, 10.56, stored.Price, 1e-9)
	})
}

func TestSetLessonSpace(t *testing.T) {
	f := newFixture(t, lessonWith("x", 5))

	view, err := f.cmds.SetLessonSpace(context.Background(), "x", 12)
	require.NoError(t, err)
	assert.Equal(t, 12, view.Space)
	assert.Equal(t, 12, f.space(t, "x"))

	_, err = f.cmds.SetLessonSpace(context.Background(), "x", -1)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = f.cmds.SetLessonSpace(context.Background(), "ghost", 1)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func toLines(views []queries.OrderLineView) []order.Line {
	out := make([]order.Line, len(views))
	for i, v := range views {
		out[i] = order.Line{LessonID: v.LessonID, Quantity: v.Quantity}
	}
	return out
}
