package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/platform/logger"
	mock_interfaces "kanalsepet/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCartFlowForTest(t *testing.T) (*CartFlowUseCase, *mock_interfaces.MockIItemStore, *mock_interfaces.MockIStateBridge, *mock_interfaces.MockINotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_interfaces.NewMockIItemStore(ctrl)
	bridge := mock_interfaces.NewMockIStateBridge(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)

	orders := NewOrderUseCase(store, notifier, logger.NewNop())
	flow := NewCartFlowUseCase(orders, bridge, notifier, logger.NewNop())
	// Park revert timers far in the future so tests observe the settled
	// phase, not the auto-revert.
	flow.after = func(d time.Duration, f func()) *time.Timer { return time.AfterFunc(time.Hour, f) }
	return flow, store, bridge, notifier
}

func TestCartFlowUseCase_Transitions(t *testing.T) {
	t.Run("open resets quantity and awaits input", func(t *testing.T) {
		flow, _, _, _ := newCartFlowForTest(t)

		flow.SetQuantity(7)
		flow.Open(PartSelection{Key: "dirsek-90", Material: "galvaniz"})

		if flow.Phase() != PhaseAwaitingQuantity {
			t.Fatalf("expected awaiting_quantity, got %s", flow.Phase())
		}
		if flow.Quantity() != entities.MinQuantity {
			t.Fatalf("expected quantity reset to %d, got %d", entities.MinQuantity, flow.Quantity())
		}
	})

	t.Run("set quantity clamps every edit", func(t *testing.T) {
		flow, _, _, _ := newCartFlowForTest(t)

		flow.Open(PartSelection{Key: "dirsek-90", Material: "galvaniz"})
		flow.SetQuantity(-3)
		if flow.Quantity() != entities.MinQuantity {
			t.Fatalf("expected clamp to min, got %d", flow.Quantity())
		}
		flow.SetQuantity(5000)
		if flow.Quantity() != entities.MaxQuantity {
			t.Fatalf("expected clamp to max, got %d", flow.Quantity())
		}
	})

	t.Run("cancel discards selection", func(t *testing.T) {
		flow, _, _, _ := newCartFlowForTest(t)

		flow.Open(PartSelection{Key: "dirsek-90", Material: "galvaniz"})
		flow.Cancel()
		if flow.Phase() != PhaseIdle {
			t.Fatalf("expected idle after cancel, got %s", flow.Phase())
		}
		_, err := flow.Confirm(context.Background(), "")
		if !errors.Is(err, ErrNoPendingSelection) {
			t.Fatalf("expected ErrNoPendingSelection, got %v", err)
		}
	})

	t.Run("confirm without open", func(t *testing.T) {
		flow, _, _, _ := newCartFlowForTest(t)
		_, err := flow.Confirm(context.Background(), "")
		if !errors.Is(err, ErrNoPendingSelection) {
			t.Fatalf("expected ErrNoPendingSelection, got %v", err)
		}
	})
}

func TestCartFlowUseCase_Confirm(t *testing.T) {
	t.Run("commits with captured surface state", func(t *testing.T) {
		flow, store, bridge, _ := newCartFlowForTest(t)

		state := &entities.SurfaceState{
			Params: entities.ParamMap{"w": json.RawMessage(`"200"`)},
			Thumb:  "data:image/png;base64,xxxx",
		}
		bridge.EXPECT().RequestState(gomock.Any(), gomock.Any()).Return(state, nil)
		store.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderItem{})).DoAndReturn(
			func(_ context.Context, it entities.OrderItem) error {
				if string(it.Parameters["w"]) != `"200"` {
					t.Fatalf("expected captured params, got %+v", it.Parameters)
				}
				if it.Thumbnail == "" {
					t.Fatalf("expected captured thumbnail")
				}
				return nil
			},
		)

		flow.Open(PartSelection{Key: "dirsek-90", Label: "Dirsek", Material: "galvaniz"})
		flow.SetQuantity(3)
		item, err := flow.Confirm(context.Background(), "acil")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantity != 3 || item.Note != "acil" {
			t.Fatalf("unexpected item: %+v", item)
		}
		if flow.Phase() != PhaseCommitted {
			t.Fatalf("expected committed, got %s", flow.Phase())
		}
	})

	t.Run("bridge timeout commits without parameters", func(t *testing.T) {
		flow, store, bridge, _ := newCartFlowForTest(t)

		bridge.EXPECT().RequestState(gomock.Any(), gomock.Any()).Return(nil, nil)
		store.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderItem{})).DoAndReturn(
			func(_ context.Context, it entities.OrderItem) error {
				if len(it.Parameters) != 0 || it.Thumbnail != "" {
					t.Fatalf("expected no captured state, got %+v", it)
				}
				return nil
			},
		)

		flow.Open(PartSelection{Key: "dirsek-90", Material: "galvaniz"})
		if _, err := flow.Confirm(context.Background(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if flow.Phase() != PhaseCommitted {
			t.Fatalf("expected committed, got %s", flow.Phase())
		}
	})

	t.Run("canceled context discards the attempt", func(t *testing.T) {
		flow, _, bridge, _ := newCartFlowForTest(t)

		bridge.EXPECT().RequestState(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

		flow.Open(PartSelection{Key: "dirsek-90", Material: "galvaniz"})
		_, err := flow.Confirm(context.Background(), "")
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if flow.Phase() != PhaseIdle {
			t.Fatalf("expected idle, got %s", flow.Phase())
		}
	})

	t.Run("commit failure raises error notification, cart untouched", func(t *testing.T) {
		flow, store, bridge, notifier := newCartFlowForTest(t)

		bridge.EXPECT().RequestState(gomock.Any(), gomock.Any()).Return(nil, nil)
		store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
		notifier.EXPECT().Error("Parça sepete eklenemedi", "disk full")

		flow.Open(PartSelection{Key: "dirsek-90", Material: "galvaniz"})
		_, err := flow.Confirm(context.Background(), "")
		if err == nil {
			t.Fatalf("expected error")
		}
		if flow.Phase() != PhaseFailed {
			t.Fatalf("expected failed, got %s", flow.Phase())
		}
	})

	t.Run("second confirm while bridging is rejected", func(t *testing.T) {
		flow, store, bridge, _ := newCartFlowForTest(t)

		release := make(chan struct{})
		bridge.EXPECT().RequestState(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, time.Duration) (*entities.SurfaceState, error) {
				<-release
				return nil, nil
			},
		)
		store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

		flow.Open(PartSelection{Key: "dirsek-90", Material: "galvaniz"})

		done := make(chan error, 1)
		go func() {
			_, err := flow.Confirm(context.Background(), "")
			done <- err
		}()

		for flow.Phase() != PhaseBridging {
			time.Sleep(time.Millisecond)
		}
		_, err := flow.Confirm(context.Background(), "")
		if !errors.Is(err, ErrFlowBusy) {
			t.Fatalf("expected ErrFlowBusy, got %v", err)
		}

		close(release)
		if err := <-done; err != nil {
			t.Fatalf("unexpected error from first confirm: %v", err)
		}
	})
}

func TestCartFlowUseCase_Submit(t *testing.T) {
	t.Run("single step commit", func(t *testing.T) {
		flow, store, bridge, _ := newCartFlowForTest(t)

		bridge.EXPECT().RequestState(gomock.Any(), gomock.Any()).Return(nil, nil)
		store.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderItem{})).DoAndReturn(
			func(_ context.Context, it entities.OrderItem) error {
				if it.Key != "dirsek-90" || it.Quantity != 4 {
					t.Fatalf("unexpected item: %+v", it)
				}
				return nil
			},
		)

		item, err := flow.Submit(context.Background(),
			PartSelection{Key: "dirsek-90", Material: "galvaniz"}, 4, "acil")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Note != "acil" {
			t.Fatalf("unexpected item: %+v", item)
		}
		if flow.Phase() != PhaseCommitted {
			t.Fatalf("expected committed, got %s", flow.Phase())
		}
	})

	t.Run("quantity clamped", func(t *testing.T) {
		flow, store, bridge, _ := newCartFlowForTest(t)

		bridge.EXPECT().RequestState(gomock.Any(), gomock.Any()).Return(nil, nil)
		store.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderItem{})).DoAndReturn(
			func(_ context.Context, it entities.OrderItem) error {
				if it.Quantity != entities.MaxQuantity {
					t.Fatalf("expected clamped quantity, got %d", it.Quantity)
				}
				return nil
			},
		)

		if _, err := flow.Submit(context.Background(),
			PartSelection{Key: "dirsek-90", Material: "galvaniz"}, 100000, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("interleaved selection cannot repoint an in-flight commit", func(t *testing.T) {
		flow, store, bridge, _ := newCartFlowForTest(t)

		release := make(chan struct{})
		bridge.EXPECT().RequestState(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, time.Duration) (*entities.SurfaceState, error) {
				<-release
				return nil, nil
			},
		)
		store.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderItem{})).DoAndReturn(
			func(_ context.Context, it entities.OrderItem) error {
				if it.Key != "dirsek-90" {
					t.Fatalf("commit picked up the wrong selection: %+v", it)
				}
				return nil
			},
		)

		done := make(chan entities.OrderItem, 1)
		go func() {
			item, err := flow.Submit(context.Background(),
				PartSelection{Key: "dirsek-90", Material: "galvaniz"}, 1, "")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			done <- item
		}()

		for flow.Phase() != PhaseBridging {
			time.Sleep(time.Millisecond)
		}

		// A competing interaction starts mid-bridge: its open is ignored, its
		// submit is rejected, and its selection must not leak into the
		// pending commit.
		flow.Open(PartSelection{Key: "kanal-duz", Material: "paslanmaz"})
		if flow.Phase() != PhaseBridging {
			t.Fatalf("open must not interrupt a confirm in flight, got %s", flow.Phase())
		}
		if _, err := flow.Submit(context.Background(),
			PartSelection{Key: "kanal-duz", Material: "paslanmaz"}, 9, ""); !errors.Is(err, ErrFlowBusy) {
			t.Fatalf("expected ErrFlowBusy, got %v", err)
		}

		close(release)
		item := <-done
		if item.Key != "dirsek-90" || item.Quantity != 1 {
			t.Fatalf("unexpected committed item: %+v", item)
		}
	})
}

func TestCartFlowUseCase_RevertToIdle(t *testing.T) {
	flow, store, bridge, _ := newCartFlowForTest(t)

	var revert func()
	flow.after = func(d time.Duration, f func()) *time.Timer {
		revert = f
		return time.AfterFunc(time.Hour, func() {})
	}

	bridge.EXPECT().RequestState(gomock.Any(), gomock.Any()).Return(nil, nil)
	store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)

	flow.Open(PartSelection{Key: "dirsek-90", Material: "galvaniz"})
	if _, err := flow.Confirm(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flow.Phase() != PhaseCommitted {
		t.Fatalf("expected committed, got %s", flow.Phase())
	}

	revert()
	if flow.Phase() != PhaseIdle {
		t.Fatalf("expected idle after revert, got %s", flow.Phase())
	}
}

func TestBridgeTimeoutFromEnv(t *testing.T) {
	cases := []struct {
		name string
		val  string
		want time.Duration
	}{
		{"unset", "", defaultBridgeTimeout},
		{"valid", "250", 250 * time.Millisecond},
		{"garbage", "soon", defaultBridgeTimeout},
		{"non-positive", "0", defaultBridgeTimeout},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Setenv("BRIDGE_TIMEOUT_MS", c.val)
			if got := bridgeTimeoutFromEnv(); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}
