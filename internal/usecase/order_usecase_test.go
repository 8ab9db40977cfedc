package usecase

import (
	"context"
	"errors"
	"testing"

	"kanalsepet/internal/domain/entities"
	"kanalsepet/internal/platform/logger"
	mock_interfaces "kanalsepet/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newOrderUseCaseForTest(t *testing.T) (*OrderUseCase, *mock_interfaces.MockIItemStore, *mock_interfaces.MockINotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_interfaces.NewMockIItemStore(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)
	return NewOrderUseCase(store, notifier, logger.NewNop()), store, notifier
}

func TestOrderUseCase_Load(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		uc, store, _ := newOrderUseCaseForTest(t)

		store.EXPECT().LoadNames(gomock.Any()).Return("Depo", "Kat 1", nil)
		store.EXPECT().GetAll(gomock.Any()).Return([]entities.OrderItem{
			{ID: "a", Quantity: 2},
			{ID: "b", Quantity: 1},
		}, nil)

		if err := uc.Load(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sheet := uc.Sheet()
		if sheet.ProjectName != "Depo" || sheet.ZoneName != "Kat 1" {
			t.Fatalf("unexpected labels: %+v", sheet)
		}
		if len(sheet.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(sheet.Items))
		}
	})

	t.Run("broken store yields empty sheet", func(t *testing.T) {
		uc, store, _ := newOrderUseCaseForTest(t)

		store.EXPECT().LoadNames(gomock.Any()).Return("", "", errors.New("corrupt"))
		store.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("corrupt"))

		if err := uc.Load(context.Background()); err != nil {
			t.Fatalf("load must not fail: %v", err)
		}
		if got := uc.BadgeText(); got != "0 parça, 0 adet" {
			t.Fatalf("unexpected badge: %q", got)
		}
	})

	t.Run("out of range persisted quantities are clamped", func(t *testing.T) {
		uc, store, _ := newOrderUseCaseForTest(t)

		store.EXPECT().LoadNames(gomock.Any()).Return("", "", nil)
		store.EXPECT().GetAll(gomock.Any()).Return([]entities.OrderItem{
			{ID: "a", Quantity: 0},
			{ID: "b", Quantity: 5000},
		}, nil)

		if err := uc.Load(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		items := uc.Sheet().Items
		if items[0].Quantity != entities.MinQuantity || items[1].Quantity != entities.MaxQuantity {
			t.Fatalf("expected clamped quantities, got %d and %d", items[0].Quantity, items[1].Quantity)
		}
	})
}

func TestOrderUseCase_AddItem(t *testing.T) {
	t.Run("empty key", func(t *testing.T) {
		uc, _, _ := newOrderUseCaseForTest(t)
		_, err := uc.AddItem(context.Background(), ItemDraft{Key: "   ", Material: "galvaniz"})
		if !errors.Is(err, ErrInvalidPartKey) {
			t.Fatalf("expected ErrInvalidPartKey, got %v", err)
		}
	})

	t.Run("empty material", func(t *testing.T) {
		uc, _, _ := newOrderUseCaseForTest(t)
		_, err := uc.AddItem(context.Background(), ItemDraft{Key: "dirsek-90", Material: ""})
		if !errors.Is(err, ErrInvalidMaterial) {
			t.Fatalf("expected ErrInvalidMaterial, got %v", err)
		}
	})

	t.Run("assigns id, clamps quantity, persists before append", func(t *testing.T) {
		uc, store, _ := newOrderUseCaseForTest(t)

		store.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderItem{})).DoAndReturn(
			func(_ context.Context, it entities.OrderItem) error {
				if it.ID == "" {
					t.Fatalf("expected generated id")
				}
				if it.Quantity != entities.MaxQuantity {
					t.Fatalf("expected clamped quantity, got %d", it.Quantity)
				}
				if it.CreatedAt.IsZero() {
					t.Fatalf("expected creation timestamp")
				}
				return nil
			},
		)

		item, err := uc.AddItem(context.Background(), ItemDraft{Key: "dirsek-90", Material: "galvaniz", Quantity: 100000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == "" {
			t.Fatalf("expected id on returned item")
		}
		if len(uc.Sheet().Items) != 1 {
			t.Fatalf("expected item in sheet")
		}
	})

	t.Run("persist failure leaves cart untouched", func(t *testing.T) {
		uc, store, _ := newOrderUseCaseForTest(t)

		store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := uc.AddItem(context.Background(), ItemDraft{Key: "dirsek-90", Material: "galvaniz", Quantity: 1})
		if err == nil {
			t.Fatalf("expected error")
		}
		if len(uc.Sheet().Items) != 0 {
			t.Fatalf("cart must stay empty after failed persist")
		}
	})

	t.Run("repeated adds get distinct ids", func(t *testing.T) {
		uc, store, _ := newOrderUseCaseForTest(t)

		store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil).Times(10000)

		seen := make(map[string]bool, 10000)
		for i := 0; i < 10000; i++ {
			item, err := uc.AddItem(context.Background(), ItemDraft{Key: "dirsek-90", Material: "galvaniz", Quantity: 1})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen[item.ID] {
				t.Fatalf("duplicate id %q", item.ID)
			}
			seen[item.ID] = true
		}
	})
}

func TestOrderUseCase_RemoveItem(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc, _, _ := newOrderUseCaseForTest(t)
		if err := uc.RemoveItem(context.Background(), "  "); !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("absent id is a no-op success", func(t *testing.T) {
		uc, _, _ := newOrderUseCaseForTest(t)
		if err := uc.RemoveItem(context.Background(), "missing"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("removes and persists", func(t *testing.T) {
		uc, store, _ := newOrderUseCaseForTest(t)

		store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
		item, err := uc.AddItem(context.Background(), ItemDraft{Key: "dirsek-90", Material: "galvaniz", Quantity: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		store.EXPECT().Remove(gomock.Any(), item.ID).Return(nil)
		if err := uc.RemoveItem(context.Background(), item.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.Sheet().Items) != 0 {
			t.Fatalf("expected empty sheet")
		}
	})

	t.Run("persist failure keeps in-memory removal and warns", func(t *testing.T) {
		uc, store, notifier := newOrderUseCaseForTest(t)

		store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
		item, err := uc.AddItem(context.Background(), ItemDraft{Key: "dirsek-90", Material: "galvaniz", Quantity: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		store.EXPECT().Remove(gomock.Any(), item.ID).Return(errors.New("io"))
		notifier.EXPECT().Warning("Değişiklik kaydedilemedi", "io")

		if err := uc.RemoveItem(context.Background(), item.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(uc.Sheet().Items) != 0 {
			t.Fatalf("in-memory removal must stand")
		}
	})
}

func TestOrderUseCase_ClearKeepsLabels(t *testing.T) {
	uc, store, _ := newOrderUseCaseForTest(t)

	store.EXPECT().SaveNames(gomock.Any(), "Depo", "").Return(nil)
	if err := uc.SetProjectName(context.Background(), "Depo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
	if _, err := uc.AddItem(context.Background(), ItemDraft{Key: "dirsek-90", Material: "galvaniz", Quantity: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.EXPECT().Clear(gomock.Any()).Return(nil)
	if err := uc.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sheet := uc.Sheet()
	if len(sheet.Items) != 0 {
		t.Fatalf("expected empty items")
	}
	if sheet.ProjectName != "Depo" {
		t.Fatalf("labels must survive clear, got %q", sheet.ProjectName)
	}
}

func TestOrderUseCase_BadgeLifecycle(t *testing.T) {
	uc, store, _ := newOrderUseCaseForTest(t)

	store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	first, err := uc.AddItem(context.Background(), ItemDraft{Key: "dirsek-90", Material: "galvaniz", Quantity: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.AddItem(context.Background(), ItemDraft{Key: "kanal-duz", Material: "galvaniz", Quantity: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := uc.BadgeText(); got != "2 parça, 3 adet" {
		t.Fatalf("unexpected badge: %q", got)
	}

	store.EXPECT().Remove(gomock.Any(), first.ID).Return(nil)
	if err := uc.RemoveItem(context.Background(), first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := uc.BadgeText(); got != "1 parça, 1 adet" {
		t.Fatalf("unexpected badge: %q", got)
	}

	store.EXPECT().Clear(gomock.Any()).Return(nil)
	if err := uc.Clear(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := uc.BadgeText(); got != "0 parça, 0 adet" {
		t.Fatalf("unexpected badge: %q", got)
	}
}

func TestOrderUseCase_EstimateUsage(t *testing.T) {
	t.Run("passes through", func(t *testing.T) {
		uc, store, _ := newOrderUseCaseForTest(t)
		store.EXPECT().EstimateUsage(gomock.Any()).Return(entities.UsageEstimate{UsedBytes: 10, QuotaBytes: 100, ItemCount: 1}, nil)
		est := uc.EstimateUsage(context.Background())
		if est.UsedBytes != 10 || est.ItemCount != 1 {
			t.Fatalf("unexpected estimate: %+v", est)
		}
	})

	t.Run("zeroes on backend error", func(t *testing.T) {
		uc, store, _ := newOrderUseCaseForTest(t)
		store.EXPECT().EstimateUsage(gomock.Any()).Return(entities.UsageEstimate{}, errors.New("unsupported"))
		est := uc.EstimateUsage(context.Background())
		if est != (entities.UsageEstimate{}) {
			t.Fatalf("expected zero estimate, got %+v", est)
		}
	})
}

func TestOrderUseCase_SnapshotIsolation(t *testing.T) {
	uc, store, _ := newOrderUseCaseForTest(t)

	store.EXPECT().Add(gomock.Any(), gomock.Any()).Return(nil)
	if _, err := uc.AddItem(context.Background(), ItemDraft{Key: "dirsek-90", Material: "galvaniz", Quantity: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := uc.Sheet()
	snap.Items[0].Quantity = 500
	if uc.Sheet().Items[0].Quantity != 1 {
		t.Fatalf("snapshot mutation leaked into the aggregate")
	}
}
