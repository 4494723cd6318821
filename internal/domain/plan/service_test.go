package plan

import (
	"context"
	"errors"
	"fmt"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"gymhub/internal/pkg/pagination"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:plan_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Plan{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type stubCounter struct {
	live int64
}

func (s *stubCounter) CountLiveByPlanID(ctx context.Context, planID int64) (int64, error) {
	return s.live, nil
}

func newService(t *testing.T, counter *stubCounter) (*Service, *gorm.DB) {
	db := testDB(t)
	return NewService(NewRepository(db), counter), db
}

func TestCreatePlan(t *testing.T) {
	svc, _ := newService(t, &stubCounter{})
	ctx := context.Background()

	p, err := svc.Create(ctx, &CreateRequest{
		Name: "Starter", MonthlyPrice: 99, YearlyPrice: 990,
		MaxGyms: 1, MaxLocations: 2, MaxMembers: 100, MaxEquipment: 50,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsActive {
		t.Error("new plans should start active")
	}

	// Duplicate names conflict, case-insensitively.
	if _, err := svc.Create(ctx, &CreateRequest{Name: "starter"}); !errors.Is(err, ErrPlanNameTaken) {
		t.Errorf("err = %v, want ErrPlanNameTaken", err)
	}
}

func TestToggleActiveBlockedByLiveSubscribers(t *testing.T) {
	counter := &stubCounter{live: 3}
	svc, _ := newService(t, counter)
	ctx := context.Background()

	p, err := svc.Create(ctx, &CreateRequest{Name: "Growth"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ToggleActive(ctx, p.ID); !errors.Is(err, ErrPlanHasSubscribers) {
		t.Errorf("deactivate with subscribers: err = %v, want ErrPlanHasSubscribers", err)
	}

	counter.live = 0
	got, err := svc.ToggleActive(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsActive {
		t.Error("plan should be inactive after toggle")
	}

	// Reactivation is never blocked.
	counter.live = 3
	got, err = svc.ToggleActive(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsActive {
		t.Error("plan should be active after second toggle")
	}
}

func TestDeleteBlockedByLiveSubscribers(t *testing.T) {
	counter := &stubCounter{live: 1}
	svc, _ := newService(t, counter)
	ctx := context.Background()

	p, err := svc.Create(ctx, &CreateRequest{Name: "Growth"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, p.ID); !errors.Is(err, ErrPlanHasSubscribers) {
		t.Errorf("err = %v, want ErrPlanHasSubscribers", err)
	}

	counter.live = 0
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatal(err)
	}

	// Soft-deleted plans disappear from reads.
	if _, err := svc.Get(ctx, p.ID); !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("err = %v, want ErrPlanNotFound", err)
	}
	plans, _, err := svc.List(ctx, pagination.Params{})
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 0 {
		t.Errorf("list after delete = %d plans, want 0", len(plans))
	}
}

func TestListSearchMatchesNameAndPrice(t *testing.T) {
	svc, _ := newService(t, &stubCounter{})
	ctx := context.Background()

	seed := []*CreateRequest{
		{Name: "Starter", MonthlyPrice: 99, YearlyPrice: 990},
		{Name: "Growth", MonthlyPrice: 299, YearlyPrice: 2990},
		{Name: "Enterprise", MonthlyPrice: 999, YearlyPrice: 9990},
	}
	for _, req := range seed {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatal(err)
		}
	}

	plans, _, err := svc.List(ctx, pagination.Params{Page: 1, Limit: 10, Search: "grow"})
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 1 || plans[0].Name != "Growth" {
		t.Errorf("name search = %v", names(plans))
	}

	// A numeric term matches either price exactly.
	plans, _, err = svc.List(ctx, pagination.Params{Page: 1, Limit: 10, Search: "299"})
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 1 || plans[0].Name != "Growth" {
		t.Errorf("price search = %v", names(plans))
	}

	// Dropdown mode: no paging params returns the full set.
	plans, _, err = svc.List(ctx, pagination.Params{})
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 3 {
		t.Errorf("dropdown = %d plans, want 3", len(plans))
	}
}

func names(plans []*Plan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.Name
	}
	return out
}
