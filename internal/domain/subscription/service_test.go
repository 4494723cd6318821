package subscription

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"gymhub/internal/domain/auth"
	"gymhub/internal/domain/gym"
	"gymhub/internal/domain/payment"
	"gymhub/internal/domain/plan"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:sub_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(
		&auth.User{},
		&plan.Plan{},
		&OwnerSubscription{},
		&MemberSubscription{},
		&payment.Payment{},
		&gym.Gym{},
		&gym.Member{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	db      *gorm.DB
	service *Service
	owner   *auth.User
	plan    *plan.Plan
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	db := testDB(t)

	owner := &auth.User{Email: "owner@example.com", Name: "Owner", Role: auth.RoleGymOwner}
	if err := db.Create(owner).Error; err != nil {
		t.Fatal(err)
	}
	p := &plan.Plan{
		Name: "Starter", MonthlyPrice: 100, YearlyPrice: 1000,
		MaxGyms: 2, MaxLocations: 4, MaxMembers: 50, MaxEquipment: 20,
		IsActive: true,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatal(err)
	}

	svc := NewService(
		db,
		NewRepository(db),
		plan.NewRepository(db),
		auth.NewRepository(db),
		gym.NewMemberRepository(db),
		payment.NewRepository(db),
	)
	svc.now = func() time.Time { return now }

	return &fixture{db: db, service: svc, owner: owner, plan: p}
}

func TestCreateComputesEndDate(t *testing.T) {
	now := date(2024, time.January, 15)
	f := newFixture(t, now)

	sub, err := f.service.Create(context.Background(), &CreateRequest{
		OwnerID:      f.owner.ID,
		PlanID:       f.plan.ID,
		BillingModel: "MONTHLY",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !sub.EndDate.Equal(date(2024, time.February, 15)) {
		t.Errorf("end date = %v, want 2024-02-15", sub.EndDate)
	}
	if !sub.IsActive || sub.IsExpired || sub.IsDeleted {
		t.Errorf("new subscription flags = %+v", sub)
	}
}

func TestCreateKeepsAtMostOneActive(t *testing.T) {
	now := date(2024, time.January, 15)
	f := newFixture(t, now)
	ctx := context.Background()

	first, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: f.owner.ID, PlanID: f.plan.ID, BillingModel: "MONTHLY",
	})
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: f.owner.ID, PlanID: f.plan.ID, BillingModel: "YEARLY",
	})
	if err != nil {
		t.Fatal(err)
	}

	var active []OwnerSubscription
	if err := f.db.Where("owner_id = ? AND is_active = ? AND is_expired = ? AND is_deleted = ?",
		f.owner.ID, true, false, false).Find(&active).Error; err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 {
		t.Fatalf("active rows = %d, want 1", len(active))
	}
	if active[0].ID != second.ID {
		t.Errorf("active = %s, want the newer subscription %s", active[0].ID, second.ID)
	}

	got, err := f.service.repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.IsActive {
		t.Error("first subscription should have been deactivated")
	}
}

func TestCreateRecordsPaymentAtomically(t *testing.T) {
	f := newFixture(t, date(2024, time.March, 1))
	ctx := context.Background()

	sub, err := f.service.Create(ctx, &CreateRequest{
		OwnerID:       f.owner.ID,
		PlanID:        f.plan.ID,
		BillingModel:  "MONTHLY",
		Amount:        100,
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatal(err)
	}

	var pays []payment.Payment
	if err := f.db.Where("owner_subscription_id = ?", sub.ID).Find(&pays).Error; err != nil {
		t.Fatal(err)
	}
	if len(pays) != 1 {
		t.Fatalf("payments = %d, want 1", len(pays))
	}
	if pays[0].Amount != 100 || pays[0].SubscriptionType != payment.TypeOwner {
		t.Errorf("payment = %+v", pays[0])
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	f := newFixture(t, date(2024, time.March, 1))
	ctx := context.Background()

	if _, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: 9999, PlanID: f.plan.ID, BillingModel: "MONTHLY",
	}); !errors.Is(err, ErrOwnerNotFound) {
		t.Errorf("unknown owner: err = %v, want ErrOwnerNotFound", err)
	}

	if _, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: f.owner.ID, PlanID: 9999, BillingModel: "MONTHLY",
	}); !errors.Is(err, ErrPlanUnavailable) {
		t.Errorf("unknown plan: err = %v, want ErrPlanUnavailable", err)
	}

	if err := f.db.Model(f.plan).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: f.owner.ID, PlanID: f.plan.ID, BillingModel: "MONTHLY",
	}); !errors.Is(err, ErrPlanUnavailable) {
		t.Errorf("inactive plan: err = %v, want ErrPlanUnavailable", err)
	}
	if err := f.db.Model(f.plan).Update("is_active", true).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: f.owner.ID, PlanID: f.plan.ID, BillingModel: "WEEKLY",
	}); !errors.Is(err, ErrInvalidBillingModel) {
		t.Errorf("bad model: err = %v, want ErrInvalidBillingModel", err)
	}

	if _, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: f.owner.ID, PlanID: f.plan.ID, BillingModel: "MONTHLY", StartDate: "not-a-date",
	}); !errors.Is(err, ErrInvalidStartDate) {
		t.Errorf("bad start: err = %v, want ErrInvalidStartDate", err)
	}
}

func TestCreateCarriesOverRemainingDays(t *testing.T) {
	now := date(2024, time.June, 1)
	f := newFixture(t, now)
	ctx := context.Background()

	// Previous subscription with 10 days left.
	prev := &OwnerSubscription{
		ID: "prev", OwnerID: f.owner.ID, PlanID: &f.plan.ID,
		BillingModel: BillingMonthly,
		StartDate:    date(2024, time.May, 11),
		EndDate:      date(2024, time.June, 11),
		IsActive:     true,
	}
	if err := f.db.Create(prev).Error; err != nil {
		t.Fatal(err)
	}

	sub, err := f.service.Create(ctx, &CreateRequest{
		OwnerID:                f.owner.ID,
		PlanID:                 f.plan.ID,
		BillingModel:           "MONTHLY",
		CarryOverRemainingDays: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !sub.EndDate.Equal(date(2024, time.July, 11)) {
		t.Errorf("end date = %v, want 2024-07-11 (month plus 10 carried days)", sub.EndDate)
	}
}

func TestToggleActiveDeactivatesOthers(t *testing.T) {
	f := newFixture(t, date(2024, time.June, 1))
	ctx := context.Background()

	first, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: f.owner.ID, PlanID: f.plan.ID, BillingModel: "MONTHLY",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: f.owner.ID, PlanID: f.plan.ID, BillingModel: "MONTHLY",
	}); err != nil {
		t.Fatal(err)
	}

	// Reactivating the first must switch the active row back.
	got, err := f.service.ToggleActive(ctx, first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsActive {
		t.Error("toggled subscription should be active")
	}

	var count int64
	if err := f.db.Model(&OwnerSubscription{}).
		Where("owner_id = ? AND is_active = ?", f.owner.ID, true).
		Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("active rows = %d, want 1", count)
	}
}

func TestStatusReadsQuotaFromPlan(t *testing.T) {
	now := date(2024, time.June, 1)
	f := newFixture(t, now)
	ctx := context.Background()

	if _, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: f.owner.ID, PlanID: f.plan.ID, BillingModel: "MONTHLY",
	}); err != nil {
		t.Fatal(err)
	}

	status, err := f.service.Status(ctx, f.owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !status.SubscriptionActive || status.SubscriptionExpired {
		t.Errorf("status flags = %+v", status)
	}
	if status.PlanName != "Starter" {
		t.Errorf("plan name = %q", status.PlanName)
	}
	if status.SubscriptionLimits == nil || status.SubscriptionLimits.MaxGyms != 2 {
		t.Errorf("limits = %+v", status.SubscriptionLimits)
	}
	if status.RemainingDays != 30 {
		t.Errorf("remaining days = %d, want 30", status.RemainingDays)
	}

	// Quota changes on the plan surface immediately, nothing is cached.
	if err := f.db.Model(f.plan).Update("max_gyms", 7).Error; err != nil {
		t.Fatal(err)
	}
	status, err = f.service.Status(ctx, f.owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if status.SubscriptionLimits.MaxGyms != 7 {
		t.Errorf("limits after plan change = %+v", status.SubscriptionLimits)
	}
}

func TestStatusWithoutSubscription(t *testing.T) {
	f := newFixture(t, date(2024, time.June, 1))

	status, err := f.service.Status(context.Background(), f.owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if status.Subscription != nil || status.SubscriptionActive {
		t.Errorf("status = %+v, want empty", status)
	}
}

type recordingNotifier struct {
	expired []string
}

func (n *recordingNotifier) SubscriptionExpired(ownerID int64, subscriptionID string) {
	n.expired = append(n.expired, subscriptionID)
}

func TestExpireDue(t *testing.T) {
	now := date(2024, time.June, 1)
	f := newFixture(t, now)
	ctx := context.Background()

	notifier := &recordingNotifier{}
	f.service.SetNotifier(notifier)

	overdue := &OwnerSubscription{
		ID: "overdue", OwnerID: f.owner.ID, PlanID: &f.plan.ID,
		BillingModel: BillingMonthly,
		StartDate:    date(2024, time.April, 1),
		EndDate:      date(2024, time.May, 1),
		IsActive:     true,
	}
	current := &OwnerSubscription{
		ID: "current", OwnerID: f.owner.ID, PlanID: &f.plan.ID,
		BillingModel: BillingMonthly,
		StartDate:    date(2024, time.May, 20),
		EndDate:      date(2024, time.June, 20),
		IsActive:     true,
	}
	for _, sub := range []*OwnerSubscription{overdue, current} {
		if err := f.db.Create(sub).Error; err != nil {
			t.Fatal(err)
		}
	}

	result, err := f.service.ExpireDue(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if result.OwnerExpired != 1 {
		t.Errorf("owner expired = %d, want 1", result.OwnerExpired)
	}

	got, err := f.service.repo.GetByID(ctx, "overdue")
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsExpired || got.IsActive {
		t.Errorf("overdue after sweep = %+v", got)
	}
	got, err = f.service.repo.GetByID(ctx, "current")
	if err != nil {
		t.Fatal(err)
	}
	if got.IsExpired || !got.IsActive {
		t.Errorf("current after sweep = %+v", got)
	}

	if len(notifier.expired) != 1 || notifier.expired[0] != "overdue" {
		t.Errorf("notified = %v, want [overdue]", notifier.expired)
	}

	// A second run finds nothing: the sweep is idempotent.
	result, err = f.service.ExpireDue(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if result.OwnerExpired != 0 {
		t.Errorf("second sweep expired %d, want 0", result.OwnerExpired)
	}
}

func TestLiveQuota(t *testing.T) {
	f := newFixture(t, date(2024, time.June, 1))
	ctx := context.Background()

	quota, err := f.service.LiveQuota(ctx, f.owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if quota != nil {
		t.Errorf("quota without subscription = %+v, want nil", quota)
	}

	if _, err := f.service.Create(ctx, &CreateRequest{
		OwnerID: f.owner.ID, PlanID: f.plan.ID, BillingModel: "MONTHLY",
	}); err != nil {
		t.Fatal(err)
	}

	quota, err = f.service.LiveQuota(ctx, f.owner.ID)
	if err != nil {
		t.Fatal(err)
	}
	if quota == nil || quota.MaxGyms != 2 || quota.MaxMembers != 50 {
		t.Errorf("quota = %+v", quota)
	}
}

func TestCreateMember(t *testing.T) {
	now := date(2024, time.June, 1)
	f := newFixture(t, now)
	ctx := context.Background()

	g := &gym.Gym{OwnerID: f.owner.ID, Name: "Main"}
	if err := f.db.Create(g).Error; err != nil {
		t.Fatal(err)
	}
	m := &gym.Member{GymID: g.ID, Name: "Alice"}
	if err := f.db.Create(m).Error; err != nil {
		t.Fatal(err)
	}

	sub, err := f.service.CreateMember(ctx, f.owner.ID, &CreateMemberRequest{
		MemberID: m.ID, Price: 50, BillingModel: "MONTHLY",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !sub.EndDate.Equal(date(2024, time.July, 1)) {
		t.Errorf("end date = %v, want 2024-07-01", sub.EndDate)
	}

	// Another owner cannot bill someone else's member.
	other := &auth.User{Email: "other@example.com", Role: auth.RoleGymOwner}
	if err := f.db.Create(other).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := f.service.CreateMember(ctx, other.ID, &CreateMemberRequest{
		MemberID: m.ID, Price: 50, BillingModel: "MONTHLY",
	}); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("err = %v, want ErrMemberNotFound", err)
	}
}
