package payment

import (
	"errors"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestBuild(t *testing.T) {
	ownerSub := strPtr("owner-sub-1")

	p, err := Build(&RecordRequest{
		Amount:              150,
		PaymentMethod:       "card",
		PaymentDate:         "2024-03-15",
		SubscriptionType:    "OWNER",
		OwnerSubscriptionID: ownerSub,
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Error("Build should assign an id")
	}
	if !p.PaymentDate.Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("payment date = %v", p.PaymentDate)
	}
	if p.SubscriptionType != TypeOwner {
		t.Errorf("type = %v", p.SubscriptionType)
	}
}

func TestBuildDefaultsPaymentDate(t *testing.T) {
	before := time.Now()
	p, err := Build(&RecordRequest{
		Amount:               10,
		PaymentMethod:        "cash",
		SubscriptionType:     "MEMBER",
		MemberSubscriptionID: strPtr("member-sub-1"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.PaymentDate.Before(before) {
		t.Errorf("payment date = %v, want >= %v", p.PaymentDate, before)
	}
}

func TestBuildValidation(t *testing.T) {
	ownerSub := strPtr("owner-sub-1")
	memberSub := strPtr("member-sub-1")

	tests := []struct {
		name string
		req  *RecordRequest
		want error
	}{
		{
			"zero amount",
			&RecordRequest{SubscriptionType: "OWNER", OwnerSubscriptionID: ownerSub},
			ErrInvalidAmount,
		},
		{
			"negative amount",
			&RecordRequest{Amount: -5, SubscriptionType: "OWNER", OwnerSubscriptionID: ownerSub},
			ErrInvalidAmount,
		},
		{
			"unknown type",
			&RecordRequest{Amount: 10, SubscriptionType: "TRIAL", OwnerSubscriptionID: ownerSub},
			ErrInvalidType,
		},
		{
			"no link",
			&RecordRequest{Amount: 10, SubscriptionType: "OWNER"},
			ErrInvalidLink,
		},
		{
			"both links",
			&RecordRequest{Amount: 10, SubscriptionType: "OWNER", OwnerSubscriptionID: ownerSub, MemberSubscriptionID: memberSub},
			ErrInvalidLink,
		},
		{
			"type and link mismatch",
			&RecordRequest{Amount: 10, SubscriptionType: "MEMBER", OwnerSubscriptionID: ownerSub},
			ErrInvalidLink,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.req); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildBadDate(t *testing.T) {
	_, err := Build(&RecordRequest{
		Amount:              10,
		SubscriptionType:    "OWNER",
		OwnerSubscriptionID: strPtr("owner-sub-1"),
		PaymentDate:         "15/03/2024",
	})
	if err == nil {
		t.Fatal("expected error for unparseable date")
	}
}
