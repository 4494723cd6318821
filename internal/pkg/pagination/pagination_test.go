package pagination

import "testing"

func TestDropdown(t *testing.T) {
	if !(Params{}).Dropdown() {
		t.Error("empty params should be dropdown mode")
	}
	if (Params{Page: 1}).Dropdown() || (Params{Limit: 5}).Dropdown() || (Params{Search: "x"}).Dropdown() {
		t.Error("any supplied parameter disables dropdown mode")
	}
}

func TestNormalized(t *testing.T) {
	tests := []struct {
		name      string
		in        Params
		wantPage  int
		wantLimit int
	}{
		{"defaults", Params{}, 1, 20},
		{"explicit", Params{Page: 3, Limit: 10}, 3, 10},
		{"limit capped", Params{Page: 1, Limit: 500}, 1, 100},
		{"negative page", Params{Page: -1, Limit: 10}, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := tt.in.Normalized()
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("Normalized() = %d, %d, want %d, %d", page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Errorf("Offset() = %d, want 20", got)
	}
	if got := (Params{}).Offset(); got != 0 {
		t.Errorf("Offset() = %d, want 0", got)
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Params{}, 42)
	if meta.Page != 1 || meta.PageCount != 1 || meta.Total != 42 {
		t.Errorf("dropdown meta = %+v", meta)
	}

	meta = NewMeta(Params{Page: 2, Limit: 10}, 25)
	if meta.Page != 2 || meta.PageCount != 3 {
		t.Errorf("meta = %+v, want page 2 of 3", meta)
	}

	meta = NewMeta(Params{Page: 1, Limit: 10}, 0)
	if meta.PageCount != 1 {
		t.Errorf("empty result should still report one page, got %+v", meta)
	}
}
