package handlers

import "testing"

func TestDefaultShopSetting(t *testing.T) {
	s := defaultShopSetting()

	if s.ID != shopStatusID {
		t.Fatalf("expected singleton id %q, got %q", shopStatusID, s.ID)
	}
	// A fresh store reports the shop open with no announcement.
	if !s.IsOpen {
		t.Fatal("expected a fresh shop-status singleton to be open")
	}
	if s.Announcement != "" {
		t.Fatalf("expected empty announcement, got %q", s.Announcement)
	}
}
