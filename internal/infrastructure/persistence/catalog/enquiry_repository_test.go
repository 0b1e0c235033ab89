package catalog

import (
	"testing"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
)

func TestEnquiryRepository_StoreDefaultsStatus(t *testing.T) {
	repo := NewEnquiryRepository(testDB(t), testLogger(t))

	enquiry := &catalog.Enquiry{
		ID:      "e1",
		Name:    "Asha Gurung",
		Email:   "asha@example.com",
		Subject: "Winter departures",
		Message: "Do you run treks in January?",
	}
	if err := repo.Store(enquiry); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	loaded, err := repo.FindByID("e1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected enquiry, got nil")
	}
	if loaded.Status != "new" {
		t.Fatalf("expected status new, got %q", loaded.Status)
	}
	if loaded.IsRead {
		t.Fatal("new enquiry must start unread")
	}
}

func TestEnquiryRepository_StatusFilter(t *testing.T) {
	repo := NewEnquiryRepository(testDB(t), testLogger(t))

	for _, enquiry := range []*catalog.Enquiry{
		{ID: "e1", Name: "A", Email: "a@b.com", Message: "m", Status: "new"},
		{ID: "e2", Name: "B", Email: "b@b.com", Message: "m", Status: "replied"},
		{ID: "e3", Name: "C", Email: "c@b.com", Message: "m", Status: "new"},
	} {
		if err := repo.Store(enquiry); err != nil {
			t.Fatalf("store failed: %v", err)
		}
	}

	fresh, err := repo.FindAll(repositories.ListFilter{Status: "new"})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(fresh) != 2 {
		t.Fatalf("expected 2 new enquiries, got %d", len(fresh))
	}
}

func TestEnquiryRepository_UpdateOnlyTouchesTriageFields(t *testing.T) {
	repo := NewEnquiryRepository(testDB(t), testLogger(t))

	enquiry := &catalog.Enquiry{ID: "e1", Name: "Asha", Email: "asha@example.com", Message: "original"}
	if err := repo.Store(enquiry); err != nil {
		t.Fatalf("store failed: %v", err)
	}

	enquiry.Status = "read"
	enquiry.IsRead = true
	enquiry.Message = "attempted rewrite"
	if err := repo.Update(enquiry); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	loaded, err := repo.FindByID("e1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if loaded.Status != "read" || !loaded.IsRead {
		t.Fatalf("triage fields not updated: %+v", loaded)
	}
	if loaded.Message != "original" {
		t.Fatalf("message must be immutable after intake, got %q", loaded.Message)
	}
	if loaded.UpdatedAt == nil {
		t.Fatal("expected updated_at to be set")
	}
}
