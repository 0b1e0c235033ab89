package services

import (
	"testing"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
)

type memEnquiryRepo struct {
	rows map[string]*catalog.Enquiry
}

func newMemEnquiryRepo() *memEnquiryRepo {
	return &memEnquiryRepo{rows: make(map[string]*catalog.Enquiry)}
}

func (r *memEnquiryRepo) FindByID(id string) (*catalog.Enquiry, error) {
	return r.rows[id], nil
}

func (r *memEnquiryRepo) FindAll(filter repositories.ListFilter) ([]*catalog.Enquiry, error) {
	enquiries := []*catalog.Enquiry{}
	for _, enquiry := range r.rows {
		if filter.Status != "" && enquiry.Status != filter.Status {
			continue
		}
		enquiries = append(enquiries, enquiry)
	}
	return enquiries, nil
}

func (r *memEnquiryRepo) Store(enquiry *catalog.Enquiry) error {
	r.rows[enquiry.ID] = enquiry
	return nil
}

func (r *memEnquiryRepo) Update(enquiry *catalog.Enquiry) error {
	r.rows[enquiry.ID] = enquiry
	return nil
}

func (r *memEnquiryRepo) Delete(id string) error {
	delete(r.rows, id)
	return nil
}

func newEnquiryService(t *testing.T, repo repositories.EnquiryRepository, bus messaging.ChangePublisher) *EnquiryService {
	t.Helper()
	// nil mailer: enquiry intake must work without a configured email key
	return NewEnquiryService(repo, nil, bus, testLogger(t))
}

func TestEnquiryCreate_DefaultsStatusAndPublishes(t *testing.T) {
	bus := &recordingBus{}
	svc := newEnquiryService(t, newMemEnquiryRepo(), bus)

	enquiry := &catalog.Enquiry{
		Name:    "Asha Gurung",
		Email:   "asha@example.com",
		Subject: "Winter departures",
		Message: "Do you run winter departures?",
	}
	if err := svc.Create(enquiry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enquiry.Status != "new" {
		t.Fatalf("expected status new, got %q", enquiry.Status)
	}
	if enquiry.ID == "" {
		t.Fatal("expected an assigned ID")
	}

	if len(bus.changes) != 1 {
		t.Fatalf("expected 1 change event, got %d", len(bus.changes))
	}
	if bus.changes[0].Table != "enquiries" || bus.changes[0].Op != messaging.OpInsert {
		t.Fatalf("unexpected change event: %+v", bus.changes[0])
	}
}

func TestEnquiryCreate_Validation(t *testing.T) {
	svc := newEnquiryService(t, newMemEnquiryRepo(), &recordingBus{})

	cases := []struct {
		name    string
		enquiry *catalog.Enquiry
	}{
		{"missing name", &catalog.Enquiry{Email: "a@b.com", Subject: "s", Message: "hi"}},
		{"missing email", &catalog.Enquiry{Name: "A", Subject: "s", Message: "hi"}},
		{"malformed email", &catalog.Enquiry{Name: "A", Email: "not-an-email", Subject: "s", Message: "hi"}},
		{"missing subject", &catalog.Enquiry{Name: "A", Email: "a@b.com", Message: "hi"}},
		{"missing message", &catalog.Enquiry{Name: "A", Email: "a@b.com", Subject: "s"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Create(tc.enquiry); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestEnquiryUpdateStatus_MarksReadPastNew(t *testing.T) {
	bus := &recordingBus{}
	repo := newMemEnquiryRepo()
	svc := newEnquiryService(t, repo, bus)

	enquiry := &catalog.Enquiry{Name: "Asha", Email: "asha@example.com", Subject: "s", Message: "hi"}
	if err := svc.Create(enquiry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.UpdateStatus(enquiry.ID, "replied")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "replied" || !updated.IsRead {
		t.Fatalf("unexpected state after transition: %+v", updated)
	}
}

func TestEnquiryUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newEnquiryService(t, newMemEnquiryRepo(), &recordingBus{})

	if _, err := svc.UpdateStatus("e1", "spam"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
