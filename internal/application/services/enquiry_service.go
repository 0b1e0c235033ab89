package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/email"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/observability/logging"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/security"
)

var validEnquiryStatuses = map[string]bool{
	"new":      true,
	"read":     true,
	"replied":  true,
	"archived": true,
}

// EnquiryService handles visitor enquiry intake and back-office triage.
type EnquiryService struct {
	enquiryRepo repositories.EnquiryRepository
	mailer      email.Service
	bus         messaging.ChangePublisher
	logger      *logging.ChanneledLogger
}

func NewEnquiryService(enquiryRepo repositories.EnquiryRepository, mailer email.Service, bus messaging.ChangePublisher, logger *logging.ChanneledLogger) *EnquiryService {
	return &EnquiryService{enquiryRepo: enquiryRepo, mailer: mailer, bus: bus, logger: logger}
}

func (s *EnquiryService) GetAll(filter repositories.ListFilter) ([]*catalog.Enquiry, error) {
	enquiries, err := s.enquiryRepo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get enquiries: %w", err)
	}
	return enquiries, nil
}

func (s *EnquiryService) GetByID(id string) (*catalog.Enquiry, error) {
	if id == "" {
		return nil, fmt.Errorf("enquiry ID cannot be empty")
	}
	enquiry, err := s.enquiryRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get enquiry %s: %w", id, err)
	}
	return enquiry, nil
}

// Create persists the enquiry first, then notifies staff by email in the
// background. The visitor's submission never fails on a mail outage.
func (s *EnquiryService) Create(enquiry *catalog.Enquiry) error {
	if enquiry == nil {
		return fmt.Errorf("enquiry cannot be nil")
	}
	if enquiry.Name == "" {
		return fmt.Errorf("enquiry name cannot be empty")
	}
	if enquiry.Email == "" {
		return fmt.Errorf("enquiry email cannot be empty")
	}
	if !strings.Contains(enquiry.Email, "@") {
		return fmt.Errorf("enquiry email is not valid")
	}
	if enquiry.Subject == "" {
		return fmt.Errorf("enquiry subject cannot be empty")
	}
	if enquiry.Message == "" {
		return fmt.Errorf("enquiry message cannot be empty")
	}
	if enquiry.ID == "" {
		enquiry.ID = security.GenerateULID()
	}
	if enquiry.Status == "" {
		enquiry.Status = "new"
	}

	if err := s.enquiryRepo.Store(enquiry); err != nil {
		return fmt.Errorf("failed to create enquiry %s: %w", enquiry.ID, err)
	}

	if s.mailer != nil {
		go s.notify(enquiry)
	}

	s.bus.Publish(messaging.Change{Table: "enquiries", Op: messaging.OpInsert, RowID: enquiry.ID})
	return nil
}

func (s *EnquiryService) notify(enquiry *catalog.Enquiry) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.mailer.SendEnquiryNotification(ctx, enquiry); err != nil {
		s.logger.Email().Error("Failed to send enquiry notification", "enquiryId", enquiry.ID, "error", err.Error())
		return
	}
	s.logger.Email().Info("Enquiry notification sent", "enquiryId", enquiry.ID)
}

// UpdateStatus transitions an enquiry through the triage workflow and
// marks it read when the status moves past "new".
func (s *EnquiryService) UpdateStatus(id, status string) (*catalog.Enquiry, error) {
	if id == "" {
		return nil, fmt.Errorf("enquiry ID cannot be empty")
	}
	if !validEnquiryStatuses[status] {
		return nil, fmt.Errorf("invalid enquiry status: %s", status)
	}

	enquiry, err := s.enquiryRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load enquiry %s: %w", id, err)
	}
	if enquiry == nil {
		return nil, nil
	}

	enquiry.Status = status
	if status != "new" {
		enquiry.IsRead = true
	}

	if err := s.enquiryRepo.Update(enquiry); err != nil {
		return nil, fmt.Errorf("failed to update enquiry %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "enquiries", Op: messaging.OpUpdate, RowID: id})
	return enquiry, nil
}

func (s *EnquiryService) MarkRead(id string) error {
	if id == "" {
		return fmt.Errorf("enquiry ID cannot be empty")
	}

	enquiry, err := s.enquiryRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("failed to load enquiry %s: %w", id, err)
	}
	if enquiry == nil {
		return fmt.Errorf("enquiry %s not found", id)
	}
	if enquiry.IsRead {
		return nil
	}

	enquiry.IsRead = true
	if err := s.enquiryRepo.Update(enquiry); err != nil {
		return fmt.Errorf("failed to mark enquiry %s as read: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "enquiries", Op: messaging.OpUpdate, RowID: id})
	return nil
}

func (s *EnquiryService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("enquiry ID cannot be empty")
	}

	if err := s.enquiryRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete enquiry %s: %w", id, err)
	}

	s.bus.Publish(messaging.Change{Table: "enquiries", Op: messaging.OpDelete, RowID: id})
	return nil
}
