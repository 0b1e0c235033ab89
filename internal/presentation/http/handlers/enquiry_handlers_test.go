package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ShantiHimalaya/shanti-go/internal/application/services"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/entities/catalog"
	"github.com/ShantiHimalaya/shanti-go/internal/domain/repositories"
	"github.com/ShantiHimalaya/shanti-go/internal/infrastructure/messaging"
	"github.com/gin-gonic/gin"
)

type stubEnquiryRepo struct {
	stored []*catalog.Enquiry
}

func (r *stubEnquiryRepo) FindByID(id string) (*catalog.Enquiry, error) {
	for _, e := range r.stored {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *stubEnquiryRepo) FindAll(repositories.ListFilter) ([]*catalog.Enquiry, error) {
	return r.stored, nil
}

func (r *stubEnquiryRepo) Store(enquiry *catalog.Enquiry) error {
	r.stored = append(r.stored, enquiry)
	return nil
}

func (r *stubEnquiryRepo) Update(*catalog.Enquiry) error { return nil }
func (r *stubEnquiryRepo) Delete(string) error           { return nil }

func newEnquiryRouter(t *testing.T) (*gin.Engine, *stubEnquiryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testLogger(t)
	repo := &stubEnquiryRepo{}
	service := services.NewEnquiryService(repo, nil, messaging.NewChangeBus(4, logger), logger)
	enquiryHandlers := NewEnquiryHandlers(service, logger)

	r := gin.New()
	r.POST("/enquiries", enquiryHandlers.PostEnquiry)
	r.GET("/enquiries", enquiryHandlers.GetEnquiries)
	return r, repo
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostEnquiry(t *testing.T) {
	r, repo := newEnquiryRouter(t)

	w := postJSON(t, r, "/enquiries", `{
		"name": "Asha Gurung",
		"email": "asha@example.com",
		"subject": "Winter departures",
		"message": "Do you run treks in January?"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"enquiryId"`) {
		t.Fatalf("response missing enquiry id: %s", w.Body.String())
	}
	if len(repo.stored) != 1 {
		t.Fatalf("expected 1 stored enquiry, got %d", len(repo.stored))
	}
	if repo.stored[0].ID == "" {
		t.Fatal("stored enquiry must have an assigned id")
	}
	if repo.stored[0].Status != "new" {
		t.Fatalf("expected status new, got %q", repo.stored[0].Status)
	}
}

func TestPostEnquiry_MissingFields(t *testing.T) {
	r, repo := newEnquiryRouter(t)

	w := postJSON(t, r, "/enquiries", `{"name": "Asha"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(repo.stored) != 0 {
		t.Fatal("invalid submission must not be stored")
	}
}

func TestPostEnquiry_MissingSubject(t *testing.T) {
	r, repo := newEnquiryRouter(t)

	w := postJSON(t, r, "/enquiries", `{
		"name": "Asha",
		"email": "asha@example.com",
		"message": "Do you run treks in January?"
	}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.stored) != 0 {
		t.Fatal("invalid submission must not be stored")
	}
}

func TestPostEnquiry_MalformedEmail(t *testing.T) {
	r, repo := newEnquiryRouter(t)

	w := postJSON(t, r, "/enquiries", `{
		"name": "Asha",
		"email": "not-an-address",
		"subject": "Hello",
		"message": "hello"
	}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.stored) != 0 {
		t.Fatal("invalid submission must not be stored")
	}
}

func TestGetEnquiries(t *testing.T) {
	r, repo := newEnquiryRouter(t)
	repo.stored = []*catalog.Enquiry{
		{ID: "e1", Name: "A", Email: "a@b.com", Message: "m", Status: "new"},
		{ID: "e2", Name: "B", Email: "b@b.com", Message: "m", Status: "read"},
	}

	req := httptest.NewRequest(http.MethodGet, "/enquiries", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"count":2`) {
		t.Fatalf("expected count 2: %s", w.Body.String())
	}
}
