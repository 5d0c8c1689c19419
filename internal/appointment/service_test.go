package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vidasalud-clinic/admission-service/internal/messaging"
	"github.com/vidasalud-clinic/admission-service/internal/testutil"
)

// mockRepository implements RepositoryInterface with configurable function fields
type mockRepository struct {
	createAppointmentFunc func(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error)
	getAppointmentFunc    func(ctx context.Context, id string) (*AppointmentResponse, error)
	listAppointmentsFunc  func(ctx context.Context, patientID string) ([]AppointmentResponse, error)
	updateAppointmentFunc func(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error)
	cancelAppointmentFunc func(ctx context.Context, id string) (*AppointmentResponse, error)
}

func (m *mockRepository) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error) {
	return m.createAppointmentFunc(ctx, req)
}

func (m *mockRepository) GetAppointment(ctx context.Context, id string) (*AppointmentResponse, error) {
	return m.getAppointmentFunc(ctx, id)
}

func (m *mockRepository) ListAppointments(ctx context.Context, patientID string) ([]AppointmentResponse, error) {
	return m.listAppointmentsFunc(ctx, patientID)
}

func (m *mockRepository) UpdateAppointment(ctx context.Context, id string, req UpdateAppointmentRequest) (*AppointmentResponse, error) {
	return m.updateAppointmentFunc(ctx, id, req)
}

func (m *mockRepository) CancelAppointment(ctx context.Context, id string) (*AppointmentResponse, error) {
	return m.cancelAppointmentFunc(ctx, id)
}

// TestCreateAppointment_Success tests scheduling plus the event
func TestCreateAppointment_Success(t *testing.T) {
	mockRepo := &mockRepository{
		createAppointmentFunc: func(ctx context.Context, req CreateAppointmentRequest) (*AppointmentResponse, error) {
			return &AppointmentResponse{
				ID:              "appt-1",
				PatientID:       req.PatientID,
				AppointmentType: req.AppointmentType,
				ScheduledAt:     req.ScheduledAt,
				Status:          StatusScheduled,
				CreatedAt:       time.Now(),
			}, nil
		},
	}
	mockPub := testutil.NewMockPublisher()

	service := NewService(mockRepo, mockPub)

	appointment, err := service.CreateAppointment(context.Background(), CreateAppointmentRequest{
		PatientID:       "patient-123",
		AppointmentType: TypeConsultation,
		ScheduledAt:     time.Now().Add(48 * time.Hour),
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if appointment.Status != StatusScheduled {
		t.Errorf("Expected scheduled status, got %s", appointment.Status)
	}

	mockPub.AssertEventCount(t, messaging.EventAppointmentScheduled, 1)
}

// TestCreateAppointment_Validation tests rejection of bad requests
func TestCreateAppointment_Validation(t *testing.T) {
	mockPub := testutil.NewMockPublisher()
	service := NewService(&mockRepository{}, mockPub)

	future := time.Now().Add(24 * time.Hour)

	testCases := []struct {
		name string
		req  CreateAppointmentRequest
	}{
		{
			name: "Missing patient ID",
			req:  CreateAppointmentRequest{AppointmentType: TypeConsultation, ScheduledAt: future},
		},
		{
			name: "Unknown appointment type",
			req:  CreateAppointmentRequest{PatientID: "p-1", AppointmentType: "walk_in", ScheduledAt: future},
		},
		{
			name: "Missing scheduled time",
			req:  CreateAppointmentRequest{PatientID: "p-1", AppointmentType: TypeConsultation},
		},
		{
			name: "Scheduled in the past",
			req:  CreateAppointmentRequest{PatientID: "p-1", AppointmentType: TypeConsultation, ScheduledAt: time.Now().Add(-time.Hour)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateAppointment(context.Background(), tc.req)
			if err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}

	mockPub.AssertEventNotPublished(t, messaging.EventAppointmentScheduled)
}

// TestUpdateAppointment_InvalidStatus tests status validation
func TestUpdateAppointment_InvalidStatus(t *testing.T) {
	service := NewService(&mockRepository{}, testutil.NewMockPublisher())

	badStatus := "postponed"
	_, err := service.UpdateAppointment(context.Background(), "appt-1", UpdateAppointmentRequest{Status: &badStatus})
	if err == nil {
		t.Error("Expected validation error, got nil")
	}
}

// TestCancelAppointment_PublishesEvent tests the cancellation event
func TestCancelAppointment_PublishesEvent(t *testing.T) {
	mockRepo := &mockRepository{
		cancelAppointmentFunc: func(ctx context.Context, id string) (*AppointmentResponse, error) {
			return &AppointmentResponse{ID: id, PatientID: "patient-123", Status: StatusCancelled}, nil
		},
	}
	mockPub := testutil.NewMockPublisher()

	service := NewService(mockRepo, mockPub)

	appointment, err := service.CancelAppointment(context.Background(), "appt-1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if appointment.Status != StatusCancelled {
		t.Errorf("Expected cancelled status, got %s", appointment.Status)
	}

	mockPub.AssertEventCount(t, messaging.EventAppointmentCancelled, 1)
	event := mockPub.GetLastEventByKey(messaging.EventAppointmentCancelled)
	cancelled, ok := event.EventData.(messaging.AppointmentCancelledEvent)
	if !ok {
		t.Fatalf("Expected AppointmentCancelledEvent, got %T", event.EventData)
	}
	if cancelled.Data.AppointmentID != "appt-1" {
		t.Errorf("Expected appointment ID 'appt-1', got '%s'", cancelled.Data.AppointmentID)
	}
}

// TestCancelAppointment_NotFound tests the sentinel pass-through
func TestCancelAppointment_NotFound(t *testing.T) {
	mockRepo := &mockRepository{
		cancelAppointmentFunc: func(ctx context.Context, id string) (*AppointmentResponse, error) {
			return nil, ErrNotFound
		},
	}
	mockPub := testutil.NewMockPublisher()

	service := NewService(mockRepo, mockPub)

	_, err := service.CancelAppointment(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	mockPub.AssertEventNotPublished(t, messaging.EventAppointmentCancelled)
}

// TestListAppointments_EmptyResult tests that an empty list is a slice, not nil
func TestListAppointments_EmptyResult(t *testing.T) {
	mockRepo := &mockRepository{
		listAppointmentsFunc: func(ctx context.Context, patientID string) ([]AppointmentResponse, error) {
			return nil, nil
		},
	}

	service := NewService(mockRepo, testutil.NewMockPublisher())

	appointments, err := service.ListAppointments(context.Background(), "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if appointments == nil {
		t.Error("Expected empty slice, got nil")
	}
}
