package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bloodlink/bloodlink/internal/domain"
)

func NewMock(t *testing.T) (*Dispatcher, *MockDonorFinder, *MockPublisher) {
	ctrl := gomock.NewController(t)
	donors := NewMockDonorFinder(ctrl)
	broker := NewMockPublisher(ctrl)

	dispatcher := NewDispatcher(donors, broker)
	defer ctrl.Finish()
	return dispatcher, donors, broker
}

func dispatchRequest() *domain.EmergencyRequest {
	return &domain.EmergencyRequest{
		ID:            1,
		RecipientID:   9,
		BloodGroup:    "O-",
		UnitsRequired: 3,
		RequiredBy:    time.Now().Add(24 * time.Hour),
		HospitalName:  "City Hospital",
		HospitalCity:  "Dhaka",
		Status:        domain.RequestActive,
	}
}

func TestDispatchNewRequest(t *testing.T) {
	dispatcher, donors, broker := NewMock(t)
	req := dispatchRequest()

	recent := time.Now().AddDate(0, 0, -10)
	donors.EXPECT().FindMatchingDonors(gomock.Any(), "O-", "Dhaka").Return([]domain.User{
		{ID: 7, Role: domain.RoleDonor, Available: true},
		{ID: 8, Role: domain.RoleDonor, Available: true, LastDonationDate: &recent, LastDonationType: domain.DonationWholeBlood},
	}, nil)
	broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(5)

	targets := dispatcher.DispatchNewRequest(context.Background(), req)

	assert.Contains(t, targets, "user-9")
	assert.Contains(t, targets, "admin-room")
	assert.Contains(t, targets, "donors-O-")
	assert.Contains(t, targets, "donors-Dhaka")
	assert.Contains(t, targets, "donor-7")
	assert.NotContains(t, targets, "donor-8")
}

func TestDispatchNewRequestMatchingFails(t *testing.T) {
	dispatcher, donors, broker := NewMock(t)
	req := dispatchRequest()

	donors.EXPECT().FindMatchingDonors(gomock.Any(), "O-", "Dhaka").Return(nil, errors.New("database error"))
	broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(4)

	targets := dispatcher.DispatchNewRequest(context.Background(), req)

	assert.Len(t, targets, 4)
	assert.NotContains(t, targets, "donor-7")
}

func TestDispatchResponse(t *testing.T) {
	dispatcher, _, broker := NewMock(t)
	req := dispatchRequest()
	resp := &domain.DonorResponse{RequestID: 1, DonorID: 7, ResponseType: domain.ResponseConfirmed}

	broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2)

	targets := dispatcher.DispatchResponse(context.Background(), req, resp)

	assert.Equal(t, []string{"user-9", "admin-room"}, targets)
}

func TestDispatchSelection(t *testing.T) {
	dispatcher, _, broker := NewMock(t)
	req := dispatchRequest()

	broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2)

	targets := dispatcher.DispatchSelection(context.Background(), req, 7)

	assert.Equal(t, []string{"donor-7", "admin-room"}, targets)
}
