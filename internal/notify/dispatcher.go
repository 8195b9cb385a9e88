package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/bloodlink/bloodlink/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const fanOutLimit = 8

type DonorFinder interface {
	FindMatchingDonors(ctx context.Context, bloodGroup, city string) ([]domain.User, error)
}

type Publisher interface {
	Publish(topic string, n Notification)
}

// Dispatcher matches donors to emergency requests and fans notifications
// out to the subscription registry. Runs independently of the state
// mutation that triggered it: failures are logged and swallowed, never
// surfaced to the caller.
type Dispatcher struct {
	donors DonorFinder
	broker Publisher
}

func NewDispatcher(donors DonorFinder, broker Publisher) *Dispatcher {
	return &Dispatcher{
		donors: donors,
		broker: broker,
	}
}

// DispatchNewRequest notifies every matching donor, the requester, the
// admin room and the blood-group and city rooms about a new request.
// Returns the topics it addressed.
func (d *Dispatcher) DispatchNewRequest(ctx context.Context, req *domain.EmergencyRequest) []string {
	n := Notification{
		Type:      TypeNewRequest,
		Title:     "Emergency blood request",
		Message:   fmt.Sprintf("%d unit(s) of %s needed at %s by %s", req.UnitsRequired, req.BloodGroup, req.HospitalName, req.RequiredBy.Format(time.RFC3339)),
		RequestID: req.ID,
		CreatedAt: time.Now(),
	}

	targets := []string{
		TopicUser(req.RecipientID),
		TopicAdminRoom,
		TopicBloodGroup(req.BloodGroup),
		TopicCity(req.HospitalCity),
	}

	donors, err := d.donors.FindMatchingDonors(ctx, req.BloodGroup, req.HospitalCity)
	if err != nil {
		zap.L().Warn("donor matching failed, skipping donor fan-out", zap.Error(err))
	}
	for _, donor := range donors {
		if !domain.CanDonate(&donor, time.Now()) {
			continue
		}
		targets = append(targets, TopicDonor(donor.ID))
	}

	d.fanOut(ctx, targets, n)
	return targets
}

// DispatchResponse notifies the requester and the admin room that a donor
// responded. Returns the topics it addressed.
func (d *Dispatcher) DispatchResponse(ctx context.Context, req *domain.EmergencyRequest, resp *domain.DonorResponse) []string {
	n := Notification{
		Type:      TypeDonorResponse,
		Title:     "Donor response",
		Message:   fmt.Sprintf("donor %d responded %q to request %d", resp.DonorID, resp.ResponseType, req.ID),
		RequestID: req.ID,
		CreatedAt: time.Now(),
	}

	targets := []string{TopicUser(req.RecipientID), TopicAdminRoom}
	d.fanOut(ctx, targets, n)
	return targets
}

// DispatchSelection tells the chosen donor and the admin room about a
// selection. Returns the topics it addressed.
func (d *Dispatcher) DispatchSelection(ctx context.Context, req *domain.EmergencyRequest, donorID int) []string {
	n := Notification{
		Type:      TypeDonorSelected,
		Title:     "You have been selected",
		Message:   fmt.Sprintf("you were selected for request %d at %s", req.ID, req.HospitalName),
		RequestID: req.ID,
		CreatedAt: time.Now(),
	}

	targets := []string{TopicDonor(donorID), TopicAdminRoom}
	d.fanOut(ctx, targets, n)
	return targets
}

// fanOut publishes to all targets with bounded concurrency. Ordering
// across recipients is not guaranteed.
func (d *Dispatcher) fanOut(ctx context.Context, targets []string, n Notification) {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for _, topic := range targets {
		topic := topic
		g.Go(func() error {
			d.broker.Publish(topic, n)
			return nil
		})
	}
	_ = g.Wait()
}
