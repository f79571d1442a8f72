package request

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/matching"
	"github.com/gdugdh24/roommate-backend/internal/repository"
)

const (
	fallbackSenderName = "Someone"
	enrichTimeout      = 20 * time.Second
)

// Wingman writes the AI summary attached to accepted requests.
type Wingman interface {
	ExplainMatch(ctx context.Context, a, b *domain.Profile, breakdown matching.Breakdown) (string, error)
	Icebreakers(ctx context.Context, a, b *domain.Profile) ([]string, error)
}

type SendStatus string

const (
	SendSent           SendStatus = "sent"
	SendAlreadySent    SendStatus = "already_sent"
	SendAlreadyMatched SendStatus = "already_matched"
)

type SendResult struct {
	Status  SendStatus              `json:"status"`
	Request *domain.RoommateRequest `json:"request,omitempty"`
}

type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// PendingEntry is a pending request seen from one participant's side.
type PendingEntry struct {
	Request   *domain.RoommateRequest `json:"request"`
	Direction Direction               `json:"direction"`
	Profile   *domain.Profile         `json:"profile,omitempty"`
}

// MatchEntry is an accepted request plus the partner's full profile.
type MatchEntry struct {
	Request *domain.RoommateRequest `json:"request"`
	Profile *domain.Profile         `json:"profile"`
}

type RequestUseCase struct {
	requestRepo repository.RequestRepository
	profileRepo repository.ProfileRepository
	wingman     Wingman
	aiEnabled   bool
	log         *zap.Logger
}

// NewRequestUseCase builds the request workflow. wingman may be nil, in
// which case accepted requests carry no AI summary.
func NewRequestUseCase(
	requestRepo repository.RequestRepository,
	profileRepo repository.ProfileRepository,
	wingman Wingman,
	aiEnabled bool,
	log *zap.Logger,
) *RequestUseCase {
	return &RequestUseCase{
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		wingman:     wingman,
		aiEnabled:   aiEnabled && wingman != nil,
		log:         log,
	}
}

// Send asks toUID to become fromUID's roommate. A pending or accepted
// request in either direction short-circuits; a declined one is replaced.
// Both users need a profile row.
func (uc *RequestUseCase) Send(ctx context.Context, fromUID, toUID string) (*SendResult, error) {
	if fromUID == toUID {
		return nil, domain.ErrCannotRequestSelf
	}

	if _, err := uc.profileRepo.GetByID(ctx, toUID); err != nil {
		return nil, err
	}
	sender, err := uc.profileRepo.GetByID(ctx, fromUID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("sender has no profile: %w", err)
		}
		return nil, fmt.Errorf("failed to get sender profile: %w", err)
	}

	existing, err := uc.requestRepo.GetBetween(ctx, fromUID, toUID)
	if err != nil && !errors.Is(err, domain.ErrRequestNotFound) {
		return nil, fmt.Errorf("failed to look up existing request: %w", err)
	}
	if existing != nil {
		switch existing.Status {
		case domain.RequestAccepted:
			return &SendResult{Status: SendAlreadyMatched, Request: existing}, nil
		case domain.RequestPending:
			return &SendResult{Status: SendAlreadySent, Request: existing}, nil
		}
	}

	req := &domain.RoommateRequest{
		ID:       domain.RequestID(fromUID, toUID),
		FromUID:  fromUID,
		ToUID:    toUID,
		FromName: fallbackSenderName,
		Status:   domain.RequestPending,
	}
	if sender.FirstName != "" {
		req.FromName = sender.FirstName
	}
	if sender.PhotoURL != nil {
		req.FromPhoto = *sender.PhotoURL
	}

	if err := uc.requestRepo.Save(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}

	uc.log.Info("roommate request sent",
		zap.String("request_id", req.ID),
		zap.String("from", fromUID),
		zap.String("to", toUID),
	)

	return &SendResult{Status: SendSent, Request: req}, nil
}

// Respond lets the recipient accept or decline a pending request.
func (uc *RequestUseCase) Respond(ctx context.Context, requestID, responderUID string, status domain.RequestStatus) (*domain.RoommateRequest, error) {
	if status != domain.RequestAccepted && status != domain.RequestDeclined {
		return nil, domain.ErrInvalidStatus
	}

	req, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ToUID != responderUID {
		return nil, domain.ErrNotRequestRecipient
	}
	if req.Status != domain.RequestPending {
		return nil, domain.ErrRequestNotPending
	}

	if err := uc.requestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}
	req.Status = status

	uc.log.Info("roommate request answered",
		zap.String("request_id", requestID),
		zap.String("status", string(status)),
	)

	if status == domain.RequestAccepted && uc.aiEnabled {
		uc.enrich(ctx, req)
	}

	return req, nil
}

// enrich attaches the AI explanation and icebreakers. Failures only log.
func (uc *RequestUseCase) enrich(ctx context.Context, req *domain.RoommateRequest) {
	ctx, cancel := context.WithTimeout(ctx, enrichTimeout)
	defer cancel()

	log := uc.log.With(zap.String("request_id", req.ID))

	from, err := uc.profileRepo.GetByID(ctx, req.FromUID)
	if err != nil {
		log.Warn("skipping AI summary: sender profile unavailable", zap.Error(err))
		return
	}
	to, err := uc.profileRepo.GetByID(ctx, req.ToUID)
	if err != nil {
		log.Warn("skipping AI summary: recipient profile unavailable", zap.Error(err))
		return
	}

	explanation, err := uc.wingman.ExplainMatch(ctx, from, to, matching.Explain(from, to))
	if err != nil {
		log.Warn("AI explanation failed", zap.Error(err))
		return
	}

	icebreakers, err := uc.wingman.Icebreakers(ctx, from, to)
	if err != nil {
		log.Warn("AI icebreakers failed", zap.Error(err))
		icebreakers = nil
	}

	if err := uc.requestRepo.UpdateAIFields(ctx, req.ID, explanation, icebreakers); err != nil {
		log.Error("failed to store AI summary", zap.Error(err))
		return
	}
	req.Explanation = &explanation
	req.Icebreakers = icebreakers
}

// Relationship returns the request between two users, or nil if they
// have never interacted.
func (uc *RequestUseCase) Relationship(ctx context.Context, uid, otherUID string) (*domain.RoommateRequest, error) {
	req, err := uc.requestRepo.GetBetween(ctx, uid, otherUID)
	if errors.Is(err, domain.ErrRequestNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Matches lists accepted roommates, newest first, with contact details.
// Each partner appears once even if both users have accepted a request.
func (uc *RequestUseCase) Matches(ctx context.Context, uid string) ([]MatchEntry, error) {
	requests, err := uc.listBoth(ctx, uid, domain.RequestAccepted)
	if err != nil {
		return nil, err
	}
	profiles, err := uc.counterparts(ctx, uid, requests)
	if err != nil {
		return nil, err
	}

	matches := make([]MatchEntry, 0, len(requests))
	seen := make(map[string]bool, len(requests))
	for _, req := range requests {
		other, _ := req.GetOtherUserID(uid)
		p, ok := profiles[other]
		if !ok || seen[other] {
			continue
		}
		seen[other] = true
		matches = append(matches, MatchEntry{Request: req, Profile: p})
	}
	return matches, nil
}

// Pending lists pending requests in both directions, newest first.
func (uc *RequestUseCase) Pending(ctx context.Context, uid string) ([]PendingEntry, error) {
	requests, err := uc.listBoth(ctx, uid, domain.RequestPending)
	if err != nil {
		return nil, err
	}
	profiles, err := uc.counterparts(ctx, uid, requests)
	if err != nil {
		return nil, err
	}

	entries := make([]PendingEntry, 0, len(requests))
	for _, req := range requests {
		entry := PendingEntry{Request: req, Direction: DirectionReceived}
		if req.FromUID == uid {
			entry.Direction = DirectionSent
		}
		other, _ := req.GetOtherUserID(uid)
		if p, ok := profiles[other]; ok {
			entry.Profile = p.Public()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Incoming returns pending requests addressed to uid, newest first.
func (uc *RequestUseCase) Incoming(ctx context.Context, uid string) ([]*domain.RoommateRequest, error) {
	return uc.requestRepo.ListReceived(ctx, uid, domain.RequestPending)
}

func (uc *RequestUseCase) listBoth(ctx context.Context, uid string, status domain.RequestStatus) ([]*domain.RoommateRequest, error) {
	sent, err := uc.requestRepo.ListSent(ctx, uid, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent requests: %w", err)
	}
	received, err := uc.requestRepo.ListReceived(ctx, uid, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list received requests: %w", err)
	}

	all := append(sent, received...)
	slices.SortStableFunc(all, func(a, b *domain.RoommateRequest) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return all, nil
}

func (uc *RequestUseCase) counterparts(ctx context.Context, uid string, requests []*domain.RoommateRequest) (map[string]*domain.Profile, error) {
	if len(requests) == 0 {
		return map[string]*domain.Profile{}, nil
	}
	ids := make([]string, 0, len(requests))
	for _, req := range requests {
		if other, ok := req.GetOtherUserID(uid); ok {
			ids = append(ids, other)
		}
	}

	profiles, err := uc.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	byID := make(map[string]*domain.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	return byID, nil
}
