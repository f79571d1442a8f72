package request

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gdugdh24/roommate-backend/internal/domain"
	"github.com/gdugdh24/roommate-backend/internal/matching"
	"github.com/gdugdh24/roommate-backend/internal/testing/fakes"
)

type stubWingman struct {
	explainCalls int
	lastScore    int
	explainErr   error
	icebreakErr  error
}

func (w *stubWingman) ExplainMatch(_ context.Context, a, b *domain.Profile, breakdown matching.Breakdown) (string, error) {
	w.explainCalls++
	w.lastScore = breakdown.Score
	if w.explainErr != nil {
		return "", w.explainErr
	}
	return a.FirstName + " and " + b.FirstName + " both love hiking.", nil
}

func (w *stubWingman) Icebreakers(context.Context, *domain.Profile, *domain.Profile) ([]string, error) {
	if w.icebreakErr != nil {
		return nil, w.icebreakErr
	}
	return []string{"Hike this weekend?", "Chess later?"}, nil
}

type testEnv struct {
	uc       *RequestUseCase
	requests *fakes.RequestRepo
	profiles *fakes.ProfileRepo
	wingman  *stubWingman
}

func newTestEnv(aiEnabled bool) *testEnv {
	profiles := fakes.NewProfileRepo(fakes.SeedProfiles()...)
	requests := fakes.NewRequestRepo()
	wingman := &stubWingman{}
	return &testEnv{
		uc:       NewRequestUseCase(requests, profiles, wingman, aiEnabled, zap.NewNop()),
		requests: requests,
		profiles: profiles,
		wingman:  wingman,
	}
}

func TestSend_CreatesPendingRequestWithSenderSnapshot(t *testing.T) {
	env := newTestEnv(false)

	res, err := env.uc.Send(context.Background(), "liam", "priya")
	require.NoError(t, err)

	assert.Equal(t, SendSent, res.Status)
	assert.Equal(t, "liam_priya", res.Request.ID)
	assert.Equal(t, "Liam", res.Request.FromName)
	assert.Equal(t, "https://img.example/liam.jpg", res.Request.FromPhoto)
	assert.Equal(t, domain.RequestPending, res.Request.Status)
}

func TestSend_NamelessSenderUsesFallbackName(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()
	require.NoError(t, env.profiles.Upsert(ctx, &domain.Profile{ID: "newbie"}))

	res, err := env.uc.Send(ctx, "newbie", "alex")
	require.NoError(t, err)
	assert.Equal(t, "Someone", res.Request.FromName)
	assert.Empty(t, res.Request.FromPhoto)
}

func TestSend_SenderWithoutProfileIsRejected(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "ghost", "alex")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	_, err = env.requests.GetByID(ctx, "ghost_alex")
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestSend_Rejections(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "alex", "alex")
	assert.ErrorIs(t, err, domain.ErrCannotRequestSelf)

	_, err = env.uc.Send(ctx, "alex", "nobody")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestSend_ExistingRequestInEitherDirection(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "alex", "priya")
	require.NoError(t, err)

	again, err := env.uc.Send(ctx, "alex", "priya")
	require.NoError(t, err)
	assert.Equal(t, SendAlreadySent, again.Status)

	reverse, err := env.uc.Send(ctx, "priya", "alex")
	require.NoError(t, err)
	assert.Equal(t, SendAlreadySent, reverse.Status)
	assert.Equal(t, "alex_priya", reverse.Request.ID)

	_, err = env.uc.Respond(ctx, "alex_priya", "priya", domain.RequestAccepted)
	require.NoError(t, err)

	matched, err := env.uc.Send(ctx, "priya", "alex")
	require.NoError(t, err)
	assert.Equal(t, SendAlreadyMatched, matched.Status)
}

func TestSend_DeclinedRequestCanBeResent(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "mike", "priya")
	require.NoError(t, err)
	_, err = env.uc.Respond(ctx, "mike_priya", "priya", domain.RequestDeclined)
	require.NoError(t, err)

	res, err := env.uc.Send(ctx, "mike", "priya")
	require.NoError(t, err)
	assert.Equal(t, SendSent, res.Status)

	stored, err := env.requests.GetByID(ctx, "mike_priya")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestPending, stored.Status)
}

func TestSend_AcceptedReverseRequestWinsOverOwnDeclined(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "alex", "mike")
	require.NoError(t, err)
	_, err = env.uc.Respond(ctx, "alex_mike", "mike", domain.RequestDeclined)
	require.NoError(t, err)

	_, err = env.uc.Send(ctx, "mike", "alex")
	require.NoError(t, err)
	_, err = env.uc.Respond(ctx, "mike_alex", "alex", domain.RequestAccepted)
	require.NoError(t, err)

	res, err := env.uc.Send(ctx, "alex", "mike")
	require.NoError(t, err)
	assert.Equal(t, SendAlreadyMatched, res.Status)
	assert.Equal(t, "mike_alex", res.Request.ID)

	rel, err := env.uc.Relationship(ctx, "alex", "mike")
	require.NoError(t, err)
	assert.Equal(t, domain.RequestAccepted, rel.Status)

	matches, err := env.uc.Matches(ctx, "alex")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "mike", matches[0].Profile.ID)
}

func TestSend_PendingReverseRequestWinsOverOwnDeclined(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "alex", "mike")
	require.NoError(t, err)
	_, err = env.uc.Respond(ctx, "alex_mike", "mike", domain.RequestDeclined)
	require.NoError(t, err)
	_, err = env.uc.Send(ctx, "mike", "alex")
	require.NoError(t, err)

	res, err := env.uc.Send(ctx, "alex", "mike")
	require.NoError(t, err)
	assert.Equal(t, SendAlreadySent, res.Status)
	assert.Equal(t, "mike_alex", res.Request.ID)
}

func TestMatches_ListsPartnerOnce(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	for _, req := range []*domain.RoommateRequest{
		{ID: "alex_mike", FromUID: "alex", ToUID: "mike", Status: domain.RequestAccepted},
		{ID: "mike_alex", FromUID: "mike", ToUID: "alex", Status: domain.RequestAccepted},
	} {
		require.NoError(t, env.requests.Save(ctx, req))
	}

	matches, err := env.uc.Matches(ctx, "alex")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "mike", matches[0].Profile.ID)
}

func TestRespond_Guards(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "alex", "priya")
	require.NoError(t, err)

	_, err = env.uc.Respond(ctx, "alex_priya", "priya", domain.RequestPending)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = env.uc.Respond(ctx, "alex_priya", "alex", domain.RequestAccepted)
	assert.ErrorIs(t, err, domain.ErrNotRequestRecipient)

	_, err = env.uc.Respond(ctx, "missing", "priya", domain.RequestAccepted)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)

	_, err = env.uc.Respond(ctx, "alex_priya", "priya", domain.RequestDeclined)
	require.NoError(t, err)

	_, err = env.uc.Respond(ctx, "alex_priya", "priya", domain.RequestAccepted)
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
}

func TestRespond_AcceptAttachesAISummary(t *testing.T) {
	env := newTestEnv(true)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "alex", "priya")
	require.NoError(t, err)

	req, err := env.uc.Respond(ctx, "alex_priya", "priya", domain.RequestAccepted)
	require.NoError(t, err)

	assert.Equal(t, domain.RequestAccepted, req.Status)
	require.NotNil(t, req.Explanation)
	assert.Equal(t, "Alex and Priya both love hiking.", *req.Explanation)
	assert.Len(t, req.Icebreakers, 2)
	assert.Equal(t, 1, env.wingman.explainCalls)

	stored, err := env.requests.GetByID(ctx, "alex_priya")
	require.NoError(t, err)
	assert.Equal(t, req.Explanation, stored.Explanation)
}

func TestRespond_AIFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(true)
	env.wingman.explainErr = errors.New("quota exceeded")
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "alex", "priya")
	require.NoError(t, err)

	req, err := env.uc.Respond(ctx, "alex_priya", "priya", domain.RequestAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestAccepted, req.Status)
	assert.Nil(t, req.Explanation)
}

func TestRespond_IcebreakerFailureKeepsExplanation(t *testing.T) {
	env := newTestEnv(true)
	env.wingman.icebreakErr = errors.New("bad json")
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "alex", "priya")
	require.NoError(t, err)

	req, err := env.uc.Respond(ctx, "alex_priya", "priya", domain.RequestAccepted)
	require.NoError(t, err)
	require.NotNil(t, req.Explanation)
	assert.Empty(t, req.Icebreakers)
}

func TestRespond_DeclineSkipsAI(t *testing.T) {
	env := newTestEnv(true)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "alex", "priya")
	require.NoError(t, err)

	_, err = env.uc.Respond(ctx, "alex_priya", "priya", domain.RequestDeclined)
	require.NoError(t, err)
	assert.Zero(t, env.wingman.explainCalls)
}

func TestRespond_AIDisabled(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "alex", "priya")
	require.NoError(t, err)

	req, err := env.uc.Respond(ctx, "alex_priya", "priya", domain.RequestAccepted)
	require.NoError(t, err)
	assert.Nil(t, req.Explanation)
	assert.Zero(t, env.wingman.explainCalls)
}

func TestRespond_NilWingman(t *testing.T) {
	profiles := fakes.NewProfileRepo(fakes.SeedProfiles()...)
	uc := NewRequestUseCase(fakes.NewRequestRepo(), profiles, nil, true, zap.NewNop())
	ctx := context.Background()

	_, err := uc.Send(ctx, "alex", "priya")
	require.NoError(t, err)
	req, err := uc.Respond(ctx, "alex_priya", "priya", domain.RequestAccepted)
	require.NoError(t, err)
	assert.Nil(t, req.Explanation)
}

func TestRelationship(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	none, err := env.uc.Relationship(ctx, "alex", "liam")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = env.uc.Send(ctx, "liam", "alex")
	require.NoError(t, err)

	rel, err := env.uc.Relationship(ctx, "alex", "liam")
	require.NoError(t, err)
	require.NotNil(t, rel)
	assert.Equal(t, "liam_alex", rel.ID)
}

func TestMatchesIncludeContactDetails(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "priya", "alex")
	require.NoError(t, err)
	_, err = env.uc.Respond(ctx, "priya_alex", "alex", domain.RequestAccepted)
	require.NoError(t, err)

	_, err = env.uc.Send(ctx, "priya", "mike")
	require.NoError(t, err)

	matches, err := env.uc.Matches(ctx, "priya")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "alex", matches[0].Profile.ID)
	require.NotNil(t, matches[0].Profile.InstagramHandle)
	assert.Equal(t, "alex.hikes", *matches[0].Profile.InstagramHandle)

	fromAlex, err := env.uc.Matches(ctx, "alex")
	require.NoError(t, err)
	require.Len(t, fromAlex, 1)
	assert.Equal(t, "priya", fromAlex[0].Profile.ID)
}

func TestPendingCarriesDirection(t *testing.T) {
	env := newTestEnv(false)
	ctx := context.Background()

	_, err := env.uc.Send(ctx, "priya", "alex")
	require.NoError(t, err)
	_, err = env.uc.Send(ctx, "liam", "priya")
	require.NoError(t, err)

	pending, err := env.uc.Pending(ctx, "priya")
	require.NoError(t, err)
	require.Len(t, pending, 2)

	byOther := map[string]PendingEntry{}
	for _, e := range pending {
		byOther[e.Profile.ID] = e
	}
	assert.Equal(t, DirectionSent, byOther["alex"].Direction)
	assert.Equal(t, DirectionReceived, byOther["liam"].Direction)
	assert.Nil(t, byOther["alex"].Profile.InstagramHandle)

	incoming, err := env.uc.Incoming(ctx, "priya")
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "liam_priya", incoming[0].ID)
}

func TestListErrorsPropagate(t *testing.T) {
	env := newTestEnv(false)
	env.requests.Err = errors.New("connection reset")

	_, err := env.uc.Matches(context.Background(), "priya")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sent requests")
}
