package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiwen/acadhub/internal/app/models"
	"github.com/kaiwen/acadhub/internal/pkg/apperrors"
)

type fakeUpdateRequestStore struct {
	requests map[int64]*models.StudentUpdateRequest
	nextID   int64
}

func newFakeUpdateRequestStore() *fakeUpdateRequestStore {
	return &fakeUpdateRequestStore{requests: make(map[int64]*models.StudentUpdateRequest), nextID: 1}
}

func (f *fakeUpdateRequestStore) Create(_ context.Context, req *models.StudentUpdateRequest) error {
	req.ID = f.nextID
	req.Status = models.RequestStatusPending
	req.RequestTime = time.Now()
	f.nextID++
	clone := *req
	f.requests[req.ID] = &clone
	return nil
}

func (f *fakeUpdateRequestStore) GetByID(_ context.Context, id int64) (*models.StudentUpdateRequest, error) {
	return f.requests[id], nil
}

func (f *fakeUpdateRequestStore) LatestPendingByStudent(_ context.Context, studentID string) (*models.StudentUpdateRequest, error) {
	var latest *models.StudentUpdateRequest
	for _, req := range f.requests {
		if req.StudentID != studentID || req.Status != models.RequestStatusPending {
			continue
		}
		if latest == nil || req.RequestTime.After(latest.RequestTime) {
			latest = req
		}
	}
	return latest, nil
}

func (f *fakeUpdateRequestStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.requests)), nil
}

func (f *fakeUpdateRequestStore) StatusCounts(_ context.Context) (int64, int64, int64, error) {
	var pending, approved, rejected int64
	for _, req := range f.requests {
		switch req.Status {
		case models.RequestStatusPending:
			pending++
		case models.RequestStatusApproved:
			approved++
		case models.RequestStatusRejected:
			rejected++
		}
	}
	return pending, approved, rejected, nil
}

func (f *fakeUpdateRequestStore) List(_ context.Context, limit, offset int) ([]models.StudentUpdateRequest, error) {
	var out []models.StudentUpdateRequest
	for id := int64(1); id < f.nextID; id++ {
		if req, ok := f.requests[id]; ok {
			out = append(out, *req)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUpdateRequestStore) Review(_ context.Context, id int64, status string, comment *string) error {
	req, ok := f.requests[id]
	if !ok {
		return nil
	}
	now := time.Now()
	req.Status = status
	req.ReviewTime = &now
	req.ReviewComment = comment
	return nil
}

type fakeStudentInfoWriter struct {
	applied []*models.StudentUpdateRequest
	err     error
}

func (f *fakeStudentInfoWriter) UpdatePersonalInfo(_ context.Context, req *models.StudentUpdateRequest) error {
	if f.err != nil {
		return f.err
	}
	f.applied = append(f.applied, req)
	return nil
}

func submitSampleRequest(t *testing.T, svc *UpdateRequestService) *models.StudentUpdateRequest {
	t.Helper()
	req := &models.StudentUpdateRequest{
		StudentID:   "2021001",
		StudentName: "张三",
		DateOfBirth: "2003-05-12",
		IDCard:      "110101200305120011",
		PhoneNumber: "13800000000",
		Address:     "北京市海淀区",
	}
	require.NoError(t, svc.Submit(context.Background(), req))
	return req
}

func TestSubmitAndGetPending(t *testing.T) {
	store := newFakeUpdateRequestStore()
	svc := NewUpdateRequestService(store, &fakeStudentInfoWriter{})

	req := submitSampleRequest(t, svc)
	assert.Equal(t, models.RequestStatusPending, req.Status)

	pending, err := svc.GetPending(context.Background(), "2021001")
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, req.ID, pending.ID)

	none, err := svc.GetPending(context.Background(), "2021999")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestReviewApprovedCopiesFields(t *testing.T) {
	store := newFakeUpdateRequestStore()
	writer := &fakeStudentInfoWriter{}
	svc := NewUpdateRequestService(store, writer)

	req := submitSampleRequest(t, svc)

	comment := "信息核实无误"
	require.NoError(t, svc.Review(context.Background(), req.ID, models.RequestStatusApproved, &comment))

	stored := store.requests[req.ID]
	assert.Equal(t, models.RequestStatusApproved, stored.Status)
	require.NotNil(t, stored.ReviewComment)
	assert.Equal(t, comment, *stored.ReviewComment)

	require.Len(t, writer.applied, 1)
	assert.Equal(t, "2021001", writer.applied[0].StudentID)
}

func TestReviewRejectedSkipsCopy(t *testing.T) {
	store := newFakeUpdateRequestStore()
	writer := &fakeStudentInfoWriter{}
	svc := NewUpdateRequestService(store, writer)

	req := submitSampleRequest(t, svc)

	comment := "材料不完整"
	require.NoError(t, svc.Review(context.Background(), req.ID, models.RequestStatusRejected, &comment))

	assert.Equal(t, models.RequestStatusRejected, store.requests[req.ID].Status)
	assert.Empty(t, writer.applied)
}

func TestReviewApprovedCopyFailureIsSwallowed(t *testing.T) {
	store := newFakeUpdateRequestStore()
	writer := &fakeStudentInfoWriter{err: errors.New("students table unavailable")}
	svc := NewUpdateRequestService(store, writer)

	req := submitSampleRequest(t, svc)

	comment := "ok"
	// The status flip already happened; the copy failure is logged, not
	// returned
	require.NoError(t, svc.Review(context.Background(), req.ID, models.RequestStatusApproved, &comment))
	assert.Equal(t, models.RequestStatusApproved, store.requests[req.ID].Status)
}

func TestReviewMissingRequest(t *testing.T) {
	store := newFakeUpdateRequestStore()
	svc := NewUpdateRequestService(store, &fakeStudentInfoWriter{})

	comment := "ok"
	err := svc.Review(context.Background(), 42, models.RequestStatusApproved, &comment)
	assert.ErrorIs(t, err, apperrors.ErrUpdateRequestNotFound)
}

func TestListWithStatusCounts(t *testing.T) {
	store := newFakeUpdateRequestStore()
	svc := NewUpdateRequestService(store, &fakeStudentInfoWriter{})

	first := submitSampleRequest(t, svc)
	submitSampleRequest(t, svc)

	comment := "ok"
	require.NoError(t, svc.Review(context.Background(), first.ID, models.RequestStatusApproved, &comment))

	resp, err := svc.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, int64(1), resp.PendingCount)
	assert.Equal(t, int64(1), resp.ApprovedCount)
	assert.Equal(t, int64(0), resp.RejectedCount)
	assert.Len(t, resp.Requests, 2)
}
