package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsharma-dev/institute_admin/internal/events"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

func newTestCertificateService(t *testing.T) (*CertificateService, *eventRecorder) {
	t.Helper()

	recorder := &eventRecorder{}
	return &CertificateService{
		Repo:     newTestRepo(t),
		Events:   recorder,
		Validate: validator.New(),
	}, recorder
}

func certificateReq() transport.CreateCertificateRequest {
	return transport.CreateCertificateRequest{
		Name:           "Rohan Das",
		FatherName:     "S Das",
		MotherName:     "M Das",
		Course:         "DCA",
		RegistrationNo: "REG-2026-001",
		Address:        "12 Lake Road",
		CenterName:     "Main Campus",
		Grade:          "A",
	}
}

func TestCertificateService_IssueAndLookup(t *testing.T) {
	svc, recorder := newTestCertificateService(t)
	ctx := context.Background()

	cert, err := svc.Issue(ctx, certificateReq())
	require.NoError(t, err)
	require.NotZero(t, cert.ID)

	require.Len(t, recorder.published, 1)
	assert.Equal(t, events.TopicCertificateEvents, recorder.published[0].Topic)
	assert.Equal(t, "REG-2026-001", recorder.published[0].Key)

	found, err := svc.Lookup(ctx, "REG-2026-001")
	require.NoError(t, err)
	assert.Equal(t, "Rohan Das", found.Name)
	assert.Equal(t, "A", found.Grade)
}

func TestCertificateService_Issue_DuplicateRegistrationNo(t *testing.T) {
	svc, _ := newTestCertificateService(t)
	ctx := context.Background()

	_, err := svc.Issue(ctx, certificateReq())
	require.NoError(t, err)

	req := certificateReq()
	req.Name = "Someone Else"
	_, err = svc.Issue(ctx, req)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCertificateService_Issue_MissingFields(t *testing.T) {
	svc, _ := newTestCertificateService(t)

	req := certificateReq()
	req.RegistrationNo = ""
	_, err := svc.Issue(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCertificateService_Lookup_Unknown(t *testing.T) {
	svc, _ := newTestCertificateService(t)

	_, err := svc.Lookup(context.Background(), "REG-NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}
