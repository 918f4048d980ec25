package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsharma-dev/institute_admin/internal/events"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

func newTestStudentService(t *testing.T) (*StudentService, *eventRecorder) {
	t.Helper()

	recorder := &eventRecorder{}
	return &StudentService{
		Repo:     newTestRepo(t),
		Events:   recorder,
		Validate: validator.New(),
	}, recorder
}

func studentReq() transport.CreateStudentRequest {
	return transport.CreateStudentRequest{
		FullName:   "Rohan Das",
		WhatsApp:   "9876543210",
		DOB:        "2005-04-12",
		Address:    "12 Lake Road",
		Course:     "DCA",
		FatherName: "S Das",
		MotherName: "M Das",
		Session:    "2026-27",
	}
}

func TestStudentService_Admit(t *testing.T) {
	svc, recorder := newTestStudentService(t)
	ctx := context.Background()

	student, err := svc.Admit(ctx, studentReq())
	require.NoError(t, err)
	require.NotZero(t, student.ID)
	assert.Equal(t, 2005, student.DOB.Year())

	require.Len(t, recorder.published, 1)
	assert.Equal(t, events.TopicStudentEvents, recorder.published[0].Topic)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Rohan Das", listed[0].FullName)
}

func TestStudentService_Admit_MissingFields(t *testing.T) {
	svc, _ := newTestStudentService(t)

	req := studentReq()
	req.Course = ""
	_, err := svc.Admit(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStudentService_Admit_BadDate(t *testing.T) {
	svc, _ := newTestStudentService(t)

	req := studentReq()
	req.DOB = "12/04/2005"
	_, err := svc.Admit(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStudentService_Admit_TooYoung(t *testing.T) {
	svc, recorder := newTestStudentService(t)

	req := studentReq()
	req.DOB = time.Now().AddDate(-5, 0, 0).Format("2006-01-02")
	_, err := svc.Admit(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, recorder.published)
}

func TestStudentService_Admit_EventFailureIsNonFatal(t *testing.T) {
	svc, recorder := newTestStudentService(t)
	recorder.err = errSMTPDown

	student, err := svc.Admit(context.Background(), studentReq())
	require.NoError(t, err)
	assert.NotZero(t, student.ID)
}

func TestStudentService_Update(t *testing.T) {
	svc, _ := newTestStudentService(t)
	ctx := context.Background()

	student, err := svc.Admit(ctx, studentReq())
	require.NoError(t, err)

	course := "ADCA"
	updated, err := svc.Update(ctx, student.ID, transport.UpdateStudentRequest{Course: &course})
	require.NoError(t, err)
	assert.Equal(t, "ADCA", updated.Course)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Rohan Das", updated.FullName)
	assert.Equal(t, "2026-27", updated.Session)
}

func TestStudentService_Update_RejectsUnderageDOB(t *testing.T) {
	svc, _ := newTestStudentService(t)
	ctx := context.Background()

	student, err := svc.Admit(ctx, studentReq())
	require.NoError(t, err)

	dob := time.Now().AddDate(-3, 0, 0).Format("2006-01-02")
	_, err = svc.Update(ctx, student.ID, transport.UpdateStudentRequest{DOB: &dob})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStudentService_Update_NotFound(t *testing.T) {
	svc, _ := newTestStudentService(t)

	name := "x"
	_, err := svc.Update(context.Background(), 9999, transport.UpdateStudentRequest{FullName: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentService_Delete(t *testing.T) {
	svc, recorder := newTestStudentService(t)
	ctx := context.Background()

	student, err := svc.Admit(ctx, studentReq())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, student.ID))
	require.Len(t, recorder.published, 2)
	assert.Equal(t, events.TopicStudentEvents, recorder.published[1].Topic)

	assert.ErrorIs(t, svc.Delete(ctx, student.ID), ErrNotFound)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
