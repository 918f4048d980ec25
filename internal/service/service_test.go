package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nsharma-dev/institute_admin/internal/models"
	"github.com/nsharma-dev/institute_admin/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Student{},
		&models.Certificate{},
		&models.CenterAffiliation{},
	))

	return &repo.GormRepo{DB: db}
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

type recordedEvent struct {
	Topic string
	Key   string
	Event any
}

type eventRecorder struct {
	published []recordedEvent
	err       error
}

func (r *eventRecorder) Publish(_ context.Context, topic, key string, event any) error {
	if r.err != nil {
		return r.err
	}
	r.published = append(r.published, recordedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeMailer, *eventRecorder) {
	t.Helper()

	mailer := &fakeMailer{}
	recorder := &eventRecorder{}
	svc := &AuthService{
		Repo:          newTestRepo(t),
		Mailer:        mailer,
		Events:        recorder,
		JWTSecret:     []byte("test-jwt-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
		FrontendURL:   "http://localhost:5173",
		Validate:      validator.New(),
	}
	return svc, mailer, recorder
}

var errSMTPDown = errors.New("smtp connection refused")
