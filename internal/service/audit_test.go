package service

import (
	"context"
	"errors"
	"testing"

	"translation-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenVerifier struct {
	userID int64
	err    error
}

func (f *fakeTokenVerifier) Verify(string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.userID, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, name, email, passwordHash string) (*domain.User, error) {
	id := int64(len(f.users) + 1)
	user := &domain.User{ID: id, Name: name, Email: email, PasswordHash: passwordHash}
	f.users[id] = user
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type recordedLog struct {
	path, method string
	operator     *string
}

type fakeRecorder struct {
	records []recordedLog
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, path, method string, operator *string) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, recordedLog{path: path, method: method, operator: operator})
	return nil
}

type fakePublisher struct {
	events []domain.AuditEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, event domain.AuditEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func TestActorResolver_Resolve(t *testing.T) {
	users := &fakeUserRepo{users: map[int64]*domain.User{
		42: {ID: 42, Email: "a@x.com"},
	}}

	tests := []struct {
		name   string
		tokens TokenVerifier
		header string
		want   *string
	}{
		{"no header", &fakeTokenVerifier{userID: 42}, "", nil},
		{"not bearer", &fakeTokenVerifier{userID: 42}, "Basic dXNlcjpwdw==", nil},
		{"verify fails", &fakeTokenVerifier{err: errors.New("token is expired")}, "Bearer bad", nil},
		{"unknown user", &fakeTokenVerifier{userID: 99}, "Bearer ok", nil},
		{"resolved", &fakeTokenVerifier{userID: 42}, "Bearer ok", ptr("a@x.com")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewActorResolver(tt.tokens, users)
			got := resolver.Resolve(context.Background(), tt.header)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuditService_RecordRequest_WithOperator(t *testing.T) {
	users := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Email: "a@x.com"},
	}}
	resolver := NewActorResolver(&fakeTokenVerifier{userID: 1}, users)
	recorder := &fakeRecorder{}
	svc := NewAuditService(resolver, recorder, nil)

	svc.RecordRequest(context.Background(), "DELETE", "/api/business-tags/5", "Bearer ok")

	require.Len(t, recorder.records, 1)
	rec := recorder.records[0]
	assert.Equal(t, "DELETE", rec.method)
	assert.Equal(t, "/api/business-tags/5", rec.path)
	require.NotNil(t, rec.operator)
	assert.Equal(t, "a@x.com", *rec.operator)
}

func TestAuditService_RecordRequest_ExpiredTokenIsAnonymous(t *testing.T) {
	users := &fakeUserRepo{users: map[int64]*domain.User{}}
	resolver := NewActorResolver(&fakeTokenVerifier{err: errors.New("token is expired")}, users)
	recorder := &fakeRecorder{}
	svc := NewAuditService(resolver, recorder, nil)

	svc.RecordRequest(context.Background(), "DELETE", "/api/business-tags/5", "Bearer expired")

	require.Len(t, recorder.records, 1)
	assert.Nil(t, recorder.records[0].operator)
}

func TestAuditService_RecordRequest_StoreFailureIsSwallowed(t *testing.T) {
	users := &fakeUserRepo{users: map[int64]*domain.User{}}
	resolver := NewActorResolver(&fakeTokenVerifier{userID: 1}, users)
	recorder := &fakeRecorder{err: errors.New("store unreachable")}
	publisher := &fakePublisher{}
	svc := NewAuditService(resolver, recorder, publisher)

	// Must not panic or propagate anything.
	svc.RecordRequest(context.Background(), "POST", "/api/lang-tags", "")

	assert.Empty(t, publisher.events, "failed store write must not be mirrored")
}

func TestAuditService_RecordRequest_MirrorsToPublisher(t *testing.T) {
	users := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Email: "a@x.com"},
	}}
	resolver := NewActorResolver(&fakeTokenVerifier{userID: 1}, users)
	recorder := &fakeRecorder{}
	publisher := &fakePublisher{}
	svc := NewAuditService(resolver, recorder, publisher)

	svc.RecordRequest(context.Background(), "PUT", "/api/translations/3", "Bearer ok")

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "translation-service", event.Service)
	assert.Equal(t, "PUT", event.Method)
	assert.Equal(t, "/api/translations/3", event.Path)
	assert.Equal(t, "a@x.com", event.Operator)
}

func TestAuditService_RecordRequest_PublisherFailureIsSwallowed(t *testing.T) {
	users := &fakeUserRepo{users: map[int64]*domain.User{}}
	resolver := NewActorResolver(&fakeTokenVerifier{userID: 1}, users)
	recorder := &fakeRecorder{}
	publisher := &fakePublisher{err: errors.New("broker down")}
	svc := NewAuditService(resolver, recorder, publisher)

	svc.RecordRequest(context.Background(), "POST", "/api/lang-tags", "")

	assert.Len(t, recorder.records, 1, "store write succeeds even when the mirror fails")
}

func ptr(s string) *string { return &s }
