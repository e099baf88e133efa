package service

import (
	"context"
	"strings"
	"time"

	"translation-service/internal/domain"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const serviceName = "translation-service"

const bearerPrefix = "Bearer "

// TokenVerifier validates an access token and returns the user id it carries.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// ActorResolver turns an Authorization header into an operator identity.
// Every failure path collapses to nil (anonymous): audit logging must never
// fail a request over a bad credential.
type ActorResolver struct {
	tokens   TokenVerifier
	userRepo UserRepository
}

func NewActorResolver(tokens TokenVerifier, userRepo UserRepository) *ActorResolver {
	return &ActorResolver{
		tokens:   tokens,
		userRepo: userRepo,
	}
}

// Resolve returns the email of the user the bearer credential belongs to, or
// nil when the header is missing, the token does not verify, or no such user
// exists.
func (r *ActorResolver) Resolve(ctx context.Context, authHeader string) *string {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil
	}

	raw := strings.TrimPrefix(authHeader, bearerPrefix)
	userID, err := r.tokens.Verify(raw)
	if err != nil {
		log.WithError(err).Debug("Could not resolve operator, recording as anonymous")
		return nil
	}

	user, err := r.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Debug("Operator lookup failed, recording as anonymous")
		return nil
	}

	return &user.Email
}

// ApiLogRecorder persists one audit record.
type ApiLogRecorder interface {
	Record(ctx context.Context, path, method string, operator *string) error
}

// EventPublisher mirrors audit records to an external broker.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.AuditEvent) error
}

// AuditService writes the audit record for one completed request. All of its
// own errors are logged and swallowed; the caller's response is already sent
// and must not be affected.
type AuditService struct {
	resolver  *ActorResolver
	apiLogs   ApiLogRecorder
	publisher EventPublisher
}

// NewAuditService wires the recorder. publisher may be nil, which disables
// the broker mirror.
func NewAuditService(resolver *ActorResolver, apiLogs ApiLogRecorder, publisher EventPublisher) *AuditService {
	return &AuditService{
		resolver:  resolver,
		apiLogs:   apiLogs,
		publisher: publisher,
	}
}

// RecordRequest resolves the operator and persists the audit record.
func (s *AuditService) RecordRequest(ctx context.Context, method, path, authHeader string) {
	operator := s.resolver.Resolve(ctx, authHeader)

	if err := s.apiLogs.Record(ctx, path, method, operator); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"method": method,
			"path":   path,
		}).Error("Failed to record api log")
		return
	}

	log.WithFields(log.Fields{
		"method":   method,
		"path":     path,
		"operator": operatorLabel(operator),
	}).Debug("Api log recorded")

	if s.publisher == nil {
		return
	}

	event := domain.AuditEvent{
		EventID:    uuid.NewString(),
		Service:    serviceName,
		Path:       path,
		Method:     method,
		OccurredAt: time.Now().UTC(),
	}
	if operator != nil {
		event.Operator = *operator
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to mirror audit event to broker")
	}
}

func operatorLabel(operator *string) string {
	if operator == nil {
		return "anonymous"
	}
	return *operator
}
