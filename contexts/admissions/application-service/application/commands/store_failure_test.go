package commands_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarstream/contexts/admissions/application-service/application/commands"
	"scholarstream/contexts/admissions/application-service/application/queries"
	"scholarstream/contexts/admissions/application-service/domain/entities"
	domainerrors "scholarstream/contexts/admissions/application-service/domain/errors"
	"scholarstream/contexts/admissions/application-service/ports"
	"scholarstream/internal/shared/identity"
)

var errConnectionRefused = errors.New("pq: connection refused host=db.internal password=hunter2")

// brokenRepository fails the calls it overrides. Anything else panics.
type brokenRepository struct {
	ports.Repository
	getErr error
}

func (r brokenRepository) GetApplication(context.Context, string) (entities.Application, error) {
	return entities.Application{}, r.getErr
}

func (r brokenRepository) ListApplications(context.Context, ports.ApplicationFilter) ([]entities.Application, error) {
	return nil, errConnectionRefused
}

func (r brokenRepository) UpdateFeedback(context.Context, string, string, time.Time) (entities.Application, error) {
	return entities.Application{}, errConnectionRefused
}

type allowAll struct{}

func (allowAll) RequireRole(context.Context, identity.Identity, ...identity.Role) error { return nil }
func (allowAll) RequireOwnership(context.Context, identity.Identity, string) error      { return nil }

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func assertHiddenAndLogged(t *testing.T, err error, logs *bytes.Buffer, step string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailure), "got %v", err)
	assert.NotContains(t, err.Error(), "hunter2")
	assert.Contains(t, logs.String(), `"event":"application_upstream_failed"`)
	assert.Contains(t, logs.String(), `"step":"`+step+`"`)
	assert.Contains(t, logs.String(), "connection refused")
}

func TestOwnerEditHidesRepositoryFailure(t *testing.T) {
	logger, logs := bufferLogger()
	uc := commands.OwnerEditUseCase{
		Authorizer: allowAll{},
		Repository: brokenRepository{getErr: errConnectionRefused},
		Logger:     logger,
	}

	_, err := uc.Update(context.Background(), commands.UpdateApplicationCommand{
		Caller:        identity.Identity{UserID: "A", Email: "a@x.com"},
		ApplicationID: "app-1",
	})
	assertHiddenAndLogged(t, err, logs, "get_application")

	logs.Reset()
	err = uc.Delete(context.Background(), commands.DeleteApplicationCommand{
		Caller:        identity.Identity{UserID: "A", Email: "a@x.com"},
		ApplicationID: "app-1",
	})
	assertHiddenAndLogged(t, err, logs, "get_application")
}

func TestReviewHidesRepositoryFailure(t *testing.T) {
	logger, logs := bufferLogger()
	uc := commands.ReviewApplicationUseCase{
		Authorizer: allowAll{},
		Repository: brokenRepository{getErr: errConnectionRefused},
		Logger:     logger,
	}
	moderator := identity.Identity{UserID: "M", Email: "mod@x.com"}

	_, err := uc.SetStatus(context.Background(), commands.SetStatusCommand{
		Caller:        moderator,
		ApplicationID: "app-1",
		Status:        "processing",
	})
	assertHiddenAndLogged(t, err, logs, "get_application")

	logs.Reset()
	_, err = uc.SetFeedback(context.Background(), commands.SetFeedbackCommand{
		Caller:        moderator,
		ApplicationID: "app-1",
		Feedback:      "missing transcript",
	})
	assertHiddenAndLogged(t, err, logs, "update_feedback")
}

func TestQueriesHideRepositoryFailure(t *testing.T) {
	logger, logs := bufferLogger()
	uc := queries.QueryUseCase{
		Authorizer: allowAll{},
		Repository: brokenRepository{},
		Logger:     logger,
	}

	_, err := uc.ListAll(context.Background(), identity.Identity{UserID: "M", Email: "mod@x.com"}, "")
	assertHiddenAndLogged(t, err, logs, "list_applications")

	logs.Reset()
	_, err = uc.ListForUser(context.Background(), identity.Identity{UserID: "A", Email: "a@x.com"}, "a@x.com")
	assertHiddenAndLogged(t, err, logs, "list_applications")
}

func TestDomainOutcomesPassThroughUnlogged(t *testing.T) {
	logger, logs := bufferLogger()
	uc := commands.ReviewApplicationUseCase{
		Authorizer: allowAll{},
		Repository: brokenRepository{getErr: domainerrors.ErrApplicationNotFound},
		Logger:     logger,
	}

	_, err := uc.SetStatus(context.Background(), commands.SetStatusCommand{
		Caller:        identity.Identity{UserID: "M", Email: "mod@x.com"},
		ApplicationID: "missing",
		Status:        "processing",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrApplicationNotFound))
	assert.False(t, errors.Is(err, domainerrors.ErrUpstreamFailure))
	assert.False(t, strings.Contains(logs.String(), "application_upstream_failed"))
}
