// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/folio/internal/platform/ctxutil"
	"github.com/taibuivan/folio/internal/platform/metrics"
	"github.com/taibuivan/folio/internal/platform/validate"
	"github.com/taibuivan/folio/internal/portfolio/project"
	"github.com/taibuivan/folio/pkg/uuidv7"
)

// ProjectFinder is the catalog lookup a gallery needs.
type ProjectFinder interface {
	Get(context context.Context, id int) (*project.Project, error)
}

// Service runs viewer sessions.
type Service struct {
	projects   ProjectFinder
	repository SessionRepository
	metrics    *metrics.Registry
	now        func() time.Time
}

// NewService creates a gallery service. A nil registry disables metrics.
func NewService(projects ProjectFinder, repository SessionRepository, registry *metrics.Registry) *Service {
	return &Service{
		projects:   projects,
		repository: repository,
		metrics:    registry,
		now:        time.Now,
	}
}

// Create starts a closed viewer session for a project.
func (service *Service) Create(context context.Context, projectID int) (*View, error) {
	p, err := service.projects.Get(context, projectID)
	if err != nil {
		return nil, err
	}

	controller := NewController(BuildSequence(p), WithClock(service.now))
	session := &Session{
		ID:        uuidv7.New(),
		ProjectID: p.ID,
		State:     controller.State(),
		CreatedAt: service.now().UTC(),
	}

	if err := service.repository.Save(context, session); err != nil {
		return nil, err
	}

	service.metrics.GalleryAction("create")
	ctxutil.GetLogger(context).Info("gallery_session_created",
		slog.String("session_id", session.ID),
		slog.Int("project_id", p.ID),
		slog.Int("images", controller.Len()),
	)

	view := newView(session, controller)
	return &view, nil
}

// Get returns the current view of a session.
func (service *Service) Get(context context.Context, sessionID string) (*View, error) {
	session, controller, err := service.load(context, sessionID)
	if err != nil {
		return nil, err
	}
	view := newView(session, controller)
	return &view, nil
}

// Open shows the image at index. A nil index resumes at the image the
// viewer was last closed on.
func (service *Service) Open(context context.Context, sessionID string, index *int) (*View, error) {
	result, err := service.apply(context, sessionID, "open", func(controller *Controller) (bool, error) {
		if index == nil {
			return true, controller.Reopen()
		}
		return true, controller.Open(*index)
	})
	if err != nil {
		return nil, err
	}
	return &result.View, nil
}

func (service *Service) Close(context context.Context, sessionID string) (*View, error) {
	result, err := service.apply(context, sessionID, "close", func(controller *Controller) (bool, error) {
		controller.Close()
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &result.View, nil
}

func (service *Service) Next(context context.Context, sessionID string) (*View, error) {
	result, err := service.apply(context, sessionID, "next", func(controller *Controller) (bool, error) {
		controller.Next()
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &result.View, nil
}

func (service *Service) Previous(context context.Context, sessionID string) (*View, error) {
	result, err := service.apply(context, sessionID, "previous", func(controller *Controller) (bool, error) {
		controller.Previous()
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &result.View, nil
}

// Key applies a keyboard key. Unknown keys are rejected; known keys pressed
// while closed are accepted and reported as not handled.
func (service *Service) Key(context context.Context, sessionID string, key string) (*InputResult, error) {
	validator := &validate.Validator{}
	validator.Required(FieldKey, key).OneOf(FieldKey, key, KeyArrowLeft, KeyArrowRight, KeyEscape)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.apply(context, sessionID, "key", func(controller *Controller) (bool, error) {
		return controller.HandleKey(key), nil
	})
}

// Swipe applies a touch gesture.
func (service *Service) Swipe(context context.Context, sessionID string, swipe Swipe) (*InputResult, error) {
	return service.apply(context, sessionID, "swipe", func(controller *Controller) (bool, error) {
		return controller.HandleSwipe(swipe), nil
	})
}

func (service *Service) load(context context.Context, sessionID string) (*Session, *Controller, error) {
	validator := &validate.Validator{}
	validator.UUID(FieldSession, sessionID)
	if err := validator.Err(); err != nil {
		return nil, nil, err
	}

	session, err := service.repository.Get(context, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, Restore(session.State, WithClock(service.now)), nil
}

// apply restores the session, runs one input and saves the result.
// Unhandled input is not written back.
func (service *Service) apply(context context.Context, sessionID, action string, input func(*Controller) (bool, error)) (*InputResult, error) {
	session, controller, err := service.load(context, sessionID)
	if err != nil {
		return nil, err
	}

	handled, err := input(controller)
	if err != nil {
		return nil, err
	}

	if handled {
		session.State = controller.State()
		if err := service.repository.Save(context, session); err != nil {
			return nil, err
		}
		service.metrics.GalleryAction(action)
	}

	return &InputResult{View: newView(session, controller), Handled: handled}, nil
}
