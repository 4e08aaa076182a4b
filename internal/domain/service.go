// Package domain defines the business logic for the activity directory.
package domain

import (
	"context"
	"strings"
	"sync"
)

// Service owns the in-memory activity directory. Every operation holds the
// directory lock for its whole check-then-mutate sequence, so capacity and
// membership invariants survive concurrent requests.
type Service struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// NewService constructs a Service populated with the seed dataset.
func NewService() *Service {
	return &Service{activities: seedActivities()}
}

// List returns a copy of the full directory keyed by activity name.
func (s *Service) List(ctx context.Context) map[string]Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Activity, len(s.activities))
	for name, activity := range s.activities {
		out[name] = copyActivity(activity)
	}
	return out
}

// ListByParticipant returns the activities whose roster contains email. An
// empty result map is a valid outcome for a student with no registrations.
func (s *Service) ListByParticipant(ctx context.Context, email string) (map[string]Activity, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Activity)
	for name, activity := range s.activities {
		if containsEmail(activity.Participants, email) {
			out[name] = copyActivity(activity)
		}
	}
	return out, nil
}

// SignUp registers email for the named activity, appending it to the end of
// the roster. Activity names match exactly and case-sensitively. The roster
// is untouched on every failure path.
func (s *Service) SignUp(ctx context.Context, activityName, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}
	if containsEmail(activity.Participants, email) {
		return ErrDuplicateSignup
	}
	if len(activity.Participants) >= activity.MaxParticipants {
		return ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	return nil
}

// RemoveParticipant drops exactly one occurrence of email from the named
// activity's roster, preserving the relative order of everyone else.
func (s *Service) RemoveParticipant(ctx context.Context, activityName, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[activityName]
	if !ok {
		return ErrActivityNotFound
	}

	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return ErrParticipantNotFound
}

// Reset reinstalls the seed dataset, discarding every mutation since process
// start. Intended for test isolation.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activities = seedActivities()
}

func containsEmail(participants []string, email string) bool {
	for _, participant := range participants {
		if participant == email {
			return true
		}
	}
	return false
}

// copyActivity detaches the roster slice so callers never alias live state.
func copyActivity(activity *Activity) Activity {
	out := *activity
	out.Participants = make([]string, len(activity.Participants))
	copy(out.Participants, activity.Participants)
	return out
}
