package mock

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dately/dately-go/schema"
)

// Service is an in-process dately service double implementing the wire
// contract the real deployment speaks: login issues the token in the
// Authorization response header, authenticated routes expect the raw token
// back in the Authorization request header and answer 401 otherwise.
type Service struct {
	mu         sync.Mutex
	signingKey []byte
	users      map[string]*user // by id
	byUsername map[string]string
	events     map[string]*schema.Event
	attendance map[string]map[string]schema.AttendeeStatus // eventID -> userID
	eventImgs  map[string][]schema.ImageAsset
	userImgs   map[string][]schema.ImageAsset
}

type user struct {
	profile      schema.UserProfile
	passwordHash []byte
}

// Option customizes the mock service.
type Option func(*Service)

// WithUser seeds a fixture account.
func WithUser(username, password, name string) Option {
	return func(s *Service) {
		_, _ = s.addUser(username, password, name)
	}
}

// WithSigningKey overrides the random token-signing key.
func WithSigningKey(key []byte) Option {
	return func(s *Service) {
		s.signingKey = key
	}
}

// NewService creates an empty mock service.
func NewService(options ...Option) *Service {
	ret := &Service{
		signingKey: []byte(uuid.New().String()),
		users:      map[string]*user{},
		byUsername: map[string]string{},
		events:     map[string]*schema.Event{},
		attendance: map[string]map[string]schema.AttendeeStatus{},
		eventImgs:  map[string][]schema.ImageAsset{},
		userImgs:   map[string][]schema.ImageAsset{},
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

func (s *Service) addUser(username, password, name string) (*user, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byUsername[username]; exists {
		return nil, errDuplicateUser
	}
	ret := &user{
		profile:      schema.UserProfile{ID: uuid.New().String(), Username: username, Name: name},
		passwordHash: hash,
	}
	s.users[ret.profile.ID] = ret
	s.byUsername[username] = ret.profile.ID
	return ret, nil
}

func (s *Service) verifyCredentials(username, password string) (*user, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byUsername[username]
	if !ok {
		return nil, false
	}
	u := s.users[id]
	if bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) != nil {
		return nil, false
	}
	return u, true
}

// AddEvent seeds an event owned by the given user id and returns its id.
func (s *Service) AddEvent(ownerID, title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.events[id] = &schema.Event{ID: id, Title: title, OwnerID: ownerID}
	return id
}

// UserID resolves a seeded username to its id; empty when unknown.
func (s *Service) UserID(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byUsername[username]
}

// SetAttendance seeds attendance state, e.g. a pre-existing join request.
func (s *Service) SetAttendance(eventID, userID string, status schema.AttendeeStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attendance[eventID] == nil {
		s.attendance[eventID] = map[string]schema.AttendeeStatus{}
	}
	s.attendance[eventID][userID] = status
}
