package mock

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dately/dately-go/schema"
)

type contextKey string

const userKey contextKey = "user"

// Handler returns the mock service's HTTP handler.
func (s *Service) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	router.HandleFunc("/users/registration", s.handleRegistration).Methods(http.MethodPost)

	authed := router.NewRoute().Subrouter()
	authed.Use(s.requireAuth)
	authed.HandleFunc("/dates", s.handleListEvents).Methods(http.MethodGet)
	authed.HandleFunc("/dates", s.handleCreateEvent).Methods(http.MethodPost)
	authed.HandleFunc("/dates/{id}", s.handleGetEvent).Methods(http.MethodGet)
	authed.HandleFunc("/dates/{id}/images", s.handleListEventImages).Methods(http.MethodGet)
	authed.HandleFunc("/dates/{id}/images", s.handleUploadEventImages).Methods(http.MethodPost)
	authed.HandleFunc("/dates/{id}/images/{imageId}", s.handleDeleteEventImage).Methods(http.MethodDelete)
	authed.HandleFunc("/dates/{id}/attendees", s.handleListAttendees).Methods(http.MethodGet)
	authed.HandleFunc("/dates/{id}/attendees/requests", s.handleListAttendeeRequests).Methods(http.MethodGet)
	authed.HandleFunc("/dates/{id}/attendees", s.handleRequestAttendance).Methods(http.MethodPut)
	authed.HandleFunc("/dates/{id}/attendees", s.handleCancelAttendance).Methods(http.MethodDelete)
	authed.HandleFunc("/dates/{id}/attendees/{userId}", s.handleApproveAttendee).Methods(http.MethodPut)
	authed.HandleFunc("/dates/{id}/attendees/{userId}", s.handleRejectAttendee).Methods(http.MethodDelete)
	authed.HandleFunc("/users", s.handleListUsers).Methods(http.MethodGet)
	authed.HandleFunc("/users/profile", s.handleUpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/users/images", s.handleListUserImages).Methods(http.MethodGet)
	authed.HandleFunc("/users/images", s.handleUploadUserImages).Methods(http.MethodPost)
	authed.HandleFunc("/users/images/{imageId}", s.handleDeleteUserImage).Methods(http.MethodDelete)
	return router
}

func (s *Service) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := s.authenticate(r.Header.Get("Authorization"))
		if !ok {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}

func currentUser(r *http.Request) *user {
	return r.Context().Value(userKey).(*user)
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var request schema.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	u, ok := s.verifyCredentials(request.Username, request.Password)
	if !ok {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	token, err := s.issueToken(u.profile.ID)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	// the token travels in the response header, the body stays empty
	w.Header().Set("Authorization", token)
	w.WriteHeader(http.StatusOK)
}

func (s *Service) handleRegistration(w http.ResponseWriter, r *http.Request) {
	var request schema.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Username == "" || request.Password == "" {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	u, err := s.addUser(request.Username, request.Password, request.Name)
	if err != nil {
		if errors.Is(err, errDuplicateUser) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, &u.profile)
}

func (s *Service) handleListEvents(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	filter := schema.EventFilter(r.URL.Query().Get("filter"))
	s.mu.Lock()
	defer s.mu.Unlock()
	var events []schema.Event
	for _, event := range s.events {
		switch filter {
		case schema.FilterOwned:
			if event.OwnerID != u.profile.ID {
				continue
			}
		case schema.FilterRequested:
			if _, ok := s.attendance[event.ID][u.profile.ID]; !ok {
				continue
			}
		}
		events = append(events, *event)
	}
	writeJSON(w, &schema.EventsResult{Events: events})
}

func (s *Service) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	var event schema.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	event.ID = uuid.New().String()
	event.OwnerID = u.profile.ID
	s.mu.Lock()
	s.events[event.ID] = &event
	s.mu.Unlock()
	writeJSON(w, &event)
}

func (s *Service) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	event, ok := s.events[mux.Vars(r)["id"]]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "no such event", http.StatusNotFound)
		return
	}
	writeJSON(w, event)
}

func (s *Service) handleListUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var users []schema.UserProfile
	for _, u := range s.users {
		users = append(users, u.profile)
	}
	writeJSON(w, &schema.UsersResult{Users: users})
}

func (s *Service) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	var profile schema.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	// identity fields are immutable
	profile.ID = u.profile.ID
	profile.Username = u.profile.Username
	u.profile = profile
	s.mu.Unlock()
	writeJSON(w, &profile)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
