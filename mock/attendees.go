package mock

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dately/dately-go/schema"
)

func (s *Service) handleListAttendees(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		http.Error(w, "no such event", http.StatusNotFound)
		return
	}
	var attendees []schema.Attendee
	for userID, status := range s.attendance[eventID] {
		if status != schema.AttendeeApproved {
			continue
		}
		attendees = append(attendees, schema.Attendee{
			UserID:   userID,
			Username: s.users[userID].profile.Username,
			Status:   status,
		})
	}
	writeJSON(w, &schema.AttendeesResult{Attendees: attendees})
}

func (s *Service) handleListAttendeeRequests(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		http.Error(w, "no such event", http.StatusNotFound)
		return
	}
	var requests []schema.AttendeeRequest
	for userID, status := range s.attendance[eventID] {
		if status != schema.AttendeeRequested {
			continue
		}
		requests = append(requests, schema.AttendeeRequest{EventID: eventID, UserID: userID, Status: status})
	}
	writeJSON(w, &schema.AttendeeRequestsResult{Requests: requests})
}

func (s *Service) handleRequestAttendance(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	eventID := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		http.Error(w, "no such event", http.StatusNotFound)
		return
	}
	if s.attendance[eventID] == nil {
		s.attendance[eventID] = map[string]schema.AttendeeStatus{}
	}
	// re-requesting never downgrades an approved attendee
	if s.attendance[eventID][u.profile.ID] != schema.AttendeeApproved {
		s.attendance[eventID][u.profile.ID] = schema.AttendeeRequested
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleCancelAttendance(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	eventID := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		http.Error(w, "no such event", http.StatusNotFound)
		return
	}
	delete(s.attendance[eventID], u.profile.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleApproveAttendee(w http.ResponseWriter, r *http.Request) {
	s.ownerAttendeeUpdate(w, r, func(eventID, userID string) {
		s.attendance[eventID][userID] = schema.AttendeeApproved
	})
}

func (s *Service) handleRejectAttendee(w http.ResponseWriter, r *http.Request) {
	s.ownerAttendeeUpdate(w, r, func(eventID, userID string) {
		delete(s.attendance[eventID], userID)
	})
}

func (s *Service) ownerAttendeeUpdate(w http.ResponseWriter, r *http.Request, update func(eventID, userID string)) {
	u := currentUser(r)
	vars := mux.Vars(r)
	eventID, userID := vars["id"], vars["userId"]
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[eventID]
	if !ok {
		http.Error(w, "no such event", http.StatusNotFound)
		return
	}
	if event.OwnerID != u.profile.ID {
		http.Error(w, "owner only", http.StatusForbidden)
		return
	}
	if _, ok = s.attendance[eventID][userID]; !ok {
		http.Error(w, "no such attendee", http.StatusNotFound)
		return
	}
	update(eventID, userID)
	w.WriteHeader(http.StatusNoContent)
}
