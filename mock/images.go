package mock

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dately/dately-go/schema"
)

const maxUploadMemory = 32 << 20

func (s *Service) handleListEventImages(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]
	s.mu.Lock()
	_, ok := s.events[eventID]
	images := s.eventImgs[eventID]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "no such event", http.StatusNotFound)
		return
	}
	writeJSON(w, &schema.ImagesResult{Images: images})
}

func (s *Service) handleUploadEventImages(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]
	s.mu.Lock()
	_, ok := s.events[eventID]
	s.mu.Unlock()
	if !ok {
		http.Error(w, "no such event", http.StatusNotFound)
		return
	}
	uploaded, ok := s.acceptUpload(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	s.eventImgs[eventID] = append(s.eventImgs[eventID], uploaded...)
	s.mu.Unlock()
	writeJSON(w, &schema.ImagesResult{Images: uploaded})
}

func (s *Service) handleDeleteEventImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !removeImage(s.eventImgs, vars["id"], vars["imageId"]) {
		http.Error(w, "no such image", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleListUserImages(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	s.mu.Lock()
	images := s.userImgs[u.profile.ID]
	s.mu.Unlock()
	writeJSON(w, &schema.ImagesResult{Images: images})
}

func (s *Service) handleUploadUserImages(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	uploaded, ok := s.acceptUpload(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	s.userImgs[u.profile.ID] = append(s.userImgs[u.profile.ID], uploaded...)
	s.mu.Unlock()
	writeJSON(w, &schema.ImagesResult{Images: uploaded})
}

func (s *Service) handleDeleteUserImage(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if !removeImage(s.userImgs, u.profile.ID, mux.Vars(r)["imageId"]) {
		http.Error(w, "no such image", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// acceptUpload parses a multipart upload and registers one asset per part
// under the "files" field.
func (s *Service) acceptUpload(w http.ResponseWriter, r *http.Request) ([]schema.ImageAsset, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "invalid multipart payload", http.StatusBadRequest)
		return nil, false
	}
	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		http.Error(w, "no files", http.StatusBadRequest)
		return nil, false
	}
	var uploaded []schema.ImageAsset
	for _, part := range parts {
		id := uuid.New().String()
		uploaded = append(uploaded, schema.ImageAsset{
			ID:          id,
			URL:         "/images/" + id,
			ContentType: part.Header.Get("Content-Type"),
		})
	}
	return uploaded, true
}

func removeImage(images map[string][]schema.ImageAsset, owner, imageID string) bool {
	for i, image := range images[owner] {
		if image.ID == imageID {
			images[owner] = append(images[owner][:i], images[owner][i+1:]...)
			return true
		}
	}
	return false
}
