package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/dately/dately-go/schema"
)

// uploadFieldName is the multipart field the service expects files under.
const uploadFieldName = "files"

// File is one image to upload.
type File struct {
	Name    string
	Content io.Reader
}

// ListEventImages returns the images attached to an event.
func (c *Client) ListEventImages(ctx context.Context, eventID string) ([]schema.ImageAsset, error) {
	return c.listImages(ctx, "listEventImages", eventImagesPath(eventID))
}

// UploadEventImages attaches images to an event. All files travel in a
// single multipart request; with no files no request is made at all.
func (c *Client) UploadEventImages(ctx context.Context, eventID string, files []File) ([]schema.ImageAsset, error) {
	return c.uploadImages(ctx, "uploadEventImages", eventImagesPath(eventID), files)
}

// DeleteEventImage removes one image from an event.
func (c *Client) DeleteEventImage(ctx context.Context, eventID, imageID string) error {
	return c.deleteImage(ctx, "deleteEventImage", eventImagesPath(eventID)+"/"+url.PathEscape(imageID))
}

// ListProfileImages returns the current user's profile images.
func (c *Client) ListProfileImages(ctx context.Context) ([]schema.ImageAsset, error) {
	return c.listImages(ctx, "listProfileImages", "/users/images")
}

// UploadProfileImages attaches images to the current user's profile.
func (c *Client) UploadProfileImages(ctx context.Context, files []File) ([]schema.ImageAsset, error) {
	return c.uploadImages(ctx, "uploadProfileImages", "/users/images", files)
}

// DeleteProfileImage removes one profile image.
func (c *Client) DeleteProfileImage(ctx context.Context, imageID string) error {
	return c.deleteImage(ctx, "deleteProfileImage", "/users/images/"+url.PathEscape(imageID))
}

func eventImagesPath(eventID string) string {
	return "/dates/" + url.PathEscape(eventID) + "/images"
}

func (c *Client) listImages(ctx context.Context, op, path string) ([]schema.ImageAsset, error) {
	result, err := call[schema.ImagesResult](ctx, c, op, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if result.Images == nil {
		return []schema.ImageAsset{}, nil
	}
	return result.Images, nil
}

func (c *Client) uploadImages(ctx context.Context, op, path string, files []File) ([]schema.ImageAsset, error) {
	if len(files) == 0 {
		return []schema.ImageAsset{}, nil
	}
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, file := range files {
		part, err := writer.CreateFormFile(uploadFieldName, file.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if _, err = io.Copy(part, file.Content); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, file.Name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	resp, err := c.do(ctx, op, http.MethodPost, path, nil, body, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var result schema.ImagesResult
	if len(data) > 0 {
		if err = json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if result.Images == nil {
		return []schema.ImageAsset{}, nil
	}
	return result.Images, nil
}

func (c *Client) deleteImage(ctx context.Context, op, path string) error {
	resp, err := c.do(ctx, op, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
