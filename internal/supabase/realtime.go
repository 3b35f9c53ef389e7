package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// The Supabase Go client has no direct Realtime publish; subscribers
	// observe the database updates these events accompany. Kept as the
	// single seam for explicit event publishing via the Realtime REST API.
	return nil
}

func (r *RealtimeClient) PublishGalleryEvent(galleryID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("gallery:%s", galleryID.String())
	return r.PublishEvent(channel, event, payload)
}

// Event payloads
func UploadStartedPayload(galleryID uuid.UUID, fileCount int) map[string]interface{} {
	return map[string]interface{}{
		"gallery_id": galleryID.String(),
		"status":     "uploading",
		"file_count": fileCount,
	}
}

func UploadProgressPayload(galleryID uuid.UUID, progress int) map[string]interface{} {
	return map[string]interface{}{
		"gallery_id": galleryID.String(),
		"status":     "uploading",
		"progress":   progress,
	}
}

func UploadCompletedPayload(galleryID uuid.UUID, uploaded, failed int) map[string]interface{} {
	return map[string]interface{}{
		"gallery_id": galleryID.String(),
		"status":     "uploaded",
		"uploaded":   uploaded,
		"failed":     failed,
	}
}
