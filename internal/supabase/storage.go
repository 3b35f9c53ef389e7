package supabase

import (
	"bytes"
	"fmt"

	storage "github.com/supabase-community/storage-go"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	// Ensure URL doesn't have trailing slash
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (s *StorageClient) Bucket() string {
	return s.bucket
}

// Upload writes data to storagePath and returns the public URL. Upsert is
// disabled: a path collision rejects the upload instead of overwriting.
func (s *StorageClient) Upload(storagePath string, data []byte, contentType string) (string, error) {
	upsert := false
	cacheControl := "3600"
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType:  &contentType,
		CacheControl: &cacheControl,
		Upsert:       &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

// Remove deletes objects by path in a single batch call.
func (s *StorageClient) Remove(storagePaths []string) error {
	if len(storagePaths) == 0 {
		return nil
	}
	_, err := s.client.RemoveFile(s.bucket, storagePaths)
	if err != nil {
		return fmt.Errorf("failed to remove files: %w", err)
	}
	return nil
}
