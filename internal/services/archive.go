package services

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strings"
	"sync"

	"heirloom-gallery-backend/internal/models"
)

// ArchiveResult is a fully serialized ZIP plus the filenames of photos that
// could not be fetched and were left out of it.
type ArchiveResult struct {
	Data     []byte
	Filename string
	Skipped  []string
}

// ArchiveService fetches photo bytes over their public URLs and packages
// them into a single compressed archive. It never talks to storage
// directly; the URL is the only handle it gets.
type ArchiveService struct {
	httpClient *http.Client
}

func NewArchiveService(httpClient *http.Client) *ArchiveService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ArchiveService{httpClient: httpClient}
}

// DownloadSingle fetches one photo's bytes. Any transport error or non-2xx
// status is a fetch failure.
func (s *ArchiveService) DownloadSingle(url string) ([]byte, error) {
	resp, err := s.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch failed: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	return data, nil
}

// BuildArchive fetches every photo concurrently, then writes the archive
// with entries in input order. onProgress is called once per settled fetch,
// success or failure, with round(100*completed/total); the counter is
// mutex-guarded so simultaneous completions never lose an update. Failed
// fetches are logged, reported in Skipped, and omitted from the archive.
func (s *ArchiveService) BuildArchive(photos []models.Photo, galleryName string, onProgress func(int)) (*ArchiveResult, error) {
	if len(photos) == 0 {
		return nil, fmt.Errorf("no photos to archive")
	}

	contents := make([][]byte, len(photos))
	var skipped []string

	var mu sync.Mutex
	var wg sync.WaitGroup
	completed := 0
	total := len(photos)

	for i, photo := range photos {
		wg.Add(1)
		go func(i int, photo models.Photo) {
			defer wg.Done()
			data, err := s.DownloadSingle(photo.URL)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("Failed to fetch photo %d (%s): %v", i+1, photo.URL, err)
				skipped = append(skipped, photo.Filename)
			} else {
				contents[i] = data
			}
			completed++
			if onProgress != nil {
				onProgress(int(math.Round(float64(completed) / float64(total) * 100)))
			}
		}(i, photo)
	}
	wg.Wait()

	folder := SanitizeName(galleryName)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	for i, photo := range photos {
		if contents[i] == nil {
			continue
		}
		w, err := zw.Create(folder + "/" + ArchiveEntryName(i, photo))
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("failed to create archive entry: %w", err)
		}
		if _, err := w.Write(contents[i]); err != nil {
			zw.Close()
			return nil, fmt.Errorf("failed to write archive entry: %w", err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return &ArchiveResult{
		Data:     buf.Bytes(),
		Filename: folder + "-photos.zip",
		Skipped:  skipped,
	}, nil
}

// ArchiveEntryName composes the fixed entry naming convention: a 3-digit
// zero-padded 1-based sequence number, the caption (or "photo"), and the
// extension of the stored filename ("jpg" when absent).
func ArchiveEntryName(index int, photo models.Photo) string {
	caption := "photo"
	if photo.Caption.Valid && photo.Caption.String != "" {
		caption = photo.Caption.String
	}
	ext := "jpg"
	if i := strings.LastIndex(photo.Filename, "."); i >= 0 && i < len(photo.Filename)-1 {
		ext = photo.Filename[i+1:]
	}
	return fmt.Sprintf("%03d-%s.%s", index+1, caption, ext)
}
