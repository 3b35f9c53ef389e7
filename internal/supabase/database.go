package supabase

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"heirloom-gallery-backend/internal/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

const galleryColumns = "id, name, slug, password, client_email, type, date, cover_photo, photo_count, is_active, created_at, updated_at"

func scanGallery(row interface{ Scan(...interface{}) error }, g *models.Gallery) error {
	return row.Scan(
		&g.ID, &g.Name, &g.Slug, &g.Password, &g.ClientEmail, &g.Type,
		&g.Date, &g.CoverPhoto, &g.PhotoCount, &g.IsActive, &g.CreatedAt, &g.UpdatedAt,
	)
}

func (d *DatabaseClient) CreateGallery(g *models.Gallery) (*models.Gallery, error) {
	var created models.Gallery
	row := d.db.QueryRow(`
		INSERT INTO galleries (name, slug, password, client_email, type, date, photo_count, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, 0, true)
		RETURNING `+galleryColumns+`
	`, g.Name, g.Slug, g.Password, g.ClientEmail, g.Type, g.Date)
	if err := scanGallery(row, &created); err != nil {
		return nil, fmt.Errorf("failed to create gallery: %w", err)
	}

	return &created, nil
}

func (d *DatabaseClient) ListGalleries() ([]models.Gallery, error) {
	rows, err := d.db.Query(`
		SELECT ` + galleryColumns + `
		FROM galleries
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}
	defer rows.Close()

	var galleries []models.Gallery
	for rows.Next() {
		var g models.Gallery
		if err := scanGallery(rows, &g); err != nil {
			return nil, fmt.Errorf("failed to scan gallery: %w", err)
		}
		galleries = append(galleries, g)
	}

	return galleries, rows.Err()
}

// ListActiveGalleries returns the reduced field set used on the public
// listing, newest first.
func (d *DatabaseClient) ListActiveGalleries() ([]models.GallerySummary, error) {
	rows, err := d.db.Query(`
		SELECT id, name, slug, date, type, cover_photo, photo_count
		FROM galleries
		WHERE is_active = true
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active galleries: %w", err)
	}
	defer rows.Close()

	var summaries []models.GallerySummary
	for rows.Next() {
		var s models.GallerySummary
		err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Date, &s.Type, &s.CoverPhoto, &s.PhotoCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func (d *DatabaseClient) GetGalleryBySlug(slug string) (*models.Gallery, error) {
	var g models.Gallery
	row := d.db.QueryRow(`
		SELECT `+galleryColumns+`
		FROM galleries
		WHERE slug = $1
	`, slug)
	if err := scanGallery(row, &g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get gallery by slug: %w", err)
	}

	return &g, nil
}

func (d *DatabaseClient) GetGalleryByID(id uuid.UUID) (*models.Gallery, error) {
	var g models.Gallery
	row := d.db.QueryRow(`
		SELECT `+galleryColumns+`
		FROM galleries
		WHERE id = $1
	`, id)
	if err := scanGallery(row, &g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}

	return &g, nil
}

// UpdateGallery applies the non-nil fields of updates and stamps updated_at.
func (d *DatabaseClient) UpdateGallery(id uuid.UUID, updates models.GalleryUpdate) (*models.Gallery, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}

	if updates.Name != nil {
		addSet("name", *updates.Name)
	}
	if updates.Password != nil {
		addSet("password", *updates.Password)
	}
	if updates.ClientEmail != nil {
		addSet("client_email", *updates.ClientEmail)
	}
	if updates.Type != nil {
		addSet("type", *updates.Type)
	}
	if updates.Date != nil {
		addSet("date", *updates.Date)
	}
	if updates.CoverPhoto != nil {
		addSet("cover_photo", *updates.CoverPhoto)
	}
	if updates.IsActive != nil {
		addSet("is_active", *updates.IsActive)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE galleries
		SET %s
		WHERE id = $%d
		RETURNING `+galleryColumns+`
	`, strings.Join(setClauses, ", "), arg)

	var g models.Gallery
	if err := scanGallery(d.db.QueryRow(query, args...), &g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update gallery: %w", err)
	}

	return &g, nil
}

// IncrementPhotoCount bumps photo_count by one in a single statement, so
// concurrent uploads never lose an increment, and assigns coverURL as the
// cover photo only when the gallery has none yet.
func (d *DatabaseClient) IncrementPhotoCount(id uuid.UUID, coverURL string) error {
	_, err := d.db.Exec(`
		UPDATE galleries
		SET photo_count = photo_count + 1,
		    cover_photo = COALESCE(cover_photo, $2),
		    updated_at = NOW()
		WHERE id = $1
	`, id, coverURL)
	if err != nil {
		return fmt.Errorf("failed to increment photo count: %w", err)
	}
	return nil
}

// DecrementPhotoCount lowers photo_count by one, floored at zero.
func (d *DatabaseClient) DecrementPhotoCount(id uuid.UUID) error {
	_, err := d.db.Exec(`
		UPDATE galleries
		SET photo_count = GREATEST(photo_count - 1, 0),
		    updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to decrement photo count: %w", err)
	}
	return nil
}

// DeleteGallery removes the gallery record. Photo records are removed by the
// ON DELETE CASCADE foreign key; storage cleanup is the caller's job.
func (d *DatabaseClient) DeleteGallery(id uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM galleries
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery: %w", err)
	}
	return nil
}

const photoColumns = "id, gallery_id, url, storage_path, filename, caption, sort_order, created_at"

func scanPhoto(row interface{ Scan(...interface{}) error }, p *models.Photo) error {
	return row.Scan(
		&p.ID, &p.GalleryID, &p.URL, &p.StoragePath, &p.Filename,
		&p.Caption, &p.SortOrder, &p.CreatedAt,
	)
}

func (d *DatabaseClient) ListPhotosByGallery(galleryID uuid.UUID) ([]models.Photo, error) {
	rows, err := d.db.Query(`
		SELECT `+photoColumns+`
		FROM photos
		WHERE gallery_id = $1
		ORDER BY sort_order ASC, created_at ASC
	`, galleryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var p models.Photo
		if err := scanPhoto(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, p)
	}

	return photos, rows.Err()
}

// ListPhotoStorageRefs enumerates the storage handles for a gallery's
// photos, used to remove objects ahead of a cascade delete.
func (d *DatabaseClient) ListPhotoStorageRefs(galleryID uuid.UUID) ([]models.PhotoStorageRef, error) {
	rows, err := d.db.Query(`
		SELECT url, storage_path
		FROM photos
		WHERE gallery_id = $1
	`, galleryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photo storage refs: %w", err)
	}
	defer rows.Close()

	var refs []models.PhotoStorageRef
	for rows.Next() {
		var ref models.PhotoStorageRef
		if err := rows.Scan(&ref.URL, &ref.StoragePath); err != nil {
			return nil, fmt.Errorf("failed to scan photo storage ref: %w", err)
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

func (d *DatabaseClient) InsertPhoto(p *models.Photo) (*models.Photo, error) {
	var created models.Photo
	row := d.db.QueryRow(`
		INSERT INTO photos (gallery_id, url, storage_path, filename, caption)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+photoColumns+`
	`, p.GalleryID, p.URL, p.StoragePath, p.Filename, p.Caption)
	if err := scanPhoto(row, &created); err != nil {
		return nil, fmt.Errorf("failed to insert photo: %w", err)
	}

	return &created, nil
}

func (d *DatabaseClient) GetPhoto(id uuid.UUID) (*models.Photo, error) {
	var p models.Photo
	row := d.db.QueryRow(`
		SELECT `+photoColumns+`
		FROM photos
		WHERE id = $1
	`, id)
	if err := scanPhoto(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return &p, nil
}

func (d *DatabaseClient) DeletePhoto(id uuid.UUID) error {
	_, err := d.db.Exec(`
		DELETE FROM photos
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

// UpdatePhoto applies the non-nil fields of updates. Only caption and
// sort_order are mutable.
func (d *DatabaseClient) UpdatePhoto(id uuid.UUID, updates models.PhotoUpdate) (*models.Photo, error) {
	setClauses := []string{}
	args := []interface{}{}
	arg := 1

	if updates.Caption != nil {
		setClauses = append(setClauses, fmt.Sprintf("caption = $%d", arg))
		args = append(args, *updates.Caption)
		arg++
	}
	if updates.SortOrder != nil {
		setClauses = append(setClauses, fmt.Sprintf("sort_order = $%d", arg))
		args = append(args, *updates.SortOrder)
		arg++
	}

	if len(setClauses) == 0 {
		return d.GetPhoto(id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE photos
		SET %s
		WHERE id = $%d
		RETURNING `+photoColumns+`
	`, strings.Join(setClauses, ", "), arg)

	var p models.Photo
	if err := scanPhoto(d.db.QueryRow(query, args...), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update photo: %w", err)
	}

	return &p, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
