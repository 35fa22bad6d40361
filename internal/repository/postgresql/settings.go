package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftops/workforce-backend-go/internal/domain/settings"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepository{db: db}
}

// Get implements settings.Repository. The app_settings table holds a single
// row seeded at install time.
func (r *settingsRepository) Get(ctx context.Context) (settings.AppSettings, error) {
	q := GetQuerier(ctx, r.db)

	var s settings.AppSettings
	err := q.QueryRow(ctx,
		`SELECT id, app_title, primary_color, secondary_color, max_wage_rate,
		        logo_path, pdf_logo_path, pdf_footer
		 FROM app_settings
		 ORDER BY id
		 LIMIT 1`,
	).Scan(
		&s.ID, &s.AppTitle, &s.PrimaryColor, &s.SecondaryColor, &s.MaxWageRate,
		&s.LogoPath, &s.PDFLogoPath, &s.PDFFooter,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.AppSettings{}, settings.ErrSettingsNotFound
		}
		return settings.AppSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// Update implements settings.Repository.
func (r *settingsRepository) Update(ctx context.Context, s settings.AppSettings) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE app_settings SET
			app_title = $1,
			primary_color = $2,
			secondary_color = $3,
			max_wage_rate = $4,
			logo_path = $5,
			pdf_logo_path = $6,
			pdf_footer = $7,
			whatsapp_token = COALESCE(NULLIF($8, ''), whatsapp_token),
			updated_at = NOW()
		 WHERE id = $9`,
		s.AppTitle, s.PrimaryColor, s.SecondaryColor, s.MaxWageRate,
		s.LogoPath, s.PDFLogoPath, s.PDFFooter, s.WhatsAppToken, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settings.ErrSettingsNotFound
	}
	return nil
}

// WhatsAppToken implements settings.Repository. The token is kept out of Get
// so it never reaches API responses.
func (r *settingsRepository) WhatsAppToken(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	var token *string
	err := q.QueryRow(ctx, `SELECT whatsapp_token FROM app_settings ORDER BY id LIMIT 1`).Scan(&token)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", settings.ErrSettingsNotFound
		}
		return "", fmt.Errorf("failed to get whatsapp token: %w", err)
	}
	if token == nil {
		return "", nil
	}

	return *token, nil
}

// CreateAttachment implements settings.Repository.
func (r *settingsRepository) CreateAttachment(ctx context.Context, a settings.Attachment) (settings.Attachment, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx,
		`INSERT INTO attachments (file_name, stored_path, content_type, size_bytes, uploaded_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		a.FileName, a.StoredPath, a.ContentType, a.SizeBytes, a.UploadedBy,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return settings.Attachment{}, fmt.Errorf("failed to create attachment: %w", err)
	}

	return a, nil
}

// GetAttachment implements settings.Repository.
func (r *settingsRepository) GetAttachment(ctx context.Context, id int64) (settings.Attachment, error) {
	q := GetQuerier(ctx, r.db)

	var a settings.Attachment
	err := q.QueryRow(ctx,
		`SELECT id, file_name, stored_path, content_type, size_bytes, uploaded_by, created_at
		 FROM attachments
		 WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.FileName, &a.StoredPath, &a.ContentType, &a.SizeBytes, &a.UploadedBy, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.Attachment{}, settings.ErrAttachmentNotFound
		}
		return settings.Attachment{}, fmt.Errorf("failed to get attachment: %w", err)
	}

	return a, nil
}
