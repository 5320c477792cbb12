package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"syroswaitlist/internal/domain"
)

type inboundEmailRepository struct {
	DB *sql.DB
}

// NewInboundEmailRepository returns a domain.InboundEmailRepository implemented with Postgres.
func NewInboundEmailRepository(db *sql.DB) domain.InboundEmailRepository {
	return &inboundEmailRepository{DB: db}
}

func (r *inboundEmailRepository) Create(ctx context.Context, msg *domain.InboundEmail) error {
	query := `
		INSERT INTO inbound_emails
			(id, from_address, to_addresses, cc_addresses, subject, body_text, body_html, received_at, raw_payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		msg.ID,
		msg.FromAddress,
		pq.Array(msg.ToAddresses),
		pq.Array(msg.CcAddresses),
		msg.Subject,
		msg.BodyText,
		msg.BodyHTML,
		msg.ReceivedAt,
		msg.RawPayload,
	)
	return err
}
