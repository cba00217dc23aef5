package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"weddingsite/internal/models"
)

// invitationID is the only row of the invitation table.
const invitationID = 1

type InvitationRepositoryImpl struct {
	DB *sqlx.DB
}

func NewInvitationRepository(db *sqlx.DB) *InvitationRepositoryImpl {
	return &InvitationRepositoryImpl{DB: db}
}

func (r *InvitationRepositoryImpl) Get(ctx context.Context) (*models.Invitation, error) {
	var invitation models.Invitation

	query := `
		SELECT id, groom_name, bride_name, wedding_date, venue, venue_address, main_image, message, updated_at
		FROM invitation WHERE id = $1
	`

	err := r.DB.GetContext(ctx, &invitation, query, invitationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invitation: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	return &invitation, nil
}

func (r *InvitationRepositoryImpl) Upsert(ctx context.Context, invitation *models.Invitation) error {
	invitation.ID = invitationID

	query := `
		INSERT INTO invitation (id, groom_name, bride_name, wedding_date, venue, venue_address, main_image, message, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			groom_name = EXCLUDED.groom_name,
			bride_name = EXCLUDED.bride_name,
			wedding_date = EXCLUDED.wedding_date,
			venue = EXCLUDED.venue,
			venue_address = EXCLUDED.venue_address,
			main_image = EXCLUDED.main_image,
			message = EXCLUDED.message,
			updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`

	err := r.DB.QueryRowxContext(ctx, query,
		invitation.ID,
		invitation.GroomName,
		invitation.BrideName,
		invitation.WeddingDate,
		invitation.Venue,
		invitation.VenueAddress,
		invitation.MainImage,
		invitation.Message,
	).Scan(&invitation.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save invitation: %w", err)
	}

	return nil
}
