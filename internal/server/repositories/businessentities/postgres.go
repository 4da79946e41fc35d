// Package businessentities provides the PostgreSQL-backed store for company
// profiles and their stakeholder rows.
package businessentities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/dbx"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindIDByAccount(ctx context.Context, accountID string) (string, error) {
	query := `
		SELECT id FROM business_entities
		WHERE account_id = $1
	`
	var id string
	if err := r.db.QueryRowContext(ctx, query, accountID).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, e *models.BusinessEntity) error {
	query := `
		INSERT INTO business_entities (id, account_id, entity_name, entity_type, registration_number,
		                               date_of_incorporation, contact_number, email, registered_address,
		                               pan_number, license_number, software_license_number,
		                               partnership_deed_details, company_document, license_document,
		                               software_license_document, pan_document, partnership_deed_document,
		                               profile_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.AccountID, e.EntityName, e.EntityType,
		e.RegistrationNumber, e.DateOfIncorporation, e.ContactNumber, e.Email, e.RegisteredAddress,
		e.PANNumber, e.LicenseNumber, e.SoftwareLicenseNumber, e.PartnershipDeedDetails,
		e.CompanyDocument, e.LicenseDocument, e.SoftwareLicenseDocument, e.PANDocument,
		e.PartnershipDeedDocument, e.ProfileImage)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.BusinessEntity) error {
	query := `
		UPDATE business_entities SET entity_name = $1, entity_type = $2, registration_number = $3,
		       date_of_incorporation = $4, contact_number = $5, email = $6, registered_address = $7,
		       pan_number = $8, license_number = $9, software_license_number = $10,
		       partnership_deed_details = $11, company_document = $12, license_document = $13,
		       software_license_document = $14, pan_document = $15, partnership_deed_document = $16,
		       profile_image = $17, updated_at = now()
		WHERE id = $18
	`
	_, err := r.db.ExecContext(ctx, query, e.EntityName, e.EntityType, e.RegistrationNumber,
		e.DateOfIncorporation, e.ContactNumber, e.Email, e.RegisteredAddress, e.PANNumber,
		e.LicenseNumber, e.SoftwareLicenseNumber, e.PartnershipDeedDetails, e.CompanyDocument,
		e.LicenseDocument, e.SoftwareLicenseDocument, e.PANDocument, e.PartnershipDeedDocument,
		e.ProfileImage, e.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByAccount(ctx context.Context, accountID string) (*models.BusinessEntity, error) {
	query := `
		SELECT id, account_id, entity_name, entity_type, registration_number, date_of_incorporation,
		       contact_number, email, registered_address, pan_number, license_number,
		       software_license_number, partnership_deed_details, company_document, license_document,
		       software_license_document, pan_document, partnership_deed_document, profile_image
		FROM business_entities
		WHERE account_id = $1
	`
	e := &models.BusinessEntity{}
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&e.ID, &e.AccountID, &e.EntityName,
		&e.EntityType, &e.RegistrationNumber, &e.DateOfIncorporation, &e.ContactNumber, &e.Email,
		&e.RegisteredAddress, &e.PANNumber, &e.LicenseNumber, &e.SoftwareLicenseNumber,
		&e.PartnershipDeedDetails, &e.CompanyDocument, &e.LicenseDocument,
		&e.SoftwareLicenseDocument, &e.PANDocument, &e.PartnershipDeedDocument, &e.ProfileImage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) InsertStakeholder(ctx context.Context, s *models.Stakeholder) error {
	query := `
		INSERT INTO stakeholders (id, entity_id, stakeholder_name, stakeholder_type, contact_number,
		                          email, share_percentage, id_proof_number, id_proof_document)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.EntityID, s.StakeholderName, s.StakeholderType,
		s.ContactNumber, s.Email, s.SharePercentage, s.IDProofNumber, s.IDProofDocument)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteStakeholders(ctx context.Context, entityID string) error {
	query := `
		DELETE FROM stakeholders
		WHERE entity_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, entityID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListStakeholders(ctx context.Context, entityID string) ([]models.Stakeholder, error) {
	query := `
		SELECT id, entity_id, stakeholder_name, stakeholder_type, contact_number, email,
		       share_percentage, id_proof_number, id_proof_document
		FROM stakeholders
		WHERE entity_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Stakeholder
	for rows.Next() {
		var s models.Stakeholder
		err = rows.Scan(&s.ID, &s.EntityID, &s.StakeholderName, &s.StakeholderType, &s.ContactNumber,
			&s.Email, &s.SharePercentage, &s.IDProofNumber, &s.IDProofDocument)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
