package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/searchfor"
	"github.com/samuel-prates/find-my-buddy-api/internal/domains/user"
	"github.com/samuel-prates/find-my-buddy-api/pkg/database"
)

// Every finder joins the reporter in one round trip. The join does not
// filter on the user's is_deleted flag: a report stays readable, reporter
// included, even after the reporting account is soft-deleted.
const selectSearchFor = `
	SELECT
		s.id, s.type, s.name, s.birthday_year, s.last_location,
		s.last_seen_date_time, s.description, s.contact, s.recent_photo,
		s.is_deleted, s.created_date, s.updated_date,
		u.id, u.name, u.email, u.document, u.contact, u.photo,
		u.is_deleted, u.created_date, u.updated_date
	FROM search_for s
	JOIN users u ON u.id = s.user_id`

type postgresSearchForRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSearchForRepository(pool *pgxpool.Pool) searchfor.Repository {
	return &postgresSearchForRepository{pool: pool}
}

func (r *postgresSearchForRepository) FindAll(ctx context.Context) ([]*searchfor.SearchFor, error) {
	query := selectSearchFor + ` WHERE s.is_deleted = false ORDER BY s.created_date`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query search items: %w", err)
	}
	defer rows.Close()

	return collectSearchFor(rows)
}

func (r *postgresSearchForRepository) FindByID(ctx context.Context, id uuid.UUID) (*searchfor.SearchFor, error) {
	query := selectSearchFor + ` WHERE s.id = $1 AND s.is_deleted = false`

	entity, err := scanSearchFor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, searchfor.ErrSearchForNotFound
		}
		return nil, fmt.Errorf("query search item by id: %w", err)
	}

	return entity, nil
}

func (r *postgresSearchForRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*searchfor.SearchFor, error) {
	query := selectSearchFor + ` WHERE s.user_id = $1 AND s.is_deleted = false ORDER BY s.created_date`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query search items by user: %w", err)
	}
	defer rows.Close()

	return collectSearchFor(rows)
}

func (r *postgresSearchForRepository) FindByType(ctx context.Context, t searchfor.Type) ([]*searchfor.SearchFor, error) {
	query := selectSearchFor + ` WHERE s.type = $1 AND s.is_deleted = false ORDER BY s.created_date`

	rows, err := r.pool.Query(ctx, query, t.String())
	if err != nil {
		return nil, fmt.Errorf("query search items by type: %w", err)
	}
	defer rows.Close()

	return collectSearchFor(rows)
}

// Save upserts by id, then re-reads the joined row inside the same
// transaction so the returned entity carries the stored reporter state. A
// foreign key violation means the reporter row is gone.
func (r *postgresSearchForRepository) Save(ctx context.Context, s *searchfor.SearchFor) (*searchfor.SearchFor, error) {
	entity, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*searchfor.SearchFor, error) {
		query := `
			INSERT INTO search_for (
				id, type, name, birthday_year, last_location,
				last_seen_date_time, description, contact, recent_photo,
				user_id, is_deleted, created_date, updated_date
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (id) DO UPDATE SET
				type = EXCLUDED.type,
				name = EXCLUDED.name,
				birthday_year = EXCLUDED.birthday_year,
				last_location = EXCLUDED.last_location,
				last_seen_date_time = EXCLUDED.last_seen_date_time,
				description = EXCLUDED.description,
				contact = EXCLUDED.contact,
				recent_photo = EXCLUDED.recent_photo,
				is_deleted = EXCLUDED.is_deleted,
				updated_date = EXCLUDED.updated_date`

		if _, err := tx.Exec(ctx, query,
			s.ID(), s.Type().String(), s.Name(), s.BirthdayYear(), s.LastLocation(),
			s.LastSeenDateTime(), s.Description(), s.Contact(), s.RecentPhoto(),
			s.Reporter().ID(), s.IsDeleted(), s.CreatedDate(), s.UpdatedDate(),
		); err != nil {
			return nil, err
		}

		return scanSearchFor(tx.QueryRow(ctx, selectSearchFor+` WHERE s.id = $1`, s.ID()))
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, searchfor.ErrReporterNotFound
		}
		return nil, fmt.Errorf("save search item: %w", err)
	}

	return entity, nil
}

func (r *postgresSearchForRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE search_for SET is_deleted = true, updated_date = $2 WHERE id = $1 AND is_deleted = false`

	if _, err := r.pool.Exec(ctx, query, id, time.Now()); err != nil {
		return fmt.Errorf("delete search item: %w", err)
	}

	return nil
}

func collectSearchFor(rows pgx.Rows) ([]*searchfor.SearchFor, error) {
	items := make([]*searchfor.SearchFor, 0)
	for rows.Next() {
		entity, err := scanSearchFor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan search item: %w", err)
		}
		items = append(items, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate search items: %w", err)
	}

	return items, nil
}

func scanSearchFor(row pgx.Row) (*searchfor.SearchFor, error) {
	var (
		id                        uuid.UUID
		searchType                string
		name, lastLocation        string
		birthdayYear              int
		lastSeenDateTime          time.Time
		description, contact      string
		recentPhoto               *string
		isDeleted                 bool
		createdDate, updatedDate  time.Time
		userID                    uuid.UUID
		userName, userEmail       string
		userDocument, userContact string
		userPhoto                 *string
		userIsDeleted             bool
		userCreated, userUpdated  time.Time
	)

	if err := row.Scan(
		&id, &searchType, &name, &birthdayYear, &lastLocation,
		&lastSeenDateTime, &description, &contact, &recentPhoto,
		&isDeleted, &createdDate, &updatedDate,
		&userID, &userName, &userEmail, &userDocument, &userContact,
		&userPhoto, &userIsDeleted, &userCreated, &userUpdated,
	); err != nil {
		return nil, err
	}

	reporter := user.Reconstitute(
		userID, userName, userEmail, userDocument, userContact,
		userPhoto, userIsDeleted, userCreated, userUpdated,
	)

	return searchfor.Reconstitute(
		id, searchfor.Type(searchType), name, birthdayYear, lastLocation,
		lastSeenDateTime, description, reporter, contact, recentPhoto,
		isDeleted, createdDate, updatedDate,
	), nil
}
