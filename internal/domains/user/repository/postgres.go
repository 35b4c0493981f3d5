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

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/user"
)

const userColumns = `id, name, email, document, contact, photo, is_deleted, created_date, updated_date`

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository returns a user.Repository backed by the given
// pool. Soft-deleted rows are invisible to every finder.
func NewPostgresUserRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresUserRepository{pool: pool}
}

func (r *postgresUserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE is_deleted = false ORDER BY created_date`, userColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		entity, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 AND is_deleted = false`, userColumns)

	entity, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}

	return entity, nil
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 AND is_deleted = false`, userColumns)

	entity, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	return entity, nil
}

// Save upserts by id. The partial unique index on email only covers live
// rows, so re-registering the email of a deleted account is allowed.
func (r *postgresUserRepository) Save(ctx context.Context, u *user.User) (*user.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			document = EXCLUDED.document,
			contact = EXCLUDED.contact,
			photo = EXCLUDED.photo,
			is_deleted = EXCLUDED.is_deleted,
			updated_date = EXCLUDED.updated_date
		RETURNING %s`, userColumns, userColumns)

	entity, err := scanUser(r.pool.QueryRow(ctx, query,
		u.ID(), u.Name(), u.Email(), u.Document(), u.Contact(),
		u.Photo(), u.IsDeleted(), u.CreatedDate(), u.UpdatedDate(),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("save user: %w", err)
	}

	return entity, nil
}

func (r *postgresUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET is_deleted = true, updated_date = $2 WHERE id = $1 AND is_deleted = false`

	if _, err := r.pool.Exec(ctx, query, id, time.Now()); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                       uuid.UUID
		name, email              string
		document, contact        string
		photo                    *string
		isDeleted                bool
		createdDate, updatedDate time.Time
	)

	if err := row.Scan(&id, &name, &email, &document, &contact, &photo, &isDeleted, &createdDate, &updatedDate); err != nil {
		return nil, err
	}

	return user.Reconstitute(id, name, email, document, contact, photo, isDeleted, createdDate, updatedDate), nil
}
