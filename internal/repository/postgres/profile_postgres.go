package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/TonAldo48/matematch-sub001/internal/model"
	"github.com/TonAldo48/matematch-sub001/internal/repository"
)

// ProfilePostgres is a PostgreSQL implementation of repository.ProfileRepository.
type ProfilePostgres struct {
	db *sql.DB
}

// NewProfilePostgres creates a new ProfilePostgres repository.
func NewProfilePostgres(db *sql.DB) *ProfilePostgres {
	return &ProfilePostgres{db: db}
}

var _ repository.ProfileRepository = (*ProfilePostgres)(nil)

const profileColumns = `id, email, name, pronouns, school, company, role, city, bio,
		budget_min, budget_max, move_in, move_out, lifestyle, avatar_key, onboarded,
		created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*model.Profile, error) {
	var (
		p         model.Profile
		moveIn    sql.NullTime
		moveOut   sql.NullTime
		lifestyle []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.Email,
		&p.Name,
		&p.Pronouns,
		&p.School,
		&p.Company,
		&p.Role,
		&p.City,
		&p.Bio,
		&p.BudgetMin,
		&p.BudgetMax,
		&moveIn,
		&moveOut,
		&lifestyle,
		&p.AvatarKey,
		&p.Onboarded,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if moveIn.Valid {
		t := moveIn.Time
		p.MoveIn = &t
	}
	if moveOut.Valid {
		t := moveOut.Time
		p.MoveOut = &t
	}
	if len(lifestyle) > 0 {
		if err := json.Unmarshal(lifestyle, &p.Lifestyle); err != nil {
			return nil, fmt.Errorf("decode lifestyle: %w", err)
		}
	}
	return &p, nil
}

func profileArgs(p *model.Profile) ([]any, error) {
	lifestyle, err := json.Marshal(p.Lifestyle)
	if err != nil {
		return nil, fmt.Errorf("encode lifestyle: %w", err)
	}
	var moveIn, moveOut sql.NullTime
	if p.MoveIn != nil {
		moveIn = sql.NullTime{Time: *p.MoveIn, Valid: true}
	}
	if p.MoveOut != nil {
		moveOut = sql.NullTime{Time: *p.MoveOut, Valid: true}
	}
	return []any{
		p.ID,
		p.Email,
		p.Name,
		p.Pronouns,
		p.School,
		p.Company,
		p.Role,
		p.City,
		p.Bio,
		p.BudgetMin,
		p.BudgetMax,
		moveIn,
		moveOut,
		lifestyle,
		p.AvatarKey,
		p.Onboarded,
		p.CreatedAt,
		p.UpdatedAt,
	}, nil
}

// Create inserts a new profile row and returns the stored record.
func (r *ProfilePostgres) Create(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	q := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + profileColumns
	args, err := profileArgs(p)
	if err != nil {
		return nil, err
	}
	out, err := scanProfile(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// FindByID fetches a single profile by its ID.
func (r *ProfilePostgres) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	q := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// Update overwrites the mutable columns of a profile.
func (r *ProfilePostgres) Update(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	q := `
		UPDATE profiles SET
			email = $2, name = $3, pronouns = $4, school = $5, company = $6, role = $7,
			city = $8, bio = $9, budget_min = $10, budget_max = $11, move_in = $12,
			move_out = $13, lifestyle = $14, avatar_key = $15, onboarded = $16,
			updated_at = $17
		WHERE id = $1
		RETURNING ` + profileColumns
	args, err := profileArgs(p)
	if err != nil {
		return nil, err
	}
	// drop created_at; the column is immutable
	args = append(args[:16], args[17])
	out, err := scanProfile(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// List returns profiles using LIMIT/OFFSET pagination and a total count.
func (r *ProfilePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Profile], error) {
	const qCount = `SELECT COUNT(*) FROM profiles`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + profileColumns + ` FROM profiles
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Profile]{Items: items, Total: total}, nil
}
