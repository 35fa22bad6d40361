package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftops/workforce-backend-go/internal/domain/user"
	"github.com/shiftops/workforce-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

// attributeTables maps attribute kinds onto their join and lookup tables.
var attributeTables = map[string][2]string{
	user.AttrQualification: {"user_qualifications", "qualifications"},
	user.AttrSkill:         {"user_skills", "skills"},
	user.AttrLanguage:      {"user_languages", "languages"},
}

const userColumns = `id, name, username, email, password_hash, mobile, address, role, status, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.PasswordHash,
		&u.Mobile, &u.Address, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, username, email, password_hash, mobile, address, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Name, u.Username, u.Email, u.PasswordHash,
		u.Mobile, u.Address, u.Role, u.Status,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.User{}, user.ErrEmailTaken
			}
			return user.User{}, user.ErrUsernameTaken
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := r.loadAttributes(ctx, &u); err != nil {
		return user.User{}, err
	}

	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

// Update implements user.Repository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users SET
			name = $1, username = $2, email = $3, mobile = $4, address = $5,
			role = $6, status = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		u.Name, u.Username, u.Email, u.Mobile, u.Address, u.Role, u.Status, u.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.ErrEmailTaken
			}
			return user.ErrUsernameTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete removes the user; the attribute join rows go with it via ON
// DELETE CASCADE.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// List implements user.Repository.
func (r *userRepository) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Username != nil && *filter.Username != "" {
		baseWhere += fmt.Sprintf(" AND u.username ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Username+"%")
		argIdx++
	}
	if len(filter.QualificationIDs) > 0 {
		baseWhere += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM user_qualifications uq WHERE uq.user_id = u.id AND uq.qualification_id = ANY($%d))", argIdx)
		args = append(args, filter.QualificationIDs)
		argIdx++
	}
	if len(filter.SkillIDs) > 0 {
		baseWhere += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM user_skills us WHERE us.user_id = u.id AND us.skill_id = ANY($%d))", argIdx)
		args = append(args, filter.SkillIDs)
		argIdx++
	}
	if len(filter.LanguageIDs) > 0 {
		baseWhere += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM user_languages ul WHERE ul.user_id = u.id AND ul.language_id = ANY($%d))", argIdx)
		args = append(args, filter.LanguageIDs)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM users u WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT u.id, u.name, u.username, u.email, u.password_hash, u.mobile, u.address,
		       u.role, u.status, u.created_at, u.updated_at
		FROM users u
		WHERE %s
		ORDER BY u.username
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate users: %w", err)
	}

	for i := range users {
		if err := r.loadAttributes(ctx, &users[i]); err != nil {
			return nil, 0, err
		}
	}

	return users, total, nil
}

// SearchActive implements user.Repository.
func (r *userRepository) SearchActive(ctx context.Context, username string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE status = 'active' AND username ILIKE $1
		ORDER BY username
		LIMIT 50
	`, "%"+username+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// AddAttributes implements user.Repository.
func (r *userRepository) AddAttributes(ctx context.Context, userID int64, kind string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	tables, ok := attributeTables[kind]
	if !ok {
		return fmt.Errorf("unknown attribute kind %q", kind)
	}
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, %s_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING
	`, tables[0], kind)

	if _, err := q.Exec(ctx, query, userID, ids); err != nil {
		return fmt.Errorf("failed to add %s attributes: %w", kind, err)
	}
	return nil
}

// RemoveAttributes implements user.Repository.
func (r *userRepository) RemoveAttributes(ctx context.Context, userID int64, kind string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	tables, ok := attributeTables[kind]
	if !ok {
		return fmt.Errorf("unknown attribute kind %q", kind)
	}
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND %s_id = ANY($2)`, tables[0], kind)
	if _, err := q.Exec(ctx, query, userID, ids); err != nil {
		return fmt.Errorf("failed to remove %s attributes: %w", kind, err)
	}
	return nil
}

// AttributeIDs implements user.Repository.
func (r *userRepository) AttributeIDs(ctx context.Context, userID int64, kind string) ([]int64, error) {
	tables, ok := attributeTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown attribute kind %q", kind)
	}
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT %s_id FROM %s WHERE user_id = $1`, kind, tables[0]), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s ids: %w", kind, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s id: %w", kind, err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AllAttributes implements user.Repository.
func (r *userRepository) AllAttributes(ctx context.Context) (user.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)
	var resp user.SummaryResponse

	scan := func(table string, dest *[]user.Attribute) error {
		rows, err := q.Query(ctx, fmt.Sprintf(`SELECT id, name FROM %s ORDER BY name`, table))
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var a user.Attribute
			if err := rows.Scan(&a.ID, &a.Name); err != nil {
				return err
			}
			*dest = append(*dest, a)
		}
		return rows.Err()
	}

	if err := scan("qualifications", &resp.Qualifications); err != nil {
		return resp, fmt.Errorf("failed to load qualifications: %w", err)
	}
	if err := scan("skills", &resp.Skills); err != nil {
		return resp, fmt.Errorf("failed to load skills: %w", err)
	}
	if err := scan("languages", &resp.Languages); err != nil {
		return resp, fmt.Errorf("failed to load languages: %w", err)
	}

	return resp, nil
}

func (r *userRepository) loadAttributes(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	load := func(kind string, dest *[]user.Attribute) error {
		tables := attributeTables[kind]
		query := fmt.Sprintf(`
			SELECT a.id, a.name
			FROM %s j
			JOIN %s a ON a.id = j.%s_id
			WHERE j.user_id = $1
			ORDER BY a.name
		`, tables[0], tables[1], kind)

		rows, err := q.Query(ctx, query, u.ID)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var a user.Attribute
			if err := rows.Scan(&a.ID, &a.Name); err != nil {
				return err
			}
			*dest = append(*dest, a)
		}
		return rows.Err()
	}

	if err := load(user.AttrQualification, &u.Qualifications); err != nil {
		return fmt.Errorf("failed to load user qualifications: %w", err)
	}
	if err := load(user.AttrSkill, &u.Skills); err != nil {
		return fmt.Errorf("failed to load user skills: %w", err)
	}
	if err := load(user.AttrLanguage, &u.Languages); err != nil {
		return fmt.Errorf("failed to load user languages: %w", err)
	}

	return nil
}
