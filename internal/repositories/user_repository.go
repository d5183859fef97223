package repositories

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"

	intconfig "bluebus/internal/config"
	intdb "bluebus/internal/db"
	"bluebus/internal/domain"
	"bluebus/internal/domain/models"
)

// UserRepository is the credential store behind the identity gateway.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// EnsureSchema creates the users table when missing.
func (r UserRepository) EnsureSchema() error {
	db := r.db()
	if intdb.HasTable(db, "users") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	username VARCHAR(100) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'user',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}

// GetByUsername fetches one account including its password hash.
func (r UserRepository) GetByUsername(username string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, username, password_hash, role,
			COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), '')
		FROM users
		WHERE username = ?
		LIMIT 1
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Create registers a new account with an already-hashed password.
func (r UserRepository) Create(username, passwordHash, role string) (int64, error) {
	var exists int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE username = ?`, username).Scan(&exists); err != nil {
		return 0, err
	}
	if exists > 0 {
		return 0, domain.ConflictError{Resource: "user", Msg: "username already registered"}
	}

	res, err := r.db().Exec(`
		INSERT INTO users (username, password_hash, role, created_at)
		VALUES (?, ?, ?, NOW())
	`, username, passwordHash, role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SeedAdmin creates the admin account once, with a bcrypt hash. An
// empty password skips seeding so production deployments must opt in.
func (r UserRepository) SeedAdmin(username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	if _, err := r.GetByUsername(username); err == nil {
		return nil
	} else if !domain.IsNotFound(err) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := r.Create(username, string(hash), models.RoleAdmin); err != nil {
		return err
	}
	log.Printf("seeded admin account %q", username)
	return nil
}
