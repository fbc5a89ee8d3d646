package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/muhammadusama-15/Todo-List-Website/internal/models"
)

var (
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrEmailNotFound      = errors.New("no account with this email")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordHashFailed = errors.New("failed to hash password")
	ErrUserCreateFailed   = errors.New("failed to create user")
)

type UserService struct {
	db *Database
}

func NewUserService(db *Database) *UserService {
	return &UserService{db: db}
}

// Create registers a new user with a bcrypt-hashed password. A duplicate
// email yields ErrEmailExists; the UNIQUE constraint on users.email backs
// the pre-check, so a racing insert loses cleanly instead of creating a
// second account.
func (us *UserService) Create(name, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)

	var exists int
	err := us.db.DB.QueryRow(`SELECT 1 FROM users WHERE email = ?`, email).Scan(&exists)
	if err == nil {
		return nil, ErrEmailExists
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking email uniqueness: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPasswordHashFailed, err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Created:  time.Now(),
	}

	query := `INSERT INTO users (name, email, password, created) VALUES (?, ?, ?, ?)`
	res, err := us.db.DB.Exec(query, user.Name, user.Email, user.Password, user.Created)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("%w: %v", ErrUserCreateFailed, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserCreateFailed, err)
	}
	user.ID = int(id)

	return &user, nil
}

// Authenticate verifies an email/password pair and returns the matching
// user. Unknown email and bad password are distinct errors so the handlers
// can flash different messages.
func (us *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User

	query := `SELECT id, name, email, password, created FROM users WHERE email = ?`
	err := us.db.DB.Get(&user, query, strings.TrimSpace(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEmailNotFound
		}
		return nil, fmt.Errorf("looking up user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (us *UserService) GetByID(id int) (*models.User, error) {
	var user models.User

	query := `SELECT id, name, email, password, created FROM users WHERE id = ?`
	err := us.db.DB.Get(&user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user by id: %w", err)
	}

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
