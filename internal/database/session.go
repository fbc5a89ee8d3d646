package database

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/muhammadusama-15/Todo-List-Website/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrTokenGeneration = errors.New("failed to generate session token")
	ErrSessionCreation = errors.New("failed to create session")
	ErrSessionDeletion = errors.New("failed to delete session")
)

// TokenLength is the token size in bytes; 32 bytes is 64 hex characters.
const TokenLength = 32

type SessionService struct {
	db  *Database
	ttl time.Duration
}

func NewSessionService(db *Database, ttl time.Duration) *SessionService {
	return &SessionService{db: db, ttl: ttl}
}

// Create issues a fresh session for the user. Any existing sessions for
// the same user are dropped first, so a user has at most one live session.
func (ss *SessionService) Create(userID int) (*models.Session, error) {
	if err := ss.DeleteUserSessions(userID); err != nil {
		return nil, fmt.Errorf("removing old sessions: %w", err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	now := time.Now()
	session := models.Session{
		Token:   token,
		UserID:  userID,
		Expires: now.Add(ss.ttl),
		Created: now,
	}

	query := `INSERT INTO sessions (token, user_id, expires, created) VALUES (?, ?, ?, ?)`
	_, err = ss.db.DB.Exec(query, session.Token, session.UserID, session.Expires, session.Created)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCreation, err)
	}

	return &session, nil
}

// Get returns the session for a token, deleting it when expired.
func (ss *SessionService) Get(token string) (*models.Session, error) {
	var session models.Session

	query := `SELECT token, user_id, expires, created FROM sessions WHERE token = ?`
	err := ss.db.DB.Get(&session, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("looking up session: %w", err)
	}

	if time.Now().After(session.Expires) {
		ss.Delete(token)
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// UserByToken resolves a session token to its user.
func (ss *SessionService) UserByToken(token string) (*models.User, error) {
	session, err := ss.Get(token)
	if err != nil {
		return nil, err
	}

	var user models.User
	query := `SELECT id, name, email, password, created FROM users WHERE id = ?`
	err = ss.db.DB.Get(&user, query, session.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			// Session points at a user that no longer exists.
			ss.Delete(token)
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up session user: %w", err)
	}

	return &user, nil
}

func (ss *SessionService) Delete(token string) error {
	res, err := ss.db.DB.Exec(`DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionDeletion, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (ss *SessionService) DeleteUserSessions(userID int) error {
	if _, err := ss.db.DB.Exec(`DELETE FROM sessions WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionDeletion, err)
	}
	return nil
}

// DeleteExpired sweeps sessions past their expiry, run at startup.
func (ss *SessionService) DeleteExpired() error {
	if _, err := ss.db.DB.Exec(`DELETE FROM sessions WHERE expires < ?`, time.Now()); err != nil {
		return fmt.Errorf("cleaning up expired sessions: %w", err)
	}
	return nil
}

func generateToken() (string, error) {
	bytes := make([]byte, TokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
