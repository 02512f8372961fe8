// Package identity is the embedded identity provider of the fulfillment API.
// It owns a badger key-value store of app clients and user accounts, hashes
// passwords with bcrypt, and exchanges valid credentials for signed JWTs.
// The API layer never sees this package directly; it authorizes requests
// through the Verifier alone.
package identity

import (
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GroupAdmin is the group whose members may call the fulfillment operations.
const GroupAdmin = "admin"

// minPasswordLength mirrors the sign-up password policy of the hosted user
// pool this provider replaces.
const minPasswordLength = 8

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password does not satisfy the policy")
	ErrValueIsMissing     = errors.New("required value is missing")
)

// Client is an app client allowed to initiate authentication.
type Client struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// User is the public view of a user account.
type User struct {
	Username  string
	Email     string
	Groups    []string
	CreatedAt time.Time
}

// Service administers clients and users and runs the credential exchange.
// All state lives in the badger store; the service itself is stateless and
// safe for concurrent use.
type Service struct {
	db       *badger.DB
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates an identity service over an open badger store.
// The secret signs issued tokens; tokenTTL bounds their lifetime.
func NewService(db *badger.DB, secret []byte, tokenTTL time.Duration) (*Service, error) {
	if db == nil {
		return nil, errors.New("badger store is required")
	}
	if len(secret) == 0 {
		return nil, errors.New("signing secret is required")
	}
	if tokenTTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}

	return &Service{
		db:       db,
		secret:   secret,
		tokenTTL: tokenTTL,
	}, nil
}

// CreateClient registers a new app client and returns it with a minted id.
func (s *Service) CreateClient(name string) (Client, error) {
	if name == "" {
		return Client{}, ErrValueIsMissing
	}

	record := clientRecord{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return putRecord(txn, clientKey(record.ID), record)
	})
	if err != nil {
		return Client{}, err
	}

	return Client(record), nil
}

// DeleteClient removes an app client. Tokens already issued through it stay
// valid until they expire.
func (s *Service) DeleteClient(clientID string) error {
	if clientID == "" {
		return ErrValueIsMissing
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := clientKey(clientID)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrClientNotFound
			}
			return err
		}
		return txn.Delete(key)
	})
}

// AdminCreateUser registers a user account without credentials. The account
// cannot sign in until AdminSetUserPassword runs.
func (s *Service) AdminCreateUser(username, email string) (User, error) {
	if username == "" || email == "" {
		return User{}, ErrValueIsMissing
	}

	record := userRecord{
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		key := userKey(username)
		_, getErr := txn.Get(key)
		if getErr == nil {
			return ErrUserAlreadyExists
		}
		if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return getErr
		}
		return putRecord(txn, key, record)
	})
	if err != nil {
		return User{}, err
	}

	return publicUser(record), nil
}

// AdminSetUserPassword hashes and stores the user's password, replacing any
// previous one.
func (s *Service) AdminSetUserPassword(username, password string) error {
	if username == "" {
		return ErrValueIsMissing
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooWeak
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.updateUser(username, func(record *userRecord) error {
		record.PasswordHash = hash
		return nil
	})
}

// AdminAddUserToGroup grants the user a group membership. Adding a group the
// user already holds is a no-op.
func (s *Service) AdminAddUserToGroup(username, group string) error {
	if username == "" || group == "" {
		return ErrValueIsMissing
	}

	return s.updateUser(username, func(record *userRecord) error {
		for _, member := range record.Groups {
			if member == group {
				return nil
			}
		}
		record.Groups = append(record.Groups, group)
		return nil
	})
}

// AdminDeleteUser removes a user account.
func (s *Service) AdminDeleteUser(username string) error {
	if username == "" {
		return ErrValueIsMissing
	}

	return s.db.Update(func(txn *badger.Txn) error {
		key := userKey(username)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return txn.Delete(key)
	})
}

// GetUser returns the public view of one user account.
func (s *Service) GetUser(username string) (User, error) {
	if username == "" {
		return User{}, ErrValueIsMissing
	}

	var record userRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return getRecord(txn, userKey(username), &record)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}

	return publicUser(record), nil
}

// InitiateAuth exchanges credentials for a signed token. The client must be
// registered; a missing user, an unset password and a wrong password are
// indistinguishable to the caller.
func (s *Service) InitiateAuth(clientID, username, password string) (string, error) {
	if clientID == "" || username == "" || password == "" {
		return "", ErrValueIsMissing
	}

	var user userRecord
	err := s.db.View(func(txn *badger.Txn) error {
		if _, getErr := txn.Get(clientKey(clientID)); getErr != nil {
			if errors.Is(getErr, badger.ErrKeyNotFound) {
				return ErrClientNotFound
			}
			return getErr
		}
		return getRecord(txn, userKey(username), &user)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if len(user.PasswordHash) == 0 {
		return "", ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(user, clientID)
}

// updateUser runs a read-modify-write cycle on one user record in a single
// transaction.
func (s *Service) updateUser(username string, mutate func(*userRecord) error) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := userKey(username)

		var record userRecord
		if err := getRecord(txn, key, &record); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if err := mutate(&record); err != nil {
			return err
		}
		return putRecord(txn, key, record)
	})
}

func publicUser(record userRecord) User {
	return User{
		Username:  record.Username,
		Email:     record.Email,
		Groups:    record.Groups,
		CreatedAt: record.CreatedAt,
	}
}
