package identity

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes of the two record families in the badger store.
const (
	clientKeyPrefix = "client/"
	userKeyPrefix   = "user/"
)

// clientRecord is the stored form of an app client.
type clientRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// userRecord is the stored form of a user account. PasswordHash is empty
// until a password is set; sign-in is impossible in that window.
type userRecord struct {
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"passwordHash,omitempty"`
	Groups       []string  `json:"groups,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func clientKey(clientID string) []byte {
	return []byte(clientKeyPrefix + clientID)
}

func userKey(username string) []byte {
	return []byte(userKeyPrefix + username)
}

// getRecord loads and decodes one record inside the given transaction.
// badger.ErrKeyNotFound passes through for the caller to map.
func getRecord(txn *badger.Txn, key []byte, dest any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, dest)
	})
}

// putRecord encodes and stores one record inside the given transaction.
func putRecord(txn *badger.Txn, key []byte, record any) error {
	val, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return txn.Set(key, val)
}
