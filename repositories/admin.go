package repositories

import (
	"chatbot/domain"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const adminPrefix = "admin:"

type AdminRecord struct {
	Identity string    `json:"identity"`
	AddedBy  string    `json:"added_by"`
	AddedAt  time.Time `json:"added_at"`
}

// AdminRepository persists administrator identities under "admin:{identity}".
type AdminRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAdminRepository(db *badger.DB, log *slog.Logger) AdminRepository {
	return AdminRepository{db: db, log: log}
}

// ListAdminIdentities scans the admin prefix. Keys are returned in lexicographical order.
func (a AdminRepository) ListAdminIdentities(_ context.Context) ([]string, error) {
	var identities []string
	err := a.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Prefix = []byte(adminPrefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			identities = append(identities, strings.TrimPrefix(string(it.Item().Key()), adminPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return identities, nil
}

func (a AdminRepository) AddAdmin(_ context.Context, identity string) error {
	return a.addAdmin(identity, "")
}

// Seed registers the configured administrators.
func (a AdminRepository) Seed(_ context.Context, identities []string) error {
	identities = lo.Uniq(lo.Compact(lo.Map(identities, func(id string, _ int) string {
		return domain.NormalizeIdentity(id)
	})))
	for _, identity := range identities {
		if err := a.addAdmin(identity, "config"); err != nil {
			return err
		}
	}
	a.log.Debug("Admins seeded", "count", len(identities))
	return nil
}

func (a AdminRepository) addAdmin(identity, addedBy string) error {
	identity = domain.NormalizeIdentity(identity)
	if identity == "" {
		return fmt.Errorf("add admin: empty identity")
	}
	bytes, err := json.Marshal(AdminRecord{Identity: identity, AddedBy: addedBy, AddedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(adminPrefix+identity), bytes)
	})
}

func (a AdminRepository) RemoveAdmin(_ context.Context, identity string) error {
	identity = domain.NormalizeIdentity(identity)
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(adminPrefix + identity))
	})
}

// Records returns every stored admin with who added it and when.
func (a AdminRepository) Records(_ context.Context) ([]AdminRecord, error) {
	var records []AdminRecord
	err := a.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = []byte(adminPrefix)
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var record AdminRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &record)
			}); err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list admin records: %w", err)
	}
	return records, nil
}
