package storage

import (
	"context"
	"errors"
	"fmt"
	"game-backend/domain"
	gameerrors "game-backend/errors"
	"game-backend/wire"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const roomPrefix = "room:"

// RoomArchive keeps the terminal snapshot of swept rooms in BadgerDB.
// Keys are zero padded room ids so iteration follows creation order.
type RoomArchive struct {
	db  *badger.DB
	log *slog.Logger
	ttl time.Duration
}

// NewRoomArchive stores snapshots forever when ttl is zero.
func NewRoomArchive(db *badger.DB, log *slog.Logger, ttl time.Duration) *RoomArchive {
	return &RoomArchive{db: db, log: log, ttl: ttl}
}

func RoomKey(roomID domain.RoomID) []byte {
	return []byte(fmt.Sprintf("%s%019d", roomPrefix, roomID))
}

func (a *RoomArchive) Save(ctx context.Context, info domain.RoomInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry := badger.NewEntry(RoomKey(info.ID), wire.MarshalRoomInfo(info))
	if a.ttl > 0 {
		entry = entry.WithTTL(a.ttl)
	}
	if err := a.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	}); err != nil {
		return fmt.Errorf("archive room %d: %w", info.ID, err)
	}
	return nil
}

func (a *RoomArchive) Load(ctx context.Context, roomID domain.RoomID) (domain.RoomInfo, error) {
	if err := ctx.Err(); err != nil {
		return domain.RoomInfo{}, err
	}
	var info domain.RoomInfo
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(RoomKey(roomID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %d", gameerrors.ErrRoomNotFound, roomID)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			info, err = wire.UnmarshalRoomInfo(val)
			return err
		})
	})
	return info, err
}

// List returns up to limit archived rooms, most recent first.
func (a *RoomArchive) List(ctx context.Context, limit int) ([]domain.RoomInfo, error) {
	var rooms []domain.RoomInfo
	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(roomPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration must seek past the last key of the prefix
		for it.Seek([]byte(roomPrefix + "\xff")); it.Valid() && (limit <= 0 || len(rooms) < limit); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(val []byte) error {
				info, err := wire.UnmarshalRoomInfo(val)
				if err != nil {
					a.log.Warn("Skipping corrupted archive entry", "key", string(it.Item().Key()), "error", err)
					return nil
				}
				rooms = append(rooms, info)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list archive: %w", err)
	}
	return rooms, nil
}
