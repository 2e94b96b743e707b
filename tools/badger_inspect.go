package main

import (
	"context"
	"flag"
	"fmt"
	"game-backend/domain"
	"game-backend/infrastructure/storage"
	"game-backend/internal"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	limit := flag.Int("limit", 50, "Number of archived rooms to show, most recent first (0 for all)")
	roomID := flag.Int64("room", 0, "Show a single archived room")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	archive := storage.NewRoomArchive(db, logs.GetLoggerFromString("WARN"), 0)
	ctx := context.Background()

	var rooms []domain.RoomInfo
	if *roomID > 0 {
		info, err := archive.Load(ctx, domain.RoomID(*roomID))
		if err != nil {
			log.Fatal(err)
		}
		rooms = append(rooms, info)
	} else if rooms, err = archive.List(ctx, *limit); err != nil {
		log.Fatal(err)
	}

	rows := make([]internal.InspectRow, 0, len(rooms))
	for _, info := range rooms {
		rows = append(rows, internal.ToInspectRow(info))
	}
	internal.RenderTable(os.Stdout, rows)
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// A crashed writer leaves a log that only a writable open can truncate
		if strings.Contains(err.Error(), "Log truncate required") {
			fmt.Println("Truncating value log before read-only open")

			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
