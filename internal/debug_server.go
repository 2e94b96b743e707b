package internal

import (
	"encoding/json"
	"fmt"
	"game-backend/contract"
	"game-backend/domain"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

const defaultArchiveLimit = 50

type StatsProvider func() map[string]any

// InspectRow is one archived room flattened for the text table.
type InspectRow struct {
	Room     string
	GameType string
	State    string
	Players  string
	Started  string
	Finished string
	Error    string
}

func ToInspectRow(info domain.RoomInfo) InspectRow {
	players := make([]string, 0, len(info.Players))
	for _, p := range info.Players {
		name := p.DisplayName
		if name == "" {
			name = strconv.FormatInt(int64(p.UserID), 10)
		}
		players = append(players, fmt.Sprintf("%d:%s", p.Index, name))
	}
	return InspectRow{
		Room:     strconv.FormatInt(int64(info.ID), 10),
		GameType: info.GameType.String(),
		State:    info.State.String(),
		Players:  fmt.Sprintf("%d/%d %s", len(info.Players), info.MaxPlayers, strings.Join(players, " ")),
		Started:  clock(info.StartedAt),
		Finished: clock(info.FinishedAt),
		Error:    info.Error,
	}
}

func clock(t time.Time) string {
	if t.IsZero() {
		return "--:--:--"
	}
	return t.Format("15:04:05")
}

// RenderTable writes rows as a borderless, left aligned table.
func RenderTable(w io.Writer, rows []InspectRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Room", "Game", "State", "Players", "Started", "Finished", "Error"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, r := range rows {
		table.Append([]string{r.Room, r.GameType, r.State, r.Players, r.Started, r.Finished, r.Error})
	}
	table.Render()
}

// NewDebugServer exposes runtime counters and the room archive on
// 0.0.0.0:port. The caller owns ListenAndServe and Shutdown.
func NewDebugServer(log *slog.Logger, port int, stats StatsProvider, archive contract.RoomArchive) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/stats", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{}
		if stats != nil {
			data = stats()
		}
		writeJSON(w, log, data)
	})

	mux.HandleFunc("/debug/archive", func(w http.ResponseWriter, r *http.Request) {
		rooms, ok := listArchive(w, r, archive)
		if !ok {
			return
		}
		writeJSON(w, log, rooms)
	})

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		rooms, ok := listArchive(w, r, archive)
		if !ok {
			return
		}
		rows := make([]InspectRow, 0, len(rooms))
		for _, info := range rooms {
			rows = append(rows, ToInspectRow(info))
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		RenderTable(w, rows)
	})

	return &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func listArchive(w http.ResponseWriter, r *http.Request, archive contract.RoomArchive) ([]domain.RoomInfo, bool) {
	if archive == nil {
		http.Error(w, "archive disabled", http.StatusNotFound)
		return nil, false
	}
	limit := defaultArchiveLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return nil, false
		}
		limit = n
	}
	rooms, err := archive.List(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return rooms, true
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("Debug response not written", "error", err)
	}
}
