package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mwaldron/grcal/internal/gregorian"
)

// maxRangeDays caps /range queries to keep responses bounded.
const maxRangeDays = 90

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	logger *slog.Logger
	now    func() time.Time // injectable clock for tests
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(log *slog.Logger) *Handlers {
	return &Handlers{
		logger: log,
		now:    time.Now,
	}
}

// DayInfo is the JSON payload describing a single day in both
// representations.
type DayInfo struct {
	Offset      int    `json:"offset"`
	Date        string `json:"date"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Weekday     int    `json:"weekday"`
	WeekdayName string `json:"weekday_name"`
}

// dayInfo builds the payload for a day offset already known to be in
// range.
func dayInfo(offset int) DayInfo {
	d := gregorian.OffsetToDate(offset)
	wd := gregorian.WeekdayOf(offset)
	return DayInfo{
		Offset:      offset,
		Date:        d.String(),
		Year:        d.Year,
		Month:       d.Month,
		Day:         d.Day,
		Weekday:     int(wd),
		WeekdayName: wd.String(),
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetOffsetDay handles GET /api/v1/offset/{offset}
func (h *Handlers) GetOffsetDay(w http.ResponseWriter, r *http.Request) {
	offsetStr := chi.URLParam(r, "offset")

	offset64, err := strconv.ParseInt(offsetStr, 10, 32)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid offset: %s", offsetStr))
		return
	}

	offset := int(offset64)
	if offset < 0 || offset > gregorian.DayMax {
		WriteBadRequest(w, fmt.Sprintf("Offset must be between 0 and %d", gregorian.DayMax))
		return
	}

	WriteSuccess(w, dayInfo(offset))
}

// GetDateDay handles GET /api/v1/date/{date} where date is YYYY-MM-DD.
func (h *Handlers) GetDateDay(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	offset, err := parseDateParam(dateStr)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, dayInfo(offset))
}

// GetToday handles GET /api/v1/today, resolving the current UTC day.
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	now := h.now().UTC()

	offset, err := gregorian.DateToOffset(now.Year(), int(now.Month()), now.Day())
	if err != nil {
		h.logger.Error("failed to convert current date", slog.Any("error", err))
		WriteInternalError(w, "Failed to resolve current date")
		return
	}

	WriteSuccess(w, dayInfo(offset))
}

// GetRange handles GET /api/v1/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := parseDateParam(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date: %v", err))
		return
	}

	end, err := parseDateParam(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date: %v", err))
		return
	}

	if start > end {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	if end-start+1 > maxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", maxRangeDays))
		return
	}

	days := make([]DayInfo, 0, end-start+1)
	for offset := start; offset <= end; offset++ {
		days = append(days, dayInfo(offset))
	}

	WriteSuccess(w, map[string]interface{}{
		"start": startStr,
		"end":   endStr,
		"days":  days,
	})
}

// parseDateParam parses a YYYY-MM-DD string and resolves it to a day
// offset. The calendrical validation is left to the conversion engine;
// this only splits the fields.
func parseDateParam(s string) (int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid date format %q, use YYYY-MM-DD", s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("invalid date format %q, use YYYY-MM-DD", s)
		}
		nums[i] = n
	}

	offset, err := gregorian.DateToOffset(nums[0], nums[1], nums[2])
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %v", s, err)
	}
	return offset, nil
}
