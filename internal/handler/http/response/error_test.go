package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pontohub/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohub/ponto-backend-go/internal/domain/user"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		// A rejected punch conflicts with the day's existing punches,
		// so these are 409s rather than validation failures.
		{"punch too soon", timesheet.ErrPunchTooSoon, http.StatusConflict},
		{"day full", timesheet.ErrDayFull, http.StatusConflict},
		{"malformed time", timesheet.ErrMalformedTime, http.StatusBadRequest},
		{"record not found", timesheet.ErrRecordNotFound, http.StatusNotFound},
		{"permission denied", user.ErrPermissionDenied, http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)
			assert.Equal(t, c.want, rec.Code)
		})
	}
}
