package attendanceapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/luvitbd/attendance-app-go/internal/config"
	"github.com/luvitbd/attendance-app-go/internal/domain/attendance"
	"github.com/luvitbd/attendance-app-go/internal/domain/geo"
	"github.com/luvitbd/attendance-app-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestGetUser_DecodesDocument(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getUser/u1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"_id":     "u1",
			"name":    "Karim",
			"role":    "MR",
			"group":   "Alpha",
			"zone":    "Dhaka North",
			"checkIn": true,
		})
	})

	profile, err := c.GetUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, user.RoleMR, profile.Role)
	assert.True(t, profile.CheckedIn)
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no such user"})
	})

	_, err := c.GetUser(context.Background(), "missing")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestGetAllUsers_ForwardsFilter(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getAllUser", r.URL.Path)
		assert.Equal(t, "MR", r.URL.Query().Get("role"))
		assert.Equal(t, "Dhaka", r.URL.Query().Get("zone"))
		json.NewEncoder(w).Encode([]map[string]any{{"_id": "u1", "name": "Karim", "role": "MR"}})
	})

	role := user.RoleMR
	zone := "Dhaka"
	profiles, err := c.GetAllUsers(context.Background(), user.Filter{Role: &role, Zone: &zone})

	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Karim", profiles[0].Name)
}

func TestSubmitCheckIn_SendsWireFormat(t *testing.T) {
	t.Parallel()

	var got eventPayload
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkin", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]string{"_id": "e77", "message": "Checked in successfully"})
	})

	when := time.Date(2024, 3, 5, 10, 20, 30, 0, attendance.Location())
	ack, err := c.SubmitCheckIn(context.Background(), attendance.Event{
		UserID:   "u1",
		Kind:     attendance.KindCheckIn,
		Time:     when,
		Status:   attendance.StatusLate,
		Note:     "traffic",
		Location: &geo.Coordinates{Latitude: 23.8, Longitude: 90.4},
	})

	require.NoError(t, err)
	assert.Equal(t, "Checked in successfully", ack.Message)
	assert.Equal(t, "e77", ack.EventID)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "2024-03-05 10:20:30", got.Time)
	assert.Equal(t, "2024-03-05", got.Date)
	assert.Equal(t, "Late", got.Status)
	require.NotNil(t, got.Location)
	assert.Equal(t, 23.8, got.Location.Latitude)
}

func TestGetCheckIns_ByDateAndByMonth(t *testing.T) {
	t.Parallel()

	var lastQuery map[string]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		lastQuery = map[string]string{
			"date":  r.URL.Query().Get("date"),
			"month": r.URL.Query().Get("month"),
			"year":  r.URL.Query().Get("year"),
		}
		json.NewEncoder(w).Encode([]map[string]any{{
			"_id":    "e1",
			"userId": "u1",
			"time":   "2024-03-05 10:20:30",
			"date":   "2024-03-05",
			"status": "Success",
		}})
	})

	events, err := c.GetCheckIns(context.Background(), "u1", attendance.Query{Date: "2024-03-05"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", lastQuery["date"])
	require.Len(t, events, 1)
	assert.Equal(t, attendance.KindCheckIn, events[0].Kind)
	assert.Equal(t, 10, events[0].Time.In(attendance.Location()).Hour())

	_, err = c.GetCheckIns(context.Background(), "u1", attendance.Query{Month: 3, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, "3", lastQuery["month"])
	assert.Equal(t, "2024", lastQuery["year"])
}

func TestUpdateStatus_MapsNotFound(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/checkouts/e9/status", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.UpdateStatus(context.Background(), "e9", attendance.KindCheckOut, attendance.StatusApproved)

	assert.ErrorIs(t, err, attendance.ErrEventNotFound)
}

func TestUpdateEvidence_SendsImagePatch(t *testing.T) {
	t.Parallel()

	var got map[string]string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/checkins/e1/image", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{}"))
	})

	err := c.UpdateEvidence(context.Background(), "e1", attendance.KindCheckIn, "https://img.example.com/late.jpg")

	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/late.jpg", got["image"])
}

func TestUpdateEvidence_MapsNotFound(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.UpdateEvidence(context.Background(), "gone", attendance.KindCheckOut, "https://img.example.com/x.jpg")

	assert.ErrorIs(t, err, attendance.ErrEventNotFound)
}

func TestDo_SurfacesUpstreamMessage(t *testing.T) {
	t.Parallel()

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "already checked in"})
	})

	_, err := c.SubmitCheckIn(context.Background(), attendance.Event{UserID: "u1", Time: time.Now()})

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "already checked in", apiErr.Message)
}
