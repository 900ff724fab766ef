package claim_handoff

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/no-solace/EVSC-BookingFlow/internal/api/middleware"
	"github.com/no-solace/EVSC-BookingFlow/internal/domain"
	claimHandoff "github.com/no-solace/EVSC-BookingFlow/internal/usecase/claim_handoff"
	"github.com/no-solace/EVSC-BookingFlow/pkg/ptr"
	"github.com/no-solace/EVSC-BookingFlow/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *claimHandoff.Response
	err  error

	lastReq *claimHandoff.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *claimHandoff.Request) (*claimHandoff.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, path string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/handoffs/{bookingId}/claim", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Header.Set(middleware.HeaderUserID, "99")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandleSuccess(t *testing.T) {
	claimedAt := time.Date(2025, 11, 20, 9, 5, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &claimHandoff.Response{
		Handoff: &domain.ReceptionHandoff{
			ID:              1,
			BookingID:       555,
			UserID:          42,
			CenterID:        1,
			VehicleID:       7,
			VehicleModel:    ptr.Ptr("VF 8"),
			LicensePlate:    ptr.Ptr("51K-123.45"),
			CustomerName:    "Nguyen Van A",
			CustomerPhone:   "0901234567",
			CustomerEmail:   ptr.Ptr("a.nguyen@example.com"),
			CustomerAddress: ptr.Ptr("District 7, HCMC"),
			OfferTypeID:     1,
			PackageID:       ptr.Ptr(int64(5)),
			BookingDate:     time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			BookingTime:     types.TimeString("09:00"),
			Notes:           ptr.Ptr("подъехать за 15 минут"),
		},
		ClaimedAt: claimedAt,
	}}

	recorder := doRequest(t, uc, "/api/v1/handoffs/555/claim")
	require.Equal(t, http.StatusOK, recorder.Code)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, int64(555), uc.lastReq.BookingID)
	assert.Equal(t, int64(99), uc.lastReq.StaffUserID)

	var resp HandoffResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, int64(555), resp.BookingID)
	assert.Equal(t, "Nguyen Van A", resp.CustomerName)
	require.NotNil(t, resp.CustomerEmail)
	assert.Equal(t, "a.nguyen@example.com", *resp.CustomerEmail)
	require.NotNil(t, resp.CustomerAddress)
	assert.Equal(t, "District 7, HCMC", *resp.CustomerAddress)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "подъехать за 15 минут", *resp.Notes)
	assert.Equal(t, "2025-11-20", resp.BookingDate)
	assert.Equal(t, "09:00", resp.BookingTime)
	assert.Equal(t, claimedAt.Format(time.RFC3339), resp.ClaimedAt)
}

func TestHandleOptionalFieldsOmitted(t *testing.T) {
	uc := &fakeUseCase{resp: &claimHandoff.Response{
		Handoff: &domain.ReceptionHandoff{
			BookingID:     555,
			CenterID:      1,
			VehicleID:     7,
			CustomerName:  "Nguyen Van A",
			CustomerPhone: "0901234567",
			OfferTypeID:   3,
			BookingDate:   time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			BookingTime:   types.TimeString("14:00"),
		},
		ClaimedAt: time.Now(),
	}}

	recorder := doRequest(t, uc, "/api/v1/handoffs/555/claim")
	require.Equal(t, http.StatusOK, recorder.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "customerEmail")
	assert.NotContains(t, raw, "customerAddress")
	assert.NotContains(t, raw, "notes")
	assert.NotContains(t, raw, "vehicleModel")
}

func TestHandleErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: claimHandoff.ErrHandoffNotFound, wantStatus: http.StatusNotFound},
		{name: "already claimed", err: claimHandoff.ErrAlreadyClaimed, wantStatus: http.StatusConflict},
		{name: "invalid input", err: claimHandoff.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: claimHandoff.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(t, &fakeUseCase{err: tt.err}, "/api/v1/handoffs/555/claim")
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestHandleMalformedBookingID(t *testing.T) {
	recorder := doRequest(t, &fakeUseCase{}, "/api/v1/handoffs/abc/claim")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleRequiresAuth(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/handoffs/{bookingId}/claim", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/handoffs/555/claim", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
