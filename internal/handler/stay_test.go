package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teaminova/staytax-backend/internal/domain"
	"github.com/teaminova/staytax-backend/internal/handler"
)

// mockStayServicer is a test double for handler.StayServicer.
// Set only the method fields your test needs.
type mockStayServicer struct {
	create  func(ctx context.Context, stay domain.Stay) ([]domain.Stay, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Stay, error)
	list    func(ctx context.Context, month int) ([]domain.Stay, error)
	update  func(ctx context.Context, stay domain.Stay) (domain.Stay, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockStayServicer) Create(ctx context.Context, s domain.Stay) ([]domain.Stay, error) {
	return m.create(ctx, s)
}
func (m *mockStayServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Stay, error) {
	return m.getByID(ctx, id)
}
func (m *mockStayServicer) List(ctx context.Context, month int) ([]domain.Stay, error) {
	return m.list(ctx, month)
}
func (m *mockStayServicer) Update(ctx context.Context, s domain.Stay) (domain.Stay, error) {
	return m.update(ctx, s)
}
func (m *mockStayServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockStayServicer must satisfy handler.StayServicer.
var _ handler.StayServicer = (*mockStayServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into a chi router.
// This mirrors exactly how main.go wires it in production. Nil mocks are fine
// for endpoints the test never touches.
func newHTTPHandler(stays handler.StayServicer, config handler.ConfigServicer, summary handler.SummaryServicer, export handler.ExportServicer) http.Handler {
	r := chi.NewRouter()
	handler.NewServer(stays, config, summary, export).Routes(r)
	return r
}

func stayFixture() domain.Stay {
	return domain.Stay{
		ID:           uuid.New(),
		EntryDate:    time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		FirstName:    "Ada",
		LastName:     "Rossi",
		NumGuests:    2,
		NumMinors:    0,
		NumNights:    3,
		DailyTax:     decimal.RequireFromString("2.00"),
		PreStayNotes: "arriving late",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}.Derive()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// stayBody is the raw JSON shape posted by the new-stay and edit-stay forms.
func stayBody(stay domain.Stay) map[string]any {
	return map[string]any{
		"entry_date":      stay.EntryDate.Format("2006-01-02"),
		"first_name":      stay.FirstName,
		"last_name":       stay.LastName,
		"num_guests":      stay.NumGuests,
		"num_minors":      stay.NumMinors,
		"num_nights":      stay.NumNights,
		"daily_tax":       stay.DailyTax,
		"pre_stay_notes":  stay.PreStayNotes,
		"post_stay_notes": stay.PostStayNotes,
	}
}

// stayJSON mirrors the response shape with decimals decoded exactly.
type stayJSON struct {
	ID        uuid.UUID       `json:"id"`
	EntryDate string          `json:"entry_date"`
	FirstName string          `json:"first_name"`
	NumNights int             `json:"num_nights"`
	TotalTax  decimal.Decimal `json:"total_tax"`
	Month     int             `json:"month"`
}

// ---- POST /stays -----------------------------------------------------------

func TestCreateStay_201_SingleSegment(t *testing.T) {
	fixture := stayFixture()
	svc := &mockStayServicer{
		create: func(_ context.Context, _ domain.Stay) ([]domain.Stay, error) {
			return []domain.Stay{fixture}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/stays", jsonBody(t, stayBody(fixture)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp []stayJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, fixture.ID, resp[0].ID)
	assert.Equal(t, "2024-03-10", resp[0].EntryDate)
	assert.True(t, fixture.TotalTax.Equal(resp[0].TotalTax))
}

func TestCreateStay_201_TwoSegments(t *testing.T) {
	first := stayFixture()
	second := stayFixture()
	svc := &mockStayServicer{
		create: func(_ context.Context, _ domain.Stay) ([]domain.Stay, error) {
			return []domain.Stay{first, second}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/stays", jsonBody(t, stayBody(first)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp []stayJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, 2)
}

func TestCreateStay_422_ValidationError(t *testing.T) {
	svc := &mockStayServicer{
		create: func(_ context.Context, _ domain.Stay) ([]domain.Stay, error) {
			return nil, fmt.Errorf("%w: num_nights must be at least 1", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/stays", jsonBody(t, stayBody(stayFixture())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// The error body carries only the field-level message; the sentinel
	// prefix is stripped before it reaches the client.
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_error", resp.Error.Code)
	assert.Equal(t, "num_nights must be at least 1", resp.Error.Message)
}

func TestCreateStay_422_MalformedBody(t *testing.T) {
	svc := &mockStayServicer{}

	req := httptest.NewRequest(http.MethodPost, "/stays", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /stays ------------------------------------------------------------

func TestListStays_200(t *testing.T) {
	fixture := stayFixture()
	var gotMonth int
	svc := &mockStayServicer{
		list: func(_ context.Context, month int) ([]domain.Stay, error) {
			gotMonth = month
			return []domain.Stay{fixture}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/stays", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, gotMonth, "no month filter by default")

	var resp []stayJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, fixture.ID, resp[0].ID)
}

func TestListStays_200_MonthFilter(t *testing.T) {
	var gotMonth int
	svc := &mockStayServicer{
		list: func(_ context.Context, month int) ([]domain.Stay, error) {
			gotMonth = month
			return []domain.Stay{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/stays?month=2", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, gotMonth)
}

func TestListStays_422_BadMonth(t *testing.T) {
	svc := &mockStayServicer{}

	for _, raw := range []string{"0", "13", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/stays?month="+raw, nil)
		rec := httptest.NewRecorder()

		newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "month=%s", raw)
	}
}

// ---- GET /stays/{id} -------------------------------------------------------

func TestGetStay_200(t *testing.T) {
	fixture := stayFixture()
	svc := &mockStayServicer{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Stay, error) {
			require.Equal(t, fixture.ID, id)
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/stays/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetStay_404(t *testing.T) {
	svc := &mockStayServicer{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Stay, error) {
			return domain.Stay{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/stays/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "stay not found")
}

func TestGetStay_422_MalformedID(t *testing.T) {
	svc := &mockStayServicer{}

	req := httptest.NewRequest(http.MethodGet, "/stays/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- PUT /stays/{id} -------------------------------------------------------

func TestUpdateStay_200_PathIDWins(t *testing.T) {
	fixture := stayFixture()
	var submitted domain.Stay
	svc := &mockStayServicer{
		update: func(_ context.Context, s domain.Stay) (domain.Stay, error) {
			submitted = s
			return fixture, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/stays/"+fixture.ID.String(), jsonBody(t, stayBody(fixture)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fixture.ID, submitted.ID, "path ID must be carried into the service call")
}

func TestUpdateStay_404(t *testing.T) {
	svc := &mockStayServicer{
		update: func(_ context.Context, _ domain.Stay) (domain.Stay, error) {
			return domain.Stay{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/stays/"+uuid.NewString(), jsonBody(t, stayBody(stayFixture())))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /stays/{id} ----------------------------------------------------

func TestDeleteStay_204(t *testing.T) {
	var deleted uuid.UUID
	svc := &mockStayServicer{
		delete: func(_ context.Context, id uuid.UUID) error {
			deleted = id
			return nil
		},
	}

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/stays/"+id.String(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, id, deleted)
}

func TestDeleteStay_404(t *testing.T) {
	svc := &mockStayServicer{
		delete: func(_ context.Context, _ uuid.UUID) error {
			return domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/stays/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc, nil, nil, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
