package appointment_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	appointmentHandler "github.com/clinichq/clinic-api/internal/handler/appointment"
	"github.com/clinichq/clinic-api/internal/middleware"
	"github.com/clinichq/clinic-api/internal/model"
	"github.com/clinichq/clinic-api/internal/repository"
	appointmentService "github.com/clinichq/clinic-api/internal/service/appointment"
)

type fakeAppointmentRepo struct {
	appointments map[primitive.ObjectID]*model.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now()
	a.UpdatedAt = time.Now()
	stored := *a
	f.appointments[a.ID] = &stored
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) FindBetween(_ context.Context, start, end time.Time) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range f.appointments {
		if !a.StartTime.Before(start) && !a.StartTime.After(end) {
			copied := *a
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (*model.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if status, ok := fields["status"]; ok {
		a.Status = status.(model.AppointmentStatus)
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.appointments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.appointments, id)
	return nil
}

type fakePatientRepo struct {
	byID map[primitive.ObjectID]*model.Patient
}

func (f *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	p.ID = primitive.NewObjectID()
	f.byID[p.ID] = p
	return nil
}

func (f *fakePatientRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Patient, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePatientRepo) FindByCustomID(context.Context, string) (*model.Patient, error) {
	return nil, repository.ErrNotFound
}

func (f *fakePatientRepo) Search(context.Context, string) ([]*model.Patient, error) { return nil, nil }

func (f *fakePatientRepo) Update(context.Context, string, bson.M) (*model.Patient, error) {
	return nil, repository.ErrNotFound
}

func (f *fakePatientRepo) Delete(context.Context, string) error { return repository.ErrNotFound }

type fakeBranchRepo struct {
	byID map[primitive.ObjectID]*model.Branch
}

func (f *fakeBranchRepo) Create(_ context.Context, b *model.Branch) error {
	b.ID = primitive.NewObjectID()
	f.byID[b.ID] = b
	return nil
}

func (f *fakeBranchRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Branch, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (f *fakeBranchRepo) List(context.Context) ([]*model.Branch, error) { return nil, nil }

type testEnv struct {
	engine *gin.Engine
	repo   *fakeAppointmentRepo
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	repo := &fakeAppointmentRepo{appointments: make(map[primitive.ObjectID]*model.Appointment)}
	patients := &fakePatientRepo{byID: make(map[primitive.ObjectID]*model.Patient)}
	branches := &fakeBranchRepo{byID: make(map[primitive.ObjectID]*model.Branch)}

	svc := appointmentService.NewService(repo, patients, branches)
	h := appointmentHandler.NewHandler(svc)

	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	h.RegisterRoutes(engine.Group(""))

	return &testEnv{engine: engine, repo: repo}
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	e.engine.ServeHTTP(w, req)
	return w
}

func TestListInvalidDate(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/appointments?date=not-a-date", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body middleware.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 400, body.StatusCode)
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD.", body.Message)
	assert.Equal(t, "ValidationError", body.Error)
}

func TestListWeek(t *testing.T) {
	env := newTestEnv()

	a := &model.Appointment{
		PatientID: primitive.NewObjectID(),
		BranchID:  primitive.NewObjectID(),
		StartTime: time.Date(2024, 3, 12, 10, 0, 0, 0, time.Local),
		EndTime:   time.Date(2024, 3, 12, 10, 30, 0, 0, time.Local),
		Reason:    "checkup",
		Status:    model.AppointmentStatusUpcoming,
	}
	require.NoError(t, env.repo.Create(context.Background(), a))

	w := env.do(http.MethodGet, "/appointments?date=2024-03-15", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		StatusCode int               `json:"statusCode"`
		Message    string            `json:"message"`
		Data       []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 200, body.StatusCode)
	assert.Equal(t, "Appointments from 2024-03-10 to 2024-03-16", body.Message)
	assert.Len(t, body.Data, 1)
	assert.Contains(t, string(body.Data[0]), `"appoitment_reason":"checkup"`)
}

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv()

	payload := fmt.Sprintf(`{
		"patient_id": %q,
		"branch_id": %q,
		"start_time": "2024-03-12T09:00:00Z",
		"end_time": "2024-03-12T09:30:00Z",
		"appoitment_reason": "checkup"
	}`, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())

	w := env.do(http.MethodPost, "/appointments", payload)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"statusCode": 201, "message": "Appointment created successfully", "data": null}`, w.Body.String())
	assert.Len(t, env.repo.appointments, 1)
}

func TestCreateAppointmentMissingReason(t *testing.T) {
	env := newTestEnv()

	payload := fmt.Sprintf(`{
		"patient_id": %q,
		"branch_id": %q,
		"start_time": "2024-03-12T09:00:00Z",
		"end_time": "2024-03-12T09:30:00Z"
	}`, primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())

	w := env.do(http.MethodPost, "/appointments", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body middleware.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ValidationError", body.Error)
}

func TestDeleteNonexistent(t *testing.T) {
	env := newTestEnv()

	id := primitive.NewObjectID().Hex()
	w := env.do(http.MethodDelete, "/appointments/"+id, "")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body middleware.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 404, body.StatusCode)
	assert.Equal(t, fmt.Sprintf("Appointment #%s not found", id), body.Message)
	assert.Equal(t, "NotFound", body.Error)
}
