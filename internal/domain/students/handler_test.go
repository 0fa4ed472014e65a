package students

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aikiddo-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, *testRepo, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	svc, repo := newTestService()
	r := chi.NewRouter()
	RegisterRoutes(r, svc, logger.New(logger.Options{Format: logger.FormatJSON, Output: &logs}))
	return r, repo, &logs
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) []fieldError {
	t.Helper()

	var resp validationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Detail
}

func TestCreateStudentHandler_OK(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/students/", `{
		"name": "Ana", "gender": "Female", "birthdate": "2015-03-02",
		"hair_color": "Black", "hair_type": "Curly"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"id": "id-1", "name": "Ana", "gender": "Female", "birthdate": "2015-03-02",
		"hair_color": "Black", "hair_type": "Curly",
		"interests": [], "pets": [], "lessons": []
	}`, rec.Body.String())
}

func TestCreateStudentHandler_Validation(t *testing.T) {
	h, repo, _ := newTestHandler(t)

	cases := []struct {
		name     string
		body     string
		wantLoc  []any
		wantType string
	}{
		{"empty body", "", []any{"body"}, "value_error.missing"},
		{"null body", "null", []any{"body"}, "value_error.missing"},
		{"broken json", `{"name":`, []any{"body"}, "value_error.jsondecode"},
		{"wrong type", `{"name": 7}`, []any{"body", "name"}, "type_error"},
		{
			"bad date",
			`{"name":"A","gender":"F","birthdate":"2015-13-40","hair_color":"x","hair_type":"y"}`,
			[]any{"body", "birthdate"},
			"value_error.date",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(h, http.MethodPost, "/students/", tc.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())

			detail := decodeDetail(t, rec)
			require.NotEmpty(t, detail)
			assert.Equal(t, tc.wantLoc, detail[0].Loc)
			assert.Equal(t, tc.wantType, detail[0].Type)
		})
	}
	assert.Empty(t, repo.byID)
}

func TestCreateStudentHandler_ReportsEveryMissingField(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/students/", `{}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var fields []any
	for _, fe := range decodeDetail(t, rec) {
		assert.Equal(t, "field required", fe.Msg)
		fields = append(fields, fe.Loc[1])
	}
	assert.ElementsMatch(t, []any{"name", "gender", "birthdate", "hair_color", "hair_type"}, fields)
}

func TestGetStudentHandler(t *testing.T) {
	h, repo, _ := newTestHandler(t)
	breed := "Beagle"
	repo.byID["s-1"] = Student{
		ID:        "s-1",
		Name:      "Ana",
		Birthdate: time.Date(2015, 3, 2, 0, 0, 0, 0, time.UTC),
		Pets:      []Pet{{ID: "p-1", Type: "Dog", Breed: &breed, Name: "Rex"}, {ID: "p-2", Type: "Cat", Name: "Mia"}},
		Lessons: []Lesson{{
			ID:        "l-1",
			Content:   "ABC",
			Date:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			Questions: []LessonQuestion{{ID: "q-1", QuestionText: "A?", Score: 3}},
		}},
	}

	rec := serve(h, http.MethodGet, "/students/s-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "2015-03-02", got["birthdate"])
	assert.Equal(t, []any{}, got["interests"])

	pets := got["pets"].([]any)
	assert.Equal(t, "Beagle", pets[0].(map[string]any)["pet_breed"])
	assert.Contains(t, pets[1].(map[string]any), "pet_breed")
	assert.Nil(t, pets[1].(map[string]any)["pet_breed"])

	lesson := got["lessons"].([]any)[0].(map[string]any)
	assert.Equal(t, "2024-05-01T10:00:00Z", lesson["date"])
	assert.Len(t, lesson["questions"], 1)

	rec = serve(h, http.MethodGet, "/students/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Student not found"}`, rec.Body.String())
}

func TestDeleteStudentHandler(t *testing.T) {
	h, repo, _ := newTestHandler(t)
	repo.byID["s-1"] = Student{ID: "s-1"}

	rec := serve(h, http.MethodDelete, "/students/s-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"detail":"Student removed"}`, rec.Body.String())

	rec = serve(h, http.MethodDelete, "/students/s-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateInterestsHandler_ReturnsRefreshedStudent(t *testing.T) {
	h, repo, _ := newTestHandler(t)
	repo.byID["s-1"] = Student{ID: "s-1", Name: "Ana"}

	rec := serve(h, http.MethodPost, "/students/s-1/interests", `[{"interest":"Dinosaurs"},{"interest":"Space"}]`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got studentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Interests, 2)
	assert.Equal(t, "Dinosaurs", got.Interests[0].Interest)
}

func TestCreateLessonsHandler_Validation(t *testing.T) {
	h, repo, _ := newTestHandler(t)
	repo.byID["s-1"] = Student{ID: "s-1"}

	rec := serve(h, http.MethodPost, "/students/s-1/lessons", `[{"content":"ok","date":"2024-05-01"},{"date":"nope"}]`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	detail := decodeDetail(t, rec)
	require.Len(t, detail, 2)
	var locs [][]any
	for _, d := range detail {
		locs = append(locs, d.Loc)
	}
	assert.ElementsMatch(t, [][]any{
		{"body", float64(1), "content"},
		{"body", float64(1), "date"},
	}, locs)
	assert.Empty(t, repo.byID["s-1"].Lessons)
}

func TestCreatePetsHandler_ForeignKeyIs500AndLogged(t *testing.T) {
	h, _, logs := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/students/missing/pets", `[{"pet_type":"Dog","pet_name":"Rex","pet_breed":null}]`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
	assert.Contains(t, logs.String(), "foreign key violation")
}

func TestCreatePetsHandler_RepoFailureIs500(t *testing.T) {
	h, repo, logs := newTestHandler(t)
	repo.byID["s-1"] = Student{ID: "s-1"}
	repo.failWith = errors.New("connection reset")

	rec := serve(h, http.MethodPost, "/students/s-1/pets", `[{"pet_type":"Dog","pet_name":"Rex"}]`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "request failed")
	assert.Contains(t, logs.String(), "connection reset")
}

func TestCreateInterestsHandler_EmptyListOnMissingStudentIs404(t *testing.T) {
	h, repo, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/students/missing/interests", `[]`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, repo.addCalls)
}

func TestCreateStudentHandler_YearOneBirthdate(t *testing.T) {
	h, repo, logs := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/students/", `{
		"name": "Ana", "gender": "Female", "birthdate": "0001-01-01",
		"hair_color": "Black", "hair_type": "Curly"
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got studentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "0001-01-01", got.Birthdate)
	assert.Contains(t, repo.byID, got.ID)
	assert.NotContains(t, logs.String(), "request failed")
}

func TestCreateLessonsHandler_YearOneDate(t *testing.T) {
	h, repo, _ := newTestHandler(t)
	repo.byID["s-1"] = Student{ID: "s-1"}

	rec := serve(h, http.MethodPost, "/students/s-1/lessons", `[{"content":"x","date":"0001-01-01T00:00:00"}]`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got studentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Lessons, 1)
	assert.Equal(t, "x", got.Lessons[0].Content)
	assert.Equal(t, 1, got.Lessons[0].Date.Year())
}
