package students

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"aikiddo-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	detailNotFound = "Student not found"
	detailRemoved  = "Student removed"
	detailInternal = "Internal Server Error"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/students", func(sr chi.Router) {
		sr.Post("/", createStudentHandler(svc, log))

		sr.Route("/{studentID}", func(one chi.Router) {
			one.Get("/", getStudentHandler(svc, log))
			one.Delete("/", deleteStudentHandler(svc, log))

			one.Post("/interests", createInterestsHandler(svc, log))
			one.Post("/pets", createPetsHandler(svc, log))
			one.Post("/lessons", createLessonsHandler(svc, log))
		})
	})
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// studentResponse es el estudiante con todas sus dependencias.
type studentResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Gender    string             `json:"gender"`
	Birthdate string             `json:"birthdate" example:"2015-03-02"`
	HairColor string             `json:"hair_color"`
	HairType  string             `json:"hair_type"`
	Interests []interestResponse `json:"interests"`
	Pets      []petResponse      `json:"pets"`
	Lessons   []lessonResponse   `json:"lessons"`
}

type interestResponse struct {
	ID       string `json:"id"`
	Interest string `json:"interest"`
}

type petResponse struct {
	ID       string  `json:"id"`
	PetType  string  `json:"pet_type"`
	PetBreed *string `json:"pet_breed"`
	PetName  string  `json:"pet_name"`
}

type lessonResponse struct {
	ID        string                   `json:"id"`
	Content   string                   `json:"content"`
	Date      time.Time                `json:"date"`
	Questions []lessonQuestionResponse `json:"questions"`
}

type lessonQuestionResponse struct {
	ID             string `json:"id"`
	QuestionText   string `json:"question_text"`
	ExpectedAnswer string `json:"expected_answer"`
	GivenAnswer    string `json:"given_answer"`
	Score          int    `json:"score"`
}

// createStudentHandler godoc
// @Summary Crear estudiante
// @Description Crea un estudiante con la información básica, sin dependencias.
// @Tags students
// @Accept json
// @Produce json
// @Param body body studentBaseRequest true "Datos del estudiante"
// @Success 200 {object} studentResponse
// @Failure 422 {object} validationErrorResponse
// @Router /students/ [post]
func createStudentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, verrs := decodeBody[studentBaseRequest](r)
		if verrs != nil {
			writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{Detail: verrs})
			return
		}

		st, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toStudentResponse(st))
	}
}

// getStudentHandler godoc
// @Summary Obtener estudiante
// @Description Devuelve el estudiante con intereses, mascotas y lecciones (con sus preguntas).
// @Tags students
// @Produce json
// @Param studentID path string true "ID del estudiante"
// @Success 200 {object} studentResponse
// @Failure 404 {object} detailResponse
// @Router /students/{studentID} [get]
func getStudentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Get(r.Context(), chi.URLParam(r, "studentID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		writeJSON(w, http.StatusOK, toStudentResponse(st))
	}
}

// deleteStudentHandler godoc
// @Summary Borrar estudiante
// @Description Borra el estudiante y todas sus dependencias.
// @Tags students
// @Produce json
// @Param studentID path string true "ID del estudiante"
// @Success 200 {object} detailResponse
// @Failure 404 {object} detailResponse
// @Router /students/{studentID} [delete]
func deleteStudentHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.Delete(r.Context(), chi.URLParam(r, "studentID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		if !removed {
			writeJSON(w, http.StatusNotFound, detailResponse{Detail: detailNotFound})
			return
		}

		writeJSON(w, http.StatusOK, detailResponse{Detail: detailRemoved})
	}
}

// createInterestsHandler godoc
// @Summary Crear intereses del estudiante
// @Tags students
// @Accept json
// @Produce json
// @Param studentID path string true "ID del estudiante"
// @Param body body []interestBaseRequest true "Intereses"
// @Success 200 {object} studentResponse
// @Failure 404 {object} detailResponse
// @Failure 422 {object} validationErrorResponse
// @Router /students/{studentID}/interests [post]
func createInterestsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqs, verrs := decodeList[interestBaseRequest](r)
		if verrs != nil {
			writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{Detail: verrs})
			return
		}

		in := make([]InterestInput, 0, len(reqs))
		for _, it := range reqs {
			in = append(in, it.toInput())
		}

		studentID := chi.URLParam(r, "studentID")
		if err := svc.AddInterests(r.Context(), studentID, in); err != nil {
			writeError(w, r, log, err)
			return
		}
		respondRefreshed(w, r, svc, log, studentID)
	}
}

// createPetsHandler godoc
// @Summary Crear mascotas del estudiante
// @Tags students
// @Accept json
// @Produce json
// @Param studentID path string true "ID del estudiante"
// @Param body body []petBaseRequest true "Mascotas"
// @Success 200 {object} studentResponse
// @Failure 404 {object} detailResponse
// @Failure 422 {object} validationErrorResponse
// @Router /students/{studentID}/pets [post]
func createPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqs, verrs := decodeList[petBaseRequest](r)
		if verrs != nil {
			writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{Detail: verrs})
			return
		}

		in := make([]PetInput, 0, len(reqs))
		for _, p := range reqs {
			in = append(in, p.toInput())
		}

		studentID := chi.URLParam(r, "studentID")
		if err := svc.AddPets(r.Context(), studentID, in); err != nil {
			writeError(w, r, log, err)
			return
		}
		respondRefreshed(w, r, svc, log, studentID)
	}
}

// createLessonsHandler godoc
// @Summary Crear lecciones del estudiante
// @Tags students
// @Accept json
// @Produce json
// @Param studentID path string true "ID del estudiante"
// @Param body body []lessonBaseRequest true "Lecciones"
// @Success 200 {object} studentResponse
// @Failure 404 {object} detailResponse
// @Failure 422 {object} validationErrorResponse
// @Router /students/{studentID}/lessons [post]
func createLessonsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqs, verrs := decodeList[lessonBaseRequest](r)
		if verrs != nil {
			writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{Detail: verrs})
			return
		}

		in := make([]LessonInput, 0, len(reqs))
		for _, l := range reqs {
			in = append(in, l.toInput())
		}

		studentID := chi.URLParam(r, "studentID")
		if err := svc.AddLessons(r.Context(), studentID, in); err != nil {
			writeError(w, r, log, err)
			return
		}
		respondRefreshed(w, r, svc, log, studentID)
	}
}

// respondRefreshed relee el estudiante después de un Add*.
func respondRefreshed(w http.ResponseWriter, r *http.Request, svc *Service, log logger.Logger, studentID string) {
	st, err := svc.Get(r.Context(), studentID)
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, toStudentResponse(st))
}

// writeError: not found => 404, el resto (incluidas violaciones de FK) => 500.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, detailResponse{Detail: detailNotFound})
		return
	}

	fields := map[string]any{
		"error":      err.Error(),
		"method":     r.Method,
		"path":       r.URL.Path,
		"request_id": chimw.GetReqID(r.Context()),
	}
	switch {
	case errors.Is(err, ErrStudentMissing), errors.Is(err, ErrLessonMissing):
		log.Error("foreign key violation", fields)
	default:
		log.Error("request failed", fields)
	}
	writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: detailInternal})
}

func toStudentResponse(s Student) studentResponse {
	out := studentResponse{
		ID:        s.ID,
		Name:      s.Name,
		Gender:    s.Gender,
		Birthdate: s.Birthdate.Format(dateLayout),
		HairColor: s.HairColor,
		HairType:  s.HairType,
		Interests: make([]interestResponse, 0, len(s.Interests)),
		Pets:      make([]petResponse, 0, len(s.Pets)),
		Lessons:   make([]lessonResponse, 0, len(s.Lessons)),
	}

	for _, it := range s.Interests {
		out.Interests = append(out.Interests, interestResponse{ID: it.ID, Interest: it.Interest})
	}
	for _, p := range s.Pets {
		out.Pets = append(out.Pets, petResponse{
			ID:       p.ID,
			PetType:  p.Type,
			PetBreed: p.Breed,
			PetName:  p.Name,
		})
	}
	for _, l := range s.Lessons {
		lr := lessonResponse{
			ID:        l.ID,
			Content:   l.Content,
			Date:      l.Date,
			Questions: make([]lessonQuestionResponse, 0, len(l.Questions)),
		}
		for _, q := range l.Questions {
			lr.Questions = append(lr.Questions, lessonQuestionResponse{
				ID:             q.ID,
				QuestionText:   q.QuestionText,
				ExpectedAnswer: q.ExpectedAnswer,
				GivenAnswer:    q.GivenAnswer,
				Score:          q.Score,
			})
		}
		out.Lessons = append(out.Lessons, lr)
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
