// Package client es un cliente tipado de la API de estudiantes.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"aikiddo-api/internal/platform/httpclient"
)

var ErrNotFound = errors.New("student not found")

type Student struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Gender    string     `json:"gender"`
	Birthdate string     `json:"birthdate"`
	HairColor string     `json:"hair_color"`
	HairType  string     `json:"hair_type"`
	Interests []Interest `json:"interests"`
	Pets      []Pet      `json:"pets"`
	Lessons   []Lesson   `json:"lessons"`
}

type Interest struct {
	ID       string `json:"id,omitempty"`
	Interest string `json:"interest"`
}

type Pet struct {
	ID       string  `json:"id,omitempty"`
	PetType  string  `json:"pet_type"`
	PetBreed *string `json:"pet_breed"`
	PetName  string  `json:"pet_name"`
}

type Lesson struct {
	ID        string           `json:"id,omitempty"`
	Content   string           `json:"content"`
	Date      time.Time        `json:"date"`
	Questions []LessonQuestion `json:"questions,omitempty"`
}

type LessonQuestion struct {
	ID             string `json:"id"`
	QuestionText   string `json:"question_text"`
	ExpectedAnswer string `json:"expected_answer"`
	GivenAnswer    string `json:"given_answer"`
	Score          int    `json:"score"`
}

// NewStudent es el body de POST /students/.
type NewStudent struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Birthdate string `json:"birthdate"` // YYYY-MM-DD
	HairColor string `json:"hair_color"`
	HairType  string `json:"hair_type"`
}

// FieldError es un item de una respuesta 422.
type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// ValidationError agrupa los errores de una respuesta 422.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error"
	}
	return "validation error: " + e.Fields[0].Msg
}

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// NewWithHTTP usa un httpclient ya armado (p.ej. con el transport de httptest).
func NewWithHTTP(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) CreateStudent(ctx context.Context, in NewStudent) (Student, error) {
	var out Student
	err := c.do(ctx, http.MethodPost, "/students/", in, &out)
	return out, err
}

func (c *Client) GetStudent(ctx context.Context, id string) (Student, error) {
	var out Student
	err := c.do(ctx, http.MethodGet, studentPath(id), nil, &out)
	return out, err
}

// DeleteStudent devuelve el detail de la respuesta ("Student removed").
func (c *Client) DeleteStudent(ctx context.Context, id string) (string, error) {
	var out struct {
		Detail string `json:"detail"`
	}
	err := c.do(ctx, http.MethodDelete, studentPath(id), nil, &out)
	return out.Detail, err
}

func (c *Client) AddInterests(ctx context.Context, studentID string, items []Interest) (Student, error) {
	var out Student
	err := c.do(ctx, http.MethodPost, studentPath(studentID)+"/interests", items, &out)
	return out, err
}

func (c *Client) AddPets(ctx context.Context, studentID string, items []Pet) (Student, error) {
	var out Student
	err := c.do(ctx, http.MethodPost, studentPath(studentID)+"/pets", items, &out)
	return out, err
}

func (c *Client) AddLessons(ctx context.Context, studentID string, items []Lesson) (Student, error) {
	var out Student
	err := c.do(ctx, http.MethodPost, studentPath(studentID)+"/lessons", items, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	err := c.http.DoJSON(ctx, method, path, in, out)
	if err == nil {
		return nil
	}

	var he *httpclient.HTTPError
	if !errors.As(err, &he) {
		return err
	}

	switch he.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnprocessableEntity:
		var fields []FieldError
		if json.Unmarshal(he.Detail, &fields) == nil {
			return &ValidationError{Fields: fields}
		}
	}
	return err
}

func studentPath(id string) string {
	return "/students/" + url.PathEscape(id)
}
