package sqlite

import "time"

// Filas gorm. Las FKs se declaran en el lado "has many" con
// constraint:OnDelete:CASCADE; AutoMigrate las crea en la tabla hija.

type studentRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"index;not null"`
	Gender    string    `gorm:"not null"`
	Birthdate time.Time `gorm:"type:date;not null"`
	HairColor string    `gorm:"not null"`
	HairType  string    `gorm:"not null"`

	Interests     []interestRow     `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Pets          []petRow          `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Lessons       []lessonRow       `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	LevelingTests []levelingTestRow `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

func (studentRow) TableName() string { return "students" }

type interestRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	StudentID string `gorm:"index;not null;size:36"`
	Interest  string `gorm:"not null"`
}

func (interestRow) TableName() string { return "interests" }

type petRow struct {
	ID        string  `gorm:"primaryKey;size:36"`
	StudentID string  `gorm:"index;not null;size:36"`
	PetType   string  `gorm:"not null"`
	PetBreed  *string `gorm:"column:pet_breed"`
	PetName   string  `gorm:"not null"`
}

func (petRow) TableName() string { return "pets" }

type lessonRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	StudentID string    `gorm:"index;not null;size:36"`
	Content   string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"not null"`

	Questions []lessonQuestionRow `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`
}

func (lessonRow) TableName() string { return "lessons" }

type lessonQuestionRow struct {
	ID             string `gorm:"primaryKey;size:36"`
	LessonID       string `gorm:"index;not null;size:36"`
	QuestionText   string `gorm:"type:text;not null"`
	ExpectedAnswer string `gorm:"type:text;not null"`
	GivenAnswer    string `gorm:"type:text;not null"`
	Score          int    `gorm:"not null"`
}

func (lessonQuestionRow) TableName() string { return "lesson_questions" }

type levelingTestRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	StudentID string    `gorm:"index;not null;size:36"`
	Date      time.Time `gorm:"not null"`

	Questions []testQuestionRow `gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`
}

func (levelingTestRow) TableName() string { return "leveling_tests" }

type testQuestionRow struct {
	ID             string `gorm:"primaryKey;size:36"`
	TestID         string `gorm:"index;not null;size:36"`
	QuestionText   string `gorm:"type:text;not null"`
	ExpectedAnswer string `gorm:"type:text;not null"`
	GivenAnswer    string `gorm:"type:text;not null"`
	Score          int    `gorm:"not null"`
}

func (testQuestionRow) TableName() string { return "test_questions" }
