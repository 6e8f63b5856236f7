package models

// Career is a study program offered by an institute. CareerID is the
// caller-supplied business identifier, distinct from the storage row id.
type Career struct {
	RowID       int     `db:"id" json:"-"`
	CareerID    int     `db:"career_id" json:"careerID"`
	Name        string  `db:"name" json:"name"`
	Acronym     string  `db:"acronym" json:"acronym"`
	Email       *string `db:"email" json:"email"`
	Phone       *string `db:"phone" json:"phone"`
	InstituteID int     `db:"institute_id" json:"-"`
}

// Institute is a technological institute together with its career list.
// Careers is always filled by a lookup on careers.institute_id, never stored
// inline.
type Institute struct {
	InstituteID   int      `db:"id" json:"instituteID"`
	Acronym       string   `db:"acronym" json:"acronym"`
	Name          string   `db:"name" json:"name"`
	Address       string   `db:"address" json:"address"`
	Email         string   `db:"email" json:"email"`
	Phone         string   `db:"phone" json:"phone"`
	StudentNumber int      `db:"student_number" json:"studentNumber"`
	TeacherNumber int      `db:"teacher_number" json:"teacherNumber"`
	WebSite       *string  `db:"website" json:"webSite"`
	Facebook      *string  `db:"facebook" json:"facebook"`
	Instagram     *string  `db:"instagram" json:"instagram"`
	Twitter       *string  `db:"twitter" json:"twitter"`
	Youtube       *string  `db:"youtube" json:"youtube"`
	Careers       []Career `db:"-" json:"listCareer"`
}

// InstituteListResponse wraps a collection read.
type InstituteListResponse struct {
	Institutes []Institute `json:"institutes"`
	Total      int         `json:"total"`
}

// InstituteSearchResponse mirrors the list shape; total is the denormalized
// length of the result.
type InstituteSearchResponse struct {
	Institutes []Institute `json:"institutes"`
	Total      int         `json:"total"`
	Query      string      `json:"query"`
}

// InstituteStats aggregates counters across all institutes.
type InstituteStats struct {
	TotalInstitutes int64 `json:"totalInstitutes"`
	TotalCareers    int64 `json:"totalCareers"`
	TotalStudents   int64 `json:"totalStudents"`
	TotalTeachers   int64 `json:"totalTeachers"`
}
