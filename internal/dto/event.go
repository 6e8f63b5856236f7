package dto

// CreateEventRequest is the payload for creating a blog event. Dates are ISO
// `YYYY-MM-DD` strings; unparsable values are stored as null rather than
// rejected.
type CreateEventRequest struct {
	Title            string  `json:"title" validate:"required,notblank"`
	ShortDescription string  `json:"shortDescription"`
	LongDescription  string  `json:"longDescription"`
	Location         string  `json:"location"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	Category         string  `json:"category"`
	ImagePath        string  `json:"imagePath"`
	InstituteID      int     `json:"instituteId" validate:"required"`
}

// UpdateEventRequest overwrites every mutable field of an event. The owning
// institute and the active flag are not part of the payload on purpose.
type UpdateEventRequest struct {
	Title            string  `json:"title" validate:"required,notblank"`
	ShortDescription string  `json:"shortDescription"`
	LongDescription  string  `json:"longDescription"`
	Location         string  `json:"location"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	Category         string  `json:"category"`
	ImagePath        string  `json:"imagePath"`
}
