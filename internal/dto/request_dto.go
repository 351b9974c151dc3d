package dto

// UserCreateDTO registers a user.
type UserCreateDTO struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// SurveyCreateDTO is used by an author to create a survey.
type SurveyCreateDTO struct {
	Title    string `json:"title"`
	AuthorID uint   `json:"author_id" binding:"required"`
}

// OptionDTO is one multiple choice option in a request.
type OptionDTO struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// SubmittableAttributesDTO carries the type-specific attributes of a question.
type SubmittableAttributesDTO struct {
	Minimum *int        `json:"minimum"`
	Maximum *int        `json:"maximum"`
	Options []OptionDTO `json:"options"`
}

// QuestionCreateDTO adds a question to a survey.
type QuestionCreateDTO struct {
	Title                 string                   `json:"title"`
	SubmittableType       string                   `json:"submittable_type" binding:"required"`
	SubmittableAttributes SubmittableAttributesDTO `json:"submittable_attributes"`
}

// QuestionUpdateDTO edits a question's title.
type QuestionUpdateDTO struct {
	Title string `json:"title"`
}

// QuestionTypeSwitchDTO replaces a question's submittable with one of another type.
type QuestionTypeSwitchDTO struct {
	SubmittableType       string                   `json:"submittable_type" binding:"required"`
	SubmittableAttributes SubmittableAttributesDTO `json:"submittable_attributes"`
}

// OptionCreateDTO adds an option to a multiple choice question.
type OptionCreateDTO struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// AnswerDTO is the answer to one question within a completion.
type AnswerDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Text       string `json:"text"`
}

// CompletionCreateDTO submits a user's answers to a survey.
type CompletionCreateDTO struct {
	UserID  uint        `json:"user_id" binding:"required"`
	Answers []AnswerDTO `json:"answers" binding:"dive"`
}

// InvitationCreateDTO invites recipients to take a survey.
type InvitationCreateDTO struct {
	SenderID   uint   `json:"sender_id" binding:"required"`
	Recipients string `json:"recipients"`
	Message    string `json:"message"`
}

// UnsubscribeCreateDTO suppresses email to an address.
type UnsubscribeCreateDTO struct {
	Email string `json:"email" binding:"required"`
}
