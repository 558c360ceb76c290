package edulegit

// Request body for POST /init-moodle-assignment.

type InitAssignmentRequest struct {
	Meta     Meta     `json:"meta"`
	User     User     `json:"user"`
	TaskUser TaskUser `json:"taskUser"`
	Task     Task     `json:"task"`
	Course   Course   `json:"course"`
}

type Meta struct {
	CallbackURL string `json:"callbackUrl"`
	Moodle      string `json:"moodle"`
	Plugin      string `json:"plugin"`
}

type User struct {
	ExternalID int64   `json:"externalId"`
	Email      *string `json:"email"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
}

type TaskUser struct {
	ExternalID int64 `json:"externalId"`
}

type Task struct {
	ExternalID  int64  `json:"externalId"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	Description string `json:"description"`
	StartedAt   *int64 `json:"startedAt"`
	FinishedAt  *int64 `json:"finishedAt"`
}

type Course struct {
	ExternalID int64          `json:"externalId"`
	Title      string         `json:"title"`
	Text       string         `json:"text"`
	StartedAt  *int64         `json:"startedAt"`
	FinishedAt *int64         `json:"finishedAt"`
	Setting    CourseSettings `json:"setting"`
}

type CourseSettings struct {
	AutoPlagiarismCheck       bool `json:"autoPlagiarismCheck"`
	AutoAiCheck               bool `json:"autoAiCheck"`
	MustRecordEvents          bool `json:"mustRecordEvents"`
	MustRecordScreen          bool `json:"mustRecordScreen"`
	MustRecordCamera          bool `json:"mustRecordCamera"`
	MustRecognizeAttentionMap bool `json:"mustRecognizeAttentionMap"`
}

// Response envelope and the nested data schema shared by the init response
// and webhook payloads. Every nested field is optional on the wire, hence
// the pointer types; the mapping layer owns the fallback rules.

type Payload struct {
	Success bool      `json:"success"`
	Error   *string   `json:"error"`
	Data    *TaskData `json:"data"`
}

type TaskData struct {
	BaseURL        *string         `json:"baseUrl"`
	Task           *RemoteTask     `json:"task"`
	TaskUser       *RemoteTaskUser `json:"taskUser"`
	TaskDocument   *TaskDocument   `json:"taskDocument"`
	SharedDocument *SharedDocument `json:"sharedDocument"`
	User           *RemoteUser     `json:"user"`
}

type RemoteTask struct {
	ID *int64 `json:"id"`
}

type RemoteTaskUser struct {
	ID         *int64 `json:"id"`
	TaskID     *int64 `json:"taskId"`
	TaskUserID *int64 `json:"taskUserId"`
	// ExternalID is the local record id echoed back by EduLegit; webhook
	// payloads use it as the correlation id.
	ExternalID *int64 `json:"externalId"`
}

type TaskDocument struct {
	ID                   *int64   `json:"id"`
	Title                *string  `json:"title"`
	Content              *string  `json:"content"`
	Score                *float64 `json:"score"`
	Plagiarism           *float64 `json:"plagiarism"`
	AiAverageProbability *float64 `json:"aiAverageProbability"`
	AiProbability        *float64 `json:"aiProbability"`
}

type SharedDocument struct {
	ViewURL *string `json:"viewUrl"`
	PdfURL  *string `json:"pdfUrl"`
	AuthKey *string `json:"authKey"`
}

type RemoteUser struct {
	ID             *int64  `json:"id"`
	LoginTimeToken *string `json:"loginTimeToken"`
}
