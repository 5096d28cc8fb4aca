package models

// ResultKind tags a FetchResult as a success or a failure.
type ResultKind int

const (
	Success ResultKind = iota + 1
	Failure
)

func (k ResultKind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrorType classifies a Failure.
type ErrorType string

const (
	ErrorTypeNone             ErrorType = ""
	ErrorTypeInvalidRequest   ErrorType = "invalid_request"
	ErrorTypeRequest          ErrorType = "request_error"
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeMissingContainer ErrorType = "missing_container"
)

// Failure messages.
const (
	MsgMissingTitleOrURL = "missing title or url"
	MsgArticleNotFound   = "article not found"
	MsgMissingContainer  = "content container not found"
	MsgRequestErrorFmt   = "request error: %s"
)

// FetchResult is the outcome of one article fetch. Exactly one of Text
// (Success) or Message (Failure) is meaningful, as selected by Kind.
type FetchResult struct {
	Kind      ResultKind `yaml:"-" json:"-"`
	Status    string     `yaml:"status" json:"status"`
	Text      string     `yaml:"text,omitempty" json:"text,omitempty"`
	Message   string     `yaml:"error,omitempty" json:"error,omitempty"`
	ErrorType ErrorType  `yaml:"error_type,omitempty" json:"error_type,omitempty"`

	URL        string   `yaml:"url,omitempty" json:"url,omitempty"`
	FinalURL   string   `yaml:"final_url,omitempty" json:"final_url,omitempty"`
	StatusCode int      `yaml:"status_code,omitempty" json:"status_code,omitempty"`
	Paragraphs []string `yaml:"-" json:"-"`
	Language   string   `yaml:"language,omitempty" json:"language,omitempty"`
}

// NewSuccess builds a Success result carrying the joined text.
func NewSuccess(text string) FetchResult {
	return FetchResult{Kind: Success, Status: Success.String(), Text: text}
}

// NewFailure builds a Failure result.
func NewFailure(errType ErrorType, message string) FetchResult {
	return FetchResult{Kind: Failure, Status: Failure.String(), Message: message, ErrorType: errType}
}

func (r FetchResult) IsSuccess() bool {
	return r.Kind == Success
}

// ParagraphCount returns how many paragraphs the result holds.
func (r FetchResult) ParagraphCount() int {
	return len(r.Paragraphs)
}
