package schema

// CoreInterviewQuestionTable represents the 'core.interviewquestion' table
type CoreInterviewQuestionTable struct {
	Table       string
	ID          string
	InterviewID string
	Question    string
	Answer      string
	SortOrder   string
}

// CoreInterviewQuestion is the schema definition for core.interviewquestion
var CoreInterviewQuestion = CoreInterviewQuestionTable{
	Table:       "core.interviewquestion",
	ID:          "id",
	InterviewID: "interviewid",
	Question:    "question",
	Answer:      "answer",
	SortOrder:   "sortorder",
}

func (t CoreInterviewQuestionTable) Columns() []string {
	return []string{t.ID, t.InterviewID, t.Question, t.Answer, t.SortOrder}
}
