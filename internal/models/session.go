package models

// StudentFlags is the persisted state of one student
type StudentFlags struct {
	Praise    bool `json:"praise"`
	Criticism bool `json:"criticism"`
}

// Session is the saved board document
type Session struct {
	Subject  string                  `json:"subject"`
	Mode     Mode                    `json:"mode"`
	Students map[string]StudentFlags `json:"students"`
}
