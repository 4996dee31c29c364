package models

import (
	"testing"
)

func TestValidEnums(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		value string
		want  bool
	}{
		{"known role", ValidRole, RoleTechLead, true},
		{"unknown role", ValidRole, "manager", false},
		{"empty role", ValidRole, "", false},
		{"known category", ValidCategory, CategoryLeadership, true},
		{"unknown category", ValidCategory, "negotiation", false},
		{"known difficulty", ValidDifficulty, DifficultySenior, true},
		{"unknown difficulty", ValidDifficulty, "staff", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.value); got != tt.want {
				t.Errorf("Expected %v for %q, got %v", tt.want, tt.value, got)
			}
		})
	}
}

func TestInsertPracticeSessionValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        InsertPracticeSession
		wantErrs  int
		badFields []string
	}{
		{
			name: "valid",
			in:   InsertPracticeSession{Role: RoleSoftwareDeveloper, Category: CategoryCommunication, Duration: 45, TotalQuestions: 5},
		},
		{
			name:      "missing role and category",
			in:        InsertPracticeSession{Duration: 45, TotalQuestions: 5},
			wantErrs:  2,
			badFields: []string{"role", "category"},
		},
		{
			name:      "unknown role",
			in:        InsertPracticeSession{Role: "manager", Category: CategoryCommunication, Duration: 45, TotalQuestions: 5},
			wantErrs:  1,
			badFields: []string{"role"},
		},
		{
			name:      "non-positive duration and count",
			in:        InsertPracticeSession{Role: RoleTechLead, Category: CategoryLeadership, Duration: 0, TotalQuestions: -1},
			wantErrs:  2,
			badFields: []string{"duration", "totalQuestions"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.in.Validate()
			if len(errs) != tt.wantErrs {
				t.Fatalf("Expected %d field errors, got %d: %v", tt.wantErrs, len(errs), errs)
			}
			for i, field := range tt.badFields {
				if errs[i].Field != field {
					t.Errorf("Expected error %d on field %q, got %q", i, field, errs[i].Field)
				}
			}
		})
	}
}

func TestInsertQuestionResponseValidate(t *testing.T) {
	valid := InsertQuestionResponse{SessionID: 1, QuestionID: 2, Response: "answer", TimeSpent: 30}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors for valid payload, got %v", errs)
	}

	empty := InsertQuestionResponse{}
	errs := empty.Validate()
	if len(errs) != 3 {
		t.Errorf("Expected 3 errors for empty payload, got %d: %v", len(errs), errs)
	}

	negative := InsertQuestionResponse{SessionID: 1, QuestionID: 1, Response: "x", TimeSpent: -5}
	if errs := negative.Validate(); len(errs) != 1 || errs[0].Field != "timeSpent" {
		t.Errorf("Expected one timeSpent error, got %v", errs)
	}
}

func TestProgressUpdateValidate(t *testing.T) {
	if errs := (ProgressUpdate{Role: RoleTechLead, Category: CategoryLeadership}).Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}
	if errs := (ProgressUpdate{}).Validate(); len(errs) != 2 {
		t.Errorf("Expected role and category errors, got %v", errs)
	}
}

func TestProgressKey(t *testing.T) {
	a := UserProgress{UserID: 1, Role: RoleTechLead, Category: CategoryLeadership}
	b := UserProgress{UserID: 1, Role: RoleTechLead, Category: CategoryLeadership, QuestionsCompleted: 3}
	if a.Key() != b.Key() {
		t.Error("Expected identical keys for same (user, role, category)")
	}

	c := UserProgress{UserID: 1, Role: RoleTechLead, Category: CategoryCommunication}
	if a.Key() == c.Key() {
		t.Error("Expected different keys for different categories")
	}
}
