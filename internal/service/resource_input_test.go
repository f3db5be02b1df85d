package service

import (
	"testing"
	"time"
)

func validInput() ResourceInput {
	return ResourceInput{
		EmployeeCode: "FJP001",
		Name:         "Nguyen Van A",
		Email:        "a.nguyen@fjp.example.com",
		Department:   "IT",
		JobTitle:     "Backend Engineer",
		Skills:       []string{"Go", "SQL"},
		Experience:   "5 years",
		Rate:         25.5,
		Status:       "Available",
		IdleFrom:     time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

func fieldErrors(t *testing.T, in ResourceInput) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, fe := range in.Validate() {
		out[fe.Field] = fe.Code
	}
	return out
}

func TestResourceInputValidate_Valid(t *testing.T) {
	t.Parallel()

	if errs := validInput().Validate(); len(errs) != 0 {
		t.Fatalf("Validate() = %+v, want no errors", errs)
	}
}

func TestResourceInputValidate_RequiredFields(t *testing.T) {
	t.Parallel()

	in := ResourceInput{}
	errs := fieldErrors(t, in)

	for _, field := range []string{"employeeCode", "name", "email", "jobTitle", "skills", "experience", "idleFrom"} {
		if errs[field] != "REQUIRED" {
			t.Errorf("field %q: code = %q, want REQUIRED", field, errs[field])
		}
	}
	if errs["department"] != "INVALID_VALUE" {
		t.Errorf("department: code = %q, want INVALID_VALUE", errs["department"])
	}
}

func TestResourceInputValidate_RejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*ResourceInput)
		field    string
		wantCode string
	}{
		{
			name:     "malformed email",
			mutate:   func(in *ResourceInput) { in.Email = "not-an-email" },
			field:    "email",
			wantCode: "INVALID_VALUE",
		},
		{
			name:     "unknown department",
			mutate:   func(in *ResourceInput) { in.Department = "Marketing" },
			field:    "department",
			wantCode: "INVALID_VALUE",
		},
		{
			name:     "unknown status",
			mutate:   func(in *ResourceInput) { in.Status = "Retired" },
			field:    "status",
			wantCode: "INVALID_VALUE",
		},
		{
			name:     "negative rate",
			mutate:   func(in *ResourceInput) { in.Rate = -1 },
			field:    "rate",
			wantCode: "OUT_OF_RANGE",
		},
		{
			name:     "empty skill list",
			mutate:   func(in *ResourceInput) { in.Skills = []string{} },
			field:    "skills",
			wantCode: "REQUIRED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := validInput()
			tt.mutate(&in)
			errs := fieldErrors(t, in)
			if errs[tt.field] != tt.wantCode {
				t.Fatalf("field %q: code = %q, want %q (all: %v)", tt.field, errs[tt.field], tt.wantCode, errs)
			}
		})
	}
}

func TestResourceInputValidate_AcceptsOnHoldStatus(t *testing.T) {
	t.Parallel()

	in := validInput()
	in.Status = "On Hold"
	if errs := in.Validate(); len(errs) != 0 {
		t.Fatalf("Validate() = %+v, want no errors", errs)
	}
}

func TestResourcePatchValidate(t *testing.T) {
	t.Parallel()

	empty := ""
	badDept := "Sales"
	negRate := -3.0
	goodName := "New Name"

	if errs := (ResourcePatch{}).Validate(); len(errs) != 0 {
		t.Fatalf("empty patch: Validate() = %+v, want no errors", errs)
	}

	if errs := (ResourcePatch{Name: &goodName}).Validate(); len(errs) != 0 {
		t.Fatalf("name-only patch: Validate() = %+v, want no errors", errs)
	}

	patch := ResourcePatch{Name: &empty, Department: &badDept, Rate: &negRate}
	errs := patch.Validate()
	if len(errs) != 3 {
		t.Fatalf("Validate() returned %d errors, want 3: %+v", len(errs), errs)
	}

	noSkills := []string{}
	errs = (ResourcePatch{Skills: &noSkills}).Validate()
	if len(errs) != 1 || errs[0].Field != "skills" || errs[0].Code != "REQUIRED" {
		t.Fatalf("empty-skills patch: Validate() = %+v, want skills REQUIRED", errs)
	}
}

func TestUpdateSummary(t *testing.T) {
	t.Parallel()

	if got := UpdateSummary("Available", "Assigned"); got != "Status: Available → Assigned" {
		t.Errorf("UpdateSummary status change = %q", got)
	}
	if got := UpdateSummary("Available", "Available"); got != "Updated resource details" {
		t.Errorf("UpdateSummary no change = %q", got)
	}
}

func TestCreateAndDeleteSummaries(t *testing.T) {
	t.Parallel()

	if got := CreateSummary("Nguyen Van A", "FJP001"); got != "Created resource: Nguyen Van A (FJP001)" {
		t.Errorf("CreateSummary = %q", got)
	}
	if got := DeleteSummary("Nguyen Van A", "FJP001"); got != "Deleted resource: Nguyen Van A (FJP001)" {
		t.Errorf("DeleteSummary = %q", got)
	}
	if got := CVUploadSummary("Nguyen Van A"); got != "Uploaded CV for Nguyen Van A" {
		t.Errorf("CVUploadSummary = %q", got)
	}
	if got := ExportSummary("overview", "xlsx"); got != "Exported overview report as xlsx" {
		t.Errorf("ExportSummary = %q", got)
	}
}
