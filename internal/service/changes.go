package service

import "fmt"

// Change summaries recorded in the history log. The wording is part of the
// audit trail consumed by the frontend, keep it stable.

// CreateSummary describes a resource creation.
func CreateSummary(name, employeeCode string) string {
	return fmt.Sprintf("Created resource: %s (%s)", name, employeeCode)
}

// UpdateSummary describes a resource update. A lifecycle transition is
// called out explicitly, any other edit gets a generic line.
func UpdateSummary(oldStatus, newStatus string) string {
	if oldStatus != newStatus {
		return fmt.Sprintf("Status: %s → %s", oldStatus, newStatus)
	}
	return "Updated resource details"
}

// DeleteSummary describes a resource deletion.
func DeleteSummary(name, employeeCode string) string {
	return fmt.Sprintf("Deleted resource: %s (%s)", name, employeeCode)
}

// CVUploadSummary describes a CV attachment.
func CVUploadSummary(name string) string {
	return fmt.Sprintf("Uploaded CV for %s", name)
}

// ExportSummary describes a report export.
func ExportSummary(reportType, format string) string {
	return fmt.Sprintf("Exported %s report as %s", reportType, format)
}
