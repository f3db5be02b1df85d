// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HistoryEntriesColumns holds the columns for the "history_entries" table.
	HistoryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "actor_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"CREATE", "UPDATE", "DELETE", "CV_UPLOAD", "LOGIN", "LOGOUT", "EXPORT"}},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "resource_name", Type: field.TypeString, Nullable: true},
		{Name: "changes", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// HistoryEntriesTable holds the schema information for the "history_entries" table.
	HistoryEntriesTable = &schema.Table{
		Name:       "history_entries",
		Columns:    HistoryEntriesColumns,
		PrimaryKey: []*schema.Column{HistoryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "historyentry_actor_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{HistoryEntriesColumns[2], HistoryEntriesColumns[1]},
			},
			{
				Name:    "historyentry_resource_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{HistoryEntriesColumns[4], HistoryEntriesColumns[1]},
			},
			{
				Name:    "historyentry_action_created_at",
				Unique:  false,
				Columns: []*schema.Column{HistoryEntriesColumns[3], HistoryEntriesColumns[1]},
			},
		},
	}
	// ResourcesColumns holds the columns for the "resources" table.
	ResourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "employee_code", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "department", Type: field.TypeEnum, Enums: []string{"IT", "QA", "BA", "HR", "Design", "DevOps"}},
		{Name: "job_title", Type: field.TypeString},
		{Name: "skills", Type: field.TypeJSON},
		{Name: "experience", Type: field.TypeString},
		{Name: "rate", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"Available", "Assigned", "On Hold"}, Default: "Available"},
		{Name: "idle_from", Type: field.TypeTime},
		{Name: "idle_duration", Type: field.TypeInt, Default: 0},
		{Name: "is_urgent", Type: field.TypeBool, Default: false},
		{Name: "cv_path", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "updated_by", Type: field.TypeString, Nullable: true},
	}
	// ResourcesTable holds the schema information for the "resources" table.
	ResourcesTable = &schema.Table{
		Name:       "resources",
		Columns:    ResourcesColumns,
		PrimaryKey: []*schema.Column{ResourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resource_employee_code",
				Unique:  true,
				Columns: []*schema.Column{ResourcesColumns[3]},
			},
			{
				Name:    "resource_department_status",
				Unique:  false,
				Columns: []*schema.Column{ResourcesColumns[7], ResourcesColumns[12]},
			},
			{
				Name:    "resource_is_urgent",
				Unique:  false,
				Columns: []*schema.Column{ResourcesColumns[15]},
			},
			{
				Name:    "resource_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResourcesColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"Admin", "RA", "Manager", "Viewer"}, Default: "Viewer"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"Active", "Inactive"}, Default: "Active"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HistoryEntriesTable,
		ResourcesTable,
		UsersTable,
	}
)

func init() {
}
