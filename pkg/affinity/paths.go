package affinity

import "fmt"

// Path builders for the fixed set of API endpoints this server touches.
// Identifiers are opaque to this layer; no local existence checks are made.

func PersonsPath() string { return "/persons" }

func PersonPath(id int64) string { return fmt.Sprintf("/persons/%d", id) }

func OrganizationsPath() string { return "/organizations" }

func OrganizationPath(id int64) string { return fmt.Sprintf("/organizations/%d", id) }

func OpportunitiesPath() string { return "/opportunities" }

func NotesPath() string { return "/notes" }

func NotePath(id int64) string { return fmt.Sprintf("/notes/%d", id) }

func ListsPath() string { return "/lists" }

func ListPath(id int64) string { return fmt.Sprintf("/lists/%d", id) }

func ListEntriesPath(listID int64) string { return fmt.Sprintf("/lists/%d/list-entries", listID) }

func ListEntryPath(entryID int64) string { return fmt.Sprintf("/list-entries/%d", entryID) }

func FieldsPath() string { return "/fields" }

func FieldValuesPath() string { return "/field-values" }

func FieldValuePath(id int64) string { return fmt.Sprintf("/field-values/%d", id) }
