package diagram

// Column is one row inside a table node: field name plus a display type.
type Column struct {
	Name string
	Type string
}

// Table is one node of the ERD.
type Table struct {
	Name    string
	Columns []Column
}

// Reference is one foreign-key edge, drawn from the referencing column's
// connection point to the referenced column's connection point.
type Reference struct {
	FromTable  string
	FromColumn string
	ToTable    string
	ToColumn   string
}

// Tables returns the five schema tables in render order.
func Tables() []Table {
	return []Table{
		{Name: "User", Columns: []Column{
			{"ID", "int"},
			{"username", "string"},
			{"firstname", "string"},
			{"lastname", "string"},
			{"email", "string"},
		}},
		{Name: "Follower", Columns: []Column{
			{"user_from_id", "int"},
			{"user_to_id", "int"},
			{"followed_at", "datetime"},
		}},
		{Name: "Post", Columns: []Column{
			{"ID", "int"},
			{"user_id", "int"},
			{"caption", "text"},
			{"created_at", "datetime"},
		}},
		{Name: "Comment", Columns: []Column{
			{"ID", "int"},
			{"comment_text", "string"},
			{"author_id", "int"},
			{"post_id", "int"},
			{"created_at", "datetime"},
		}},
		{Name: "Media", Columns: []Column{
			{"ID", "int"},
			{"type", "enum"},
			{"url", "string"},
			{"post_id", "int"},
			{"uploaded_at", "datetime"},
		}},
	}
}

// References returns the six foreign-key relationships of the schema.
func References() []Reference {
	return []Reference{
		{"Follower", "user_from_id", "User", "ID"},
		{"Follower", "user_to_id", "User", "ID"},
		{"Post", "user_id", "User", "ID"},
		{"Comment", "author_id", "User", "ID"},
		{"Comment", "post_id", "Post", "ID"},
		{"Media", "post_id", "Post", "ID"},
	}
}
