package types

// Helper is a local volunteer listed in the assistance directory
type Helper struct {
	ID        int
	Name      string
	Language  string
	Expertise string // free-text category
}
