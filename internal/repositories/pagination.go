package repositories

// Page selects a window of rows.
type Page struct {
	Limit  int
	Offset int
}
