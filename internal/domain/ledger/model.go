package ledger

// FilterAll disables the type filter of a search.
const FilterAll = "all"

const recentRecordsLimit = 10

// Record is one ledger entry. Fields are stored as given by the author.
type Record struct {
	ID       int64   `gorm:"primaryKey"`
	UserID   int64   `gorm:"not null"`
	Amount   float64 `gorm:"not null"`
	Type     string  `gorm:"not null"`
	Category string
	Note     string
	Time     string `gorm:"not null"`
	GroupID  string `gorm:"column:group_id;not null"`
}

// RecordView is a record joined with the username of its author.
type RecordView struct {
	Record   `gorm:"embedded"`
	Username string `gorm:"column:username"`
}

type AddRecordInput struct {
	Username string
	GroupID  string
	Amount   float64
	Type     string
	Category string
	Note     string
	Time     string
}

// SearchFilter narrows a search by date components and record type. Nil or
// non-positive date components are omitted.
type SearchFilter struct {
	Year  *int
	Month *int
	Day   *int
	Type  string
}

type Summary struct {
	Income  float64
	Expense float64
	Balance float64
}

type SearchResult struct {
	Records []RecordView
	Summary Summary
}

type CategoryTotal struct {
	Category string
	Total    float64
}

type Analytics struct {
	Income  []CategoryTotal
	Expense []CategoryTotal
}
