package database

// Day is one materialized row of the offset/date mapping.
type Day struct {
	Offset  int    `json:"offset"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	Weekday int    `json:"weekday"` // 1 = Monday ... 7 = Sunday
	ISO     string `json:"iso"`     // YYYY-MM-DD
}
