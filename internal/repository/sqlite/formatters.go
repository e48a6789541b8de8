package sqlite

// FormatBoolForDB converts a bool to the INTEGER form SQLite stores
func FormatBoolForDB(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// ParseBoolFromDB converts a stored INTEGER flag back to a bool
func ParseBoolFromDB(v int64) bool {
	return v != 0
}
