package response

// DateTimeFormat is used for all timestamp fields returned over HTTP.
const DateTimeFormat = "2006-01-02 15:04:05"

// DateFormat is used for calendar-date fields (analytics).
const DateFormat = "2006-01-02"
