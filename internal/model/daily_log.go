package model

import "time"

// DateLayout is the wire and storage format of log dates. ISO dates
// sort lexicographically, so range queries work the same on postgres
// and sqlite.
const DateLayout = "2006-01-02"

// DailyLog is the root record of one owner's day. It is created lazily
// on the first read or write that touches the date and is never deleted
// by the core service (only the admin path removes one).
type DailyLog struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID   string `gorm:"not null;uniqueIndex:idx_daily_logs_owner_date"`
	LogDate   string `gorm:"not null;uniqueIndex:idx_daily_logs_owner_date"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DailyLog) TableName() string {
	return "daily_logs"
}

// Date parses the stored log date.
func (d *DailyLog) Date() (time.Time, error) {
	return time.Parse(DateLayout, d.LogDate)
}

// FormatDate normalizes a time to the stored date representation.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
