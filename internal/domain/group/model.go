package group

import "time"

// Group is a shared ledger. Its invite code doubles as the primary key.
type Group struct {
	GroupID   string    `gorm:"column:group_id;primaryKey;size:6"`
	CreatorID int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type Membership struct {
	UserID   int64     `gorm:"primaryKey;autoIncrement:false"`
	GroupID  string    `gorm:"column:group_id;primaryKey"`
	JoinedAt time.Time `gorm:"autoCreateTime"`
}
