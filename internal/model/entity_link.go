package model

// EntityLink is a generic, polymorphic link between two entities.
// Source and target ids are stored as opaque strings so numeric keys
// and UUIDs share one table. Links are fully derived from a section's
// summary text and replaced wholesale whenever that text is saved.
//
// A link's target is allowed to be missing. Dangling references are
// tolerated and resolve to placeholder previews instead of errors.
type EntityLink struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	SourceKind EntityKind `gorm:"not null;index:idx_entity_links_source"`
	SourceID   string     `gorm:"not null;index:idx_entity_links_source"`
	AnchorText string     `gorm:"not null"`
	TargetKind EntityKind `gorm:"not null;index:idx_entity_links_target"`
	TargetID   string     `gorm:"not null;index:idx_entity_links_target"`
}

func (EntityLink) TableName() string {
	return "log_entity_links"
}
