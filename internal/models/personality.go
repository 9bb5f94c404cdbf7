package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Directive is a structured behavioral instruction attached to a Personality.
type Directive struct {
	Task     string `json:"task"`
	Priority string `json:"priority"`
}

// CoreMemory is a foundational memory record attached to a Personality.
type CoreMemory struct {
	Memory     string `json:"memory"`
	Importance string `json:"importance"`
}

// DirectiveList is a JSONB-backed ordered list of directives.
type DirectiveList []Directive

// Value implements driver.Valuer, serializing the list as JSONB.
func (d DirectiveList) Value() (driver.Value, error) {
	if d == nil {
		d = DirectiveList{}
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner.
func (d *DirectiveList) Scan(value interface{}) error {
	return scanJSONList(value, d)
}

// GormDataType tells GORM to map the column as jsonb.
func (DirectiveList) GormDataType() string { return "jsonb" }

// CoreMemoryList is a JSONB-backed ordered list of core memories.
type CoreMemoryList []CoreMemory

// Value implements driver.Valuer, serializing the list as JSONB.
func (m CoreMemoryList) Value() (driver.Value, error) {
	if m == nil {
		m = CoreMemoryList{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *CoreMemoryList) Scan(value interface{}) error {
	return scanJSONList(value, m)
}

// GormDataType tells GORM to map the column as jsonb.
func (CoreMemoryList) GormDataType() string { return "jsonb" }

func scanJSONList(value, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// Personality is the optional 1:1 profile of an Author. Its primary key is
// the owning author's id, which is what enforces the one-to-one.
type Personality struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Hobbies      pq.StringArray `gorm:"type:text[];index:ix_personalities_hobbies,type:gin" json:"hobbies"`
	Directives   DirectiveList  `gorm:"type:jsonb;index:ix_personalities_directives,type:gin" json:"directives"`
	CoreMemories CoreMemoryList `gorm:"type:jsonb" json:"core_memories"`

	Author   *Author  `gorm:"foreignKey:ID;references:ID" json:"author,omitempty"`
	Memories []Memory `gorm:"foreignKey:PersonalityID;constraint:OnDelete:CASCADE" json:"-"`
}

// Memory is free-form recollection data attached to a Personality. It is
// part of the store schema but not exposed over HTTP.
type Memory struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	PersonalityID uint           `gorm:"not null;index" json:"personality_id"`
	Description   string         `gorm:"not null" json:"description"`
	Attributes    datatypes.JSON `gorm:"type:jsonb" json:"attributes,omitempty"`
}
