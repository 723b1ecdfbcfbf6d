package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GroupModel struct {
	GroupID          string         `gorm:"column:group_id;primaryKey;type:uuid"`
	GroupName        string         `gorm:"column:group_name;type:varchar(255);not null"`
	GroupDescription string         `gorm:"column:group_description;type:text"`
	GroupCategory    string         `gorm:"column:group_category;type:varchar(100)"`
	GroupResources   datatypes.JSON `gorm:"column:group_resources"` // [{title,url}]
	GroupJoinLink    *string        `gorm:"column:group_join_link;type:text"`
	GroupMemberCount int            `gorm:"column:group_member_count;default:0"`
	GroupIsPrivate   bool           `gorm:"column:group_is_private;default:false"`
	GroupCreatedAt   time.Time      `gorm:"column:group_created_at;autoCreateTime"`
	GroupUpdatedAt   time.Time      `gorm:"column:group_updated_at;autoUpdateTime"`
}

func (GroupModel) TableName() string {
	return "community_groups"
}

func (m *GroupModel) BeforeCreate(tx *gorm.DB) error {
	m.GroupID = uuid.NewString()
	return nil
}
