package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"

	"linksphere_backend/internals/features/groups/model"
)

type GroupResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ============================
// Response DTO
// ============================
type GroupDTO struct {
	GroupID          string          `json:"id"`
	GroupName        string          `json:"name"`
	GroupDescription string          `json:"description"`
	GroupCategory    string          `json:"category"`
	GroupResources   []GroupResource `json:"resources"`
	GroupJoinLink    *string         `json:"joinLink,omitempty"`
	GroupMemberCount int             `json:"memberCount"`
	GroupIsPrivate   bool            `json:"isPrivate"`
	GroupCreatedAt   time.Time       `json:"createdAt"`
	GroupUpdatedAt   time.Time       `json:"updatedAt"`
}

// ============================
// Create Request DTO
// ============================
type CreateGroupRequest struct {
	GroupName        string          `json:"name" validate:"required,min=1"`
	GroupDescription string          `json:"description"`
	GroupCategory    string          `json:"category"`
	GroupResources   []GroupResource `json:"resources"`
	GroupJoinLink    *string         `json:"joinLink"`
	GroupMemberCount int             `json:"memberCount" validate:"omitempty,min=0"`
	GroupIsPrivate   bool            `json:"isPrivate"`
}

// ============================
// Update Request DTO (partial)
// ============================
type UpdateGroupRequest struct {
	GroupID          string           `json:"id"`
	GroupName        string           `json:"name"`
	GroupDescription *string          `json:"description"`
	GroupCategory    *string          `json:"category"`
	GroupResources   *[]GroupResource `json:"resources"`
	GroupJoinLink    *string          `json:"joinLink"`
	GroupMemberCount *int             `json:"memberCount" validate:"omitempty,min=0"`
	GroupIsPrivate   *bool            `json:"isPrivate"`
}

// ============================
// Converter
// ============================
func resourcesToJSON(rs []GroupResource) datatypes.JSON {
	if rs == nil {
		rs = []GroupResource{}
	}
	raw, err := sonic.Marshal(rs)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func resourcesFromJSON(raw datatypes.JSON) []GroupResource {
	out := []GroupResource{}
	if len(raw) == 0 {
		return out
	}
	_ = sonic.Unmarshal(raw, &out)
	return out
}

func ToGroupDTO(m model.GroupModel) GroupDTO {
	return GroupDTO{
		GroupID:          m.GroupID,
		GroupName:        m.GroupName,
		GroupDescription: m.GroupDescription,
		GroupCategory:    m.GroupCategory,
		GroupResources:   resourcesFromJSON(m.GroupResources),
		GroupJoinLink:    m.GroupJoinLink,
		GroupMemberCount: m.GroupMemberCount,
		GroupIsPrivate:   m.GroupIsPrivate,
		GroupCreatedAt:   m.GroupCreatedAt,
		GroupUpdatedAt:   m.GroupUpdatedAt,
	}
}

func ToGroupDTOs(ms []model.GroupModel) []GroupDTO {
	out := make([]GroupDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToGroupDTO(m))
	}
	return out
}

func ToGroupModel(req CreateGroupRequest) model.GroupModel {
	memberCount := req.GroupMemberCount
	if memberCount < 0 {
		memberCount = 0
	}
	return model.GroupModel{
		GroupName:        req.GroupName,
		GroupDescription: req.GroupDescription,
		GroupCategory:    req.GroupCategory,
		GroupResources:   resourcesToJSON(req.GroupResources),
		GroupJoinLink:    req.GroupJoinLink,
		GroupMemberCount: memberCount,
		GroupIsPrivate:   req.GroupIsPrivate,
	}
}

func ApplyGroupUpdate(m *model.GroupModel, req UpdateGroupRequest) {
	if req.GroupName != "" {
		m.GroupName = req.GroupName
	}
	if req.GroupDescription != nil {
		m.GroupDescription = *req.GroupDescription
	}
	if req.GroupCategory != nil {
		m.GroupCategory = *req.GroupCategory
	}
	if req.GroupResources != nil {
		m.GroupResources = resourcesToJSON(*req.GroupResources)
	}
	if req.GroupJoinLink != nil {
		m.GroupJoinLink = req.GroupJoinLink
	}
	if req.GroupMemberCount != nil && *req.GroupMemberCount >= 0 {
		m.GroupMemberCount = *req.GroupMemberCount
	}
	if req.GroupIsPrivate != nil {
		m.GroupIsPrivate = *req.GroupIsPrivate
	}
}
