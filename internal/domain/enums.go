package domain

// IdeaStatus represents the editorial state of a content idea.
type IdeaStatus string

const (
	IdeaStatusDraft IdeaStatus = "DRAFT"
	IdeaStatusReady IdeaStatus = "READY"
	IdeaStatusUsed  IdeaStatus = "USED"
)

func (s IdeaStatus) String() string { return string(s) }

func (s IdeaStatus) IsValid() bool {
	switch s {
	case IdeaStatusDraft, IdeaStatusReady, IdeaStatusUsed:
		return true
	}
	return false
}

// PublicationStatus represents where a publication is in its posting lifecycle.
type PublicationStatus string

const (
	PublicationStatusDraft     PublicationStatus = "DRAFT"
	PublicationStatusScheduled PublicationStatus = "SCHEDULED"
	PublicationStatusPublished PublicationStatus = "PUBLISHED"
)

func (s PublicationStatus) String() string { return string(s) }

func (s PublicationStatus) IsValid() bool {
	switch s {
	case PublicationStatusDraft, PublicationStatusScheduled, PublicationStatusPublished:
		return true
	}
	return false
}

// EntityType identifies a resource kind in automation events.
type EntityType string

const (
	EntityTypeBrand       EntityType = "BRAND"
	EntityTypeCategory    EntityType = "CATEGORY"
	EntityTypeTopic       EntityType = "TOPIC"
	EntityTypeContentType EntityType = "CONTENT_TYPE"
	EntityTypeIdea        EntityType = "IDEA"
	EntityTypeInspiration EntityType = "INSPIRATION"
	EntityTypePublication EntityType = "PUBLICATION"
)

func (t EntityType) String() string { return string(t) }

func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeBrand, EntityTypeCategory, EntityTypeTopic, EntityTypeContentType,
		EntityTypeIdea, EntityTypeInspiration, EntityTypePublication:
		return true
	}
	return false
}

// EventAction identifies what happened to an entity in an automation event.
type EventAction string

const (
	EventActionCreate   EventAction = "CREATE"
	EventActionUpdate   EventAction = "UPDATE"
	EventActionDelete   EventAction = "DELETE"
	EventActionSchedule EventAction = "SCHEDULE"
)

func (a EventAction) String() string { return string(a) }

func (a EventAction) IsValid() bool {
	switch a {
	case EventActionCreate, EventActionUpdate, EventActionDelete, EventActionSchedule:
		return true
	}
	return false
}
