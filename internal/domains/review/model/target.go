package model

import (
	"fmt"
	"slices"
	"summit/shared/dto"
)

type TargetKind string

const (
	KindGuide        TargetKind = "guide"
	KindPorter       TargetKind = "porter"
	KindAdventure    TargetKind = "adventure"
	KindGearProvider TargetKind = "gear_provider"
)

var criteria = map[TargetKind][]string{
	KindPorter:       {"reliability", "strength", "attitude", "punctuality", "safety"},
	KindGuide:        {"knowledge", "communication", "safety", "professionalism"},
	KindAdventure:    {"value", "organization", "scenery", "safety"},
	KindGearProvider: {"quality", "value", "service"},
}

// Criteria lists the sub-ratings a review of kind may carry.
func (k TargetKind) Criteria() []string {
	return slices.Clone(criteria[k])
}

func (k TargetKind) IsValid() bool {
	_, ok := criteria[k]

	return ok
}

// Target is the entity a review is about. The set of implementations is closed.
type Target interface {
	Kind() TargetKind
	ID() string
	target()
}

type GuideTarget struct{ GuideID string }

type PorterTarget struct{ PorterID string }

type AdventureTarget struct{ AdventureID string }

type GearProviderTarget struct{ ProviderID string }

func (t GuideTarget) Kind() TargetKind { return KindGuide }
func (t GuideTarget) ID() string { return t.GuideID }
func (GuideTarget) target() {}
func (t PorterTarget) Kind() TargetKind { return KindPorter }
func (t PorterTarget) ID() string { return t.PorterID }
func (PorterTarget) target() {}
func (t AdventureTarget) Kind() TargetKind { return KindAdventure }
func (t AdventureTarget) ID() string { return t.AdventureID }
func (AdventureTarget) target() {}
func (t GearProviderTarget) Kind() TargetKind { return KindGearProvider }
func (t GearProviderTarget) ID() string { return t.ProviderID }
func (GearProviderTarget) target() {}

func NewTarget(kind, id string) (Target, error) {
	if id == "" {
		return nil, fmt.Errorf("target id is required")
	}

	switch TargetKind(kind) {
	case KindGuide:
		return GuideTarget{GuideID: id}, nil
	case KindPorter:
		return PorterTarget{PorterID: id}, nil
	case KindAdventure:
		return AdventureTarget{AdventureID: id}, nil
	case KindGearProvider:
		return GearProviderTarget{ProviderID: id}, nil
	default:
		return nil, fmt.Errorf("unknown review target type %q", kind)
	}
}

// TargetKey identifies a target across processes, e.g. as a message key or lock name.
func TargetKey(t Target) string {
	return fmt.Sprintf("%s:%s", t.Kind(), t.ID())
}

// TargetFilter selects the reviews of t.
func TargetFilter(t Target) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: FieldTargetType, Operator: dto.FilterOperatorEq, Value: string(t.Kind()), Table: TableName},
			dto.Filter{Field: FieldTargetID, Operator: dto.FilterOperatorEq, Value: t.ID(), Table: TableName},
		},
	}
}
