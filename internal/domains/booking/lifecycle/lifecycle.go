package lifecycle

import (
	"fmt"
	"slices"
	"summit/shared/constant"
	"summit/shared/failure"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {StatusRefunded},
	StatusCancelled:  {StatusRefunded},
	StatusRefunded:   {},
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}

	return status, nil
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]

	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// AcceptsProgress reports whether milestones and daily reports may be appended.
func (s Status) AcceptsProgress() bool {
	return s == StatusConfirmed || s == StatusInProgress
}

func (s Status) String() string {
	return string(s)
}

// Actor is the authenticated caller performing an operation.
type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == constant.RoleAdmin
}

// Parties are the accounts bound to a booking.
type Parties struct {
	CustomerID string
	GuideID    *string
	PorterID   *string
}

func (p Parties) IsCustomer(a Actor) bool {
	return a.ID != "" && a.ID == p.CustomerID
}

// IsAssignedStaff reports whether the actor is the guide or porter assigned to the booking.
func (p Parties) IsAssignedStaff(a Actor) bool {
	if a.ID == "" {
		return false
	}

	return (p.GuideID != nil && *p.GuideID == a.ID) || (p.PorterID != nil && *p.PorterID == a.ID)
}

// Authorize checks that actor may move a booking into target.
func Authorize(target Status, actor Actor, parties Parties) error {
	if actor.IsAdmin() {
		return nil
	}

	switch target {
	case StatusConfirmed, StatusInProgress, StatusCompleted:
		if parties.IsAssignedStaff(actor) {
			return nil
		}

		return failure.Forbidden("only the assigned guide, porter or an administrator can do this")
	case StatusCancelled:
		if parties.IsCustomer(actor) {
			return nil
		}

		return failure.Forbidden("only the customer or an administrator can cancel this booking")
	case StatusRefunded:
		return failure.Forbidden("only an administrator can refund a booking")
	default:
		return failure.Forbidden("operation not allowed")
	}
}

// Transition validates from -> to against the table and then the role guard.
func Transition(from, to Status, actor Actor, parties Parties) error {
	if !from.CanTransitionTo(to) {
		return failure.InvalidTransition(fmt.Sprintf("booking cannot move from %s to %s", from, to))
	}

	return Authorize(to, actor, parties)
}

// AuthorizeProgress checks a progress update. A confirmed booking moves to in_progress on its
// first update, so the returned status is the one the booking must end up in.
func AuthorizeProgress(current Status, actor Actor, parties Parties) (Status, error) {
	if !current.AcceptsProgress() {
		return current, failure.InvalidTransition(fmt.Sprintf("progress cannot be recorded on a %s booking", current))
	}

	if err := Authorize(StatusInProgress, actor, parties); err != nil {
		return current, err
	}

	return StatusInProgress, nil
}
