package entities

import (
	"fmt"
	"slices"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipping  OrderStatus = "shipping"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type statusInfo struct {
	label string
	color string
	next  []OrderStatus
}

// Transition table and display metadata for every status.
var statuses = map[OrderStatus]statusInfo{
	StatusPending:   {label: "Pending confirmation", color: "#FF9800", next: []OrderStatus{StatusConfirmed, StatusCancelled}},
	StatusConfirmed: {label: "Confirmed", color: "#2196F3", next: []OrderStatus{StatusShipping, StatusCancelled}},
	StatusShipping:  {label: "Out for delivery", color: "#9C27B0", next: []OrderStatus{StatusDelivered}},
	StatusDelivered: {label: "Delivered", color: "#4CAF50"},
	StatusCancelled: {label: "Cancelled", color: "#F44336"},
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Valid() bool {
	_, ok := statuses[s]
	return ok
}

func (s OrderStatus) Label() string {
	if info, ok := statuses[s]; ok {
		return info.label
	}
	return string(s)
}

func (s OrderStatus) Color() string {
	return statuses[s].color
}

func (s OrderStatus) IsTerminal() bool {
	info, ok := statuses[s]
	return ok && len(info.next) == 0
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range statuses[s].next {
		if next == target {
			return true
		}
	}
	return false
}

// Next lists the statuses reachable in one step.
func (s OrderStatus) Next() []OrderStatus {
	return slices.Clone(statuses[s].next)
}

// Cancellable reports whether the shopper may still cancel.
func (s OrderStatus) Cancellable() bool {
	return s.CanTransitionTo(StatusCancelled)
}

func (s OrderStatus) defaultNote() string {
	switch s {
	case StatusPending:
		return "order created"
	case StatusConfirmed:
		return "order confirmed"
	case StatusShipping:
		return "order handed to carrier"
	case StatusDelivered:
		return "order delivered"
	case StatusCancelled:
		return "order cancelled"
	}
	return fmt.Sprintf("status changed to %s", s)
}
