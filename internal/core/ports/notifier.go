package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"
)

// Notifier sends customer-facing notifications about workflow transitions.
// Notifications are fired best-effort after a transition is committed; a
// notification failure never rolls back the transition.
type Notifier interface {
	// NotifyBillingProposed informs the customer that an additional billing
	// proposal awaits their approval.
	NotifyBillingProposed(ctx context.Context, proposal *billing.AdditionalBilling) error

	// NotifyBillingDecision informs the customer that their approval or
	// rejection of a proposal was recorded.
	NotifyBillingDecision(ctx context.Context, proposal *billing.AdditionalBilling) error

	// NotifyInstallationActivated informs the customer that the installation
	// was scheduled for dispatch.
	NotifyInstallationActivated(ctx context.Context, activity *installation.InstallationActivity) error

	// NotifyOrderCancelled informs the customer that the order and all of its
	// in-flight workflow records were cancelled.
	NotifyOrderCancelled(ctx context.Context, orderID kernel.UUID) error
}
