// Package notifications delivers customer-facing workflow notifications.
package notifications

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/billing"
	"fulfillment/internal/core/domain/model/installation"
	"fulfillment/internal/core/domain/model/kernel"
)

// SlogNotifier implements ports.Notifier by writing structured log records.
// It stands in for the messaging gateway integration; the coordinator already
// treats every notification as best-effort, so swapping in a real transport
// is a drop-in replacement.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// NotifyBillingProposed announces a proposal awaiting customer approval.
func (n *SlogNotifier) NotifyBillingProposed(ctx context.Context, proposal *billing.AdditionalBilling) error {
	n.logger.InfoContext(ctx, "Billing proposal sent for approval",
		"order_id", proposal.OrderID().String(),
		"reference", proposal.Reference(),
		"total_amount", proposal.TotalAmount().StringFixed(2),
		"expires_at", proposal.ExpiresAt(),
	)
	return nil
}

// NotifyBillingDecision announces a recorded customer decision.
func (n *SlogNotifier) NotifyBillingDecision(ctx context.Context, proposal *billing.AdditionalBilling) error {
	n.logger.InfoContext(ctx, "Billing decision recorded",
		"order_id", proposal.OrderID().String(),
		"reference", proposal.Reference(),
		"status", proposal.Status().String(),
	)
	return nil
}

// NotifyInstallationActivated announces a scheduled installation.
func (n *SlogNotifier) NotifyInstallationActivated(
	ctx context.Context,
	activity *installation.InstallationActivity,
) error {
	n.logger.InfoContext(ctx, "Installation activated",
		"order_id", activity.OrderID().String(),
		"installation_id", activity.ID().String(),
	)
	return nil
}

// NotifyOrderCancelled announces an order cancellation.
func (n *SlogNotifier) NotifyOrderCancelled(ctx context.Context, orderID kernel.UUID) error {
	n.logger.InfoContext(ctx, "Order cancelled",
		"order_id", orderID.String(),
	)
	return nil
}
