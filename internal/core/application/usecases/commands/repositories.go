// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SurveyRepoFactory provides access to the survey repository within a transaction.
	SurveyRepoFactory interface {
		SurveyRepository() ports.SurveyRepository
	}

	// BillingRepoFactory provides access to the billing repository within a transaction.
	BillingRepoFactory interface {
		BillingRepository() ports.BillingRepository
	}

	// InstallationRepoFactory provides access to the installation repository within a transaction.
	InstallationRepoFactory interface {
		InstallationRepository() ports.InstallationRepository
	}

	// SurveyUoW manages transactions for survey-only operations.
	SurveyUoW interface {
		TxManager
		SurveyRepoFactory
	}

	// SurveyUoWFactory creates new survey unit of work instances.
	SurveyUoWFactory interface {
		Create() SurveyUoW
	}

	// BillingUoW manages transactions for billing-only operations.
	BillingUoW interface {
		TxManager
		BillingRepoFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}

	// InstallationUoW manages transactions for installation-only operations.
	InstallationUoW interface {
		TxManager
		InstallationRepoFactory
	}

	// InstallationUoWFactory creates new installation unit of work instances.
	InstallationUoWFactory interface {
		Create() InstallationUoW
	}

	// OrderBillingUoW manages transactions spanning order and billing aggregates.
	// Used by the billing approval flow, which checks that the actor owns the
	// order before recording the decision.
	OrderBillingUoW interface {
		TxManager
		OrderRepoFactory
		BillingRepoFactory
	}

	// OrderBillingUoWFactory creates new order+billing unit of work instances.
	OrderBillingUoWFactory interface {
		Create() OrderBillingUoW
	}

	// OrderSurveyUoW manages transactions spanning order and survey aggregates.
	// Used by the payment confirmation flow that creates the 1:1 survey.
	OrderSurveyUoW interface {
		TxManager
		OrderRepoFactory
		SurveyRepoFactory
	}

	// OrderSurveyUoWFactory creates new order+survey unit of work instances.
	OrderSurveyUoWFactory interface {
		Create() OrderSurveyUoW
	}

	// UoW manages transactions across all workflow aggregates.
	// Used by commands that evaluate or mutate the complete order workflow:
	// survey approval, billing payment and the order-cancellation cascade.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   surveyRepo := uow.SurveyRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		SurveyRepoFactory
		BillingRepoFactory
		InstallationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
