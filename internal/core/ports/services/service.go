package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Ledger    LedgerSvcFacade
	Metering  MeteringSvcFacade
	Party     PartySvcFacade
	Intake    IntakeSvcFacade
	Recycling RecyclingSvcFacade
	Payroll   PayrollSvcFacade
	Payable   PayableSvcFacade
	Costing   CostingSvcFacade
	Expense   ExpenseSvcFacade
	Reporting ReportingSvcFacade
}
