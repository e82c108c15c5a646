// Package service loads page data from the store and runs it through the
// page builders. The HTTP handlers and backofficectl share it.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"lull-backoffice/internal/database"
	"lull-backoffice/internal/export"
	"lull-backoffice/internal/models"
	"lull-backoffice/internal/pages"
)

var ErrUnknownPage = errors.New("unknown page")

const (
	PageAttendance = "attendance"
	PageBilling    = "billing"
	PageContracts  = "contracts"
	PageCustomers  = "customers"
	PageUploads    = "uploads"
	PageMaster     = "master"
	PageDashboard  = "dashboard"
)

// Pages lists every page in navigation order.
var Pages = []string{PageDashboard, PageAttendance, PageBilling, PageContracts, PageCustomers, PageUploads, PageMaster}

// ExportPages lists the pages that can be downloaded as a table.
var ExportPages = []string{PageAttendance, PageBilling, PageContracts, PageCustomers}

type Backoffice struct {
	store database.Store
	now   func() time.Time
}

// New returns a Backoffice reading from store. now supplies the reference
// date; nil means time.Now.
func New(store database.Store, now func() time.Time) *Backoffice {
	if now == nil {
		now = time.Now
	}
	return &Backoffice{store: store, now: now}
}

func (b *Backoffice) Attendance(ctx context.Context, q url.Values) (pages.AttendanceView, error) {
	records, err := b.store.AttendanceRecords(ctx)
	if err != nil {
		return pages.AttendanceView{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	alerts, err := b.store.Alerts(ctx)
	if err != nil {
		return pages.AttendanceView{}, fmt.Errorf("failed to load alerts: %w", err)
	}
	pto, err := b.store.PTORequests(ctx)
	if err != nil {
		return pages.AttendanceView{}, fmt.Errorf("failed to load pto requests: %w", err)
	}
	ot, err := b.store.OTRequests(ctx)
	if err != nil {
		return pages.AttendanceView{}, fmt.Errorf("failed to load ot requests: %w", err)
	}

	in := pages.AttendanceInput{Records: records, Alerts: alerts, PTORequests: pto, OTRequests: ot}
	return pages.BuildAttendance(in, pages.ParseAttendanceQuery(q), b.now()), nil
}

func (b *Backoffice) Billing(ctx context.Context, q url.Values) (pages.BillingView, error) {
	records, err := b.store.BillingRecords(ctx)
	if err != nil {
		return pages.BillingView{}, fmt.Errorf("failed to load billing: %w", err)
	}
	return pages.BuildBilling(records, pages.ParseBillingQuery(q)), nil
}

func (b *Backoffice) Contracts(ctx context.Context, q url.Values) (pages.ContractView, error) {
	records, err := b.store.Contracts(ctx)
	if err != nil {
		return pages.ContractView{}, fmt.Errorf("failed to load contracts: %w", err)
	}
	return pages.BuildContracts(records, pages.ParseContractQuery(q), b.now()), nil
}

func (b *Backoffice) Customers(ctx context.Context, q url.Values) (pages.CustomerView, error) {
	records, err := b.store.Customers(ctx)
	if err != nil {
		return pages.CustomerView{}, fmt.Errorf("failed to load customers: %w", err)
	}
	return pages.BuildCustomers(records, pages.ParseCustomerQuery(q)), nil
}

func (b *Backoffice) Uploads(ctx context.Context, q url.Values) (pages.UploadView, error) {
	items, err := b.store.Uploads(ctx)
	if err != nil {
		return pages.UploadView{}, fmt.Errorf("failed to load uploads: %w", err)
	}
	return pages.BuildUploads(items, pages.ParseUploadQuery(q)), nil
}

func (b *Backoffice) Master(ctx context.Context, q url.Values) (pages.MasterView, error) {
	categories, err := b.store.MasterCategories(ctx)
	if err != nil {
		return pages.MasterView{}, fmt.Errorf("failed to load master data: %w", err)
	}
	return pages.BuildMaster(categories, q), nil
}

func (b *Backoffice) Dashboard(ctx context.Context) (pages.DashboardView, error) {
	in, err := b.dashboardInput(ctx)
	if err != nil {
		return pages.DashboardView{}, err
	}
	return pages.BuildDashboard(in, b.now()), nil
}

// Summary returns only the dashboard KPI cards.
func (b *Backoffice) Summary(ctx context.Context) ([]pages.KPICard, error) {
	in, err := b.dashboardInput(ctx)
	if err != nil {
		return nil, err
	}
	return pages.DashboardKPIs(in, b.now()), nil
}

func (b *Backoffice) dashboardInput(ctx context.Context) (pages.DashboardInput, error) {
	attendance, err := b.store.AttendanceRecords(ctx)
	if err != nil {
		return pages.DashboardInput{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	billing, err := b.store.BillingRecords(ctx)
	if err != nil {
		return pages.DashboardInput{}, fmt.Errorf("failed to load billing: %w", err)
	}
	contracts, err := b.store.Contracts(ctx)
	if err != nil {
		return pages.DashboardInput{}, fmt.Errorf("failed to load contracts: %w", err)
	}
	data, err := b.store.Dashboard(ctx)
	if err != nil {
		return pages.DashboardInput{}, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return pages.DashboardInput{Attendance: attendance, Billing: billing, Contracts: contracts, Data: data}, nil
}

// View builds the named page.
func (b *Backoffice) View(ctx context.Context, page string, q url.Values) (any, error) {
	switch page {
	case PageAttendance:
		return b.Attendance(ctx, q)
	case PageBilling:
		return b.Billing(ctx, q)
	case PageContracts:
		return b.Contracts(ctx, q)
	case PageCustomers:
		return b.Customers(ctx, q)
	case PageUploads:
		return b.Uploads(ctx, q)
	case PageMaster:
		return b.Master(ctx, q)
	case PageDashboard:
		return b.Dashboard(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}
}

// Table builds the export table of the named page with the same filters
// the page applies.
func (b *Backoffice) Table(ctx context.Context, page string, q url.Values) (export.Table, error) {
	switch page {
	case PageAttendance:
		v, err := b.Attendance(ctx, q)
		return pages.AttendanceTable(v.Rows), err
	case PageBilling:
		v, err := b.Billing(ctx, q)
		return pages.BillingTable(v.Rows), err
	case PageContracts:
		v, err := b.Contracts(ctx, q)
		return pages.ContractTable(v.Rows), err
	case PageCustomers:
		v, err := b.Customers(ctx, q)
		return pages.CustomerTable(v.Rows), err
	default:
		return export.Table{}, fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}
}

// CreateCustomer registers a customer, allocating its id under the store's
// write lock.
func (b *Backoffice) CreateCustomer(ctx context.Context, draft pages.CustomerDraft) (models.CustomerRecord, error) {
	now := b.now()
	created, err := b.store.InsertCustomer(ctx, func(existing []models.CustomerRecord) models.CustomerRecord {
		return pages.NewCustomer(draft, existing, now)
	})
	if err != nil {
		return models.CustomerRecord{}, fmt.Errorf("failed to create customer: %w", err)
	}
	return created, nil
}
