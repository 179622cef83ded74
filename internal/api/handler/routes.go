package handler

import (
	"net/http"

	"github.com/vfg2006/tpm-api/internal/api/handler/router"
	"github.com/vfg2006/tpm-api/internal/usecases/account"
	"github.com/vfg2006/tpm-api/internal/usecases/analyzing"
	"github.com/vfg2006/tpm-api/internal/usecases/budgeting"
)

func Healthcheck(dependencies ...Dependency) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dependencies...),
		},
	}
}

func Dashboard(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/v1/dashboard/roi-trend",
			Method:  http.MethodGet,
			Handler: GetROITrend(service),
		},
		{
			Path:    "/v1/dashboard/top-promotions",
			Method:  http.MethodGet,
			Handler: GetTopPromotions(service),
		},
		{
			Path:    "/v1/dashboard/recent-activities",
			Method:  http.MethodGet,
			Handler: GetRecentActivities(service),
		},
		{
			Path:    "/v1/analytics/rollup",
			Method:  http.MethodGet,
			Handler: GetRollup(service),
		},
		{
			Path:    "/v1/deductions/priority",
			Method:  http.MethodGet,
			Handler: GetPriorityDeductions(service),
		},
		{
			Path:    "/v1/deductions/breakdown",
			Method:  http.MethodGet,
			Handler: GetDeductionBreakdown(service),
		},
		{
			Path:    "/v1/promotions/upcoming",
			Method:  http.MethodGet,
			Handler: GetUpcomingPromotions(service),
		},
		{
			Path:    "/v1/promotions",
			Method:  http.MethodGet,
			Handler: ListPromotions(service),
		},
		{
			Path:    "/v1/deductions",
			Method:  http.MethodGet,
			Handler: ListDeductions(service),
		},
		{
			Path:    "/v1/sales-data",
			Method:  http.MethodGet,
			Handler: ListSalesData(service),
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AccountList(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodGet,
			Handler: GetAccount(service),
		},
	}
}

func Budgets(service budgeting.Budgeter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/budgets",
			Method:  http.MethodGet,
			Handler: ListBudgetAllocations(service),
		},
		{
			Path:    "/v1/budgets",
			Method:  http.MethodPost,
			Handler: AllocateBudget(service),
		},
		{
			Path:    "/v1/budgets/quarter/:quarter",
			Method:  http.MethodGet,
			Handler: GetQuarterBudget(service),
		},
		{
			Path:    "/v1/budgets/check",
			Method:  http.MethodPost,
			Handler: CheckBudgetAllocation(service),
		},
		{
			Path:    "/v1/budgets/sessions/:id/decision",
			Method:  http.MethodPost,
			Handler: DecideBudgetAllocation(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
