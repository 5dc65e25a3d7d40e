package domain

import "time"

// CurrencyTotal is the integer sum of one currency's amounts.
type CurrencyTotal struct {
	CurrencyCode string `json:"currencyCode"`
	TotalMinor   int64  `json:"totalMinor"`
	Total        string `json:"total"`
	Count        int    `json:"count"`
}

// KPI is a single summary figure in the chosen currency.
type KPI struct {
	Minor int64  `json:"minor"`
	Major string `json:"major"`
}

// KPIs are the trailing monthly/yearly figures shown per screen.
type KPIs struct {
	CurrencyCode  string `json:"currencyCode"`
	LastMonth     KPI    `json:"lastMonth"`
	ThisMonth     KPI    `json:"thisMonth"`
	YearlyAverage KPI    `json:"yearlyAverage"`
}

// CategoryShare is one entry of the category breakdown.
type CategoryShare struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	SumMinor   int64  `json:"sumMinor"`
	Percent    int64  `json:"percent"`
}

// DailyPoint is one day of the trailing 7-day series.
type DailyPoint struct {
	Day      time.Time `json:"day"`
	SumMinor int64     `json:"sumMinor"`
}

// Summary is the aggregated view of a filtered, single-kind record set.
type Summary struct {
	Totals     []CurrencyTotal `json:"totals"`
	KPIs       KPIs            `json:"kpis"`
	Categories []CategoryShare `json:"categories"`
	Daily      []DailyPoint    `json:"daily"`
	DailyMax   int64           `json:"dailyMax"`
}
