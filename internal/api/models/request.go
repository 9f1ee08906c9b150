package models

// MonthURI binds the :month path segment (0-based).
type MonthURI struct {
	Month *int `uri:"month" binding:"required,min=0,max=11"`
}

// DayURI binds /months/:month/days/:day.
type DayURI struct {
	Month *int `uri:"month" binding:"required,min=0,max=11"`
	Day   int  `uri:"day" binding:"required,min=1,max=28"`
}

// CommodityURI binds the :commodity path segment. Names are case-sensitive.
type CommodityURI struct {
	Commodity string `uri:"commodity" binding:"required,commodity"`
}

// RangeQuery binds ?from=&to= (1-based, inclusive).
type RangeQuery struct {
	From int `form:"from" binding:"required,min=1,max=28,ltefield=To"`
	To   int `form:"to" binding:"required,min=1,max=28"`
}

// ThresholdQuery binds ?threshold=; zero and negative thresholds are allowed.
type ThresholdQuery struct {
	Threshold *int `form:"threshold" binding:"required"`
}

// CompareQuery binds ?a=&b=.
type CompareQuery struct {
	A string `form:"a" binding:"required,commodity"`
	B string `form:"b" binding:"required,commodity"`
}
