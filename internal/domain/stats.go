package domain

// DailyStats summarises one calendar day of records. It is derived on
// every request and never stored.
type DailyStats struct {
	Date            string
	TotalPumpingML  int
	TotalFeedingML  int
	TotalSleepHours float64
	AvgPumpML       int
	PumpCount       int
}

// WeeklyPoint is one bar of the seven-day pumping chart.
type WeeklyPoint struct {
	Label    string
	FullDate string
	Volume   int
}
