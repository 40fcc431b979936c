package wellness

import "time"

var healthTips = []string{
	"Drink 8 glasses of water daily",
	"Get 7-9 hours of sleep",
	"Exercise for 30 minutes daily",
	"Eat 5 servings of fruits/vegetables",
	"Practice stress management",
	"Take regular health screenings",
}

// TipOfDay returns the health tip for the given date. The tip rotates with
// the day of the month, so it is stable within a day.
func TipOfDay(t time.Time) string {
	return healthTips[t.Day()%len(healthTips)]
}
