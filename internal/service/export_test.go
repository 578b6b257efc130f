package service

import "time"

// Test hooks for the external service_test package.

func SetCacheClock(c StorefrontCache, now func() time.Time) {
	c.(*storefrontCache).now = now
}

func SetReminderClock(r ReminderService, now func() time.Time) {
	r.(*reminderService).now = now
}

func SetCommandsClock(c Commands, now func() time.Time) {
	c.(*commands).now = now
}
